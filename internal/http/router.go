// Package http serves the storefront pages and the cart JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/nav"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

type Deps struct {
	Catalog        catalog.Catalog
	Sessions       *session.Registry
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

func NewRouter(d Deps) (http.Handler, error) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = defaultRequestTimeout
	}

	pages, err := NewPageHandler(d.Catalog, d.RequestTimeout, d.Logger)
	if err != nil {
		return nil, err
	}
	cartHandler := NewCartHandler(d.Catalog, d.RequestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(AccessLog(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(d.Sessions))

		for _, route := range nav.Routes() {
			r.Get(route.Path, pages.Page(route))
		}
		r.Post("/shop/items", pages.AddToCart)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/products", cartHandler.GetProducts)
			r.Get("/badge", cartHandler.GetBadge)
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
			})
		})
	})

	r.NotFound(pages.NotFound)

	return otelhttp.NewHandler(r, "storefront"), nil
}
