package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/fjod/go_storefront/internal/badge"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/nav"
	"github.com/fjod/go_storefront/internal/summary"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const notFoundPage = "not_found"

var pageNames = []string{"home", "shop", "flix", "food", "cart", notFoundPage}

var templateFuncs = template.FuncMap{
	"price": formatPrice,
}

type pageData struct {
	Title    string
	Active   string
	Routes   []nav.Route
	Badge    badge.View
	Products []domain.Product
	Summary  summary.View
}

type PageHandler struct {
	catalog   catalog.Catalog
	templates map[string]*template.Template
	timeout   time.Duration
	logger    *zap.Logger
}

func NewPageHandler(c catalog.Catalog, timeout time.Duration, logger *zap.Logger) (*PageHandler, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		catalog:   c,
		templates: templates,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func loadTemplates() (map[string]*template.Template, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		templates[name] = t
	}

	return templates, nil
}

// Page returns the handler rendering route.
func (h *PageHandler) Page(route nav.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := h.baseData(r, route)

		switch route.Name {
		case "shop":
			ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
			defer cancel()

			products, err := h.catalog.GetAllProducts(ctx)
			if err != nil {
				h.logger.Error("failed to load catalog", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			data.Products = products
		case "cart":
			if shell := ShellFromContext(r.Context()); shell != nil {
				data.Summary = summary.Build(shell.Cart.Snapshot())
			} else {
				data.Summary = summary.Build(domain.Cart{})
			}
		}

		h.render(w, http.StatusOK, route.Name, data)
	}
}

// AddToCart handles the shop page form and sends the browser back to the shop.
func (h *PageHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	shell := ShellFromContext(r.Context())
	if shell == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	productID, err := strconv.ParseInt(r.PostForm.Get("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		http.Error(w, "product_id must be a positive integer", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.GetProduct(ctx, productID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to load product", zap.Int64("product_id", productID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	c := shell.Cart.Add(product)
	h.logger.Debug("product added to cart",
		zap.Int64("product_id", product.ID),
		zap.Int("cart_size", c.Len()),
	)

	http.Redirect(w, r, nav.ShopPath, http.StatusSeeOther)
}

// NotFound renders the layout with a not-found message. No badge is shown.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:  "Not Found",
		Active: r.URL.Path,
		Routes: nav.Routes(),
	}
	h.render(w, http.StatusNotFound, notFoundPage, data)
}

func (h *PageHandler) baseData(r *http.Request, route nav.Route) pageData {
	data := pageData{
		Title:  route.Title,
		Active: route.Path,
		Routes: nav.Routes(),
	}
	if shell := ShellFromContext(r.Context()); shell != nil {
		data.Badge = shell.Badge.Render(r.URL.Path)
	}
	return data
}

func (h *PageHandler) render(w http.ResponseWriter, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.templates[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", zap.String("page", page), zap.Error(err))
	}
}

func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}
