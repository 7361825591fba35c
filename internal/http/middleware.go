package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/nav"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const SessionCookieName = "storefront_session"

type ctxKey int

const shellKey ctxKey = iota

// SessionMiddleware attaches the caller's shell to the request context,
// starting a new session when the cookie is missing or has expired.
func SessionMiddleware(sessions *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var shell *session.Shell
			if c, err := r.Cookie(SessionCookieName); err == nil {
				shell, _ = sessions.Get(c.Value)
			}

			if shell == nil {
				var id string
				id, shell = sessions.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), shellKey, shell)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ShellFromContext returns the shell stored by SessionMiddleware, or nil.
func ShellFromContext(ctx context.Context) *session.Shell {
	shell, _ := ctx.Value(shellKey).(*session.Shell)
	return shell
}

// AccessLog writes one log line per request.
func AccessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("page", pageName(r.URL.Path)),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func pageName(path string) string {
	if route, ok := nav.Match(path); ok {
		return route.Name
	}
	return ""
}
