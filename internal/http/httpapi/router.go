package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"kuugen/internal/http/handlers"
	"kuugen/internal/middleware"
)

// NewRouter assembles the HTTP surface. Generation is rate limited per
// client IP on top of the client-side gate against the vendor.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.RequestID,
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.Locale(app.Config.DefaultLocale),
		middleware.Logger(*app.Logger),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", app.Options)
		r.With(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)).Post("/upload", app.Upload)
		r.With(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)).Post("/generate", app.Generate)
	})

	return r
}
