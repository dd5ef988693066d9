package handlers

import (
	"encoding/json"
	"net/http"

	"kuugen/internal/blobstore"
	"kuugen/internal/catalog"
	"kuugen/internal/infra"
	"kuugen/internal/messages"
	"kuugen/internal/middleware"
	"kuugen/internal/pipeline"
)

// App bundles the request handlers' dependencies. Catalogs are immutable
// and shared; everything else is safe for concurrent use.
type App struct {
	Config      *infra.Config
	Logger      *infra.Logger
	Catalogs    *catalog.Catalogs
	Coordinator *pipeline.Coordinator
	Store       blobstore.Store
	Model       string
}

// NewApp builds the handler container.
func NewApp(cfg *infra.Config, logger *infra.Logger, cats *catalog.Catalogs, coord *pipeline.Coordinator, store blobstore.Store, model string) *App {
	return &App{
		Config:      cfg,
		Logger:      logger,
		Catalogs:    cats,
		Coordinator: coord,
		Store:       store,
		Model:       model,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorKey writes a localized error body. The debug payload is attached
// only outside production so internal detail never reaches end users.
func (a *App) errorKey(w http.ResponseWriter, r *http.Request, code int, key string, debug any) {
	locale := middleware.LocaleFromContext(r.Context())
	body := map[string]any{"error": messages.Lookup(locale, key)}
	if debug != nil && !a.Config.Production() {
		body["debug"] = debug
	}
	a.json(w, code, body)
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok", "service": "kuugen"})
}
