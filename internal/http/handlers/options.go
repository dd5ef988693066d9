package handlers

import "net/http"

type optionsResponse struct {
	TextPhrases any `json:"textPhrases"`
	Styles      any `json:"styles"`
	Positions   any `json:"positions"`
}

// Options returns the full option catalogs for the wizard's configure step.
// The catalogs are immutable for the process lifetime, so the response is
// safe to cache client-side.
func (a *App) Options(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, optionsResponse{
		TextPhrases: a.Catalogs.Captions,
		Styles:      a.Catalogs.Styles,
		Positions:   a.Catalogs.Placements,
	})
}
