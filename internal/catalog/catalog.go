package catalog

// Caption is a preset phrase the user can place onto a photo.
type Caption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Style is a mood descriptor. PromptHint is what the generation instruction
// actually carries; Label and Description exist for option listings.
type Style struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	PromptHint  string `json:"promptHint"`
	Category    string `json:"category,omitempty"`
}

// Placement is one of the nine canonical text positions.
type Placement struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	PlacementHint string `json:"placementHint"`
}

// Catalogs bundles the option sets for one process. It is built once at
// startup and injected wherever lookups are needed, so tests can swap in
// fixture catalogs without touching package state.
type Catalogs struct {
	Captions   []Caption
	Styles     []Style
	Placements []Placement

	captionByID   map[string]Caption
	styleByID     map[string]Style
	placementByID map[string]Placement
}

// New builds a Catalogs aggregate with lookup indexes over the given slices.
// The slices are not copied; callers must not mutate them afterwards.
func New(captions []Caption, styles []Style, placements []Placement) *Catalogs {
	c := &Catalogs{
		Captions:      captions,
		Styles:        styles,
		Placements:    placements,
		captionByID:   make(map[string]Caption, len(captions)),
		styleByID:     make(map[string]Style, len(styles)),
		placementByID: make(map[string]Placement, len(placements)),
	}
	for _, cap := range captions {
		c.captionByID[cap.ID] = cap
	}
	for _, s := range styles {
		c.styleByID[s.ID] = s
	}
	for _, p := range placements {
		c.placementByID[p.ID] = p
	}
	return c
}

// Default returns the built-in production catalogs.
func Default() *Catalogs {
	return New(Captions, Styles, Placements)
}

// CaptionByID resolves a caption preset.
func (c *Catalogs) CaptionByID(id string) (Caption, bool) {
	cap, ok := c.captionByID[id]
	return cap, ok
}

// StyleByID resolves a style preset.
func (c *Catalogs) StyleByID(id string) (Style, bool) {
	s, ok := c.styleByID[id]
	return s, ok
}

// PlacementByID resolves a placement preset.
func (c *Catalogs) PlacementByID(id string) (Placement, bool) {
	p, ok := c.placementByID[id]
	return p, ok
}

// ResolveStyles maps ids to full style records, silently dropping ids that
// no longer resolve. Insertion order is preserved.
func (c *Catalogs) ResolveStyles(ids []string) []Style {
	out := make([]Style, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.styleByID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
