package catalog

import "testing"

func TestDefaultCatalogsResolve(t *testing.T) {
	cats := Default()

	if len(cats.Captions) == 0 || len(cats.Styles) == 0 || len(cats.Placements) != 9 {
		t.Fatalf("catalog sizes = %d/%d/%d", len(cats.Captions), len(cats.Styles), len(cats.Placements))
	}

	for _, c := range cats.Captions {
		got, ok := cats.CaptionByID(c.ID)
		if !ok || got.Text == "" {
			t.Fatalf("caption %q does not resolve", c.ID)
		}
	}
	for _, s := range cats.Styles {
		got, ok := cats.StyleByID(s.ID)
		if !ok || got.PromptHint == "" {
			t.Fatalf("style %q does not resolve or has no hint", s.ID)
		}
	}
	for _, p := range cats.Placements {
		got, ok := cats.PlacementByID(p.ID)
		if !ok || got.PlacementHint == "" {
			t.Fatalf("placement %q does not resolve or has no hint", p.ID)
		}
	}
}

func TestDefaultCatalogIDsAreUnique(t *testing.T) {
	cats := Default()
	if len(cats.captionByID) != len(cats.Captions) {
		t.Fatalf("duplicate caption ids: %d ids over %d entries", len(cats.captionByID), len(cats.Captions))
	}
	if len(cats.styleByID) != len(cats.Styles) {
		t.Fatalf("duplicate style ids")
	}
	if len(cats.placementByID) != len(cats.Placements) {
		t.Fatalf("duplicate placement ids")
	}
}

func TestResolveStyles(t *testing.T) {
	cats := New(
		nil,
		[]Style{
			{ID: "a", PromptHint: "hint-a"},
			{ID: "b", PromptHint: "hint-b"},
		},
		nil,
	)

	got := cats.ResolveStyles([]string{"b", "missing", "a"})
	if len(got) != 2 {
		t.Fatalf("resolved %d styles, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestLookupMisses(t *testing.T) {
	cats := Default()
	if _, ok := cats.CaptionByID("no-such-id"); ok {
		t.Fatalf("unknown caption id must not resolve")
	}
	if _, ok := cats.StyleByID(""); ok {
		t.Fatalf("empty style id must not resolve")
	}
	if _, ok := cats.PlacementByID("0"); ok {
		t.Fatalf("placement ids start at 1")
	}
}
