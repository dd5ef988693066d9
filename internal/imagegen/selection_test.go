package imagegen

import (
	"reflect"
	"testing"

	"kuugen/internal/catalog"
)

func fixtureCatalogs() *catalog.Catalogs {
	return catalog.New(
		[]catalog.Caption{
			{ID: "kuu", Label: "くぅー", Text: "くぅー"},
			{ID: "2", Label: "くぅ", Text: "くぅ"},
		},
		[]catalog.Style{
			{ID: "gentle", Label: "優しい", PromptHint: "優しい雰囲気"},
			{ID: "pop", Label: "ポップ", PromptHint: "ポップな色使い"},
		},
		[]catalog.Placement{
			{ID: "bottom-right", Label: "右下", PlacementHint: "画像の右下"},
			{ID: "5", Label: "中央", PlacementHint: "画像の中央"},
		},
	)
}

func TestValidateSelection(t *testing.T) {
	cats := fixtureCatalogs()

	tests := []struct {
		name          string
		captionID     string
		customCaption string
		styleIDs      []string
		placementID   string
		want          bool
	}{
		{
			name:        "full preset selection",
			captionID:   "kuu",
			styleIDs:    []string{"gentle"},
			placementID: "bottom-right",
			want:        true,
		},
		{
			name:          "custom caption alone satisfies the caption requirement",
			customCaption: "hello",
			styleIDs:      []string{"gentle"},
			placementID:   "bottom-right",
			want:          true,
		},
		{
			name:          "custom caption skips preset resolution",
			captionID:     "no-such-caption",
			customCaption: "hello",
			styleIDs:      []string{"gentle"},
			placementID:   "bottom-right",
			want:          true,
		},
		{
			name:          "whitespace custom caption does not count",
			customCaption: "   ",
			styleIDs:      []string{"gentle"},
			placementID:   "bottom-right",
			want:          false,
		},
		{
			name:        "missing styles",
			captionID:   "kuu",
			styleIDs:    nil,
			placementID: "bottom-right",
			want:        false,
		},
		{
			name:        "missing placement",
			captionID:   "kuu",
			styleIDs:    []string{"gentle"},
			placementID: "",
			want:        false,
		},
		{
			name:        "unknown caption id",
			captionID:   "no-such-caption",
			styleIDs:    []string{"gentle"},
			placementID: "bottom-right",
			want:        false,
		},
		{
			name:        "unknown style id",
			captionID:   "kuu",
			styleIDs:    []string{"gentle", "no-such-style"},
			placementID: "bottom-right",
			want:        false,
		},
		{
			name:        "unknown placement id",
			captionID:   "kuu",
			styleIDs:    []string{"gentle"},
			placementID: "nowhere",
			want:        false,
		},
		{
			name: "empty everything",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateSelection(tc.captionID, tc.customCaption, tc.styleIDs, tc.placementID, cats)
			if got != tc.want {
				t.Fatalf("ValidateSelection() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectionComplete(t *testing.T) {
	cats := fixtureCatalogs()

	sel := Selection{
		CaptionID:   "kuu",
		StyleIDs:    []string{"gentle", "stale-style"},
		PlacementID: "bottom-right",
	}
	if !sel.Complete(cats) {
		t.Fatalf("stale style id should be dropped, not fail the whole selection")
	}

	sel = Selection{
		CaptionID:   "kuu",
		StyleIDs:    []string{"stale-style"},
		PlacementID: "bottom-right",
	}
	if sel.Complete(cats) {
		t.Fatalf("selection with only stale styles is incomplete")
	}

	sel = Selection{
		CaptionID:   "stale-caption",
		StyleIDs:    []string{"gentle"},
		PlacementID: "bottom-right",
	}
	if sel.Complete(cats) {
		t.Fatalf("stale caption without custom text is incomplete")
	}
}

func TestSelectionCaptionText(t *testing.T) {
	cats := fixtureCatalogs()

	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{"preset", Selection{CaptionID: "kuu"}, "くぅー"},
		{"custom wins", Selection{CaptionID: "kuu", CustomCaption: " hello "}, "hello"},
		{"unknown preset", Selection{CaptionID: "nope"}, ""},
		{"nothing", Selection{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sel.CaptionText(cats); got != tc.want {
				t.Fatalf("CaptionText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplitStyleIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"gentle", []string{"gentle"}},
		{"gentle,pop", []string{"gentle", "pop"}},
		{" gentle , pop ,,", []string{"gentle", "pop"}},
	}
	for _, tc := range tests {
		if got := SplitStyleIDs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitStyleIDs(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	if f, ok := ParseOutputFormat("png"); !ok || f != OutputPNG {
		t.Fatalf("png should parse")
	}
	if f, ok := ParseOutputFormat("jpeg"); !ok || f != OutputJPEG {
		t.Fatalf("jpeg should parse")
	}
	for _, bad := range []string{"", "webp", "jpg", "PNG"} {
		if _, ok := ParseOutputFormat(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
	if OutputPNG.MIMEType() != "image/png" || OutputJPEG.MIMEType() != "image/jpeg" {
		t.Fatalf("mime mapping broken")
	}
}
