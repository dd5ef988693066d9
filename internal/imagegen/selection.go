package imagegen

import (
	"strings"

	"kuugen/internal/catalog"
)

// OutputFormat is the requested encoding of the generated image.
type OutputFormat string

const (
	OutputPNG  OutputFormat = "png"
	OutputJPEG OutputFormat = "jpeg"
)

// ParseOutputFormat reports whether the value names a supported format.
func ParseOutputFormat(v string) (OutputFormat, bool) {
	switch OutputFormat(v) {
	case OutputPNG, OutputJPEG:
		return OutputFormat(v), true
	}
	return "", false
}

// MIMEType returns the mime type matching the requested format.
func (f OutputFormat) MIMEType() string {
	if f == OutputJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Selection captures the user's choices for one generation attempt.
// CustomCaption wins over CaptionID once trimmed to non-empty.
type Selection struct {
	CaptionID     string
	CustomCaption string
	StyleIDs      []string
	PlacementID   string
	OutputFormat  OutputFormat

	// Advisory source dimensions, used only when the generation API omits
	// sizing information in its response.
	OriginalWidth  int
	OriginalHeight int
}

// ValidateSelection checks that a caption (preset or custom), at least one
// style and a placement are all present and resolve against the catalogs.
// It never errors; callers treat false as "submission incomplete".
//
// A non-empty trimmed custom caption satisfies the caption requirement on
// its own, so CaptionID resolution is skipped entirely in that case.
func ValidateSelection(captionID, customCaption string, styleIDs []string, placementID string, cats *catalog.Catalogs) bool {
	custom := strings.TrimSpace(customCaption)
	if captionID == "" && custom == "" {
		return false
	}
	if len(styleIDs) == 0 || placementID == "" {
		return false
	}
	if custom == "" {
		if _, ok := cats.CaptionByID(captionID); !ok {
			return false
		}
	}
	for _, id := range styleIDs {
		if _, ok := cats.StyleByID(id); !ok {
			return false
		}
	}
	if _, ok := cats.PlacementByID(placementID); !ok {
		return false
	}
	return true
}

// Complete re-evaluates completeness after dropping ids that no longer
// resolve. A selection referencing a since-changed catalog is treated as
// merely incomplete, never as an error.
func (s Selection) Complete(cats *catalog.Catalogs) bool {
	captionID := s.CaptionID
	if captionID != "" {
		if _, ok := cats.CaptionByID(captionID); !ok {
			captionID = ""
		}
	}
	styleIDs := make([]string, 0, len(s.StyleIDs))
	for _, id := range s.StyleIDs {
		if _, ok := cats.StyleByID(id); ok {
			styleIDs = append(styleIDs, id)
		}
	}
	placementID := s.PlacementID
	if placementID != "" {
		if _, ok := cats.PlacementByID(placementID); !ok {
			placementID = ""
		}
	}
	return ValidateSelection(captionID, s.CustomCaption, styleIDs, placementID, cats)
}

// CaptionText resolves the exact text to render: the trimmed custom caption
// when present, else the preset's text. Empty means no usable caption.
func (s Selection) CaptionText(cats *catalog.Catalogs) string {
	if custom := strings.TrimSpace(s.CustomCaption); custom != "" {
		return custom
	}
	if cap, ok := cats.CaptionByID(s.CaptionID); ok {
		return cap.Text
	}
	return ""
}

// SplitStyleIDs turns the comma-joined wire form into a clean id list.
func SplitStyleIDs(joined string) []string {
	if joined == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(joined, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
