// Package messages holds every user-facing string behind a stable key so
// error responses stay translatable. Japanese is the product's primary
// locale; English is served to everyone else.
package messages

import "golang.org/x/text/language"

// Message keys. Handlers reference these instead of literal strings so the
// wire contract survives copy edits.
const (
	KeyMissingFields    = "missing_fields"
	KeyInvalidFormat    = "invalid_format"
	KeyInvalidSelection = "invalid_selection"
	KeyInvalidCaption   = "invalid_caption"
	KeyNoValidStyles    = "no_valid_styles"
	KeyInvalidPlacement = "invalid_placement"
	KeyInvalidSource    = "invalid_source"
	KeyFetchFailed      = "fetch_failed"
	KeyGenerationFailed = "generation_failed"
	KeyResultTooLarge   = "too_large"
	KeyUploadBadType    = "upload_bad_type"
	KeyUploadTooLarge   = "upload_too_large"
	KeyUploadFailed     = "upload_failed"
	KeyInternal         = "internal"
)

var catalogJA = map[string]string{
	KeyMissingFields:    "必須項目が不足しています",
	KeyInvalidFormat:    "無効な出力形式です",
	KeyInvalidSelection: "無効な選択肢が含まれています",
	KeyInvalidCaption:   "無効な文言IDが指定されています",
	KeyNoValidStyles:    "有効なスタイルが見つかりません",
	KeyInvalidPlacement: "無効な配置場所IDが指定されています",
	KeyInvalidSource:    "無効な画像URLが指定されています",
	KeyFetchFailed:      "画像の取得に失敗しました。再試行してください。",
	KeyGenerationFailed: "画像生成に失敗しました。しばらくしてから再試行してください。",
	KeyResultTooLarge:   "生成された画像が大きすぎます（上限20MB）",
	KeyUploadBadType:    "無効なファイル形式です。JPEGまたはPNG形式のみアップロードできます。",
	KeyUploadTooLarge:   "ファイルサイズが大きすぎます（上限10MB）",
	KeyUploadFailed:     "アップロード処理に失敗しました",
	KeyInternal:         "予期しないエラーが発生しました。しばらくしてから再試行してください。",
}

var catalogEN = map[string]string{
	KeyMissingFields:    "Required fields are missing",
	KeyInvalidFormat:    "Invalid output format",
	KeyInvalidSelection: "The submission contains invalid selections",
	KeyInvalidCaption:   "Unknown caption id",
	KeyNoValidStyles:    "No valid styles found",
	KeyInvalidPlacement: "Unknown placement id",
	KeyInvalidSource:    "Invalid source image URL",
	KeyFetchFailed:      "Failed to fetch the source image. Please try again.",
	KeyGenerationFailed: "Image generation failed. Please try again later.",
	KeyResultTooLarge:   "The generated image is too large (20MB limit)",
	KeyUploadBadType:    "Invalid file type. Only JPEG and PNG can be uploaded.",
	KeyUploadTooLarge:   "The file is too large (10MB limit)",
	KeyUploadFailed:     "Upload failed",
	KeyInternal:         "An unexpected error occurred. Please try again later.",
}

var matcher = language.NewMatcher([]language.Tag{
	language.Japanese, // default
	language.English,
})

// MatchLocale normalizes an Accept-Language style value onto a supported
// locale ("ja" or "en").
func MatchLocale(requested string) string {
	if requested == "" {
		return "ja"
	}
	tags, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(tags) == 0 {
		return "ja"
	}
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return "en"
	}
	return "ja"
}

// Lookup returns the message for key in the given locale, falling back to
// Japanese, then to the key itself so a missing entry never hides an error.
func Lookup(locale, key string) string {
	if locale == "en" {
		if msg, ok := catalogEN[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogJA[key]; ok {
		return msg
	}
	return key
}
