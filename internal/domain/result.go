package domain

// GenerationResult is the success payload returned to the caller after a
// completed pipeline run. ResultLocation is the public URL of the persisted
// output blob.
type GenerationResult struct {
	ResultLocation string `json:"resultLocation"`
	MIMEType       string `json:"mimeType"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}
