package services

// Upload is a file received from a multipart request, spooled to a temp file
// by the HTTP layer. The path stays valid for the life of the request.
type Upload struct {
	Path        string
	ContentType string
}

// GameUpload carries everything a full game submission contains.
type GameUpload struct {
	// ID may be supplied to target an existing game namespace; empty means a
	// fresh one is generated.
	ID string

	Archive Upload
	Banner  Upload
	Icon    Upload

	Title       string
	Description string
	Author      string
}

// Warning records a non-fatal failure during best-effort image publication.
// The game itself was still created; the caller decides whether to log, retry,
// or surface degraded status.
type Warning struct {
	Asset  string `json:"asset"`
	Reason string `json:"reason"`
}
