package wizard

import "sync"

// LocalHandle is an optimistic, locally owned preview resource (for example
// an object URL backed by browser memory, or a temp file in a native shell).
// Release frees the underlying resource and is safe to call more than once;
// only the first call runs the releaser.
type LocalHandle struct {
	URI     string
	release func()
	once    sync.Once
}

// NewLocalHandle wraps a local preview URI with its releaser. A nil releaser
// is allowed for previews that need no cleanup.
func NewLocalHandle(uri string, release func()) *LocalHandle {
	return &LocalHandle{URI: uri, release: release}
}

// Release frees the local resource exactly once.
func (h *LocalHandle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}

// Preview is the two-phase image reference the wizard renders: a local
// handle available the moment the user picks a file, and the confirmed
// remote URL once the upload lands. Remote always wins when both are set.
type Preview struct {
	Local  *LocalHandle
	Remote string
}

// URL returns the address a renderer should display, preferring the
// confirmed remote URL over the optimistic local one.
func (p Preview) URL() string {
	if p.Remote != "" {
		return p.Remote
	}
	if p.Local != nil {
		return p.Local.URI
	}
	return ""
}

// Empty reports whether neither phase of the preview is populated.
func (p Preview) Empty() bool {
	return p.Remote == "" && (p.Local == nil || p.Local.URI == "")
}
