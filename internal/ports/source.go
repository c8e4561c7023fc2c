package ports

import "io"

// SourceResolver opens an .obo source for line-by-line reading. A source
// is either a local file path or an http(s) URL; anything else fails with
// a SourceError from the implementing adapter.
type SourceResolver interface {
	Open(path string) (io.ReadCloser, error)
}
