// Package fetch resolves .obo input sources: local file paths or http(s)
// URLs, both exposed as a plain line stream.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"obotab/internal/ports"
)

// SourceError reports an input path that is neither a readable local file
// nor a fetchable URL.
type SourceError struct {
	Path   string
	Reason string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot open source %s: %s", e.Path, e.Reason)
}

// Resolver implements ports.SourceResolver for files and URLs.
type Resolver struct {
	client *http.Client
}

// Ensure Resolver implements SourceResolver
var _ ports.SourceResolver = (*Resolver)(nil)

// NewResolver creates a resolver with a default HTTP client.
func NewResolver() *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Open returns a readable stream over the source. URLs are fetched with a
// single GET; retry policy is the caller's concern. Local paths must name
// an existing regular file.
func (r *Resolver) Open(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := r.client.Get(path)
		if err != nil {
			return nil, &SourceError{Path: path, Reason: err.Error()}
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &SourceError{Path: path, Reason: fmt.Sprintf("unexpected status %s", resp.Status)}
		}
		return resp.Body, nil
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &SourceError{Path: path, Reason: "file not found"}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Reason: err.Error()}
	}
	return f, nil
}
