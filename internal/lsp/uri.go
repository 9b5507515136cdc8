package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
)

// UriToPath maps a file:// URI to a local path. Other strings are returned
// unchanged.
func UriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return filepath.FromSlash(u.Path)
}
