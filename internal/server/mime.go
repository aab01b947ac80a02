package server

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

// MIMETable maps file extensions to content types. Explicit overrides win
// over the platform table. It is read-only after construction.
type MIMETable struct {
	overrides map[string]string
}

// NewMIMETable copies overrides into a new table. Keys are matched
// case-insensitively and must include the leading dot.
func NewMIMETable(overrides map[string]string) *MIMETable {
	t := &MIMETable{overrides: make(map[string]string, len(overrides))}
	for ext, typ := range overrides {
		t.overrides[strings.ToLower(ext)] = typ
	}
	return t
}

// TypeByExtension returns the content type for ext, or "" when neither the
// overrides nor the platform table know it.
func (t *MIMETable) TypeByExtension(ext string) string {
	if ext == "" {
		return ""
	}
	if typ, ok := t.overrides[strings.ToLower(ext)]; ok {
		return typ
	}
	return mime.TypeByExtension(ext)
}

// contentTypeHandler presets Content-Type from the table so the file server
// does not fall back to the process-wide mime registry. The file server keeps
// a preset header; error pages and directory listings replace it.
func contentTypeHandler(table *MIMETable, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; p != "" && !strings.HasSuffix(p, "/") {
			if typ := table.TypeByExtension(path.Ext(p)); typ != "" {
				w.Header().Set("Content-Type", typ)
			}
		}
		next.ServeHTTP(w, r)
	})
}
