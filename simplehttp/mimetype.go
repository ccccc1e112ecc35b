package simplehttp

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownType is returned for extensions the table does not know. The
// original server rendered its lookup miss as the literal text "None";
// kept for compatibility with clients that expect it.
const UnknownType = "None"

// MimeTable infers content-type labels from request paths. Inference is
// a pure function of the path string; whether the file exists is never
// consulted.
type MimeTable struct {
	overrides map[string]string
}

func NewMimeTable() *MimeTable {
	return &MimeTable{}
}

// LoadOverrides reads extension-to-type pairs from a YAML file, e.g.
//
//	md: text/markdown
//	.conf: text/plain
//
// Keys may carry the leading dot or not. Overrides win over the
// built-in table.
func (m *MimeTable) LoadOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mime overrides: %w", err)
	}
	table := map[string]string{}
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return fmt.Errorf("parse mime overrides %s: %w", path, err)
	}
	m.overrides = make(map[string]string, len(table))
	for ext, typ := range table {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m.overrides[ext] = typ
	}
	return nil
}

// Get returns the content-type label for a path. A path ending in "/"
// names a directory listing and is always text/html; everything else
// goes by extension.
func (m *MimeTable) Get(path string) string {
	if strings.HasSuffix(path, "/") {
		return "text/html"
	}
	ext := filepath.Ext(path)
	if t, ok := m.overrides[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return UnknownType
	}
	// The built-in table appends charset parameters; labels here are
	// bare types.
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
