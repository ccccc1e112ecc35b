package simplehttp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMimeTableGet(t *testing.T) {
	m := NewMimeTable()

	tests := []struct {
		path string
		want string
	}{
		{"/", "text/html"},
		{"/images/", "text/html"},
		{"/a_web_page.html", "text/html"},
		{"/images/sample_1.png", "image/png"},
		{"/no_extension", UnknownType},
		// Existence is never consulted.
		{"/a_page_that_doesnt_exist.html", "text/html"},
	}

	for _, tt := range tests {
		if got := m.Get(tt.path); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMimeTableOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mime.yaml")
	overrides := "md: text/markdown\n\".conf\": text/plain\n"
	if err := os.WriteFile(path, []byte(overrides), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	m := NewMimeTable()
	if err := m.LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	if got := m.Get("/README.md"); got != "text/markdown" {
		t.Errorf("expected override text/markdown, got %q", got)
	}
	if got := m.Get("/app.conf"); got != "text/plain" {
		t.Errorf("expected override text/plain, got %q", got)
	}
	// The built-in table still answers for everything else.
	if got := m.Get("/img.png"); got != "image/png" {
		t.Errorf("expected image/png, got %q", got)
	}
}

func TestMimeTableOverridesMissingFile(t *testing.T) {
	m := NewMimeTable()
	if err := m.LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing overrides file")
	}
}
