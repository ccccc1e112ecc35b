package simplehttp

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ContentResolver maps request paths to response bodies under a fixed
// document root.
type ContentResolver struct {
	root string
}

func NewContentResolver(root string) *ContentResolver {
	return &ContentResolver{root: root}
}

// Get resolves path against the document root. A directory yields a
// hyperlinked listing, a regular file its exact bytes, and anything
// else an error wrapping fs.ErrNotExist.
//
// Resolution is plain string concatenation. ".." segments are not
// rejected, preserving the original server's behavior; run this only
// on content you are willing to expose.
func (c *ContentResolver) Get(path string) ([]byte, error) {
	target := c.root + path

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat %s: %w", target, err)
	}

	if info.IsDir() {
		return c.listing(target)
	}

	body, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	return body, nil
}

// listing renders one "<a href=NAME>NAME<br></a>" line per entry.
// os.ReadDir returns entries sorted by name, so the listing is
// deterministic.
func (c *ContentResolver) listing(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "<a href=%s>%s<br></a>\n", e.Name(), e.Name())
	}
	return []byte(b.String()), nil
}
