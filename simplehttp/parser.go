// Package simplehttp implements the request/response pipeline: extract
// a path from raw request text, resolve it to content under a document
// root, infer a content type, and frame a minimal HTTP/1.1 response.
package simplehttp

import (
	"fmt"
	"strings"
)

// GetPath extracts the request path from raw request text: the second
// whitespace-delimited token, per the METHOD PATH VERSION first line.
// The path is returned exactly as it appears on the wire; no
// percent-decoding, no query stripping.
func GetPath(request string) (string, error) {
	fields := strings.Fields(request)
	if len(fields) < 2 {
		line, _, _ := strings.Cut(request, "\r\n")
		return "", fmt.Errorf("malformed request line %q", line)
	}
	return fields[1], nil
}
