package simplehttp

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotFoundBody is the fixed body of every 404 response.
const NotFoundBody = "Couldn't find the file you requested."

// Response is one framed exchange result: built once, sent once,
// discarded.
type Response struct {
	Code        int
	Reason      string
	ContentType string
	Body        []byte
}

// NewOKResponse frames a 200 with the given body and type.
func NewOKResponse(body []byte, contentType string) *Response {
	return &Response{Code: 200, Reason: "OK", ContentType: contentType, Body: body}
}

// NewNotFoundResponse frames the one synthesized error response the
// protocol has.
func NewNotFoundResponse() *Response {
	return &Response{Code: 404, Reason: "NOT FOUND", ContentType: "text/plain", Body: []byte(NotFoundBody)}
}

// Bytes lays the response out as the status line, a single
// Content-Type header, a blank line, then the body, CRLF between each.
// No Content-Length is written; closing the connection delimits the
// body.
func (r *Response) Bytes() []byte {
	head := fmt.Sprintf("HTTP/1.1 %d %s\r\nContent-Type: %s\r\n\r\n", r.Code, r.Reason, r.ContentType)
	return append([]byte(head), r.Body...)
}

// ParseResponse is the inverse of Bytes. It understands only this
// server's minimal framing: the body is everything past the first
// header terminator.
func ParseResponse(raw []byte) (*Response, error) {
	head, body, ok := bytes.Cut(raw, []byte("\r\n\r\n"))
	if !ok {
		return nil, errors.New("response: missing header terminator")
	}

	lines := strings.Split(string(head), "\r\n")
	parts := strings.SplitN(lines[0], " ", 3)
	if len(parts) != 3 || parts[0] != "HTTP/1.1" {
		return nil, fmt.Errorf("response: bad status line %q", lines[0])
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("response: bad status code %q", parts[1])
	}

	resp := &Response{Code: code, Reason: parts[2], Body: body}
	for _, line := range lines[1:] {
		if v, found := strings.CutPrefix(line, "Content-Type: "); found {
			resp.ContentType = v
		}
	}
	return resp, nil
}
