package simplehttp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/wd-uwGH2020/class-based-server/accesslog"
	"github.com/wd-uwGH2020/class-based-server/metrics"
)

// headerTerminator is the only signal that enough of the request has
// been read to start processing.
const headerTerminator = "\r\n\r\n"

const readChunkSize = 1024

// Handler drives one connection from first read through close. One
// request, one response, then the connection is closed; nothing is
// shared between connections.
type Handler struct {
	resolver *ContentResolver
	mimes    *MimeTable
	metrics  *metrics.Metrics
	logStore *accesslog.Store // nil when access logging is disabled
}

func NewHandler(resolver *ContentResolver, mimes *MimeTable, m *metrics.Metrics, logStore *accesslog.Store) *Handler {
	return &Handler{resolver: resolver, mimes: mimes, metrics: m, logStore: logStore}
}

// Handle serves exactly one request. The connection is closed on every
// exit path. Faults other than not-found produce no response at all:
// they are logged here and the connection simply goes away.
func (h *Handler) Handle(conn io.ReadWriteCloser) {
	defer conn.Close()

	id := uuid.New().String()
	h.metrics.IncrementAccepted()

	request, err := h.readRequest(conn)
	if err != nil {
		h.metrics.IncrementDropped()
		log.Printf("[%s] read request: %v", id, err)
		return
	}

	path, err := GetPath(request)
	if err != nil {
		h.metrics.IncrementDropped()
		log.Printf("[%s] %v", id, err)
		return
	}

	resp, err := h.respond(path)
	if err != nil {
		h.metrics.IncrementDropped()
		log.Printf("[%s] resolve %s: %v", id, path, err)
		return
	}

	if _, err := conn.Write(resp.Bytes()); err != nil {
		log.Printf("[%s] write response: %v", id, err)
		return
	}
	log.Printf("[%s] %s -> %d %s (%s)", id, path, resp.Code, resp.Reason, humanize.Bytes(uint64(len(resp.Body))))

	h.record(id, path, resp)
}

// readRequest accumulates fixed-size reads until the header terminator
// appears. There is no read timeout; a client that never sends the
// terminator blocks the whole server.
func (h *Handler) readRequest(conn io.Reader) (string, error) {
	var request strings.Builder
	buf := make([]byte, readChunkSize)
	for {
		n, err := conn.Read(buf)
		request.Write(buf[:n])
		if strings.Contains(request.String(), headerTerminator) {
			return request.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("connection ended before headers: %w", err)
		}
	}
}

func (h *Handler) respond(path string) (*Response, error) {
	body, err := h.resolver.Get(path)
	if errors.Is(err, fs.ErrNotExist) {
		h.metrics.IncrementNotFound()
		return NewNotFoundResponse(), nil
	}
	if err != nil {
		return nil, err
	}
	h.metrics.IncrementServed()
	return NewOKResponse(body, h.mimes.Get(path)), nil
}

// record writes the access-log row. Logging failures never affect the
// already-sent response.
func (h *Handler) record(id, path string, resp *Response) {
	if h.logStore == nil {
		return
	}
	if err := h.logStore.Record(id, path, resp.Code, len(resp.Body)); err != nil {
		log.Printf("[%s] access log: %v", id, err)
	}
}
