package simplehttp

import (
	"fmt"
	"sync"

	"github.com/wd-uwGH2020/class-based-server/config"
	"github.com/wd-uwGH2020/class-based-server/simplenet"
)

// Server owns the listening socket and serves accepted connections
// strictly one at a time: each connection is handled through its close
// before the next accept.
type Server struct {
	sock    *simplenet.NetSocket
	handler *Handler
	quit    chan struct{}
	once    sync.Once
}

// NewServer binds a listening socket per cfg. Nothing is accepted
// until Serve is called.
func NewServer(cfg config.Config, handler *Handler) (*Server, error) {
	ip := simplenet.ParseIPv4(cfg.BindAddr)
	if ip == nil {
		return nil, fmt.Errorf("bad bind address %q", cfg.BindAddr)
	}
	sock, err := simplenet.NewNetSocket(ip, cfg.Port)
	if err != nil {
		return nil, err
	}
	return &Server{sock: sock, handler: handler, quit: make(chan struct{})}, nil
}

// Serve accepts connections until Close. It returns nil after Close
// and the accept error otherwise; there is no recovery for a broken
// listening socket.
func (s *Server) Serve() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			select {
			case <-s.quit:
				return nil
			default:
				return fmt.Errorf("accept: %w", err)
			}
		}
		s.handler.Handle(conn)
	}
}

// Close unblocks Serve by closing the listening socket. Safe to call
// more than once.
func (s *Server) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.sock.Close()
	})
}
