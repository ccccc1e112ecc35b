package simplenet

import (
	"fmt"
	"io"
	"syscall"
)

// NetSocket is a TCP socket over a raw file descriptor, used both for
// the listening socket and for accepted connections. It deliberately
// bypasses the net package: blocking I/O, no deadlines.
type NetSocket struct {
	fd int
}

// NewNetSocket opens a listening socket bound to ip:port with address
// reuse enabled.
func NewNetSocket(ip IP, port int) (*NetSocket, error) {
	if len(ip) != IPv4len {
		return nil, fmt.Errorf("bad IP %v", []byte(ip))
	}

	fd, err := syscall.Socket(syscall.AF_INET, syscall.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}
	if err = syscall.SetsockoptInt(fd, syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("setsockopt SO_REUSEADDR: %w", err)
	}

	sa := &syscall.SockaddrInet4{Port: port}
	copy(sa.Addr[:], ip)
	if err = syscall.Bind(fd, sa); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("bind %v:%d: %w", []byte(ip), port, err)
	}
	if err = syscall.Listen(fd, syscall.SOMAXCONN); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("listen: %w", err)
	}
	return &NetSocket{fd: fd}, nil
}

// Accept blocks until an incoming connection arrives and returns the
// connected socket.
func (ns *NetSocket) Accept() (*NetSocket, error) {
	nfd, _, err := syscall.Accept(ns.fd)
	if err != nil {
		return nil, err
	}
	return &NetSocket{fd: nfd}, nil
}

func (ns *NetSocket) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := syscall.Read(ns.fd, p)
	if err != nil {
		return 0, err
	}
	// A zero-byte read on a stream socket means the peer closed.
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (ns *NetSocket) Write(p []byte) (int, error) {
	n, err := syscall.Write(ns.fd, p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (ns *NetSocket) Close() error {
	return syscall.Close(ns.fd)
}
