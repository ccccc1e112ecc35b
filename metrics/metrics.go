package metrics

import (
	"sync"
)

// Metrics tracks connection counters for the life of the process
type Metrics struct {
	mu sync.RWMutex

	accepted int64
	served   int64
	notFound int64
	dropped  int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementAccepted counts an accepted connection
func (m *Metrics) IncrementAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accepted++
}

// IncrementServed counts a 200 response
func (m *Metrics) IncrementServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.served++
}

// IncrementNotFound counts a 404 response
func (m *Metrics) IncrementNotFound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notFound++
}

// IncrementDropped counts a connection closed without a response
func (m *Metrics) IncrementDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped++
}

// GetSnapshot returns a snapshot of all counters
func (m *Metrics) GetSnapshot() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]int64{
		"accepted_connections": m.accepted,
		"served_ok":            m.served,
		"not_found":            m.notFound,
		"dropped_connections":  m.dropped,
	}
}
