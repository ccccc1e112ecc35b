package metrics

import (
	"sync"
	"testing"
)

func TestMetrics_IncrementAccepted(t *testing.T) {
	m := NewMetrics()
	m.IncrementAccepted()

	snapshot := m.GetSnapshot()
	if snapshot["accepted_connections"] != 1 {
		t.Errorf("expected accepted_connections 1, got %d", snapshot["accepted_connections"])
	}
}

func TestMetrics_IncrementServed(t *testing.T) {
	m := NewMetrics()
	m.IncrementServed()

	snapshot := m.GetSnapshot()
	if snapshot["served_ok"] != 1 {
		t.Errorf("expected served_ok 1, got %d", snapshot["served_ok"])
	}
}

func TestMetrics_IncrementNotFound(t *testing.T) {
	m := NewMetrics()
	m.IncrementNotFound()

	snapshot := m.GetSnapshot()
	if snapshot["not_found"] != 1 {
		t.Errorf("expected not_found 1, got %d", snapshot["not_found"])
	}
}

func TestMetrics_IncrementDropped(t *testing.T) {
	m := NewMetrics()
	m.IncrementDropped()

	snapshot := m.GetSnapshot()
	if snapshot["dropped_connections"] != 1 {
		t.Errorf("expected dropped_connections 1, got %d", snapshot["dropped_connections"])
	}
}

func TestMetrics_ConcurrentAccess(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrementAccepted()
			m.IncrementServed()
			m.IncrementNotFound()
			m.IncrementDropped()
		}()
	}

	wg.Wait()

	snapshot := m.GetSnapshot()
	for _, name := range []string{"accepted_connections", "served_ok", "not_found", "dropped_connections"} {
		if snapshot[name] != 100 {
			t.Errorf("expected %s 100, got %d", name, snapshot[name])
		}
	}
}
