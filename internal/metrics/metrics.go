// Package metrics tracks what the server has done since it started.
package metrics

import (
	"fmt"
	"sync"
	"time"
)

// ServeMetrics counts responses written by the server.
type ServeMetrics struct {
	StartTime time.Time

	mu       sync.Mutex
	requests int
	bytes    int64
	byClass  [6]int // index = status / 100
}

// NewServeMetrics creates a new metrics instance.
func NewServeMetrics() *ServeMetrics {
	return &ServeMetrics{
		StartTime: time.Now(),
	}
}

// Record adds one finished response.
func (m *ServeMetrics) Record(status int, bytes int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests++
	m.bytes += bytes
	if class := status / 100; class >= 1 && class <= 5 {
		m.byClass[class]++
	}
}

// Requests returns the number of responses recorded.
func (m *ServeMetrics) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// BytesWritten returns the total body bytes recorded.
func (m *ServeMetrics) BytesWritten() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bytes
}

// StatusClass returns how many responses fell in the given class (2 for 2xx, ...).
func (m *ServeMetrics) StatusClass(class int) int {
	if class < 1 || class > 5 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byClass[class]
}

// Uptime returns the time since the metrics were created.
func (m *ServeMetrics) Uptime() time.Duration {
	return time.Since(m.StartTime)
}

// String returns a single-line summary.
func (m *ServeMetrics) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fmt.Sprintf("served %d requests (%d bytes) in %v; 2xx=%d 3xx=%d 4xx=%d 5xx=%d",
		m.requests,
		m.bytes,
		time.Since(m.StartTime).Round(time.Second),
		m.byClass[2],
		m.byClass[3],
		m.byClass[4],
		m.byClass[5],
	)
}

// Print outputs the summary to stdout.
func (m *ServeMetrics) Print() {
	fmt.Println(m.String())
}
