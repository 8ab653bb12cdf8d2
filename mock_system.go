package glint

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// mockFd is the file descriptor MockSystem hands out.
const mockFd = 100

// Errors injected by MockSystem failure flags.
var (
	ErrMockOpenFailed      = errors.New("mock open failed")
	ErrMockEnableRawFailed = errors.New("mock enable raw failed")
	ErrMockReadFailed      = errors.New("mock read failed")
	ErrMockWriteFailed     = errors.New("mock write failed")
)

// MockSystem is an in-memory System for tests. It records every
// invocation in a call log, serves reads from a pre-loaded input queue,
// and can cap per-call read size to force fragmentation of multi-byte
// sequences across reads.
//
// The mutex exists purely so tests can inspect the mock while code under
// test is still running; production code never contends on shared state.
type MockSystem struct {
	mu     sync.Mutex
	calls  []string
	input  []byte
	writes []string

	width  int
	height int

	// maxRead caps the number of bytes a single Read returns (0 = no cap).
	maxRead int

	FailOpen      bool
	FailEnableRaw bool
	FailRead      bool
	FailWrite     bool
}

// Ensure MockSystem implements System.
var _ System = (*MockSystem)(nil)

// NewMockSystem creates a mock reporting an 80x24 device.
func NewMockSystem() *MockSystem {
	return &MockSystem{width: 80, height: 24}
}

// WithSize sets the dimensions reported by WindowSize.
func (m *MockSystem) WithSize(width, height int) *MockSystem {
	m.width = width
	m.height = height
	return m
}

// WithMaxRead caps the number of bytes returned per Read call.
func (m *MockSystem) WithMaxRead(n int) *MockSystem {
	m.maxRead = n
	return m
}

// Resize changes the dimensions reported by subsequent WindowSize
// calls, simulating the user resizing the terminal mid-run.
func (m *MockSystem) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = width
	m.height = height
}

// PushInput appends bytes to the synthetic input queue.
func (m *MockSystem) PushInput(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = append(m.input, data...)
}

// Calls returns a snapshot of the call log.
func (m *MockSystem) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Written returns the concatenated payloads of all Write calls.
func (m *MockSystem) Written() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.writes, "")
}

// WriteCount returns the number of Write calls recorded.
func (m *MockSystem) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

// ResetWrites clears the recorded write payloads (the call log is kept).
func (m *MockSystem) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}

func (m *MockSystem) record(call string) {
	m.calls = append(m.calls, call)
}

// Open implements System.
func (m *MockSystem) Open() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("open")
	if m.FailOpen {
		return -1, ErrMockOpenFailed
	}
	return mockFd, nil
}

// Close implements System.
func (m *MockSystem) Close(fd int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("close")
	return nil
}

// EnableRaw implements System. The returned state is empty; the mock has
// no real configuration to capture.
func (m *MockSystem) EnableRaw(fd int) (*TermState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("enable_raw(%d)", fd))
	if m.FailEnableRaw {
		return nil, ErrMockEnableRawFailed
	}
	return &TermState{}, nil
}

// DisableRaw implements System.
func (m *MockSystem) DisableRaw(fd int, prev *TermState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("disable_raw(%d)", fd))
	return nil
}

// WindowSize implements System.
func (m *MockSystem) WindowSize(fd int) (cols, rows int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("window_size(%d)", fd))
	return m.width, m.height, nil
}

// Read implements System, draining the synthetic input queue.
// Returns 0 when the queue is empty.
func (m *MockSystem) Read(fd int, p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("read(%d)", fd))
	if m.FailRead {
		return 0, ErrMockReadFailed
	}
	if len(m.input) == 0 {
		return 0, nil
	}

	n := min(len(p), len(m.input))
	if m.maxRead > 0 {
		n = min(n, m.maxRead)
	}
	copy(p, m.input[:n])
	m.input = m.input[n:]
	return n, nil
}

// Write implements System, recording the payload in the call log.
func (m *MockSystem) Write(fd int, p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(fmt.Sprintf("write(%d, %q)", fd, string(p)))
	if m.FailWrite {
		return 0, ErrMockWriteFailed
	}
	m.writes = append(m.writes, string(p))
	return len(p), nil
}

// Poll implements System. Reports ready whenever the input queue is
// non-empty; the timeout is not simulated.
func (m *MockSystem) Poll(fd int, timeout time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.input) > 0, nil
}
