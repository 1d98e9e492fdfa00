package power

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/AndroidPlusProject/PowerHAL/internal/config"
	"github.com/AndroidPlusProject/PowerHAL/internal/sysfs"
)

type write struct {
	Path  string
	Value string
}

// fakeFS is an in-memory sysfs. Writes are readable back, like
// scaling_max_freq on a real kernel.
type fakeFS struct {
	mu       sync.Mutex
	files    map[string]string
	readErr  map[string]error
	openErr  map[string]error
	failing  map[string]bool //paths whose writes fail
	handles  []sysfs.Handle //returned by OpenWriter before fresh fakes
	writes   []write
	pulses   []write
	reads    int
	opens    []string
	closedFd int
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:   make(map[string]string),
		readErr: make(map[string]error),
		openErr: make(map[string]error),
		failing: make(map[string]bool),
	}
}

func (f *fakeFS) Read(path string, maxBytes int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if err := f.readErr[path]; err != nil {
		return nil, err
	}
	data, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	if len(data) > maxBytes-1 {
		data = data[:maxBytes-1]
	}
	return []byte(data), nil
}

func (f *fakeFS) Write(path, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing[path] {
		return false
	}
	f.writes = append(f.writes, write{path, value})
	f.files[path] = value
	return true
}

func (f *fakeFS) OpenWriter(path string) (sysfs.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens = append(f.opens, path)
	if err := f.openErr[path]; err != nil {
		return nil, err
	}
	if len(f.handles) > 0 {
		h := f.handles[0]
		f.handles = f.handles[1:]
		return h, nil
	}
	return &fakeHandle{fs: f, path: path}, nil
}

func (f *fakeFS) setGovernor(governor string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[config.Default().Paths.ScalingGovernor] = governor + "\n"
}

func (f *fakeFS) resetWrites() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = nil
	f.pulses = nil
}

type fakeHandle struct {
	fs     *fakeFS
	path   string
	closed bool
}

func (h *fakeHandle) WriteString(s string) error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()
	if h.closed {
		return os.ErrClosed
	}
	h.fs.pulses = append(h.fs.pulses, write{h.path, s})
	return nil
}

func (h *fakeHandle) Close() error {
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()
	h.closed = true
	h.fs.closedFd++
	return nil
}

type mockHandle struct {
	mock.Mock
}

func (m *mockHandle) WriteString(s string) error {
	return m.Called(s).Error(0)
}

func (m *mockHandle) Close() error {
	return m.Called().Error(0)
}

var errBrokenPipe = errors.New("broken pipe")

func newTestCoordinator(t *testing.T, governor string) (*Coordinator, *fakeFS) {
	t.Helper()
	fs := newFakeFS()
	if governor != "" {
		fs.setGovernor(governor)
	}
	fs.files[config.Default().Paths.ScalingMaxFreq] = "1008000\n"
	c := New(fs, config.Default(), nil)
	t.Cleanup(c.Close)
	return c, fs
}

func (c *Coordinator) acquire() (sysfs.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquireLocked()
}

func (c *Coordinator) snapshot() (open bool, warned bool, governor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.boost != nil, c.warned, c.governor
}
