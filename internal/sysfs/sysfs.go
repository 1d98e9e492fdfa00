// Package sysfs reads and writes kernel control files. Failures are logged
// here with the path and OS error so callers can treat tuning writes as best
// effort.
package sysfs

import (
	"errors"
	"io"
	"os"

	"github.com/AndroidPlusProject/PowerHAL/internal/logging"
)

var ErrShortWrite = errors.New("short write")

// FS is the control-file surface used by the power HAL.
type FS interface {
	// Read returns at most maxBytes-1 bytes from path.
	Read(path string, maxBytes int) ([]byte, error)
	// Write stores value in path and reports whether it was stored. Errors
	// are logged here, callers only count.
	Write(path, value string) bool
	// OpenWriter opens path for repeated writes.
	OpenWriter(path string) (Handle, error)
}

// Handle is a long-lived writable control file.
type Handle interface {
	WriteString(s string) error
	Close() error
}

// Accessor is the FS backed by the real filesystem.
type Accessor struct{}

var _ FS = Accessor{}

func (Accessor) Read(path string, maxBytes int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		logging.Error("Error opening %s: %v", path, err)
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, max(maxBytes-1, 0))
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		logging.Error("Error reading %s: %v", path, err)
		return nil, err
	}
	return buf[:n], nil
}

func (Accessor) Write(path, value string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		logging.Error("Error opening %s: %v", path, err)
		return false
	}
	defer f.Close()

	n, err := f.WriteString(value)
	if err != nil {
		logging.Error("Error writing to %s: %v", path, err)
		return false
	}
	if n < len(value) {
		logging.Error("Error writing to %s: %v (%d of %d bytes)", path, ErrShortWrite, n, len(value))
		return false
	}
	logging.Verbose("Wrote '%s' > %s", value, path)
	return true
}

func (Accessor) OpenWriter(path string) (Handle, error) {
	return openFd(path)
}

// Exists reports whether a control file is present.
func Exists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}
