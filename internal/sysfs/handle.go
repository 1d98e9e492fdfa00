package sysfs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// fdHandle keeps the descriptor open between writes. Pulse files such as
// boostpulse act on every write, so there is no seek or truncate.
type fdHandle struct {
	path string
	fd   int
}

func openFd(path string) (*fdHandle, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &fdHandle{path: path, fd: fd}, nil
}

func (h *fdHandle) WriteString(s string) error {
	if h.fd < 0 {
		return fmt.Errorf("write %s: %w", h.path, os.ErrClosed)
	}
	var (
		n   int
		err error
	)
	for {
		n, err = unix.Write(h.fd, []byte(s))
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", h.path, err)
	}
	if n < len(s) {
		return fmt.Errorf("write %s: %w", h.path, ErrShortWrite)
	}
	return nil
}

func (h *fdHandle) Close() error {
	if h.fd < 0 {
		return nil
	}
	err := unix.Close(h.fd)
	h.fd = -1
	if err != nil {
		return fmt.Errorf("close %s: %w", h.path, err)
	}
	return nil
}
