// ABOUTME: Unix FileSource polls the terminal fd with poll(2) via golang.org/x/sys/unix.
// ABOUTME: NotifyResize delivers SIGWINCH on a channel checked by Reader on every wake.

//go:build unix

package input

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// FileSource reads raw bytes from a terminal file descriptor.
type FileSource struct {
	fd int
}

// NewFileSource returns a Source over f, normally os.Stdin in raw mode.
func NewFileSource(f *os.File) (*FileSource, error) {
	return &FileSource{fd: int(f.Fd())}, nil
}

// Poll waits up to timeout for the fd to become readable. A signal
// interrupting the wait (EINTR, e.g. SIGWINCH) reports not ready so the
// caller gets back to its own checks immediately.
func (s *FileSource) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, pollMillis(timeout))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
}

// pollMillis converts timeout to poll(2) milliseconds, rounding up and never
// below 1 so that a sub-millisecond interval still blocks instead of spinning.
func pollMillis(timeout time.Duration) int {
	ms := (timeout + time.Millisecond - 1) / time.Millisecond
	return int(max(ms, 1))
}

// Read reads available bytes. A zero-length read is end of input.
func (s *FileSource) Read(p []byte) (int, error) {
	n, err := unix.Read(s.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// NotifyResize subscribes to SIGWINCH. Call stop to unsubscribe.
func NotifyResize() (ch <-chan os.Signal, stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	return sigCh, func() { signal.Stop(sigCh) }
}
