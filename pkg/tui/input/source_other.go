// ABOUTME: FileSource stand-in for platforms without poll(2); every call reports ErrUnsupported
// ABOUTME: NotifyResize yields no channel, so Reader never emits resize events there

//go:build !unix

package input

import (
	"os"
	"time"
)

// FileSource is unavailable without poll(2).
type FileSource struct{}

// NewFileSource always fails on this platform.
func NewFileSource(*os.File) (*FileSource, error) {
	return nil, ErrUnsupported
}

func (*FileSource) Poll(time.Duration) (bool, error) { return false, ErrUnsupported }
func (*FileSource) Read([]byte) (int, error)         { return 0, ErrUnsupported }

// NotifyResize returns a nil channel; Reader then never reports resizes.
func NotifyResize() (ch <-chan os.Signal, stop func()) {
	return nil, func() {}
}
