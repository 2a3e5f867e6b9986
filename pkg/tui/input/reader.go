// ABOUTME: Reader exposes terminal input as a blocking "next event" call built on a bounded poll.
// ABOUTME: Each wake interval checks cancellation and resize notifications before polling the source.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultWakeInterval bounds every wait inside Next.
const DefaultWakeInterval = 16 * time.Millisecond

// ErrUnsupported is returned by NewFileSource on platforms without poll(2).
var ErrUnsupported = errors.New("input polling not supported on this platform")

// Source is a pollable byte stream, normally the terminal's stdin.
type Source interface {
	// Poll waits up to timeout for input and reports whether Read
	// will return without blocking.
	Poll(timeout time.Duration) (bool, error)
	Read(p []byte) (int, error)
}

// SizeFunc reports the current terminal dimensions.
type SizeFunc func() (width, height int, err error)

// Reader turns a Source and resize notifications into a strictly ordered
// stream of Events. It is not safe for concurrent use; one goroutine owns
// the terminal and calls Next.
type Reader struct {
	src      Source
	dec      *Decoder
	interval time.Duration
	resize   <-chan os.Signal
	size     SizeFunc

	queue []Event
	buf   []byte
	err   error
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithWakeInterval overrides the bounded poll interval.
func WithWakeInterval(d time.Duration) ReaderOption {
	return func(r *Reader) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithResize makes Next emit a ResizeEvent, sized by size, whenever a
// value arrives on ch (typically SIGWINCH from NotifyResize).
func WithResize(ch <-chan os.Signal, size SizeFunc) ReaderOption {
	return func(r *Reader) {
		r.resize = ch
		r.size = size
	}
}

// NewReader returns a Reader polling src.
func NewReader(src Source, opts ...ReaderOption) *Reader {
	r := &Reader{
		src:      src,
		dec:      NewDecoder(),
		interval: DefaultWakeInterval,
		buf:      make([]byte, readBufSize),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next blocks until one event is available and returns it. Events are
// returned in arrival order, one per call. Next wakes at least once per
// wake interval to observe ctx and resize notifications; it returns
// ctx.Err() once ctx is done and io.EOF after the source is exhausted and
// all buffered events have been delivered.
func (r *Reader) Next(ctx context.Context) (Event, error) {
	for {
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue = r.queue[1:]
			return ev, nil
		}
		if r.err != nil {
			return nil, r.err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if ev, ok := r.pollResize(); ok {
			return ev, nil
		}

		ready, err := r.src.Poll(r.interval)
		if err != nil {
			return nil, fmt.Errorf("polling input: %w", err)
		}
		if !ready {
			// Idle for a full interval: a buffered lone ESC is a real Escape.
			if r.dec.Pending() {
				r.queue = append(r.queue, r.dec.Flush()...)
			}
			continue
		}

		n, err := r.src.Read(r.buf)
		if n > 0 {
			r.queue = append(r.queue, r.dec.Feed(r.buf[:n])...)
		}
		if err != nil {
			r.queue = append(r.queue, r.dec.Flush()...)
			if errors.Is(err, io.EOF) {
				r.err = io.EOF
			} else {
				r.err = fmt.Errorf("reading input: %w", err)
			}
		}
	}
}

// pollResize turns one pending resize notification into a ResizeEvent
// without blocking.
func (r *Reader) pollResize() (Event, bool) {
	if r.resize == nil {
		return nil, false
	}
	select {
	case <-r.resize:
	default:
		return nil, false
	}
	if r.size == nil {
		return nil, false
	}
	w, h, err := r.size()
	if err != nil || w <= 0 || h <= 0 {
		return nil, false
	}
	return ResizeEvent{Width: clampDim(w), Height: clampDim(h)}, true
}

func clampDim(n int) uint16 {
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}
