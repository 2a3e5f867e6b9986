// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, output capture, and failure injection.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"errors"
	"sync"
	"testing"
)

// compile-time check: VirtualTerminal must satisfy Device.
var _ Device = (*VirtualTerminal)(nil)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "standard 80x24", width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		{name: "wide 200x50", width: 200, height: 50, wantWidth: 200, wantHeight: 50},
		{name: "zero dimensions", width: 0, height: 0, wantWidth: 0, wantHeight: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}

	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}

	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestVirtualTerminal_WriteAccumulates(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if _, err := vt.Write([]byte("one")); err != nil {
		t.Fatal(err)
	}
	if _, err := vt.Write([]byte("two")); err != nil {
		t.Fatal(err)
	}

	if got := vt.Output(); got != "onetwo" {
		t.Errorf("Output() = %q, want %q", got, "onetwo")
	}
	if vt.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", vt.Writes())
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_FailureInjection(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	boom := errors.New("boom")

	vt.FailSize(boom)
	if _, _, err := vt.Size(); !errors.Is(err, boom) {
		t.Errorf("Size() error = %v, want %v", err, boom)
	}

	vt.FailEnter(boom)
	if err := vt.EnterRawMode(); !errors.Is(err, boom) {
		t.Errorf("EnterRawMode() error = %v, want %v", err, boom)
	}
	if vt.IsRawMode() || vt.EnterCount() != 0 {
		t.Error("failed EnterRawMode must not change raw mode state")
	}

	vt.FailWrite(boom)
	if _, err := vt.Write([]byte("x")); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want %v", err, boom)
	}
	if vt.Output() != "" || vt.Writes() != 0 {
		t.Error("failed Write must not record output")
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 2)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = vt.Size()
		}()
	}
	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
}

func TestClampSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		want Size
	}{
		{name: "regular", w: 80, h: 24, want: Size{Width: 80, Height: 24}},
		{name: "negative", w: -1, h: -5, want: Size{}},
		{name: "overflow", w: 70000, h: 1, want: Size{Width: 0xFFFF, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := clampSize(tt.w, tt.h); got != tt.want {
				t.Errorf("clampSize(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}
