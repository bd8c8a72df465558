package easel

import (
	"strings"
	"testing"
)

// stubHost is a minimal CanvasHost for registry tests.
type stubHost struct {
	width, height int
}

func (h *stubHost) BeginStroke(x, y, pressure float32)    {}
func (h *stubHost) AddStrokePoint(x, y, pressure float32) {}
func (h *stubHost) EndStroke()                            {}
func (h *stubHost) CaptureSnapshot() *CanvasSnapshot {
	return NewCanvasSnapshot(make([]uint8, h.width*h.height*4), h.width, h.height)
}
func (h *stubHost) RestoreSnapshot(snap *CanvasSnapshot) {}
func (h *stubHost) ClearCanvas()                         {}
func (h *stubHost) SetBrush(settings BrushSettings)      {}
func (h *stubHost) SetRandomSeed(seed uint32)            {}

func newStubHost(w, hgt int) CanvasHost { return &stubHost{width: w, height: hgt} }

func TestRegisterAndNewHost(t *testing.T) {
	RegisterHost("stub", newStubHost)
	t.Cleanup(func() { UnregisterHost("stub") })

	h, err := NewHost("stub", 32, 16)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	snap := h.CaptureSnapshot()
	if snap.Width() != 32 || snap.Height() != 16 {
		t.Errorf("factory got wrong dimensions: %dx%d", snap.Width(), snap.Height())
	}
	if !IsHostRegistered("stub") {
		t.Error("IsHostRegistered = false")
	}
}

func TestNewHostUnknown(t *testing.T) {
	_, err := NewHost("no-such-host", 1, 1)
	if err == nil {
		t.Fatal("NewHost succeeded for unregistered name")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error %q missing import hint", err)
	}
}

func TestRegisterHostDuplicatePanics(t *testing.T) {
	RegisterHost("dup", newStubHost)
	t.Cleanup(func() { UnregisterHost("dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterHost did not panic")
		}
	}()
	RegisterHost("dup", newStubHost)
}

func TestRegisterHostNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil factory RegisterHost did not panic")
		}
	}()
	RegisterHost("nil-factory", nil)
}

func TestHostsSorted(t *testing.T) {
	RegisterHost("zz-stub", newStubHost)
	RegisterHost("aa-stub", newStubHost)
	t.Cleanup(func() {
		UnregisterHost("zz-stub")
		UnregisterHost("aa-stub")
	})

	names := Hosts()
	last := ""
	for _, n := range names {
		if n < last {
			t.Fatalf("Hosts() not sorted: %v", names)
		}
		last = n
	}
}

func TestMustHostPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHost did not panic for unregistered name")
		}
	}()
	MustHost("no-such-host", 1, 1)
}
