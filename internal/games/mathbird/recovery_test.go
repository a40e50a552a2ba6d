package mathbird

import (
	"testing"

	"github.com/vovakirdan/mathbird/internal/config"
)

func TestFaultTrackerAccumulates(t *testing.T) {
	tr := newFaultTracker(config.MathbirdRecovery{SoftFaultLimit: 3, HardFaultLimit: 6, WindowTicks: 100})

	if n := tr.record(10); n != 1 {
		t.Errorf("first fault count = %d, want 1", n)
	}
	if n := tr.record(20); n != 2 {
		t.Errorf("second fault count = %d, want 2", n)
	}
	if n := tr.record(30); n != 3 {
		t.Errorf("third fault count = %d, want 3", n)
	}
}

func TestFaultTrackerWindowExpiry(t *testing.T) {
	tr := newFaultTracker(config.MathbirdRecovery{SoftFaultLimit: 3, HardFaultLimit: 6, WindowTicks: 100})
	tr.record(10)
	tr.record(20)
	tr.record(30)

	// Ticks 10..30 are older than 200-100 and must slide out.
	if n := tr.record(200); n != 1 {
		t.Errorf("count after expiry = %d, want 1", n)
	}
}

func TestFaultTrackerBoundaryKept(t *testing.T) {
	tr := newFaultTracker(config.MathbirdRecovery{SoftFaultLimit: 3, HardFaultLimit: 6, WindowTicks: 100})
	tr.record(100)

	// now-window == 100 sits exactly on the cutoff and still counts.
	if n := tr.record(200); n != 2 {
		t.Errorf("count at window boundary = %d, want 2", n)
	}
}

func TestFaultTrackerReset(t *testing.T) {
	tr := newFaultTracker(config.MathbirdRecovery{SoftFaultLimit: 3, HardFaultLimit: 6, WindowTicks: 100})
	tr.record(10)
	tr.record(11)
	tr.reset()

	if n := tr.record(12); n != 1 {
		t.Errorf("count after reset = %d, want 1", n)
	}
}
