package mathbird

import (
	"github.com/vovakirdan/mathbird/internal/config"
)

// faultTracker counts step-boundary faults inside a sliding tick window. A
// run of faults past the soft limit asks for a full reset; past the hard
// limit the game is forced over to stop a cascade. The tick clock it is fed
// must be monotonic across resets, otherwise the hard limit could never
// trigger.
type faultTracker struct {
	window uint64
	soft   int
	hard   int
	ticks  []uint64
}

func newFaultTracker(cfg config.MathbirdRecovery) *faultTracker {
	return &faultTracker{
		window: uint64(cfg.WindowTicks), //#nosec G115 -- normalized to positive
		soft:   cfg.SoftFaultLimit,
		hard:   cfg.HardFaultLimit,
	}
}

// record registers a fault at the given tick and returns how many faults the
// window now holds.
func (t *faultTracker) record(now uint64) int {
	t.prune(now)
	t.ticks = append(t.ticks, now)
	return len(t.ticks)
}

// prune drops faults that have slid out of the window.
func (t *faultTracker) prune(now uint64) {
	cutoff := uint64(0)
	if now > t.window {
		cutoff = now - t.window
	}
	keep := t.ticks[:0]
	for _, tick := range t.ticks {
		if tick >= cutoff {
			keep = append(keep, tick)
		}
	}
	t.ticks = keep
}

// reset forgets all recorded faults.
func (t *faultTracker) reset() {
	t.ticks = t.ticks[:0]
}
