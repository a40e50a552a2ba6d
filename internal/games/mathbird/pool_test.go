package mathbird

import "testing"

func TestPoolReusesShells(t *testing.T) {
	p := NewPool(4)

	o := &Obstacle{ID: 3, X: -80, Width: 70, Passed: true}
	p.Put(o)

	got := p.Get()
	if got != o {
		t.Error("pool should hand back the retired shell")
	}
	if p.Len() != 0 {
		t.Errorf("pool should be empty after Get, len %d", p.Len())
	}

	if fresh := p.Get(); fresh == o {
		t.Error("empty pool must allocate a fresh shell")
	}
}

func TestPoolStripsFlightState(t *testing.T) {
	p := NewPool(4)

	o := answerObstacle(9, -80, 300, 150)
	o.Passed = true
	o.Answer.Answered = true

	p.Put(o)

	if o.Passed {
		t.Error("retirement should clear the passed flag")
	}
	if o.Answer != nil {
		t.Error("retirement should strip the answer payload; question context is never reused")
	}
}

func TestPoolDropsOldestBeyondCapacity(t *testing.T) {
	p := NewPool(2)

	a := &Obstacle{ID: 1}
	b := &Obstacle{ID: 2}
	c := &Obstacle{ID: 3}
	p.Put(a)
	p.Put(b)
	p.Put(c)

	if p.Len() != 2 {
		t.Fatalf("pool should cap at 2, len %d", p.Len())
	}

	// LIFO: most recent first, the oldest (a) was dropped.
	if got := p.Get(); got != c {
		t.Error("expected most recently retired shell first")
	}
	if got := p.Get(); got != b {
		t.Error("expected second retired shell, the oldest should be gone")
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool(4)
	p.Put(&Obstacle{})
	p.Put(&Obstacle{})

	p.Reset()

	if p.Len() != 0 {
		t.Errorf("reset should empty the pool, len %d", p.Len())
	}
}
