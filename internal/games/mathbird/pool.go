package mathbird

// Pool recycles retired obstacle shells to bound per-spawn allocation. The
// pool is homogeneous: answer payloads are stripped on retirement so question
// context is never reused, only the shell is.
type Pool struct {
	free     []*Obstacle
	capacity int
}

// NewPool creates a pool bounded to the given capacity.
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		free:     make([]*Obstacle, 0, capacity),
		capacity: capacity,
	}
}

// Get returns a recycled shell if one is available, otherwise a fresh one.
// The caller is responsible for positioning the shell and assigning its id.
func (p *Pool) Get() *Obstacle {
	if n := len(p.free); n > 0 {
		o := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return o
	}
	return &Obstacle{}
}

// Put retires an obstacle into the pool. Mutable per-flight state (passed
// flag, answer payload) is cleared. When the pool is over capacity the oldest
// entries are dropped, never the one just retired.
func (p *Pool) Put(o *Obstacle) {
	if o == nil {
		return
	}
	o.Passed = false
	o.Answer = nil

	p.free = append(p.free, o)
	if len(p.free) > p.capacity {
		drop := len(p.free) - p.capacity
		copy(p.free, p.free[drop:])
		for i := p.capacity; i < len(p.free); i++ {
			p.free[i] = nil
		}
		p.free = p.free[:p.capacity]
	}
}

// Len returns the number of pooled shells.
func (p *Pool) Len() int {
	return len(p.free)
}

// Reset discards every pooled shell.
func (p *Pool) Reset() {
	for i := range p.free {
		p.free[i] = nil
	}
	p.free = p.free[:0]
}
