package predict

import "github.com/sasha-s/go-deadlock"

// Locked wraps a Predictor for hosts that query it from several goroutines.
type Locked struct {
	mu deadlock.Mutex
	p  *Predictor
}

// NewLocked ...
func NewLocked(p *Predictor) *Locked {
	return &Locked{p: p}
}

// Predict ...
func (l *Locked) Predict(q Query) Landing {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Predict(q)
}

// Reset ...
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Reset()
}

// Stats does not take the lock; the counters are atomic.
func (l *Locked) Stats() Stats {
	return l.p.Stats()
}
