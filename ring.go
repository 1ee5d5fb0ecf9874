package vouch

import "sync"

// errorRing retains the most recent errors for Pipeline history.
// A nil ring is valid and retains nothing.
type errorRing struct {
	mu   sync.Mutex
	buf  []error
	next int
	full bool
}

// newErrorRing creates a ring retaining up to size errors.
// Size 0 or below disables retention.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{buf: make([]error, size)}
}

// push records an error, evicting the oldest when full.
func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf[r.next] = err
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// all returns the retained errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	count, start := r.next, 0
	if r.full {
		count, start = len(r.buf), r.next
	}
	if count == 0 {
		return nil
	}

	out := make([]error, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}
