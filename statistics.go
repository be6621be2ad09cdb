package ltimer

// Statistics contains cumulative wheel counters.
type Statistics struct {
	inserted  int64
	expired   int64
	cascades  int64
	relocated int64
	pending   int
	tick      uint64
}

// Inserted returns the total number of timers inserted.
func (s Statistics) Inserted() int64 {
	return s.inserted
}

// Expired returns the total number of timers returned by Advance.
func (s Statistics) Expired() int64 {
	return s.expired
}

// Cascades returns how many non-empty buckets were redistributed into finer levels.
func (s Statistics) Cascades() int64 {
	return s.cascades
}

// Relocated returns the total number of entries moved by cascading.
func (s Statistics) Relocated() int64 {
	return s.relocated
}

// Pending returns the number of timers still waiting when the snapshot was taken.
func (s Statistics) Pending() int {
	return s.pending
}

// Tick returns the tick counter when the snapshot was taken.
func (s Statistics) Tick() uint64 {
	return s.tick
}
