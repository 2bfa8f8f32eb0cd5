package hashing

import (
	"sync"
)

// DuplicateStats is a snapshot of a detector's counters.
type DuplicateStats struct {
	Unique     int  // signatures stored
	Duplicates int  // games that matched a stored signature
	Full       bool // capacity reached; new games are checked but not stored
}

// ThreadSafeDuplicateDetector lets several self-play workers share one
// DuplicateDetector.
type ThreadSafeDuplicateDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a shared detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd reports whether sig matches a game already seen, storing it
// otherwise.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(sig)
}

// Stats returns the current counters.
func (d *ThreadSafeDuplicateDetector) Stats() DuplicateStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DuplicateStats{
		Unique:     d.detector.UniqueCount(),
		Duplicates: d.detector.DuplicateCount(),
		Full:       d.detector.IsFull(),
	}
}
