package controller

import "sync"

// base carries the state shared by every controller: the mutex, the
// loading/error pair, and the fetch sequence counter.
//
// The sequence counter implements latest-wins: every fetch takes the next
// number before releasing the lock, and only the fetch holding the highest
// number may write its result back. A slow response that has been
// superseded by a newer fetch is dropped, so the view can never show the
// answer to a question the operator is no longer asking.
type base struct {
	mu      sync.Mutex
	loading bool
	errMsg  string
	seq     uint64
}

// nextSeq registers a new fetch and returns its sequence number.
// Callers must hold mu.
func (b *base) nextSeq() uint64 {
	b.seq++
	return b.seq
}

// latest reports whether seq is still the most recent fetch.
// Callers must hold mu.
func (b *base) latest(seq uint64) bool {
	return seq == b.seq
}
