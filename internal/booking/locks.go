package booking

import "sync"

// roomLocks hands out one mutex per room ID.  State-changing operations
// hold the room's lock across conflict check and write, so two concurrent
// create calls for overlapping windows on the same room serialize instead
// of both passing the conflict check.  Locks are never removed; the
// number of rooms is small and bounded.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uint64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uint64]*sync.Mutex)}
}

func (r *roomLocks) lock(roomID uint64) *sync.Mutex {
	r.mu.Lock()
	m, ok := r.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[roomID] = m
	}
	r.mu.Unlock()
	m.Lock()
	return m
}
