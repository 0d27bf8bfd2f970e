package game

import "sync"

// roomLocks hands out one mutex per room id so that handler invocations for
// the same room serialize while different rooms proceed independently.
// Entries are tiny and rooms are few, so locks are never reclaimed.
type roomLocks struct {
	locker sync.Mutex
	locks  map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*sync.Mutex)}
}

func (rl *roomLocks) get(roomId string) *sync.Mutex {
	rl.locker.Lock()
	defer rl.locker.Unlock()

	lock, ok := rl.locks[roomId]
	if !ok {
		lock = &sync.Mutex{}
		rl.locks[roomId] = lock
	}
	return lock
}
