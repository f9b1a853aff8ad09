package usecase

import "sync"

// keyedMutex serializes lifecycle transitions per entity id. Each transition
// is a read-check-write sequence over the record store; without the lock two
// racing requests could both observe the same flag state and produce an
// inconsistent jump.
//
// Entries are never evicted: retention is bounded by the number of distinct
// ids touched during the process lifetime, a few bytes each.
type keyedMutex struct {
	locks sync.Map // id -> *sync.Mutex
}

// Lock blocks until the id is free and returns the unlock func.
func (k *keyedMutex) Lock(id int) func() {
	v, _ := k.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
