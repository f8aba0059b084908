package lock

import (
	"fmt"
	"sync"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
)

// LockType selects shared or exclusive acquisition.
type LockType int

const (
	Read LockType = iota
	Write
)

// IdLockManager maps an arbitrary key (typically an account id) to a
// read/write lock. Locks are created lazily on first use and never removed;
// the registry is bounded by the set of distinct keys touched during the
// process lifetime.
//
// The locks are not reentrant. An operation must acquire the lock for a key
// exactly once, and must never hold locks for two different keys at the same
// time: there is no defined lock ordering between accounts.
type IdLockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// NewIdLockManager creates an empty lock registry.
func NewIdLockManager() *IdLockManager {
	return &IdLockManager{locks: make(map[string]*sync.RWMutex)}
}

func (m *IdLockManager) lockFor(key string) *sync.RWMutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lk, ok := m.locks[key]
	if !ok {
		lk = &sync.RWMutex{}
		m.locks[key] = lk
	}
	return lk
}

// Call runs fn while holding the lock for key. The lock is released regardless
// of outcome: fn's error is returned unchanged after release, and a panic in
// fn is converted into an invocation failure.
//
// Call blocks without timeout until the lock is available.
func (m *IdLockManager) Call(key string, lockType LockType, fn func() error) (err error) {
	lk := m.lockFor(key)
	if lockType == Write {
		lk.Lock()
		defer lk.Unlock()
	} else {
		lk.RLock()
		defer lk.RUnlock()
	}
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewAppError(500, fmt.Sprintf("locked call for key %s panicked", key), fmt.Errorf("%v", r))
		}
	}()
	return fn()
}
