package linebuf

// Locker is the blocking mutual-exclusion capability guarding all buffer
// state. Lock blocks indefinitely until the lock is available; there is no
// timeout or cancellation. sync.Mutex satisfies the interface and is the
// default.
type Locker interface {
	Lock()
	Unlock()
}

// NopLocker is a Locker for single-threaded configurations; both methods do
// nothing.
type NopLocker struct{}

// Lock is a no-op.
func (NopLocker) Lock() {}

// Unlock is a no-op.
func (NopLocker) Unlock() {}
