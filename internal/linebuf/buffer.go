package linebuf

import (
	"errors"
	"fmt"
	"sync"
)

// MaxCapacity bounds the arena size so cell positions fit 16-bit unsigned
// arithmetic with one bit of headroom.
const MaxCapacity = 1 << 15

var (
	// ErrInvalidLength reports a zero-length write, or one that would leave
	// a record larger than half the arena capacity.
	ErrInvalidLength = errors.New("linebuf: record length must be in 1..capacity/2")
	// ErrStaleWriter reports an append against a record that is no longer
	// the newest.
	ErrStaleWriter = errors.New("linebuf: record is no longer the newest")
	// ErrEmpty reports an operation against a buffer with no retained
	// records.
	ErrEmpty = errors.New("linebuf: buffer is empty")
	// ErrNotFound reports that the requested id is not in the active window
	// or has no successor.
	ErrNotFound = errors.New("linebuf: record not found")
)

// Options configure a Buffer.
type Options struct {
	// Capacity is the arena size in cells, in 1..MaxCapacity.
	Capacity int
	// MaxRecords is the marker ring size, > 0. Size it generously: when the
	// ring fills up before the arena does, the oldest record is dropped to
	// free a marker slot even though its bytes were not overwritten.
	MaxRecords int
	// Locker serializes all operations. Nil selects sync.Mutex; use
	// NopLocker for single-threaded configurations.
	Locker Locker
	// Metrics receives operation counters. Nil disables instrumentation.
	Metrics *Metrics
}

// Buffer is a fixed-capacity, in-memory circular store for variable-length
// records. See the package documentation for the data model.
//
// Invariants maintained after every successful operation: no two retained
// markers overlap in byte space, every record length stays within
// capacity/2, ids increase strictly by 1 per record, and the active window
// never exceeds MaxRecords.
type Buffer struct {
	mu      Locker
	arena   arena
	markers []marker
	oldest  int // marker ring index of the oldest retained record, -1 when empty
	newest  int // marker ring index of the newest record, -1 when empty
	metrics *Metrics
}

// New builds a Buffer from Options.
func New(opts Options) (*Buffer, error) {
	if opts.Capacity <= 0 || opts.Capacity > MaxCapacity {
		return nil, fmt.Errorf("linebuf: capacity must be in 1..%d, got %d", MaxCapacity, opts.Capacity)
	}
	if opts.MaxRecords <= 0 {
		return nil, fmt.Errorf("linebuf: maxRecords must be > 0, got %d", opts.MaxRecords)
	}
	mu := opts.Locker
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &Buffer{
		mu:      mu,
		arena:   newArena(opts.Capacity),
		markers: make([]marker, opts.MaxRecords),
		oldest:  -1,
		newest:  -1,
		metrics: opts.Metrics,
	}, nil
}

// Capacity returns the arena size in cells.
func (b *Buffer) Capacity() int { return b.arena.capacity() }

// MaxRecords returns the marker ring size.
func (b *Buffer) MaxRecords() int { return len(b.markers) }

// WriteRecord appends data as a new record and returns its id. Ids start at
// 0 for the first record ever written and increase by exactly 1 per record.
// Retained records whose cells the new extent overwrites are evicted from
// the oldest end. A failed call leaves the buffer unchanged.
func (b *Buffer) WriteRecord(data []byte) (uint64, error) {
	if len(data) == 0 || len(data) > b.arena.capacity()/2 {
		b.metrics.reject(ReasonLength)
		return 0, ErrInvalidLength
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	offset := 0
	var id uint64
	if b.newest >= 0 {
		last := b.markers[b.newest]
		offset = (last.end + 1) % b.arena.capacity()
		id = last.id + 1
	}
	start, end := b.arena.place(offset, data)
	m := marker{start: start, end: end, id: id}

	next := b.nextIndex(b.newest)
	switch {
	case b.oldest < 0:
		b.oldest = next
	case next == b.oldest:
		// Marker ring exhausted: the slot being claimed still holds the
		// oldest record. Drop that record deliberately instead of letting
		// the ring wrap clobber it.
		b.oldest = b.nextIndex(b.oldest)
		b.metrics.markerRingEviction()
	}
	b.markers[next] = m
	b.newest = next
	b.evictOverlapping(m)

	b.metrics.write(len(data))
	b.publishRetention()
	return id, nil
}

// AppendToNewest extends the newest record in place, continuing from its
// current end cell with the same wrap-splitting as WriteRecord. id must name
// the newest record; ErrStaleWriter reports that a newer record was written
// since the caller last observed it. The extended record must stay within
// the capacity/2 bound counting existing plus appended cells. A failed call
// leaves the buffer unchanged.
func (b *Buffer) AppendToNewest(id uint64, data []byte) error {
	if len(data) == 0 {
		b.metrics.reject(ReasonLength)
		return ErrInvalidLength
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.newest < 0 {
		b.metrics.reject(ReasonEmpty)
		return ErrEmpty
	}
	cur := b.markers[b.newest]
	if cur.id != id {
		b.metrics.reject(ReasonStale)
		return ErrStaleWriter
	}
	if cur.length(b.arena.capacity())+len(data) > b.arena.capacity()/2 {
		b.metrics.reject(ReasonLength)
		return ErrInvalidLength
	}

	offset := (cur.end + 1) % b.arena.capacity()
	_, end := b.arena.place(offset, data)
	b.markers[b.newest].end = end
	// Growing the extent can newly overlap records that were untouched by
	// the original write.
	b.evictOverlapping(b.markers[b.newest])

	b.metrics.append(len(data))
	b.publishRetention()
	return nil
}

// ReadOldest returns an owned copy of the oldest retained record.
func (b *Buffer) ReadOldest() (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.oldest < 0 {
		return nil, ErrEmpty
	}
	return b.snapshotAt(b.oldest), nil
}

// ReadNewest returns an owned copy of the newest record.
func (b *Buffer) ReadNewest() (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.newest < 0 {
		return nil, ErrEmpty
	}
	return b.snapshotAt(b.newest), nil
}

// ReadNext returns an owned copy of the record immediately after id in the
// active window. ErrNotFound reports that id was evicted or never issued, or
// that id is the newest record and has no successor yet.
func (b *Buffer) ReadNext(id uint64) (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.newest < 0 {
		return nil, ErrEmpty
	}
	for i := b.oldest; i != b.newest; i = b.nextIndex(i) {
		if b.markers[i].id == id {
			return b.snapshotAt(b.nextIndex(i)), nil
		}
	}
	return nil, ErrNotFound
}

// ReleaseAndReadNext releases snap and returns the record following it in
// the active window: the drain-iterator convenience for a consumer that
// remembers only the last id it has seen.
func (b *Buffer) ReleaseAndReadNext(snap *Snapshot) (*Snapshot, error) {
	id := snap.ID()
	snap.Release()
	return b.ReadNext(id)
}

// Len returns the number of retained records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.windowSize()
}

// evictOverlapping advances the oldest cursor past every record whose extent
// overlaps n. The loop terminates because a record covers at most half the
// arena, so it can never overlap the entire active window; the newest record
// itself is never evicted.
func (b *Buffer) evictOverlapping(n marker) {
	for b.oldest != b.newest && b.markers[b.oldest].overlaps(n) {
		b.oldest = b.nextIndex(b.oldest)
		b.metrics.evict()
	}
}

func (b *Buffer) snapshotAt(index int) *Snapshot {
	m := b.markers[index]
	s := newSnapshot(m.length(b.arena.capacity()), m.id)
	b.arena.extract(m, *s.buf)
	return s
}

func (b *Buffer) nextIndex(i int) int {
	return (i + 1) % len(b.markers)
}

// windowSize returns the active marker count. Callers hold the lock.
func (b *Buffer) windowSize() int {
	if b.oldest < 0 {
		return 0
	}
	return (b.newest-b.oldest+len(b.markers))%len(b.markers) + 1
}

func (b *Buffer) publishRetention() {
	if b.metrics == nil {
		return
	}
	bytes := 0
	for i, n := b.oldest, b.windowSize(); n > 0; i, n = b.nextIndex(i), n-1 {
		bytes += b.markers[i].length(b.arena.capacity())
	}
	b.metrics.setRetention(b.windowSize(), bytes)
}
