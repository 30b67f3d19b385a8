// Package linebuf implements flexbuf's fixed-capacity circular record buffer.
//
// # Overview
//
// A Buffer packs a sequence of variable-length records ("lines") into one
// contiguous byte arena addressed circularly. Writers append records; readers
// walk the retained window from oldest to newest; when the arena runs out of
// room, the oldest records are evicted automatically to make space for new
// writes. Three layers cooperate over one shared state block:
//
//   - the byte arena: raw circular storage, no record boundaries
//   - the marker ring: per-record byte extents and monotonically increasing
//     ids, with oldest/newest cursors
//   - the Buffer facade: write/append/read operations, the overlap-eviction
//     algorithm, and uniform locking
//
// A record whose extent wraps past the end of the arena is fragmented; reads
// reassemble it into one contiguous owned copy. A record never exceeds half
// the arena capacity, which guarantees the eviction loop terminates and that
// at least two records can always coexist.
//
// API surface
//
//	b, _ := linebuf.New(linebuf.Options{Capacity: 4096, MaxRecords: 128})
//
//	// Append a record; ids start at 0 and increase by 1
//	id, _ := b.WriteRecord([]byte("GET /healthz 200"))
//
//	// Grow the newest record in place; fails with ErrStaleWriter once a
//	// newer record exists
//	_ = b.AppendToNewest(id, []byte(" 3ms"))
//
//	// Drain the retained window oldest -> newest
//	snap, err := b.ReadOldest()
//	for err == nil {
//	    consume(snap.Bytes())
//	    snap, err = b.ReleaseAndReadNext(snap)
//	}
//
// All operations serialize through a Locker supplied at construction;
// NopLocker removes that cost for single-threaded use. Snapshots are owned
// copies and need no locking to read or release.
package linebuf
