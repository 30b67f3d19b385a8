package linebuf

import "sync"

// snapshotPool recycles snapshot backing buffers so drain loops stay
// allocation-light.
var snapshotPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Snapshot is an owned, independently allocated copy of one record's bytes
// plus its length and id. It never aliases arena memory, so no locking is
// needed to read or release it. Call Release once consumed; using the
// snapshot afterwards is invalid.
type Snapshot struct {
	buf *[]byte
	id  uint64
}

func newSnapshot(length int, id uint64) *Snapshot {
	bp := snapshotPool.Get().(*[]byte)
	if cap(*bp) < length {
		*bp = make([]byte, length)
	}
	*bp = (*bp)[:length]
	return &Snapshot{buf: bp, id: id}
}

// Bytes returns a read-only view of the record contents, valid until Release.
func (s *Snapshot) Bytes() []byte { return *s.buf }

// Len returns the record length in cells.
func (s *Snapshot) Len() int { return len(*s.buf) }

// ID returns the record identifier.
func (s *Snapshot) ID() uint64 { return s.id }

// Release returns the backing buffer to the pool. Safe to call more than
// once; only the first call has an effect.
func (s *Snapshot) Release() {
	if s.buf == nil {
		return
	}
	snapshotPool.Put(s.buf)
	s.buf = nil
}
