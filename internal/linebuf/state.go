package linebuf

// State is an owned copy of a Buffer's observable state, taken atomically
// under the lock. It is the read-only iteration capability consumed by
// diagnostic tooling; mutating a State has no effect on the buffer.
type State struct {
	Capacity    int
	MaxRecords  int
	OldestIndex int // marker ring index, -1 when empty
	NewestIndex int // marker ring index, -1 when empty
	Cells       []byte
	Records     []RecordInfo // active window, oldest to newest
}

// RecordInfo describes one retained record.
type RecordInfo struct {
	Index      int // marker ring slot
	ID         uint64
	Start      int
	End        int
	Length     int
	Fragmented bool
	Data       []byte // reassembled owned copy
}

// CellOwner returns the record covering the given cell, or false when no
// active record claims it.
func (s State) CellOwner(cell int) (RecordInfo, bool) {
	for _, r := range s.Records {
		m := marker{start: r.Start, end: r.End}
		if m.contains(cell) {
			return r, true
		}
	}
	return RecordInfo{}, false
}

// Inspect returns an owned snapshot of the buffer's full state for
// diagnostic rendering.
func (b *Buffer) Inspect() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := State{
		Capacity:    b.arena.capacity(),
		MaxRecords:  len(b.markers),
		OldestIndex: b.oldest,
		NewestIndex: b.newest,
		Cells:       append([]byte(nil), b.arena.cells...),
	}
	n := b.windowSize()
	st.Records = make([]RecordInfo, 0, n)
	for i := b.oldest; n > 0; i, n = b.nextIndex(i), n-1 {
		m := b.markers[i]
		data := make([]byte, m.length(b.arena.capacity()))
		b.arena.extract(m, data)
		st.Records = append(st.Records, RecordInfo{
			Index:      i,
			ID:         m.id,
			Start:      m.start,
			End:        m.end,
			Length:     len(data),
			Fragmented: m.fragmented(),
			Data:       data,
		})
	}
	return st
}
