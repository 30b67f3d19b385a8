package linebuf

// arena is the fixed-size circular byte store. It owns raw cells only;
// record boundaries live in the marker ring.
type arena struct {
	cells []byte
}

func newArena(capacity int) arena {
	return arena{cells: make([]byte, capacity)}
}

func (a arena) capacity() int { return len(a.cells) }

// place copies data into the arena starting at offset, splitting across the
// wrap boundary when needed, and returns the extent now occupied.
// Requires 0 < len(data) <= capacity and 0 <= offset < capacity.
func (a arena) place(offset int, data []byte) (start, end int) {
	head := len(a.cells) - offset
	if head > len(data) {
		head = len(data)
	}
	copy(a.cells[offset:], data[:head])
	copy(a.cells, data[head:])
	return offset, (offset + len(data) - 1) % len(a.cells)
}

// extract copies the extent into dst, reassembling a fragmented extent into
// one contiguous run. dst must hold m.length(capacity) bytes.
func (a arena) extract(m marker, dst []byte) {
	if m.start <= m.end {
		copy(dst, a.cells[m.start:m.end+1])
		return
	}
	n := copy(dst, a.cells[m.start:])
	copy(dst[n:], a.cells[:m.end+1])
}
