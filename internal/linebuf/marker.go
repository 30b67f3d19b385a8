package linebuf

// marker describes the byte extent and identity of one retained record.
// A marker with start > end is fragmented: it covers [start, capacity-1]
// followed by [0, end].
type marker struct {
	start int
	end   int
	id    uint64
}

func (m marker) fragmented() bool { return m.start > m.end }

// length returns the number of cells the extent covers in an arena of the
// given capacity.
func (m marker) length(capacity int) int {
	if m.start <= m.end {
		return m.end - m.start + 1
	}
	return capacity - m.start + m.end + 1
}

// overlaps reports whether the two extents share at least one cell. Two
// fragmented extents always intersect: both necessarily cover the wrap
// boundary.
func (m marker) overlaps(o marker) bool {
	switch {
	case !m.fragmented() && !o.fragmented():
		if m.start <= o.start {
			return m.end >= o.start
		}
		return o.end >= m.start
	case m.fragmented() && o.fragmented():
		return true
	case m.fragmented():
		return o.start <= m.end || o.end >= m.start
	default:
		return m.start <= o.end || m.end >= o.start
	}
}

// contains reports whether the extent covers the given cell.
func (m marker) contains(cell int) bool {
	if m.start <= m.end {
		return m.start <= cell && cell <= m.end
	}
	return cell <= m.end || m.start <= cell
}
