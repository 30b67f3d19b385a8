package linebuf

import "testing"

func TestMarkerLength(t *testing.T) {
	tests := []struct {
		name string
		m    marker
		cap  int
		want int
	}{
		{"single cell", marker{start: 3, end: 3}, 10, 1},
		{"contiguous", marker{start: 2, end: 7}, 10, 6},
		{"full front", marker{start: 0, end: 9}, 10, 10},
		{"fragmented", marker{start: 8, end: 0}, 10, 3},
		{"fragmented long tail", marker{start: 6, end: 3}, 10, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.length(tt.cap); got != tt.want {
				t.Fatalf("length=%d want %d", got, tt.want)
			}
		})
	}
}

func TestMarkerOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b marker
		want bool
	}{
		{"disjoint contiguous", marker{start: 0, end: 3}, marker{start: 5, end: 8}, false},
		{"adjacent contiguous", marker{start: 0, end: 4}, marker{start: 5, end: 8}, false},
		{"touching edge", marker{start: 0, end: 5}, marker{start: 5, end: 8}, true},
		{"nested", marker{start: 2, end: 8}, marker{start: 4, end: 5}, true},
		{"identical", marker{start: 1, end: 3}, marker{start: 1, end: 3}, true},
		{"single cells equal", marker{start: 4, end: 4}, marker{start: 4, end: 4}, true},
		{"single cells distinct", marker{start: 4, end: 4}, marker{start: 5, end: 5}, false},
		{"both fragmented", marker{start: 8, end: 1}, marker{start: 9, end: 0}, true},
		{"fragmented vs head", marker{start: 8, end: 0}, marker{start: 0, end: 3}, true},
		{"fragmented vs tail", marker{start: 8, end: 0}, marker{start: 9, end: 9}, true},
		{"fragmented vs middle", marker{start: 8, end: 0}, marker{start: 2, end: 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.overlaps(tt.b); got != tt.want {
				t.Fatalf("overlaps=%v want %v", got, tt.want)
			}
			// The predicate is symmetric.
			if got := tt.b.overlaps(tt.a); got != tt.want {
				t.Fatalf("reverse overlaps=%v want %v", got, tt.want)
			}
		})
	}
}

func TestMarkerContains(t *testing.T) {
	contiguous := marker{start: 2, end: 5}
	for cell, want := range map[int]bool{1: false, 2: true, 5: true, 6: false} {
		if got := contiguous.contains(cell); got != want {
			t.Fatalf("contiguous contains(%d)=%v want %v", cell, got, want)
		}
	}
	fragmented := marker{start: 8, end: 1}
	for cell, want := range map[int]bool{7: false, 8: true, 9: true, 0: true, 1: true, 2: false} {
		if got := fragmented.contains(cell); got != want {
			t.Fatalf("fragmented contains(%d)=%v want %v", cell, got, want)
		}
	}
}
