package components

import "testing"

func TestPageLinks_UnknownTotal(t *testing.T) {
	l := NewPageLinks(12)
	l.SetCurrent(3)

	if got := l.TotalPages(); got != 0 {
		t.Errorf("TotalPages() = %d, want 0", got)
	}
	if got := l.Next(); got != 4 {
		t.Errorf("Next() = %d, want 4", got)
	}
	if got := l.Last(); got != 3 {
		t.Errorf("Last() = %d, want 3", got)
	}
	if got := l.Clamp(99); got != 99 {
		t.Errorf("Clamp(99) = %d, want 99", got)
	}

	// A zero total leaves the count unknown
	l.SetTotal(0)
	if got := l.TotalPages(); got != 0 {
		t.Errorf("TotalPages() after SetTotal(0) = %d, want 0", got)
	}
}

func TestPageLinks_Bounds(t *testing.T) {
	l := NewPageLinks(12)
	l.SetTotal(40) // 4 pages

	tests := []struct {
		name    string
		current int
		next    int
		prev    int
	}{
		{"first page", 1, 2, 1},
		{"middle page", 2, 3, 1},
		{"last page", 4, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SetCurrent(tt.current)
			if got := l.Current(); got != tt.current {
				t.Errorf("Current() = %d, want %d", got, tt.current)
			}
			if got := l.Next(); got != tt.next {
				t.Errorf("Next() = %d, want %d", got, tt.next)
			}
			if got := l.Prev(); got != tt.prev {
				t.Errorf("Prev() = %d, want %d", got, tt.prev)
			}
		})
	}

	if got := l.Clamp(0); got != 1 {
		t.Errorf("Clamp(0) = %d, want 1", got)
	}
	if got := l.Clamp(9); got != 4 {
		t.Errorf("Clamp(9) = %d, want 4", got)
	}
	if got := l.Last(); got != 4 {
		t.Errorf("Last() = %d, want 4", got)
	}
}

func TestPageLinks_Window(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    []int
	}{
		{"fewer pages than window", 36, 2, []int{1, 2, 3}},
		{"window at start", 120, 1, []int{1, 2, 3, 4, 5}},
		{"window centered", 120, 6, []int{4, 5, 6, 7, 8}},
		{"window at end", 120, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewPageLinks(12)
			l.SetTotal(tt.total)
			l.SetCurrent(tt.current)

			if got := l.Links(); !equalIDs(got, tt.want) {
				t.Errorf("Links() = %v, want %v", got, tt.want)
			}
		})
	}
}
