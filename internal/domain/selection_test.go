package domain

import (
	"errors"
	"testing"
)

func art(id int) Artwork {
	return Artwork{ID: id, Title: "Artwork"}
}

func ids(items []Artwork) []int {
	out := make([]int, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSelection_SkipsDuplicates(t *testing.T) {
	s := NewSelection(art(1), art(2), art(1), art(3))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if got := ids(s.Items()); !equalIDs(got, []int{1, 2, 3}) {
		t.Errorf("Items() = %v, want [1 2 3]", got)
	}
}

func TestSelection_AddRemove(t *testing.T) {
	s := NewSelection()

	if !s.Add(art(5)) {
		t.Error("Add(5) = false, want true")
	}
	if s.Add(Artwork{ID: 5, Title: "different title"}) {
		t.Error("Add of same ID = true, want false")
	}
	if !s.Contains(5) {
		t.Error("Contains(5) = false, want true")
	}

	s.Add(art(6))
	s.Add(art(7))

	if !s.Remove(6) {
		t.Error("Remove(6) = false, want true")
	}
	if s.Remove(6) {
		t.Error("second Remove(6) = true, want false")
	}
	if got := ids(s.Items()); !equalIDs(got, []int{5, 7}) {
		t.Errorf("Items() = %v, want [5 7]", got)
	}

	// Index must stay consistent after a removal in the middle
	if !s.Remove(7) {
		t.Error("Remove(7) after shifting = false, want true")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSelection_Toggle(t *testing.T) {
	s := NewSelection(art(1))

	if s.Toggle(art(1)) {
		t.Error("Toggle(selected) = true, want false")
	}
	if s.Contains(1) {
		t.Error("artwork still selected after toggle off")
	}
	if !s.Toggle(art(1)) {
		t.Error("Toggle(unselected) = false, want true")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSelection_CloneIsIndependent(t *testing.T) {
	s := NewSelection(art(1), art(2))
	c := s.Clone()
	c.Add(art(3))
	c.Remove(1)

	if got := ids(s.Items()); !equalIDs(got, []int{1, 2}) {
		t.Errorf("original Items() = %v, want [1 2]", got)
	}
	if got := ids(c.Items()); !equalIDs(got, []int{2, 3}) {
		t.Errorf("clone Items() = %v, want [2 3]", got)
	}
}

func TestSelection_Merge(t *testing.T) {
	live := NewSelection(art(1), art(9))
	other := NewSelection(art(1), art(2), art(3), art(9))

	added := live.Merge(other)

	if added != 2 {
		t.Errorf("Merge() added = %d, want 2", added)
	}
	if got := ids(live.Items()); !equalIDs(got, []int{1, 9, 2, 3}) {
		t.Errorf("Items() = %v, want [1 9 2 3]", got)
	}
	if live.Merge(nil) != 0 {
		t.Error("Merge(nil) should add nothing")
	}
}

func TestSelection_ItemsReturnsCopy(t *testing.T) {
	s := NewSelection(art(1))
	items := s.Items()
	items[0].ID = 99

	if !s.Contains(1) || s.Items()[0].ID != 1 {
		t.Error("mutating Items() result changed the selection")
	}
}

func TestSelection_Clear(t *testing.T) {
	s := NewSelection(art(1), art(2))
	s.Clear()

	if s.Len() != 0 || s.Contains(1) {
		t.Errorf("after Clear Len() = %d, Contains(1) = %v", s.Len(), s.Contains(1))
	}
	s.Add(art(1))
	if s.Len() != 1 {
		t.Errorf("Add after Clear: Len() = %d, want 1", s.Len())
	}
}

func TestSelection_NilSafeReads(t *testing.T) {
	var s *Selection
	if s.Len() != 0 || s.Contains(1) || s.Items() != nil {
		t.Error("nil selection reads should be empty")
	}
	if s.Clone().Len() != 0 {
		t.Error("Clone of nil selection should be empty")
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{125000, 12, 10417},
		{10, 0, 0},
		{-5, 12, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestArtwork_DateRange(t *testing.T) {
	tests := []struct {
		name string
		a    Artwork
		want string
	}{
		{"unknown", Artwork{}, ""},
		{"single year", Artwork{DateStart: 1890, DateEnd: 1890}, "1890"},
		{"range", Artwork{DateStart: 1885, DateEnd: 1890}, "1885–1890"},
		{"bce", Artwork{DateStart: -500, DateEnd: -450}, "500 BCE–450 BCE"},
		{"start only", Artwork{DateStart: 1700}, "1700"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DateRange(); got != tt.want {
				t.Errorf("DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtwork_ArtistName(t *testing.T) {
	a := Artwork{ArtistDisplay: "Claude Monet\nFrench, 1840-1926"}
	if got := a.ArtistName(); got != "Claude Monet" {
		t.Errorf("ArtistName() = %q, want %q", got, "Claude Monet")
	}
}

func TestFetchError_Is(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&FetchError{Page: 3, Err: cause})

	if !errors.Is(err, ErrFetchFailed) {
		t.Error("errors.Is(FetchError, ErrFetchFailed) = false")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(FetchError, cause) = false")
	}
	if got := (&FetchError{Page: 2, StatusCode: 503}).Error(); got != "fetch page 2: unexpected status 503" {
		t.Errorf("Error() = %q", got)
	}
}

func TestInsufficientRecordsError(t *testing.T) {
	err := error(&InsufficientRecordsError{Requested: 10, Found: 4})

	if !errors.Is(err, ErrInsufficientRecords) {
		t.Error("errors.Is(err, ErrInsufficientRecords) = false")
	}
	var ire *InsufficientRecordsError
	if !errors.As(err, &ire) || ire.Found != 4 {
		t.Errorf("errors.As failed or Found = %v", ire)
	}
}
