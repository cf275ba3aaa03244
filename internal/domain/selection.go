package domain

// Selection is an identity-keyed set of artworks that remembers insertion order.
// It never holds two artworks with the same ID. The zero value is not usable; use NewSelection.
type Selection struct {
	items []Artwork
	index map[int]int // ID -> position in items
}

// NewSelection creates a selection holding the given artworks, skipping duplicate IDs
func NewSelection(items ...Artwork) *Selection {
	s := &Selection{index: make(map[int]int, len(items))}
	for _, a := range items {
		s.Add(a)
	}
	return s
}

// Len returns the number of selected artworks
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Contains returns true if an artwork with the given ID is selected
func (s *Selection) Contains(id int) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// Add appends the artwork unless its ID is already present.
// Returns true if the selection grew.
func (s *Selection) Add(a Artwork) bool {
	if _, ok := s.index[a.ID]; ok {
		return false
	}
	s.index[a.ID] = len(s.items)
	s.items = append(s.items, a)
	return true
}

// Remove drops the artwork with the given ID, keeping the order of the rest.
// Returns true if something was removed.
func (s *Selection) Remove(id int) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return true
}

// Toggle adds the artwork if absent, removes it if present.
// Returns whether the artwork is selected afterwards.
func (s *Selection) Toggle(a Artwork) bool {
	if s.Remove(a.ID) {
		return false
	}
	s.Add(a)
	return true
}

// Items returns a copy of the selected artworks in insertion order
func (s *Selection) Items() []Artwork {
	if s == nil {
		return nil
	}
	out := make([]Artwork, len(s.items))
	copy(out, s.items)
	return out
}

// Clone returns an independent copy of the selection
func (s *Selection) Clone() *Selection {
	if s == nil {
		return NewSelection()
	}
	return NewSelection(s.items...)
}

// Merge appends every artwork of other that is not yet selected, in other's order.
// Returns the number of artworks added.
func (s *Selection) Merge(other *Selection) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, a := range other.items {
		if s.Add(a) {
			added++
		}
	}
	return added
}

// Clear removes every artwork
func (s *Selection) Clear() {
	s.items = nil
	s.index = make(map[int]int)
}
