package cursor

// Set is the ordered collection of selections of one buffer. It is never
// empty. Selections keep the order they were added in, and one of them is
// the primary selection the viewport follows.
type Set struct {
	selections []Selection
	primary    int
}

// NewSet creates a set holding only initial.
func NewSet(initial Selection) *Set {
	return &Set{selections: []Selection{initial}}
}

// Primary returns the primary selection.
func (s *Set) Primary() Selection {
	return s.selections[s.primary]
}

// PrimaryIndex returns the index of the primary selection.
func (s *Set) PrimaryIndex() int {
	return s.primary
}

// SetPrimary makes selection i primary. It reports false when i is out
// of range.
func (s *Set) SetPrimary(i int) bool {
	if i < 0 || i >= len(s.selections) {
		return false
	}
	s.primary = i
	return true
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// IsMulti reports whether there is more than one selection.
func (s *Set) IsMulti() bool {
	return len(s.selections) > 1
}

// Get returns selection i, or an empty selection if i is out of range.
func (s *Set) Get(i int) Selection {
	if i < 0 || i >= len(s.selections) {
		return Selection{}
	}
	return s.selections[i]
}

// All returns a copy of the selections in order.
func (s *Set) All() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Add appends sel and returns its index.
func (s *Set) Add(sel Selection) int {
	s.selections = append(s.selections, sel)
	return len(s.selections) - 1
}

// Replace overwrites selection i.
func (s *Set) Replace(i int, sel Selection) {
	if i >= 0 && i < len(s.selections) {
		s.selections[i] = sel
	}
}

// Remove deletes selection i. The last remaining selection cannot be
// removed. Removing the primary promotes the selection that follows it,
// or the one before it when it was last.
func (s *Set) Remove(i int) bool {
	if len(s.selections) == 1 || i < 0 || i >= len(s.selections) {
		return false
	}
	s.selections = append(s.selections[:i], s.selections[i+1:]...)
	if s.primary > i || s.primary == len(s.selections) {
		s.primary--
	}
	return true
}

// ClearSecondary drops every selection except the primary.
func (s *Set) ClearSecondary() {
	s.selections = []Selection{s.selections[s.primary]}
	s.primary = 0
}

// CollapseAll snaps every anchor to its cursor.
func (s *Set) CollapseAll() {
	for i := range s.selections {
		s.selections[i] = s.selections[i].Collapse()
	}
}

// MapInPlace replaces every selection with f's result.
func (s *Set) MapInPlace(f func(i int, sel Selection) Selection) {
	for i := range s.selections {
		s.selections[i] = f(i, s.selections[i])
	}
}

// TransformOthers adjusts every selection except skip for an edit made
// by selection skip.
func (s *Set) TransformOthers(skip int, e Edit) {
	for i := range s.selections {
		if i != skip {
			s.selections[i] = TransformSelection(s.selections[i], e)
		}
	}
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{selections: s.All(), primary: s.primary}
}
