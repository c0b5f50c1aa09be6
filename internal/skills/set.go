// Package skills provides case-insensitive skill set operations used by matching,
// gap analysis and project selection.
package skills

import "strings"

// Fold returns the comparison key for a skill. Skills are compared by lowercase form only.
func Fold(skill string) string {
	return strings.ToLower(skill)
}

// Set is an insertion-ordered set of case-folded skills
type Set struct {
	index map[string]struct{}
	order []string
}

// NewSet builds a set from the given skills, folding each and keeping first-seen order.
func NewSet(lists ...[]string) *Set {
	s := &Set{index: make(map[string]struct{})}
	for _, list := range lists {
		for _, skill := range list {
			s.Add(skill)
		}
	}
	return s
}

// Add inserts a skill; it reports whether the skill was new.
func (s *Set) Add(skill string) bool {
	key := Fold(skill)
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

// Contains reports whether the skill is present, ignoring case.
func (s *Set) Contains(skill string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[Fold(skill)]
	return ok
}

// Len returns the number of distinct skills.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Items returns the folded skills in first-seen order.
func (s *Set) Items() []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	return append(out, s.order...)
}

// Intersect returns the members of s also present in other, in the order of s.
func (s *Set) Intersect(other *Set) *Set {
	out := NewSet()
	for _, skill := range s.Items() {
		if other.Contains(skill) {
			out.Add(skill)
		}
	}
	return out
}

// Difference returns the members of s absent from other, in the order of s.
func (s *Set) Difference(other *Set) *Set {
	out := NewSet()
	for _, skill := range s.Items() {
		if !other.Contains(skill) {
			out.Add(skill)
		}
	}
	return out
}

// Union returns the members of s followed by the new members of other.
func (s *Set) Union(other *Set) *Set {
	return NewSet(s.Items(), other.Items())
}

// First returns at most n items in order.
func (s *Set) First(n int) []string {
	items := s.Items()
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}
