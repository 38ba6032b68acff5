package match

import "sort"

// Set is an unordered collection of unique normalized strings.
type Set map[string]struct{}

// NewSet builds a set from the given items, dropping empty strings.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		if item != "" {
			s[item] = struct{}{}
		}
	}
	return s
}

// Add inserts the item unless it is empty.
func (s Set) Add(item string) {
	if item != "" {
		s[item] = struct{}{}
	}
}

// Has reports whether the item is present.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Union returns a new set containing the items of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for item := range s {
		out[item] = struct{}{}
	}
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the items present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for item := range s {
		if other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the items of s not present in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for item := range s {
		if !other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Sorted returns the items in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
