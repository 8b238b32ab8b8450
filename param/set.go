// SPDX-License-Identifier: MIT
// Package: photonic/param
//
// set.go — identity-keyed parameter collections and the uniqueness check.
//
// Components and circuits hold *Parameter handles; the pointer is the
// identity. Set keeps first-discovery order so listings are deterministic.

package param

// Set is an ordered set of parameters deduplicated by identity.
// The zero value is ready to use.
type Set struct {
	items []*Parameter
	seen  map[*Parameter]struct{}
}

// NewSet returns a Set seeded with ps (nil entries are skipped).
func NewSet(ps ...*Parameter) *Set {
	s := &Set{}
	s.Add(ps...)

	return s
}

// Add inserts parameters not yet present, preserving discovery order.
func (s *Set) Add(ps ...*Parameter) {
	if s.seen == nil {
		s.seen = make(map[*Parameter]struct{}, len(ps))
	}
	for _, p := range ps {
		if p == nil {
			continue
		}
		if _, ok := s.seen[p]; ok {
			continue
		}
		s.seen[p] = struct{}{}
		s.items = append(s.items, p)
	}
}

// Contains reports whether p (by identity) is in the set.
func (s *Set) Contains(p *Parameter) bool {
	_, ok := s.seen[p]
	return ok
}

// Len returns the number of distinct parameters.
func (s *Set) Len() int { return len(s.items) }

// Items returns a copy of the parameters in discovery order.
func (s *Set) Items() []*Parameter {
	out := make([]*Parameter, len(s.items))
	copy(out, s.items)

	return out
}

// ByName returns the first parameter named name.
func (s *Set) ByName(name string) (*Parameter, bool) {
	for _, p := range s.items {
		if p.name == name {
			return p, true
		}
	}

	return nil, false
}

// Variables filters ps down to non-fixed parameters, keeping order.
func Variables(ps []*Parameter) []*Parameter {
	out := make([]*Parameter, 0, len(ps))
	for _, p := range ps {
		if !p.fixed {
			out = append(out, p)
		}
	}

	return out
}

// Free filters ps down to variable parameters without a value.
func Free(ps []*Parameter) []*Parameter {
	out := make([]*Parameter, 0, len(ps))
	for _, p := range ps {
		if p.IsFree() {
			out = append(out, p)
		}
	}

	return out
}

// CheckUnique fails with ErrDuplicate when two distinct variable parameters
// share a name. The same instance appearing several times is aliasing and is
// accepted. Fixed parameters are ignored.
// Complexity: O(len(ps)) time and space.
func CheckUnique(ps ...*Parameter) error {
	byName := make(map[string]*Parameter, len(ps))
	for _, p := range ps {
		if p == nil || p.fixed {
			continue
		}
		if prev, ok := byName[p.name]; ok && prev != p {
			return paramErrorf("CheckUnique", p.name, ErrDuplicate)
		}
		byName[p.name] = p
	}

	return nil
}
