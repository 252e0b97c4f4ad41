package enumset

import (
	"slices"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/enumset/bitflag"
)

// Set is a named bit-set: each declared member owns one bit of a single
// int64, assigned in declaration order. A Set holds at most MaxMembers
// members; use BigSet beyond that.
//
// Mutation by name is lenient: Add, Remove and Toggle silently ignore names
// that resolve to nothing. Has is strict and returns ErrUnknownMember for
// undeclared names. Add, Remove and HasAny additionally accept a
// string-encoded power of two as a raw mask, independent of membership.
type Set struct {
	def   *Def
	flags bitflag.Flags
}

// NewSet creates a Set over the given ordered member list.
//
// Honored options: WithActive, WithValue.
func NewSet(members []string, optFns ...Option) (*Set, error) {
	def, err := NewDef(members...)
	if err != nil {
		return nil, err
	}
	return NewSetFromDef(def, optFns...)
}

// NewSetFromDef creates a Set over a compiled declaration. The Def may be
// shared with other instances; it is never mutated through the Set.
func NewSetFromDef(def *Def, optFns ...Option) (*Set, error) {
	o := applyOptions(optFns)

	s := &Set{def: def}
	if o.value != nil {
		f, err := bitflag.New(*o.value)
		if err != nil {
			return nil, err
		}
		s.flags.CopyFrom(f)
	}
	s.Add(o.active...)

	return s, nil
}

// Add enables the given members. Each argument may be a member name, a
// comma-delimited list of names, or a string-encoded power of two used as a
// raw mask. Unresolvable names are silently ignored.
func (s *Set) Add(names ...string) {
	for _, name := range splitNames(names) {
		if mask, ok := s.def.resolve(name); ok {
			s.flags.Enable(mask)
		}
	}
}

// Remove disables the given members, with the same name resolution and
// silent-ignore policy as Add.
func (s *Set) Remove(names ...string) {
	for _, name := range splitNames(names) {
		if mask, ok := s.def.resolve(name); ok {
			s.flags.Disable(mask)
		}
	}
}

// Toggle flips the given members. Only declared member names resolve here;
// unknown names are silently ignored.
func (s *Set) Toggle(names ...string) {
	for _, name := range splitNames(names) {
		if bit, ok := s.def.Bit(name); ok {
			s.flags.Toggle(bit)
		}
	}
}

// Has reports whether the named member is active. Unlike the mutation
// methods, Has is strict: an undeclared name returns ErrUnknownMember.
func (s *Set) Has(name string) (bool, error) {
	bit, ok := s.def.Bit(name)
	if !ok {
		return false, &ErrUnknownMember{Name: name}
	}
	return s.flags.Enabled(bit), nil
}

// HasAny reports whether any of the given members (or raw power-of-two
// masks) is active. Unresolvable names count as inactive.
func (s *Set) HasAny(names ...string) bool {
	for _, name := range names {
		if mask, ok := s.def.resolve(name); ok && s.flags.Enabled(mask) {
			return true
		}
	}
	return false
}

// IsMember reports whether name is a declared member.
func (s *Set) IsMember(name string) bool {
	_, ok := s.def.Bit(name)
	return ok
}

// Members returns all declared member names in declaration order.
func (s *Set) Members() []string { return s.def.Names() }

// ActiveMembers returns the names of all active members in declaration
// order.
func (s *Set) ActiveMembers() []string {
	active := make([]string, 0, len(s.def.names))
	for _, name := range s.def.names {
		if s.flags.Enabled(s.def.bits[name]) {
			active = append(active, name)
		}
	}
	return active
}

// AddMember appends one new member at the next bit slot. Existing bit
// assignments are unaffected; instances sharing the previous declaration
// are unaffected as well.
func (s *Set) AddMember(name string) error {
	next, err := s.def.append(name)
	if err != nil {
		return err
	}
	s.def = next
	return nil
}

// Value returns the raw bit value.
func (s *Set) Value() int64 { return s.flags.Value() }

// SetValue replaces the raw bit value, trusting the caller.
func (s *Set) SetValue(v int64) { s.flags.SetValue(v) }

// Total returns the all-members-active value.
func (s *Set) Total() int64 { return s.def.total }

// IsEmpty reports whether no member is active.
func (s *Set) IsEmpty() bool { return s.flags.IsEmpty() }

// SetAll activates every declared member.
func (s *Set) SetAll() { s.flags.SetValue(s.def.total) }

// Clear deactivates every member.
func (s *Set) Clear() { s.flags.Clear() }

// Equals reports whether both sets share the same declaration and the same
// active members, regardless of activation order.
func (s *Set) Equals(other *Set) bool {
	if other == nil {
		return false
	}
	if !s.def.Equal(other.def) {
		return false
	}
	return sortedJoin(s.ActiveMembers()) == sortedJoin(other.ActiveMembers())
}

func sortedJoin(names []string) string {
	names = slices.Clone(names)
	slices.Sort(names)
	return strings.Join(names, ",")
}

// String renders the active members comma-joined in declaration order.
func (s *Set) String() string {
	return strings.Join(s.ActiveMembers(), ",")
}

// MarshalJSON encodes the set as its String form.
func (s *Set) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(s.String())
}
