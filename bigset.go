package enumset

import (
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	gojson "github.com/goccy/go-json"
)

// BigSet is a named bit-set over an arbitrarily long member list. The list
// is chunked into consecutive Set shards of at most MaxMembers each; every
// name-based operation is routed to the owning shard, and the cross-shard
// active view is maintained as a roaring bitmap of global member positions.
//
// Unlike Set, mutation is strict: Add, Remove and Toggle return
// ErrUnknownMember for undeclared names instead of silently ignoring them.
// Raw numeric masks are not accepted; routing is by name only.
type BigSet struct {
	shards  []*Set
	routing map[string]int
	pos     map[string]uint32
	index   []string // position → name
	memo    map[string]bool
	active  *roaring.Bitmap
	logger  *Logger
}

// NewBigSet creates a BigSet over the given ordered member list.
//
// Honored options: WithActive, WithLogger.
func NewBigSet(members []string, optFns ...Option) (*BigSet, error) {
	o := applyOptions(optFns)

	s := &BigSet{
		routing: make(map[string]int, len(members)),
		pos:     make(map[string]uint32, len(members)),
		memo:    make(map[string]bool),
		active:  roaring.New(),
		logger:  o.logger,
	}
	if err := s.validateNew(members); err != nil {
		return nil, err
	}
	s.grow(members)

	if err := s.Add(o.active...); err != nil {
		return nil, err
	}

	return s, nil
}

// validateNew checks that every name is well formed, not yet routed, and
// unique within the batch.
func (s *BigSet) validateNew(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !memberNameRE.MatchString(name) {
			return &ErrInvalidName{Name: name}
		}
		if _, routed := s.routing[name]; routed {
			return &ErrInvalidName{Name: name}
		}
		if _, dup := seen[name]; dup {
			return &ErrInvalidName{Name: name}
		}
		seen[name] = struct{}{}
	}
	return nil
}

// grow chunks pre-validated names into new shards and extends the routing
// table. Existing shards are never repacked: new members always land in
// newly created shards, even when the last shard has free slots.
func (s *BigSet) grow(names []string) {
	for start := 0; start < len(names); start += MaxMembers {
		chunk := names[start:min(start+MaxMembers, len(names))]
		def, err := NewDef(chunk...)
		if err != nil {
			// Unreachable after validateNew; keep the invariant loud.
			panic(err)
		}
		shard, _ := NewSetFromDef(def)

		idx := len(s.shards)
		s.shards = append(s.shards, shard)
		for _, name := range chunk {
			s.routing[name] = idx
			s.pos[name] = uint32(len(s.index))
			s.index = append(s.index, name)
		}
		s.logger.Debug("shard created", "shard", idx, "members", len(chunk))
	}
}

// getSet returns the shard owning name.
func (s *BigSet) getSet(name string) (*Set, bool) {
	idx, ok := s.routing[name]
	if !ok {
		return nil, false
	}
	return s.shards[idx], true
}

// Add activates the given members. Each argument may be a member name or a
// comma-delimited list of names. Undeclared names fail with
// ErrUnknownMember; members preceding the failing name stay activated.
func (s *BigSet) Add(names ...string) error {
	for _, name := range splitNames(names) {
		shard, ok := s.getSet(name)
		if !ok {
			return &ErrUnknownMember{Name: name}
		}
		shard.Add(name)
		s.active.Add(s.pos[name])
	}
	return nil
}

// Remove deactivates the given members. Undeclared names fail with
// ErrUnknownMember.
func (s *BigSet) Remove(names ...string) error {
	for _, name := range splitNames(names) {
		shard, ok := s.getSet(name)
		if !ok {
			return &ErrUnknownMember{Name: name}
		}
		shard.Remove(name)
		s.active.Remove(s.pos[name])
	}
	return nil
}

// Toggle flips the given members. Undeclared names fail with
// ErrUnknownMember.
func (s *BigSet) Toggle(names ...string) error {
	for _, name := range splitNames(names) {
		shard, ok := s.getSet(name)
		if !ok {
			return &ErrUnknownMember{Name: name}
		}
		shard.Toggle(name)
		if on, _ := shard.Has(name); on {
			s.active.Add(s.pos[name])
		} else {
			s.active.Remove(s.pos[name])
		}
	}
	return nil
}

// Has reports whether the named member is active. Undeclared names fail
// with ErrUnknownMember.
func (s *BigSet) Has(name string) (bool, error) {
	shard, ok := s.getSet(name)
	if !ok {
		return false, &ErrUnknownMember{Name: name}
	}
	return shard.Has(name)
}

// IsMember reports whether name is a declared member.
//
// Lookups are memoized per instance. Cached negatives are not invalidated
// by AddMember: a name declared after a missed lookup keeps reporting
// false. Kept for compatibility with existing callers.
// TODO: drop the affected memo entries in AddMember.
func (s *BigSet) IsMember(name string) bool {
	if cached, ok := s.memo[name]; ok {
		return cached
	}
	_, ok := s.routing[name]
	s.memo[name] = ok
	return ok
}

// AddMember appends new members, creating one or more new shards sized to
// hold them. Existing shards and bit assignments are unaffected.
func (s *BigSet) AddMember(names ...string) error {
	names = splitNames(names)
	if err := s.validateNew(names); err != nil {
		return err
	}
	s.grow(names)
	return nil
}

// Members returns all declared member names in declaration order.
func (s *BigSet) Members() []string { return slices.Clone(s.index) }

// ActiveMembers returns the names of all active members, ascending by
// global member position (declaration order across shards).
func (s *BigSet) ActiveMembers() []string {
	out := make([]string, 0, s.active.GetCardinality())
	it := s.active.Iterator()
	for it.HasNext() {
		out = append(out, s.index[it.Next()])
	}
	return out
}

// Bitmap returns a snapshot of the active member positions.
func (s *BigSet) Bitmap() *roaring.Bitmap { return s.active.Clone() }

// Shards returns the number of shards.
func (s *BigSet) Shards() int { return len(s.shards) }

// IsEmpty reports whether no member is active in any shard.
func (s *BigSet) IsEmpty() bool { return s.active.IsEmpty() }

// SetAll activates every declared member in every shard.
func (s *BigSet) SetAll() {
	for _, shard := range s.shards {
		shard.SetAll()
	}
	s.active.AddRange(0, uint64(len(s.index)))
}

// Clear deactivates every member in every shard.
func (s *BigSet) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
	s.active.Clear()
}

// Equals reports whether both sets render the same active-member sequence.
// The comparison is order-sensitive.
func (s *BigSet) Equals(other *BigSet) bool {
	if other == nil {
		return false
	}
	return strings.Join(s.ActiveMembers(), ",") == strings.Join(other.ActiveMembers(), ",")
}

// String renders the active members comma-joined in position order.
func (s *BigSet) String() string {
	return strings.Join(s.ActiveMembers(), ",")
}

// MarshalJSON encodes the set as its String form.
func (s *BigSet) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(s.String())
}
