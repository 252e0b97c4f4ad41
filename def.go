package enumset

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/enumset/bitflag"
)

// MaxMembers is the member ceiling of one Set (or one BigSet shard).
const MaxMembers = bitflag.Width

var memberNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Def is a compiled set declaration: the ordered member list with its bit
// assignment. Bits are assigned 1, 2, 4, … in declaration order and never
// reassigned.
//
// A Def is immutable after construction and may be shared across any number
// of Set instances; sharing amortizes the compile cost without introducing
// shared mutable state.
type Def struct {
	names []string
	bits  map[string]int64
	total int64
}

// NewDef compiles an ordered member list into a Def.
//
// Names must match [a-zA-Z0-9_-]+ and be unique within the declaration;
// at most MaxMembers names are accepted.
func NewDef(names ...string) (*Def, error) {
	if len(names) > MaxMembers {
		return nil, &ErrCapacity{Count: len(names), Max: MaxMembers}
	}
	d := &Def{
		names: slices.Clone(names),
		bits:  make(map[string]int64, len(names)),
	}
	for i, name := range names {
		if !memberNameRE.MatchString(name) {
			return nil, &ErrInvalidName{Name: name}
		}
		if _, dup := d.bits[name]; dup {
			return nil, &ErrInvalidName{Name: name}
		}
		bit := int64(1) << uint(i)
		d.bits[name] = bit
		d.total += bit
	}
	return d, nil
}

// Names returns the declared member names in declaration order.
func (d *Def) Names() []string { return slices.Clone(d.names) }

// Len returns the number of declared members.
func (d *Def) Len() int { return len(d.names) }

// Total returns the all-members-enabled value.
func (d *Def) Total() int64 { return d.total }

// Bit returns the bit value assigned to name.
func (d *Def) Bit(name string) (int64, bool) {
	bit, ok := d.bits[name]
	return bit, ok
}

// Equal reports whether both declarations list the same members in the
// same order.
func (d *Def) Equal(other *Def) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return slices.Equal(d.names, other.names)
}

// append returns a new Def extended by one member at the next bit slot.
// The receiver is left untouched so instances sharing it are unaffected.
func (d *Def) append(name string) (*Def, error) {
	if !memberNameRE.MatchString(name) {
		return nil, &ErrInvalidName{Name: name}
	}
	if _, dup := d.bits[name]; dup {
		return nil, &ErrInvalidName{Name: name}
	}
	if len(d.names) >= MaxMembers {
		return nil, &ErrCapacity{Count: len(d.names) + 1, Max: MaxMembers}
	}
	next := &Def{
		names: append(slices.Clone(d.names), name),
		bits:  make(map[string]int64, len(d.names)+1),
		total: d.total,
	}
	for k, v := range d.bits {
		next.bits[k] = v
	}
	bit := int64(1) << uint(len(d.names))
	next.bits[name] = bit
	next.total += bit
	return next, nil
}

// resolve maps a name to its mask. A string-encoded integer that is itself
// a power of two resolves to that raw value independent of membership; this
// is a compatibility path used by Add, Remove and HasAny.
func (d *Def) resolve(name string) (int64, bool) {
	if bit, ok := d.bits[name]; ok {
		return bit, true
	}
	n, err := strconv.ParseInt(name, 10, 64)
	if err == nil && n > 0 && n&(n-1) == 0 {
		return n, true
	}
	return 0, false
}

// splitNames normalizes an activation list: each element may itself be a
// comma-delimited string; empty fragments are dropped. Variadic names, a
// spread slice and one joined string all normalize to the same result.
func splitNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, raw := range names {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
