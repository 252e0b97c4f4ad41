// Package bitflag provides the fixed-width flag container underlying the
// enumset set types.
//
// Flags wraps one int64 and mutates it in place. Masks are conventionally a
// single power of two; enable and disable are state-gated arithmetic, which
// makes both idempotent for such masks. Bit-index operations do not bounds
// check against the native width; that is the caller's responsibility.
package bitflag

import "errors"

// Width is the number of usable bit positions. One bit of the int64
// backing value is reserved for the sign.
const Width = 63

// ErrNegativeValue is returned when a Flags is created with a negative
// initial value.
var ErrNegativeValue = errors.New("flag value must not be negative")

// Flags is a mutable container of up to Width boolean flags.
//
// The zero value is empty and ready to use.
type Flags struct {
	value int64
}

// New creates a Flags holding the given initial value.
func New(v int64) (*Flags, error) {
	if v < 0 {
		return nil, ErrNegativeValue
	}
	return &Flags{value: v}, nil
}

// Value returns the current raw value.
func (f *Flags) Value() int64 { return f.value }

// SetValue replaces the current value.
//
// Unlike New, SetValue trusts the caller and performs no sign check.
func (f *Flags) SetValue(v int64) { f.value = v }

// CopyFrom copies another instance's value.
func (f *Flags) CopyFrom(other *Flags) { f.value = other.value }

// Clear resets the value to 0.
func (f *Flags) Clear() { f.value = 0 }

// IsEmpty returns true if no flag is enabled.
func (f *Flags) IsEmpty() bool { return f.value == 0 }

// Enabled reports whether every bit of mask is enabled.
func (f *Flags) Enabled(mask int64) bool { return f.value&mask == mask }

// Enable turns mask on. No-op if mask is already enabled.
func (f *Flags) Enable(mask int64) {
	if !f.Enabled(mask) {
		f.value += mask
	}
}

// Disable turns mask off. No-op if mask is not enabled.
func (f *Flags) Disable(mask int64) {
	if f.Enabled(mask) {
		f.value -= mask
	}
}

// Toggle flips mask.
func (f *Flags) Toggle(mask int64) {
	if f.Enabled(mask) {
		f.value -= mask
	} else {
		f.value += mask
	}
}

// EnabledAt reports whether the flag at bit position i is enabled.
func (f *Flags) EnabledAt(i uint) bool { return f.Enabled(1 << i) }

// EnableAt turns on the flag at bit position i.
func (f *Flags) EnableAt(i uint) { f.Enable(1 << i) }

// DisableAt turns off the flag at bit position i.
func (f *Flags) DisableAt(i uint) { f.Disable(1 << i) }

// ToggleAt flips the flag at bit position i.
func (f *Flags) ToggleAt(i uint) { f.Toggle(1 << i) }
