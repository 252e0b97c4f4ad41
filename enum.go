package enumset

import (
	"cmp"
	"fmt"
	"slices"

	gojson "github.com/goccy/go-json"
)

// ChangeHook observes an enum transition from one value to another. A
// non-nil error vetoes the transition: the enum rolls back to its previous
// value and the error is returned to the caller wrapped in ErrVetoed.
type ChangeHook func(e *Enum, from, to string) error

// Enum is a single mutable value selected from a fixed ordered list of
// allowed values, usable as a lightweight state machine. Any declared value
// may follow any other; hooks may veto individual transitions.
//
// Successful transitions are recorded twice: the change log keeps the set
// of direct from→to edges, the history keeps every reached value in order.
type Enum struct {
	values    []string
	index     map[string]int
	current   string
	hasSet    bool
	locked    bool
	onChange  ChangeHook
	listeners []ChangeHook
	log       map[string]map[string]bool
	history   []string
	logger    *Logger
}

// NewEnum creates an Enum over the given ordered value list.
//
// Honored options: WithInitial, WithOnChange, WithListener, WithLock,
// WithLogger. The initial value must be a declared value; assigning it is
// not a transition (no log entry, no hook invocation).
func NewEnum(values []string, optFns ...Option) (*Enum, error) {
	o := applyOptions(optFns)

	e := &Enum{
		values:    slices.Clone(values),
		index:     make(map[string]int, len(values)),
		onChange:  o.onChange,
		listeners: slices.Clone(o.listeners),
		log:       make(map[string]map[string]bool),
		logger:    o.logger,
	}
	for i, v := range values {
		if _, dup := e.index[v]; dup {
			return nil, &ErrInvalidName{Name: v}
		}
		e.index[v] = i
	}

	if o.hasInit {
		if _, ok := e.index[o.initial]; !ok {
			return nil, &ErrNotAllowed{Value: o.initial}
		}
		e.current = o.initial
		e.hasSet = true
	}
	if o.locked {
		e.Lock()
	}

	return e, nil
}

// Value returns the current value, or "" before the first assignment.
func (e *Enum) Value() string { return e.current }

// Values returns the declared value list in declaration order.
func (e *Enum) Values() []string { return slices.Clone(e.values) }

// Index returns the position of v in the declared value list, or -1 if v
// is not declared.
func (e *Enum) Index(v string) int {
	if i, ok := e.index[v]; ok {
		return i
	}
	return -1
}

// SetValue transitions the enum to target.
//
// Setting the current value again is a no-op: no log entry, no hook call.
// Otherwise the value is updated and logged, then the WithOnChange hook and
// every listener run in order. If any of them returns an error the
// transition is rolled back completely, including the just-added log and
// history entries, and the error is returned wrapped in ErrVetoed.
func (e *Enum) SetValue(target string) error {
	if e.locked && e.hasSet {
		return ErrLocked
	}
	if _, ok := e.index[target]; !ok {
		return &ErrNotAllowed{Value: target}
	}
	if target == e.current {
		return nil
	}

	old := e.current
	oldHasSet := e.hasSet
	e.current = target
	e.hasSet = true

	edges, ok := e.log[old]
	if !ok {
		edges = make(map[string]bool)
		e.log[old] = edges
	}
	edgeExisted := edges[target]
	edges[target] = true
	e.history = append(e.history, target)

	if err := e.notify(old, target); err != nil {
		e.current = old
		e.hasSet = oldHasSet
		if !edgeExisted {
			delete(edges, target)
			if len(edges) == 0 {
				delete(e.log, old)
			}
		}
		e.history = e.history[:len(e.history)-1]

		err = fmt.Errorf("%w: %w", ErrVetoed, err)
		e.logger.LogTransition(old, target, err)
		return err
	}

	e.logger.LogTransition(old, target, nil)
	return nil
}

// notify runs the enum's own hook, then every listener, in order.
func (e *Enum) notify(from, to string) error {
	if e.onChange != nil {
		if err := e.onChange(e, from, to); err != nil {
			return err
		}
	}
	for _, h := range e.listeners {
		if err := h(e, from, to); err != nil {
			return err
		}
	}
	return nil
}

// AddListener registers a change listener behind any existing ones.
func (e *Enum) AddListener(h ChangeHook) {
	e.listeners = append(e.listeners, h)
}

// MoveNext transitions to the next declared value and returns the value in
// effect afterwards. At the last value it is a no-op; an unset enum moves
// to the first value. Hooks may still veto the underlying transition.
func (e *Enum) MoveNext() (string, error) {
	i := e.Index(e.current)
	if i+1 >= len(e.values) {
		return e.current, nil
	}
	if err := e.SetValue(e.values[i+1]); err != nil {
		return e.current, err
	}
	return e.current, nil
}

// MovePrevious transitions to the previous declared value and returns the
// value in effect afterwards. At the first value (or unset) it is a no-op.
func (e *Enum) MovePrevious() (string, error) {
	i := e.Index(e.current)
	if i-1 < 0 {
		return e.current, nil
	}
	if err := e.SetValue(e.values[i-1]); err != nil {
		return e.current, err
	}
	return e.current, nil
}

// Lock freezes the enum at its current (possibly unset) value; every later
// SetValue fails with ErrLocked.
func (e *Enum) Lock() {
	e.locked = true
	e.hasSet = true
}

// Locked reports whether the enum is locked.
func (e *Enum) Locked() bool { return e.locked }

// Compare orders two enums by the index of their current values. Both must
// declare the same value list; otherwise ErrDefMismatch is returned.
func (e *Enum) Compare(other *Enum) (int, error) {
	if other == nil || !slices.Equal(e.values, other.values) {
		return 0, ErrDefMismatch
	}
	return cmp.Compare(e.Index(e.current), other.Index(other.current)), nil
}

// Less reports whether e's current value precedes other's.
func (e *Enum) Less(other *Enum) (bool, error) {
	c, err := e.Compare(other)
	return c < 0, err
}

// Greater reports whether e's current value follows other's.
func (e *Enum) Greater(other *Enum) (bool, error) {
	c, err := e.Compare(other)
	return c > 0, err
}

// CompareValue orders the current value against a raw value by declared
// index. Unlike Compare it never fails: undeclared values index as -1.
func (e *Enum) CompareValue(v string) int {
	return cmp.Compare(e.Index(e.current), e.Index(v))
}

// LessValue reports whether the current value precedes v.
func (e *Enum) LessValue(v string) bool { return e.CompareValue(v) < 0 }

// GreaterValue reports whether the current value follows v.
func (e *Enum) GreaterValue(v string) bool { return e.CompareValue(v) > 0 }

// Changes returns every successfully reached value in transition order.
func (e *Enum) Changes() []string { return slices.Clone(e.history) }

// ChangedTo reports whether v was ever reached by a transition.
func (e *Enum) ChangedTo(v string) bool {
	return slices.Contains(e.history, v)
}

// ChangedFromTo reports whether the enum went from one value to another.
//
// In strict mode a direct from→to transition must have been logged. In
// loose mode it is enough that from was departed from at some point and to
// was reached at some point, not necessarily connected.
func (e *Enum) ChangedFromTo(from, to string, strict bool) bool {
	if strict {
		return e.log[from][to]
	}
	return len(e.log[from]) > 0 && e.ChangedTo(to)
}

// String returns the current value.
func (e *Enum) String() string { return e.current }

// MarshalJSON encodes the enum as its bare current value, so any JSON
// encoder renders it as a plain string.
func (e *Enum) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(e.current)
}
