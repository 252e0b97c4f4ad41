package enumset

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked is returned when a transition is attempted on a locked enum.
	ErrLocked = errors.New("enum is locked")

	// ErrVetoed wraps any error returned by a change hook during a
	// transition. The enum is rolled back to its previous value before
	// ErrVetoed reaches the caller; the hook's error is accessible via
	// errors.Unwrap / errors.Is.
	ErrVetoed = errors.New("transition vetoed")

	// ErrDefMismatch is returned when two enums with different declared
	// value lists are compared against each other.
	ErrDefMismatch = errors.New("enums declare different value lists")
)

// ErrInvalidName indicates a member name that does not match the allowed
// pattern [a-zA-Z0-9_-]+, or a duplicate name within one declaration.
type ErrInvalidName struct {
	Name string
}

func (e *ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid member name: %q", e.Name)
}

// ErrUnknownMember indicates a name that is not declared on the set, used
// where strict lookup is required (Set.Has, all BigSet mutations).
type ErrUnknownMember struct {
	Name string
}

func (e *ErrUnknownMember) Error() string {
	return fmt.Sprintf("unknown member: %q", e.Name)
}

// ErrNotAllowed indicates a value outside an enum's declared value list.
type ErrNotAllowed struct {
	Value string
}

func (e *ErrNotAllowed) Error() string {
	return fmt.Sprintf("value %q is not an allowed enum value", e.Value)
}

// ErrCapacity indicates a declaration that exceeds the member ceiling of a
// single set (or shard).
type ErrCapacity struct {
	Count int
	Max   int
}

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("member count %d exceeds capacity %d", e.Count, e.Max)
}
