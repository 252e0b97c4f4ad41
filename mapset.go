package enumset

// MapMember is one (name, value) pair of a MapSet declaration.
type MapMember[T any] struct {
	Name  string
	Value T
}

// MapSet is a Set whose members carry an attached value. The set half
// behaves exactly like Set; the attached values do not influence bit
// assignment or activation.
type MapSet[T any] struct {
	Set
	vals map[string]T
}

// NewMapSet creates a MapSet from an ordered list of (name, value) pairs.
//
// Honored options: WithActive, WithValue.
func NewMapSet[T any](members []MapMember[T], optFns ...Option) (*MapSet[T], error) {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	base, err := NewSet(names, optFns...)
	if err != nil {
		return nil, err
	}

	m := &MapSet[T]{
		Set:  *base,
		vals: make(map[string]T, len(members)),
	}
	for _, mm := range members {
		m.vals[mm.Name] = mm.Value
	}
	return m, nil
}

// AddMember appends one new member with its attached value at the next bit
// slot.
func (m *MapSet[T]) AddMember(name string, value T) error {
	if err := m.Set.AddMember(name); err != nil {
		return err
	}
	m.vals[name] = value
	return nil
}

// Get returns the value attached to the named member.
func (m *MapSet[T]) Get(name string) (T, bool) {
	v, ok := m.vals[name]
	return v, ok
}

// ActiveValues returns the attached values of all active members in
// declaration order.
func (m *MapSet[T]) ActiveValues() []T {
	active := m.ActiveMembers()
	out := make([]T, 0, len(active))
	for _, name := range active {
		out = append(out, m.vals[name])
	}
	return out
}
