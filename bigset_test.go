package enumset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberName(i int) string {
	return fmt.Sprintf("m%03d", i)
}

func memberNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = memberName(i)
	}
	return names
}

func TestNewBigSetSharding(t *testing.T) {
	tests := []struct {
		name       string
		members    int
		wantShards int
	}{
		{"Empty", 0, 0},
		{"OneShard", MaxMembers, 1},
		{"Spill", MaxMembers + 1, 2},
		{"Three", 2*MaxMembers + 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewBigSet(memberNames(tt.members))
			require.NoError(t, err)
			assert.Equal(t, tt.wantShards, s.Shards())
			assert.Len(t, s.Members(), tt.members)
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestBigSetRouting(t *testing.T) {
	names := memberNames(3*MaxMembers + 1)
	s, err := NewBigSet(names)
	require.NoError(t, err)

	// Every name routes to exactly one shard.
	for _, name := range names {
		assert.True(t, s.IsMember(name))
	}

	// One activation per shard survives the fold.
	picks := []string{memberName(0), memberName(MaxMembers), memberName(2 * MaxMembers), memberName(3 * MaxMembers)}
	require.NoError(t, s.Add(picks...))
	assert.ElementsMatch(t, picks, s.ActiveMembers())
	assert.False(t, s.IsEmpty())
}

func TestBigSetStrictMutation(t *testing.T) {
	s, err := NewBigSet(memberNames(MaxMembers + 2))
	require.NoError(t, err)

	var unknown *ErrUnknownMember
	require.ErrorAs(t, s.Add("nope"), &unknown)
	assert.Equal(t, "nope", unknown.Name)
	require.ErrorAs(t, s.Remove("nope"), &unknown)
	require.ErrorAs(t, s.Toggle("nope"), &unknown)

	// Raw numeric masks are not routed.
	require.ErrorAs(t, s.Add("2"), &unknown)

	_, err = s.Has("nope")
	require.ErrorAs(t, err, &unknown)
}

func TestBigSetHasAndToggle(t *testing.T) {
	s, err := NewBigSet(memberNames(MaxMembers + 2))
	require.NoError(t, err)

	last := memberName(MaxMembers + 1)
	require.NoError(t, s.Toggle(last))
	on, err := s.Has(last)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, s.Toggle(last))
	on, err = s.Has(last)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestBigSetActivationForms(t *testing.T) {
	names := memberNames(MaxMembers + 2)
	first, last := names[0], names[len(names)-1]

	variadic, err := NewBigSet(names, WithActive(first, last))
	require.NoError(t, err)
	joined, err := NewBigSet(names, WithActive(first+","+last))
	require.NoError(t, err)

	assert.Equal(t, []string{first, last}, variadic.ActiveMembers())
	assert.True(t, variadic.Equals(joined))

	_, err = NewBigSet(names, WithActive("nope"))
	var unknown *ErrUnknownMember
	require.ErrorAs(t, err, &unknown)
}

func TestBigSetFoldOperations(t *testing.T) {
	names := memberNames(2*MaxMembers + 3)
	s, err := NewBigSet(names)
	require.NoError(t, err)

	s.SetAll()
	assert.Equal(t, names, s.ActiveMembers())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, uint64(len(names)), s.Bitmap().GetCardinality())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.ActiveMembers())
}

func TestBigSetAddMemberNewShards(t *testing.T) {
	s, err := NewBigSet(memberNames(2))
	require.NoError(t, err)
	require.Equal(t, 1, s.Shards())

	// New members never repack into the half-empty first shard.
	require.NoError(t, s.AddMember("extra_one", "extra_two"))
	assert.Equal(t, 2, s.Shards())
	assert.Equal(t, append(memberNames(2), "extra_one", "extra_two"), s.Members())

	require.NoError(t, s.Add("extra_two"))
	on, err := s.Has("extra_two")
	require.NoError(t, err)
	assert.True(t, on)

	var invalid *ErrInvalidName
	require.ErrorAs(t, s.AddMember(memberName(0)), &invalid)
	require.ErrorAs(t, s.AddMember("bad name"), &invalid)
}

func TestBigSetIsMemberMemoStaleness(t *testing.T) {
	s, err := NewBigSet(memberNames(2))
	require.NoError(t, err)

	// Miss first, declare afterwards: the cached negative sticks.
	assert.False(t, s.IsMember("late"))
	require.NoError(t, s.AddMember("late"))
	assert.False(t, s.IsMember("late"))

	// Uncached names see the new shard immediately.
	require.NoError(t, s.AddMember("later"))
	assert.True(t, s.IsMember("later"))
}

func TestBigSetEqualsOrdered(t *testing.T) {
	names := memberNames(MaxMembers + 2)

	a, err := NewBigSet(names, WithActive(names[0], names[1]))
	require.NoError(t, err)
	b, err := NewBigSet(names, WithActive(names[1], names[0]))
	require.NoError(t, err)

	// Iteration order is positional, so both render identically.
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	require.NoError(t, b.Remove(names[0]))
	assert.False(t, a.Equals(b))
}

func TestBigSetString(t *testing.T) {
	names := memberNames(MaxMembers + 2)
	s, err := NewBigSet(names, WithActive(names[len(names)-1], names[0]))
	require.NoError(t, err)

	assert.Equal(t, names[0]+","+names[len(names)-1], s.String())

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf("%q", s.String()), string(data))
}
