package declare

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/enumset"
	"github.com/hupe1980/enumset/codec"
)

func TestSetFromYAML(t *testing.T) {
	doc := []byte(`
members: [read, write, exec]
active: ["read,write"]
`)
	s, err := SetFromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"read", "write"}, s.ActiveMembers())
}

func TestSetFromYAMLInvalid(t *testing.T) {
	_, err := SetFromYAML([]byte(`members: ["bad name"]`))
	var invalid *enumset.ErrInvalidName
	require.ErrorAs(t, err, &invalid)

	_, err = SetFromYAML([]byte(`members: [`))
	require.Error(t, err)
}

func TestBigSetFromYAML(t *testing.T) {
	members := make([]string, enumset.MaxMembers+2)
	for i := range members {
		members[i] = fmt.Sprintf("m%03d", i)
	}
	doc, err := codec.Default.Marshal(Set{Members: members, Active: members[:2]})
	require.NoError(t, err)

	// JSON is a YAML subset, so the same document feeds both loaders.
	b, err := BigSetFromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Shards())
	assert.Equal(t, members[:2], b.ActiveMembers())
}

func TestEnumFromYAML(t *testing.T) {
	doc := []byte(`
values: [new, active, done]
initial: new
`)
	e, err := EnumFromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, "new", e.Value())

	v, err := e.MoveNext()
	require.NoError(t, err)
	assert.Equal(t, "active", v)
}

func TestFromJSON(t *testing.T) {
	s, err := SetFromJSON([]byte(`{"members":["a","b"],"active":["b"]}`), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, s.ActiveMembers())

	b, err := BigSetFromJSON([]byte(`{"members":["a","b"]}`), codec.JSON{})
	require.NoError(t, err)
	assert.True(t, b.IsEmpty())

	e, err := EnumFromJSON([]byte(`{"values":["x","y"],"initial":"y"}`), codec.GoJSON{})
	require.NoError(t, err)
	assert.Equal(t, "y", e.Value())
}

func TestBuildOptions(t *testing.T) {
	d := Enum{Values: []string{"a", "b"}}

	e, err := d.Build(enumset.WithLock())
	require.NoError(t, err)
	assert.ErrorIs(t, e.SetValue("a"), enumset.ErrLocked)
}
