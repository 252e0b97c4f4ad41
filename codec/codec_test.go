package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
	}

	for _, tt := range tests {
		c, ok := ByName(tt.name)
		assert.Equal(t, tt.ok, ok)
		if ok {
			assert.Equal(t, tt.name, c.Name())
		}
	}
}

func TestCodecsAgree(t *testing.T) {
	type doc struct {
		Members []string `json:"members"`
	}
	in := doc{Members: []string{"a", "b"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(in)
		require.NoError(t, err)

		var out doc
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	}
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	dst, err := GoJSON{}.Append(dst, "x")
	require.NoError(t, err)
	assert.Equal(t, `prefix:"x"`, string(dst))
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, 42)
	assert.Equal(t, "42", string(b))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, func() {})
	})
}
