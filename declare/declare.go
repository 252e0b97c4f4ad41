// Package declare loads set and enum declarations from YAML or JSON
// documents, for member lists provided at runtime rather than compiled in.
package declare

import (
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/enumset"
	"github.com/hupe1980/enumset/codec"
)

// Set declares a named bit-set: its ordered member list and optional
// initial activation. Active entries may themselves be comma-delimited.
type Set struct {
	Members []string `json:"members" yaml:"members"`
	Active  []string `json:"active,omitempty" yaml:"active,omitempty"`
}

// Enum declares a stateful enum: its ordered allowed values and optional
// initial value.
type Enum struct {
	Values  []string `json:"values" yaml:"values"`
	Initial string   `json:"initial,omitempty" yaml:"initial,omitempty"`
}

// Build creates a Set from the declaration. Extra options are applied
// after the declaration's own activation.
func (d Set) Build(optFns ...enumset.Option) (*enumset.Set, error) {
	opts := append([]enumset.Option{enumset.WithActive(d.Active...)}, optFns...)
	return enumset.NewSet(d.Members, opts...)
}

// BuildBig creates a BigSet from the declaration.
func (d Set) BuildBig(optFns ...enumset.Option) (*enumset.BigSet, error) {
	opts := append([]enumset.Option{enumset.WithActive(d.Active...)}, optFns...)
	return enumset.NewBigSet(d.Members, opts...)
}

// Build creates an Enum from the declaration.
func (d Enum) Build(optFns ...enumset.Option) (*enumset.Enum, error) {
	opts := optFns
	if d.Initial != "" {
		opts = append([]enumset.Option{enumset.WithInitial(d.Initial)}, optFns...)
	}
	return enumset.NewEnum(d.Values, opts...)
}

// SetFromYAML parses a Set declaration document and builds it.
func SetFromYAML(data []byte, optFns ...enumset.Option) (*enumset.Set, error) {
	var d Set
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.Build(optFns...)
}

// BigSetFromYAML parses a Set declaration document and builds a BigSet.
func BigSetFromYAML(data []byte, optFns ...enumset.Option) (*enumset.BigSet, error) {
	var d Set
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.BuildBig(optFns...)
}

// EnumFromYAML parses an Enum declaration document and builds it.
func EnumFromYAML(data []byte, optFns ...enumset.Option) (*enumset.Enum, error) {
	var d Enum
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.Build(optFns...)
}

// SetFromJSON parses a Set declaration with c and builds it. A nil codec
// falls back to codec.Default.
func SetFromJSON(data []byte, c codec.Codec, optFns ...enumset.Option) (*enumset.Set, error) {
	if c == nil {
		c = codec.Default
	}
	var d Set
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.Build(optFns...)
}

// BigSetFromJSON parses a Set declaration with c and builds a BigSet.
func BigSetFromJSON(data []byte, c codec.Codec, optFns ...enumset.Option) (*enumset.BigSet, error) {
	if c == nil {
		c = codec.Default
	}
	var d Set
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.BuildBig(optFns...)
}

// EnumFromJSON parses an Enum declaration with c and builds it.
func EnumFromJSON(data []byte, c codec.Codec, optFns ...enumset.Option) (*enumset.Enum, error) {
	if c == nil {
		c = codec.Default
	}
	var d Enum
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d.Build(optFns...)
}
