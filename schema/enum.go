/**
 * Copyright (c) 2026, The Typegraph Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

import "reflect"

// EnumValueDefinitionMap maps a literal value name to its definition when
// declaring an enum. The key set is the closed value set of the enum.
type EnumValueDefinitionMap map[string]EnumValueDefinition

// EnumValueDefinition carries the optional per-value documentation.
type EnumValueDefinition struct {
	// Description of the enum value
	Description string
}

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the enum type
	Name string

	// Description for the enum type
	Description string

	// Values to be defined in the enum. An empty set is permitted but denotes
	// an uninhabited enum; layers built atop this model should flag it as a
	// likely authoring error.
	Values EnumValueDefinitionMap
}

// enumValue is our built-in implementation for EnumValue.
type enumValue struct {
	name        string
	description string
}

var _ EnumValue = (*enumValue)(nil)

// Name implements EnumValue.
func (v *enumValue) Name() string {
	return v.name
}

// Description implements EnumValue.
func (v *enumValue) Description() string {
	return v.description
}

// enum is our built-in implementation for Enum. It is configured with and
// built from EnumConfig.
type enum struct {
	ThisIsEnumType

	name        string
	description string
	values      EnumValueMap
}

var _ Enum = (*enum)(nil)

// NewEnum defines an Enum type from an EnumConfig. Its value set is exactly
// the key set of config.Values; duplicate names are structurally impossible.
func NewEnum(config *EnumConfig) (Enum, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewSchemaBuildError("Must provide name for Enum.")
	}

	var values EnumValueMap
	if len(config.Values) > 0 {
		values = make(EnumValueMap, len(config.Values))
		for name, def := range config.Values {
			values[name] = &enumValue{
				name:        name,
				description: def.Description,
			}
		}
	}

	return &enum{
		name:        config.Name,
		description: config.Description,
		values:      values,
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on
// failure instead of returning an error.
func MustNewEnum(config *EnumConfig) Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// String implements fmt.Stringer.
func (e *enum) String() string {
	return e.Name()
}

// Name implements TypeWithName.
func (e *enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *enum) Description() string {
	return e.description
}

// Values implements Enum.
func (e *enum) Values() EnumValueMap {
	return e.values
}

// CoerceResultValue implements LeafType. It expects a string-like internal
// value and returns the name of the enum value that matches it.
func (e *enum) CoerceResultValue(value interface{}) (interface{}, error) {
	// Quick path for a string.
	name, ok := value.(string)
	if !ok {
		// Maybe value is some type that aliases a string.
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.String {
			// We have no idea.
			return nil, serializationError(e.name, value, "not an enum value name")
		}
		name = v.String()
	}

	if v := e.values.Lookup(name); v != nil {
		return v.Name(), nil
	}

	return nil, serializationError(e.name, value, "no enum value matches the name")
}
