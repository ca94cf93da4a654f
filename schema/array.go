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

// ArrayConfig provides specification to define an Array type.
type ArrayConfig struct {
	// Name of the defining Array
	Name string

	// Description for the Array type
	Description string

	// Optional marks the array itself as nullable. Absent means false.
	Optional bool

	// ItemType is the descriptor of the item type. Arrays of arrays and arrays
	// of any variant are permitted.
	ItemType Type
}

// array is our built-in implementation for Array. It is configured with and
// built from ArrayConfig.
type array struct {
	ThisIsArrayType

	name        string
	description string
	optional    bool
	itemType    Type
}

var _ Array = (*array)(nil)

// NewArray defines an Array type from an ArrayConfig.
func NewArray(config *ArrayConfig) (Array, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewSchemaBuildError("Must provide name for Array.")
	}

	if config.ItemType == nil {
		return nil, NewSchemaBuildError("Must provide a non-nil item type for Array %s.", config.Name)
	}

	return &array{
		name:        config.Name,
		description: config.Description,
		optional:    config.Optional,
		itemType:    config.ItemType,
	}, nil
}

// MustNewArray is a convenience function equivalent to NewArray but panics on
// failure instead of returning an error.
func MustNewArray(config *ArrayConfig) Array {
	a, err := NewArray(config)
	if err != nil {
		panic(err)
	}
	return a
}

// String implements fmt.Stringer.
func (a *array) String() string {
	return a.Name()
}

// Name implements TypeWithName.
func (a *array) Name() string {
	return a.name
}

// Description implements TypeWithDescription.
func (a *array) Description() string {
	return a.description
}

// ItemType implements Array.
func (a *array) ItemType() Type {
	return a.itemType
}

// Optional implements Array.
func (a *array) Optional() bool {
	return a.optional
}
