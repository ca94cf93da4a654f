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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields describing the shape; all caller-supplied
	Fields ExternalFields
}

// iface is our built-in implementation for Interface. It is configured with
// and built from InterfaceConfig.
type iface struct {
	ThisIsInterfaceType

	name        string
	description string
	fields      ExternalFieldMap
}

var _ Interface = (*iface)(nil)

// NewInterface defines an Interface type from an InterfaceConfig. Field-name
// uniqueness needs no check beyond what the config map already enforces.
func NewInterface(config *InterfaceConfig) (Interface, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewSchemaBuildError("Must provide name for Interface.")
	}

	fields, err := buildExternalFieldMap(config.Name, config.Fields)
	if err != nil {
		return nil, err
	}

	return &iface{
		name:        config.Name,
		description: config.Description,
		fields:      fields,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but
// panics on failure instead of returning an error.
func MustNewInterface(config *InterfaceConfig) Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// String implements fmt.Stringer.
func (i *iface) String() string {
	return i.Name()
}

// Name implements TypeWithName.
func (i *iface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *iface) Description() string {
	return i.description
}

// Fields implements Interface.
func (i *iface) Fields() ExternalFieldMap {
	return i.fields
}
