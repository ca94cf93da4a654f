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

import "sort"

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// ExternalFields are supplied by callers.
	ExternalFields ExternalFields

	// InternalFields are computed by server-side logic bound at schema build
	// time.
	InternalFields InternalFields
}

// object is our built-in implementation for Object. It is configured with and
// built from ObjectConfig.
type object struct {
	ThisIsObjectType

	name           string
	description    string
	externalFields ExternalFieldMap
	internalFields InternalFieldMap
}

var _ Object = (*object)(nil)

// NewObject defines an Object type from an ObjectConfig. It fails with a
// duplicate-field-name error when any field name appears in both the external
// and the internal field map; this is the only cross-map invariant enforced
// by the package and it is enforced here, at construction, not at use.
func NewObject(config *ObjectConfig) (Object, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewSchemaBuildError("Must provide name for Object.")
	}

	if duplicates := duplicateFieldNames(config.ExternalFields, config.InternalFields); len(duplicates) > 0 {
		return nil, NewDuplicateFieldNameError(config.Name, duplicates)
	}

	externalFields, err := buildExternalFieldMap(config.Name, config.ExternalFields)
	if err != nil {
		return nil, err
	}

	// Binders run here; a binder error means no object is observable.
	internalFields, err := buildInternalFieldMap(config.Name, config.InternalFields)
	if err != nil {
		return nil, err
	}

	return &object{
		name:           config.Name,
		description:    config.Description,
		externalFields: externalFields,
		internalFields: internalFields,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics
// on failure instead of returning an error.
func MustNewObject(config *ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// duplicateFieldNames returns the names declared in both field maps, sorted
// for stable reporting.
func duplicateFieldNames(external ExternalFields, internal InternalFields) []string {
	if len(external) == 0 || len(internal) == 0 {
		return nil
	}

	var duplicates []string
	for name := range internal {
		if _, exists := external[name]; exists {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return o.Name()
}

// Name implements TypeWithName.
func (o *object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *object) Description() string {
	return o.description
}

// ExternalFields implements Object.
func (o *object) ExternalFields() ExternalFieldMap {
	return o.externalFields
}

// InternalFields implements Object.
func (o *object) InternalFields() InternalFieldMap {
	return o.internalFields
}
