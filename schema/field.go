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

//===----------------------------------------------------------------------------------------====//
// External fields
//===----------------------------------------------------------------------------------------====//

// ExternalFields maps field name to its definition when declaring the
// caller-supplied fields of an interface or an object.
type ExternalFields map[string]ExternalFieldConfig

// ExternalFieldConfig provides definition of an externally-supplied field.
type ExternalFieldConfig struct {
	// Description of the defining field
	Description string

	// Type of value held by the field
	Type Type

	// Optional marks the field as omissible. Optionality is a declared
	// contract; it is never inferred from absence of a value at runtime.
	Optional bool
}

// ExternalFieldMap maps field name to the built ExternalField.
type ExternalFieldMap map[string]ExternalField

// buildExternalFieldMap builds an ExternalFieldMap from given ExternalFields.
// The config map is read but never retained, so later mutation of it does not
// affect the built fields.
func buildExternalFieldMap(typeName string, fieldConfigMap ExternalFields) (ExternalFieldMap, error) {
	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(ExternalFieldMap, numFields)
	for name, fieldConfig := range fieldConfigMap {
		if fieldConfig.Type == nil {
			return nil, NewSchemaBuildError(
				"%s must provide a type for external field %q", typeName, name)
		}

		fieldMap[name] = &externalField{
			config: fieldConfig,
			name:   name,
		}
	}

	return fieldMap, nil
}

// ExternalField represents a caller-supplied field in an interface or an
// object. It holds a value of a specific type.
type ExternalField interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value held by the field
	Type() Type

	// Optional returns true when the schema author declared the field
	// omissible.
	Optional() bool
}

// externalField is our built-in implementation for ExternalField.
type externalField struct {
	config ExternalFieldConfig
	name   string
}

var _ ExternalField = (*externalField)(nil)

// Name implements ExternalField.
func (f *externalField) Name() string {
	return f.name
}

// Description implements ExternalField.
func (f *externalField) Description() string {
	return f.config.Description
}

// Type implements ExternalField.
func (f *externalField) Type() Type {
	return f.config.Type
}

// Optional implements ExternalField.
func (f *externalField) Optional() bool {
	return f.config.Optional
}

//===----------------------------------------------------------------------------------------====//
// Internal fields
//===----------------------------------------------------------------------------------------====//

// ResolverHandle is the implementation-defined product of binding an internal
// field. The execution engine that consumes the schema defines what the
// handle means and how it is invoked; this package only stores it and passes
// it through.
type ResolverHandle interface{}

// FieldBinder decides, at schema build time, how an internal field will be
// resolved. It receives the field's declared type and optionality as
// configuration and returns the handle used later to produce the field's
// value.
type FieldBinder interface {
	Bind(t Type, optional bool) (ResolverHandle, error)
}

// FieldBinderFunc is an adapter to allow the use of ordinary functions as
// FieldBinder.
type FieldBinderFunc func(t Type, optional bool) (ResolverHandle, error)

// Bind calls f(t, optional).
func (f FieldBinderFunc) Bind(t Type, optional bool) (ResolverHandle, error) {
	return f(t, optional)
}

// FieldBinderFunc implements FieldBinder.
var _ FieldBinder = (FieldBinderFunc)(nil)

// InternalFields maps field name to its definition when declaring the
// server-computed fields of an object.
type InternalFields map[string]InternalFieldConfig

// InternalFieldConfig provides definition of a server-computed field.
type InternalFieldConfig struct {
	// Description of the defining field
	Description string

	// Type of value produced for the field
	Type Type

	// Optional marks the field as omissible in the object's value shape.
	Optional bool

	// Binder is invoked once while the enclosing object is built, with the
	// declared Type and Optional above; the handle it returns is stored on the
	// built field.
	Binder FieldBinder
}

// InternalFieldMap maps field name to the built InternalField.
type InternalFieldMap map[string]InternalField

// buildInternalFieldMap builds an InternalFieldMap from given InternalFields,
// invoking each field's binder. A binder error aborts the build.
func buildInternalFieldMap(typeName string, fieldConfigMap InternalFields) (InternalFieldMap, error) {
	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(InternalFieldMap, numFields)
	for name, fieldConfig := range fieldConfigMap {
		if fieldConfig.Type == nil {
			return nil, NewSchemaBuildError(
				"%s must provide a type for internal field %q", typeName, name)
		}
		if fieldConfig.Binder == nil {
			return nil, NewSchemaBuildError(
				"%s must provide a binder for internal field %q", typeName, name)
		}

		handle, err := fieldConfig.Binder.Bind(fieldConfig.Type, fieldConfig.Optional)
		if err != nil {
			return nil, WrapErrorf(err, "failed to bind internal field %q in %s", name, typeName)
		}

		fieldMap[name] = &internalField{
			config: fieldConfig,
			name:   name,
			handle: handle,
		}
	}

	return fieldMap, nil
}

// InternalField represents a server-computed field in an object.
type InternalField interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value produced for the field
	Type() Type

	// Optional returns true when the schema author declared the field
	// omissible.
	Optional() bool

	// Handle returns the resolver handle produced by the field's binder during
	// object construction.
	Handle() ResolverHandle
}

// internalField is our built-in implementation for InternalField.
type internalField struct {
	config InternalFieldConfig
	name   string
	handle ResolverHandle
}

var _ InternalField = (*internalField)(nil)

// Name implements InternalField.
func (f *internalField) Name() string {
	return f.name
}

// Description implements InternalField.
func (f *internalField) Description() string {
	return f.config.Description
}

// Type implements InternalField.
func (f *internalField) Type() Type {
	return f.config.Type
}

// Optional implements InternalField.
func (f *internalField) Optional() bool {
	return f.config.Optional
}

// Handle implements InternalField.
func (f *internalField) Handle() ResolverHandle {
	return f.handle
}
