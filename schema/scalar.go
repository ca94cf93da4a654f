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

import (
	"fmt"

	"github.com/typegraph/typegraph/schema/wire"
)

// defaultScalarInputCoercer is used for a scalar that doesn't provide a
// coercer for processing input values.
type defaultScalarInputCoercer struct {
	scalar *scalar
}

// CoerceInputValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	return value, nil
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	return nil, NewConversionError(
		"coercer for literal values of type %s was not provided", coercer.scalar.Name())
}

// ScalarConfig provides specification to define a scalar type.
type ScalarConfig struct {
	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes an internal value for return on the wire
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses wire and literal values given to the scalar
	// (optional)
	InputCoercer ScalarInputCoercer
}

// scalar is our built-in implementation for Scalar. It is configured with and
// built from ScalarConfig.
type scalar struct {
	ThisIsScalarType

	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (Scalar, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewSchemaBuildError("Must provide name for Scalar.")
	}

	if config.ResultCoercer == nil {
		return nil, NewSchemaBuildError(
			"%v must provide ResultCoercer. If this custom Scalar is also used as an input type, "+
				"ensure InputCoercer is also provided.", config.Name)
	}

	s := &scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
	}

	if config.InputCoercer != nil {
		s.inputCoercer = config.InputCoercer
	} else {
		s.inputCoercer = &defaultScalarInputCoercer{s}
	}

	return s, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics
// on failure instead of returning an error.
func MustNewScalar(config *ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.Name()
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.description
}

// CoerceResultValue implements LeafType.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceInputValue implements Scalar.
func (s *scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceInputValue(value)
}

// CoerceLiteralValue implements Scalar.
func (s *scalar) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	return s.inputCoercer.CoerceLiteralValue(value)
}

// unexpected literal formatting shared by the built-in scalars
func unexpectedLiteralError(typeName string, value wire.Value) error {
	return NewConversionError(
		"%s cannot represent %v: unexpected literal node type `%T`", typeName, value.Interface(), value)
}

// conversionError formats a coercion failure for value against typeName,
// quoting string values for readability.
func conversionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		value = fmt.Sprintf("%q", v)
	}
	return NewConversionError("%s cannot represent %v: %s", typeName, value, reason)
}

// serializationError is the result-side counterpart of conversionError.
func serializationError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		value = fmt.Sprintf("%q", v)
	}
	return NewSerializationError("%s cannot represent %v: %s", typeName, value, reason)
}
