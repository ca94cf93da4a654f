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

// Type interfaces provided by every type descriptor. The set of variants is
// closed: scalar, interface, object, array and enum.
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// TypeWithName and TypeWithDescription are provided by every variant; a
	// descriptor always carries a non-empty name and an optional description.
	TypeWithName
	TypeWithDescription

	// typegraphType is a special mark to indicate a Type. It makes sure that
	// only descriptors defined by this package can be assigned to Type.
	typegraphType()
}

// TypeWithName is implemented by the descriptor of a named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the descriptors that provide
// description.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// LeafType can represent a leaf value where traversal of a hierarchical
// request terminates. Scalar and Enum are the leaf variants.
type LeafType interface {
	Type

	// CoerceResultValue serializes an internal value for return on the wire.
	// Failures are reported with a serialization error.
	CoerceResultValue(value interface{}) (interface{}, error)

	// typegraphLeafType puts a special mark for a leaf type.
	typegraphLeafType()
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar is a leaf type carrying conversion functions between a wire
// representation and an internal representation.
type Scalar interface {
	LeafType

	// CoerceInputValue converts an externally supplied wire value into the
	// scalar's internal representation.
	CoerceInputValue(value interface{}) (interface{}, error)

	// CoerceLiteralValue converts a literal value node into the scalar's
	// internal representation.
	CoerceLiteralValue(value wire.Value) (interface{}, error)

	// typegraphScalarType puts a special mark for a scalar type.
	typegraphScalarType()
}

// ThisIsScalarType is required to be embedded in struct that intends to be a
// Scalar.
type ThisIsScalarType struct{}

// typegraphType implements Type.
func (*ThisIsScalarType) typegraphType() {}

// typegraphLeafType implements LeafType.
func (*ThisIsScalarType) typegraphLeafType() {}

// typegraphScalarType implements Scalar.
func (*ThisIsScalarType) typegraphScalarType() {}

// ScalarResultCoercer serializes an internal value into its wire
// representation. It corresponds to the "serialize" half of a scalar.
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given internal value for return on the
	// wire. It must report failures with an error rather than panicking.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions
// as ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer converts externally supplied values into a scalar's
// internal representation. CoerceInputValue handles wire values
// ("parseValue"); CoerceLiteralValue handles literal value nodes
// ("parseLiteral").
type ScalarInputCoercer interface {
	// CoerceInputValue coerces a wire value supplied by a caller.
	CoerceInputValue(value interface{}) (interface{}, error)

	// CoerceLiteralValue coerces a literal value node supplied by an execution
	// engine.
	CoerceLiteralValue(value wire.Value) (interface{}, error)
}

// ScalarInputCoercerFuncs is an adapter to create a ScalarInputCoercer from
// function values.
type ScalarInputCoercerFuncs struct {
	CoerceInputValueFunc   func(value interface{}) (interface{}, error)
	CoerceLiteralValueFunc func(value wire.Value) (interface{}, error)
}

// CoerceInputValue calls f.CoerceInputValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceInputValue(value interface{}) (interface{}, error) {
	return f.CoerceInputValueFunc(value)
}

// CoerceLiteralValue calls f.CoerceLiteralValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	return f.CoerceLiteralValueFunc(value)
}

// ScalarInputCoercerFuncs implements ScalarInputCoercer.
var _ ScalarInputCoercer = ScalarInputCoercerFuncs{}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// Interface describes a shape through a named set of external fields, without
// a server-computed half.
type Interface interface {
	Type

	// Fields returns the set of external fields that describe the shape.
	Fields() ExternalFieldMap

	// typegraphInterfaceType puts a special mark for an interface type.
	typegraphInterfaceType()
}

// ThisIsInterfaceType is required to be embedded in struct that intends to be
// an Interface.
type ThisIsInterfaceType struct{}

// typegraphType implements Type.
func (*ThisIsInterfaceType) typegraphType() {}

// typegraphInterfaceType implements Interface.
func (*ThisIsInterfaceType) typegraphInterfaceType() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// Object composes an external field set and an internal field set into one
// named type. The two sets never share a field name; NewObject enforces the
// invariant at construction so consumers can rely on it without re-checking.
type Object interface {
	Type

	// ExternalFields returns the caller-supplied half of the object.
	ExternalFields() ExternalFieldMap

	// InternalFields returns the server-computed half of the object.
	InternalFields() InternalFieldMap

	// typegraphObjectType puts a special mark for an object type.
	typegraphObjectType()
}

// ThisIsObjectType is required to be embedded in struct that intends to be an
// Object.
type ThisIsObjectType struct{}

// typegraphType implements Type.
func (*ThisIsObjectType) typegraphType() {}

// typegraphObjectType implements Object.
func (*ThisIsObjectType) typegraphObjectType() {}

//===----------------------------------------------------------------------------------------====//
// Array
//===----------------------------------------------------------------------------------------====//

// Array wraps an item type descriptor. The array itself may be declared
// optional, in which case the whole sequence may be absent from a value of
// the enclosing shape.
type Array interface {
	Type

	// ItemType indicates the type of the items in the array.
	ItemType() Type

	// Optional returns true when the array itself is nullable.
	Optional() bool

	// typegraphArrayType puts a special mark for an array type.
	typegraphArrayType()
}

// ThisIsArrayType is required to be embedded in struct that intends to be an
// Array.
type ThisIsArrayType struct{}

// typegraphType implements Type.
func (*ThisIsArrayType) typegraphType() {}

// typegraphArrayType implements Array.
func (*ThisIsArrayType) typegraphArrayType() {}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumValueMap maps enum value names to their corresponding value definitions
// in an enum type.
type EnumValueMap map[string]EnumValue

// Lookup finds the enum value with given name or returns nil if there's no
// such one.
func (m EnumValueMap) Lookup(name string) EnumValue {
	return m[name]
}

// Enum is a leaf type over a closed set of named literal values.
type Enum interface {
	LeafType

	// Values returns all enum values defined in this Enum type.
	Values() EnumValueMap

	// typegraphEnumType puts a special mark for an enum type.
	typegraphEnumType()
}

// ThisIsEnumType is required to be embedded in struct that intends to be an
// Enum.
type ThisIsEnumType struct{}

// typegraphType implements Type.
func (*ThisIsEnumType) typegraphType() {}

// typegraphLeafType implements LeafType.
func (*ThisIsEnumType) typegraphLeafType() {}

// typegraphEnumType implements Enum.
func (*ThisIsEnumType) typegraphEnumType() {}

// EnumValue provides definition for a value in enum.
type EnumValue interface {
	// Name of enum value; also the literal that represents the value on the
	// wire.
	Name() string

	// Description of the enum value
	Description() string
}

//===------------------------------------------------------------------------------------------===//
// Type Predication
//===------------------------------------------------------------------------------------------===//

// ItemTypeOf returns the given type if it is not an array. Otherwise, return
// the innermost item type of the (possibly nested) array.
func ItemTypeOf(t Type) Type {
	for {
		a, ok := t.(Array)
		if !ok || a == nil {
			return t
		}
		t = a.ItemType()
	}
}

// The following predications are simple wrappers of type assertions to
// corresponding class. This makes the use of predications in "if" easily.

// IsLeafType returns true if the given type is a leaf.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsScalarType returns true if the given type is a Scalar type.
func IsScalarType(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsInterfaceType returns true if the given type is an Interface type.
func IsInterfaceType(t Type) bool {
	_, ok := t.(Interface)
	return ok
}

// IsObjectType returns true if the given type is an Object type.
func IsObjectType(t Type) bool {
	_, ok := t.(Object)
	return ok
}

// IsArrayType returns true if the given type is an Array type.
func IsArrayType(t Type) bool {
	_, ok := t.(Array)
	return ok
}

// IsEnumType returns true if the given type is an Enum type.
func IsEnumType(t Type) bool {
	_, ok := t.(Enum)
	return ok
}
