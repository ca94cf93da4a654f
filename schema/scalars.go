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
	"math"
	"strconv"

	"github.com/typegraph/typegraph/schema/wire"
)

// The "type of internal value" for each built-in scalar are listed as
// follows,
//
// +---------+---------------------------------+
// | Scalar  | Go Type ("internal value type") |
// +---------+---------------------------------+
// | Int     | int                             |
// | Float   | float64                         |
// | String  | string                          |
// | Boolean | bool                            |
// | ID      | string                          |
// +---------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by
// CoerceInputValue and CoerceLiteralValue is fixed to the one given in the
// table for each type. Therefore, for example, when you receive an Int input,
// you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger       string = "not an integer"
	coercionErrorIntegerTooLarge         = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall         = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric              = "not a numeric value"
	coercionErrorNonFiniteNumber         = "not a finite numeric value"
	coercionErrorNonString               = "not a string value"
	coercionErrorNonBoolean              = "not a boolean value"
	coercionErrorNonID                   = "not a valid ID value"
)

// asInt64 reports value as an int64 when it has a signed integer type.
func asInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// asUint64 reports value as a uint64 when it has an unsigned integer type.
func asUint64(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	}
	return 0, false
}

// asFloat64 reports value as a float64 when it has a floating point type.
func asFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// The Int scalar type represents a signed 32-bit numeric non-fractional
// value. Its internal representation is the Go "int" with the 32-bit range
// enforced on every conversion.

// intCoercer implements input coercion and result coercion for the Int type.
type intCoercer struct{}

var (
	_ ScalarResultCoercer = intCoercer{}
	_ ScalarInputCoercer  = intCoercer{}
)

func (coercer intCoercer) coerceSignedInteger(value int64) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, conversionError("Int", value, coercionErrorIntegerTooLarge)
	} else if value < int64(math.MinInt32) {
		return nil, conversionError("Int", value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

func (coercer intCoercer) coerceUnsignedInteger(value uint64) (interface{}, error) {
	if value > uint64(math.MaxInt32) {
		return nil, conversionError("Int", value, coercionErrorIntegerTooLarge)
	}
	return int(value), nil
}

// CoerceResultValue implements ScalarResultCoercer. Result coercion is more
// permissive than input coercion: booleans, integral floats and numeric
// strings are representable.
func (coercer intCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil

	case string:
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, serializationError("Int", v, coercionErrorNonInteger)
		}
		return int(parsed), nil
	}

	if i, ok := asInt64(value); ok {
		result, err := coercer.coerceSignedInteger(i)
		if err != nil {
			return nil, serializationError("Int", value, coercionErrorNonInteger)
		}
		return result, nil
	}
	if u, ok := asUint64(value); ok {
		result, err := coercer.coerceUnsignedInteger(u)
		if err != nil {
			return nil, serializationError("Int", value, coercionErrorNonInteger)
		}
		return result, nil
	}
	if f, ok := asFloat64(value); ok {
		// Make sure the conversion is lossless.
		intValue := int32(f)
		if float64(intValue) != f {
			return nil, serializationError("Int", value, coercionErrorNonInteger)
		}
		return int(intValue), nil
	}

	return nil, serializationError("Int", value, coercionErrorNonInteger)
}

// CoerceInputValue implements ScalarInputCoercer. Input coercion only accepts
// integer values.
func (coercer intCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	if i, ok := asInt64(value); ok {
		return coercer.coerceSignedInteger(i)
	}
	if u, ok := asUint64(value); ok {
		return coercer.coerceUnsignedInteger(u)
	}
	return nil, conversionError("Int", value, coercionErrorNonInteger)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (coercer intCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	if v, ok := value.(wire.IntValue); ok {
		return coercer.coerceSignedInteger(v.Value)
	}
	return nil, unexpectedLiteralError("Int", value)
}

var intTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: intCoercer{},
	InputCoercer:  intCoercer{},
})

// Int returns the built-in Int type descriptor.
func Int() Scalar {
	return intTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// The Float scalar type represents a double-precision fractional value. Its
// internal representation is the Go "float64".

// floatCoercer implements input coercion and result coercion for the Float
// type.
type floatCoercer struct{}

var (
	_ ScalarResultCoercer = floatCoercer{}
	_ ScalarInputCoercer  = floatCoercer{}
)

func (coercer floatCoercer) coerceFloat(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, conversionError("Float", value, coercionErrorNonFiniteNumber)
	}
	return value, nil
}

func (coercer floatCoercer) coerceNumeric(value interface{}) (interface{}, bool, error) {
	if f, ok := asFloat64(value); ok {
		result, err := coercer.coerceFloat(f)
		return result, true, err
	}
	if i, ok := asInt64(value); ok {
		result, err := coercer.coerceFloat(float64(i))
		return result, true, err
	}
	if u, ok := asUint64(value); ok {
		result, err := coercer.coerceFloat(float64(u))
		return result, true, err
	}
	return nil, false, nil
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer floatCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return float64(1), nil
		}
		return float64(0), nil

	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, serializationError("Float", v, coercionErrorNonNumeric)
		}
		return parsed, nil
	}

	if result, ok, err := coercer.coerceNumeric(value); ok {
		if err != nil {
			return nil, serializationError("Float", value, coercionErrorNonFiniteNumber)
		}
		return result, nil
	}
	return nil, serializationError("Float", value, coercionErrorNonNumeric)
}

// CoerceInputValue implements ScalarInputCoercer. Input coercion only accepts
// numeric values.
func (coercer floatCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	if result, ok, err := coercer.coerceNumeric(value); ok {
		return result, err
	}
	return nil, conversionError("Float", value, coercionErrorNonNumeric)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (coercer floatCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	switch v := value.(type) {
	case wire.IntValue:
		return coercer.coerceFloat(float64(v.Value))
	case wire.FloatValue:
		return coercer.coerceFloat(v.Value)
	}
	return nil, unexpectedLiteralError("Float", value)
}

var floatTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by IEEE 754.",
	ResultCoercer: floatCoercer{},
	InputCoercer:  floatCoercer{},
})

// Float returns the built-in Float type descriptor.
func Float() Scalar {
	return floatTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// The String scalar type represents textual data. Its internal representation
// is the Go "string".

// stringCoercer implements input coercion and result coercion for the String
// type.
type stringCoercer struct{}

var (
	_ ScalarResultCoercer = stringCoercer{}
	_ ScalarInputCoercer  = stringCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer.
func (stringCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	}

	if i, ok := asInt64(value); ok {
		return strconv.FormatInt(i, 10), nil
	}
	if u, ok := asUint64(value); ok {
		return strconv.FormatUint(u, 10), nil
	}
	if f, ok := asFloat64(value); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}

	return nil, serializationError("String", value, coercionErrorNonString)
}

// CoerceInputValue implements ScalarInputCoercer. Input coercion only accepts
// string values.
func (stringCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, conversionError("String", value, coercionErrorNonString)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (stringCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	if v, ok := value.(wire.StringValue); ok {
		return v.Value, nil
	}
	return nil, unexpectedLiteralError("String", value)
}

var stringTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used to represent free-form " +
		"human-readable text.",
	ResultCoercer: stringCoercer{},
	InputCoercer:  stringCoercer{},
})

// String returns the built-in String type descriptor.
func String() Scalar {
	return stringTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// The Boolean scalar type represents true or false. Its internal
// representation is the Go "bool".

// booleanCoercer implements input coercion and result coercion for the
// Boolean type.
type booleanCoercer struct{}

var (
	_ ScalarResultCoercer = booleanCoercer{}
	_ ScalarInputCoercer  = booleanCoercer{}
)

// CoerceResultValue implements ScalarResultCoercer. Numeric result values are
// representable: non-zero serializes to true.
func (booleanCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}

	if i, ok := asInt64(value); ok {
		return i != 0, nil
	}
	if u, ok := asUint64(value); ok {
		return u != 0, nil
	}
	if f, ok := asFloat64(value); ok {
		return f != 0, nil
	}

	return nil, serializationError("Boolean", value, coercionErrorNonBoolean)
}

// CoerceInputValue implements ScalarInputCoercer. Input coercion only accepts
// boolean values.
func (booleanCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, conversionError("Boolean", value, coercionErrorNonBoolean)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (booleanCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	if v, ok := value.(wire.BooleanValue); ok {
		return v.Value, nil
	}
	return nil, unexpectedLiteralError("Boolean", value)
}

var booleanTypeInstance = MustNewScalar(&ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: booleanCoercer{},
	InputCoercer:  booleanCoercer{},
})

// Boolean returns the built-in Boolean type descriptor.
func Boolean() Scalar {
	return booleanTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// The ID scalar type represents a unique identifier. It serializes the same
// way as a String but accepts integer wire values as well. Its internal
// representation is the Go "string".

// idCoercer implements input coercion and result coercion for the ID type.
type idCoercer struct{}

var (
	_ ScalarResultCoercer = idCoercer{}
	_ ScalarInputCoercer  = idCoercer{}
)

func (idCoercer) coerce(value interface{}) (interface{}, bool) {
	if v, ok := value.(string); ok {
		return v, true
	}
	if i, ok := asInt64(value); ok {
		return strconv.FormatInt(i, 10), true
	}
	if u, ok := asUint64(value); ok {
		return strconv.FormatUint(u, 10), true
	}
	return nil, false
}

// CoerceResultValue implements ScalarResultCoercer.
func (coercer idCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	if result, ok := coercer.coerce(value); ok {
		return result, nil
	}
	return nil, serializationError("ID", value, coercionErrorNonID)
}

// CoerceInputValue implements ScalarInputCoercer.
func (coercer idCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	if result, ok := coercer.coerce(value); ok {
		return result, nil
	}
	return nil, conversionError("ID", value, coercionErrorNonID)
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (coercer idCoercer) CoerceLiteralValue(value wire.Value) (interface{}, error) {
	switch v := value.(type) {
	case wire.StringValue:
		return v.Value, nil
	case wire.IntValue:
		return strconv.FormatInt(v.Value, 10), nil
	}
	return nil, unexpectedLiteralError("ID", value)
}

var idTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON response as a " +
		"String; however, it is not intended to be human-readable. When expected as an input " +
		"type, any string or integer input value will be accepted as an ID.",
	ResultCoercer: idCoercer{},
	InputCoercer:  idCoercer{},
})

// ID returns the built-in ID type descriptor.
func ID() Scalar {
	return idTypeInstance
}
