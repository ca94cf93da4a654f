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

// Package wire defines the literal value nodes handed to a scalar's literal
// coercer. An execution engine parses request documents in whatever syntax it
// speaks and presents literal values to the schema through these nodes; this
// package deliberately knows nothing about source text, tokens or locations.
package wire

import "strconv"

// Value represents a node containing a literal value.
type Value interface {
	// Interface returns the value as an interface{}.
	Interface() interface{}

	// valueNode is a special mark to indicate a value node. It makes sure that
	// only value nodes can be assigned to Value.
	valueNode()
}

// The following implement Value interface.
var (
	_ Value = IntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
)

// IntValue represents a literal node containing an integer.
type IntValue struct {
	// Value holds the integer. Engines that scan arbitrary-precision integer
	// literals are expected to range-check before building the node.
	Value int64
}

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (IntValue) valueNode() {}

// String returns the literal in string that specifies the integer value.
func (value IntValue) String() string {
	return strconv.FormatInt(value.Value, 10)
}

// FloatValue represents a literal node containing a floating point number.
type FloatValue struct {
	Value float64
}

// Interface implements Value.
func (value FloatValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (FloatValue) valueNode() {}

// String returns the literal in string that specifies the float value.
func (value FloatValue) String() string {
	return strconv.FormatFloat(value.Value, 'g', -1, 64)
}

// StringValue represents a literal node containing a string.
type StringValue struct {
	Value string
}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (StringValue) valueNode() {}

// String returns the string value.
func (value StringValue) String() string {
	return value.Value
}

// BooleanValue represents a literal node containing a boolean.
type BooleanValue struct {
	Value bool
}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (BooleanValue) valueNode() {}

// String returns either "true" or "false".
func (value BooleanValue) String() string {
	return strconv.FormatBool(value.Value)
}

// NullValue represents a literal node containing an explicit null.
type NullValue struct{}

// Interface implements Value.
func (NullValue) Interface() interface{} {
	return nil
}

// valueNode implements Value.
func (NullValue) valueNode() {}

// String implements fmt.Stringer.
func (NullValue) String() string {
	return "null"
}

// EnumValue represents a literal node naming an enum value.
type EnumValue struct {
	Value string
}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Value
}

// valueNode implements Value.
func (EnumValue) valueNode() {}

// String returns the name of the enum value.
func (value EnumValue) String() string {
	return value.Value
}

// ListValue represents a literal node containing an ordered sequence of
// values.
type ListValue struct {
	Values []Value
}

// Interface implements Value. It returns a []interface{} with one entry per
// element node.
func (value ListValue) Interface() interface{} {
	values := make([]interface{}, len(value.Values))
	for i, v := range value.Values {
		values[i] = v.Interface()
	}
	return values
}

// valueNode implements Value.
func (ListValue) valueNode() {}
