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

// Package shape computes the concrete value shape denoted by a type
// descriptor. The projection is a pure function over descriptor values: it is
// used to generate documentation and introspection output, and it is the
// contract a value validator would implement against. It never invokes
// coercers, binders or resolvers.
package shape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/typegraph/typegraph/schema"

	jsoniter "github.com/json-iterator/go"
)

// Shape is the concrete structural type that a descriptor denotes: the
// required/optional composition of its primitive and composite parts.
type Shape interface {
	// String representation when printing the shape
	fmt.Stringer

	// typegraphShape is a special mark to indicate a Shape. It makes sure that
	// only shapes computed by this package can be assigned to Shape.
	typegraphShape()
}

// The following implement Shape interface.
var (
	_ Shape = ScalarShape{}
	_ Shape = RecordShape{}
	_ Shape = ListShape{}
	_ Shape = ChoiceShape{}
)

// ScalarShape denotes a value of a scalar's internal representation. The
// conversion functions of a scalar are opaque, so the shape names the scalar
// rather than inspecting them.
type ScalarShape struct {
	// Name of the scalar whose internal representation the value takes
	Name string
}

// typegraphShape implements Shape.
func (ScalarShape) typegraphShape() {}

// String implements fmt.Stringer.
func (s ScalarShape) String() string {
	return s.Name
}

// FieldShape is one entry of a RecordShape: the shape of the field's value
// and whether the field may be absent.
type FieldShape struct {
	Shape    Shape
	Optional bool
}

// RecordShape denotes a keyed collection of field values.
type RecordShape struct {
	Fields map[string]FieldShape
}

// typegraphShape implements Shape.
func (RecordShape) typegraphShape() {}

// String implements fmt.Stringer. Fields print in name order so the output is
// deterministic.
func (s RecordShape) String() string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("{")
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		if s.Fields[name].Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(s.Fields[name].Shape.String())
	}
	b.WriteString("}")
	return b.String()
}

// ListShape denotes an ordered sequence of values of the item shape. When
// Optional is true the whole sequence may be absent.
type ListShape struct {
	Item     Shape
	Optional bool
}

// typegraphShape implements Shape.
func (ListShape) typegraphShape() {}

// String implements fmt.Stringer.
func (s ListShape) String() string {
	if s.Optional {
		return "[" + s.Item.String() + "]?"
	}
	return "[" + s.Item.String() + "]"
}

// ChoiceShape denotes one of a closed set of literal names.
type ChoiceShape struct {
	// Values holds the literal names in sorted order.
	Values []string
}

// typegraphShape implements Shape.
func (ChoiceShape) typegraphShape() {}

// String implements fmt.Stringer.
func (s ChoiceShape) String() string {
	return strings.Join(s.Values, " | ")
}

// Of computes the value shape denoted by the given type descriptor. It is
// pure and free of side effects; projecting the same descriptor twice yields
// structurally equal shapes.
func Of(t schema.Type) (Shape, error) {
	switch t := t.(type) {
	case schema.Scalar:
		return ScalarShape{Name: t.Name()}, nil

	case schema.Interface:
		return ofExternalFields(t.Fields())

	case schema.Object:
		// The external and internal field name sets were proven disjoint when
		// the object was built, so the union is a plain merge.
		external, err := ofExternalFields(t.ExternalFields())
		if err != nil {
			return nil, err
		}

		fields := external.Fields
		if fields == nil {
			fields = make(map[string]FieldShape, len(t.InternalFields()))
		}
		for name, field := range t.InternalFields() {
			fieldShape, err := Of(field.Type())
			if err != nil {
				return nil, err
			}
			fields[name] = FieldShape{
				Shape:    fieldShape,
				Optional: field.Optional(),
			}
		}
		return RecordShape{Fields: fields}, nil

	case schema.Array:
		item, err := Of(t.ItemType())
		if err != nil {
			return nil, err
		}
		return ListShape{
			Item:     item,
			Optional: t.Optional(),
		}, nil

	case schema.Enum:
		values := make([]string, 0, len(t.Values()))
		for name := range t.Values() {
			values = append(values, name)
		}
		sort.Strings(values)
		return ChoiceShape{Values: values}, nil
	}

	// The variant set is closed; reaching here means a descriptor from outside
	// the schema package.
	return nil, schema.NewError(
		fmt.Sprintf("cannot project shape of unknown type %v", t), schema.ErrKindInternal)
}

// ofExternalFields projects an external field map into a record: each field
// contributes its declared type's shape, required unless declared optional.
func ofExternalFields(fieldMap schema.ExternalFieldMap) (RecordShape, error) {
	var fields map[string]FieldShape
	if len(fieldMap) > 0 {
		fields = make(map[string]FieldShape, len(fieldMap))
		for name, field := range fieldMap {
			fieldShape, err := Of(field.Type())
			if err != nil {
				return RecordShape{}, err
			}
			fields[name] = FieldShape{
				Shape:    fieldShape,
				Optional: field.Optional(),
			}
		}
	}
	return RecordShape{Fields: fields}, nil
}

//===----------------------------------------------------------------------------------------====//
// JSON encoding
//===----------------------------------------------------------------------------------------====//

// json is the encoder configuration used for rendering shapes. Map keys are
// sorted so the output is stable for a given descriptor.
var json = jsoniter.Config{SortMapKeys: true}.Froze()

// MarshalJSON implements json.Marshaler.
func (s ScalarShape) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{Kind: "scalar", Name: s.Name})
}

// MarshalJSON implements json.Marshaler.
func (s RecordShape) MarshalJSON() ([]byte, error) {
	type fieldJSON struct {
		Shape    Shape `json:"shape"`
		Optional bool  `json:"optional,omitempty"`
	}

	fields := make(map[string]fieldJSON, len(s.Fields))
	for name, field := range s.Fields {
		fields[name] = fieldJSON{Shape: field.Shape, Optional: field.Optional}
	}

	return json.Marshal(struct {
		Kind   string               `json:"kind"`
		Fields map[string]fieldJSON `json:"fields"`
	}{Kind: "record", Fields: fields})
}

// MarshalJSON implements json.Marshaler.
func (s ListShape) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string `json:"kind"`
		Item     Shape  `json:"item"`
		Optional bool   `json:"optional,omitempty"`
	}{Kind: "list", Item: s.Item, Optional: s.Optional})
}

// MarshalJSON implements json.Marshaler.
func (s ChoiceShape) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string   `json:"kind"`
		Values []string `json:"values"`
	}{Kind: "choice", Values: s.Values})
}
