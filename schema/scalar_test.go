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

package schema_test

import (
	"fmt"
	"strings"

	"github.com/typegraph/typegraph/schema"
	"github.com/typegraph/typegraph/schema/wire"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scalar", func() {
	// A scalar normalizing strings to upper case, used to verify the opaque
	// callbacks are stored and invoked as given.
	newUpperCaseScalar := func() schema.Scalar {
		return schema.MustNewScalar(&schema.ScalarConfig{
			Name:        "UpperCase",
			Description: "Strings folded to upper case",
			ResultCoercer: schema.CoerceScalarResultFunc(
				func(value interface{}) (interface{}, error) {
					s, ok := value.(string)
					if !ok {
						return nil, schema.NewSerializationError("UpperCase cannot represent %v", value)
					}
					return strings.ToUpper(s), nil
				}),
			InputCoercer: schema.ScalarInputCoercerFuncs{
				CoerceInputValueFunc: func(value interface{}) (interface{}, error) {
					s, ok := value.(string)
					if !ok {
						return nil, schema.NewConversionError("UpperCase cannot represent %v", value)
					}
					return strings.ToUpper(s), nil
				},
				CoerceLiteralValueFunc: func(value wire.Value) (interface{}, error) {
					s, ok := value.(wire.StringValue)
					if !ok {
						return nil, schema.NewConversionError("UpperCase cannot represent %v", value)
					}
					return strings.ToUpper(s.Value), nil
				},
			},
		})
	}

	It("defines a scalar with custom coercers", func() {
		upperCase := newUpperCaseScalar()
		Expect(upperCase.Name()).Should(Equal("UpperCase"))
		Expect(upperCase.Description()).Should(Equal("Strings folded to upper case"))

		Expect(upperCase.CoerceResultValue("abc")).Should(Equal("ABC"))
		Expect(upperCase.CoerceInputValue("abc")).Should(Equal("ABC"))
		Expect(upperCase.CoerceLiteralValue(wire.StringValue{Value: "abc"})).Should(Equal("ABC"))
	})

	It("surfaces coercer failures to the caller", func() {
		upperCase := newUpperCaseScalar()

		_, err := upperCase.CoerceInputValue(42)
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsConversionError(err)).Should(BeTrue())

		_, err = upperCase.CoerceResultValue(42)
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsSerializationError(err)).Should(BeTrue())
	})

	Describe("without an input coercer", func() {
		var passthrough schema.Scalar

		BeforeEach(func() {
			passthrough = schema.MustNewScalar(&schema.ScalarConfig{
				Name: "Passthrough",
				ResultCoercer: schema.CoerceScalarResultFunc(
					func(value interface{}) (interface{}, error) {
						return value, nil
					}),
			})
		})

		It("passes input values through unchanged", func() {
			Expect(passthrough.CoerceInputValue(42)).Should(Equal(42))
		})

		It("rejects literal values with a conversion error", func() {
			_, err := passthrough.CoerceLiteralValue(wire.IntValue{Value: 42})
			Expect(err).Should(HaveOccurred())
			Expect(schema.IsConversionError(err)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring("Passthrough"))
		})
	})

	It("rejects creating type without a result coercer", func() {
		_, err := schema.NewScalar(&schema.ScalarConfig{
			Name: "NoCoercer",
		})
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsSchemaBuildError(err)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring("must provide ResultCoercer"))
	})

	It("stringifies to type name", func() {
		upperCase := newUpperCaseScalar()
		Expect(fmt.Sprintf("%s", upperCase)).Should(Equal("UpperCase"))
	})

	It("rejects creating type without name", func() {
		_, err := schema.NewScalar(&schema.ScalarConfig{})
		Expect(err).Should(MatchError("Must provide name for Scalar.: schema build error"))

		Expect(func() {
			schema.MustNewScalar(&schema.ScalarConfig{})
		}).Should(Panic())
	})
})
