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
	"github.com/typegraph/typegraph/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Array", func() {
	It("defines an array of a scalar type", func() {
		arrayType, err := schema.NewArray(&schema.ArrayConfig{
			Name:     "IntList",
			ItemType: schema.Int(),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(arrayType.Name()).Should(Equal("IntList"))
		Expect(arrayType.ItemType()).Should(Equal(schema.Int()))
		Expect(arrayType.Optional()).Should(BeFalse())
	})

	It("defaults the array itself to required", func() {
		arrayType := schema.MustNewArray(&schema.ArrayConfig{
			Name:     "Tags",
			ItemType: schema.String(),
		})
		Expect(arrayType.Optional()).Should(BeFalse())

		optionalArrayType := schema.MustNewArray(&schema.ArrayConfig{
			Name:     "MaybeTags",
			Optional: true,
			ItemType: schema.String(),
		})
		Expect(optionalArrayType.Optional()).Should(BeTrue())
	})

	It("permits arrays of arrays and of any variant", func() {
		inner := schema.MustNewArray(&schema.ArrayConfig{
			Name:     "Row",
			ItemType: schema.Float(),
		})
		matrix, err := schema.NewArray(&schema.ArrayConfig{
			Name:     "Matrix",
			ItemType: inner,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(matrix.ItemType()).Should(Equal(inner))
		Expect(schema.ItemTypeOf(matrix)).Should(Equal(schema.Float()))

		objectType := schema.MustNewObject(&schema.ObjectConfig{Name: "Element"})
		objectArray, err := schema.NewArray(&schema.ArrayConfig{
			Name:     "Elements",
			ItemType: objectType,
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectArray.ItemType()).Should(Equal(objectType))
	})

	It("rejects creating type without an item type", func() {
		_, err := schema.NewArray(&schema.ArrayConfig{
			Name: "Broken",
		})
		Expect(err).Should(HaveOccurred())
		Expect(schema.IsSchemaBuildError(err)).Should(BeTrue())
	})

	It("rejects creating type without name", func() {
		_, err := schema.NewArray(&schema.ArrayConfig{
			ItemType: schema.Int(),
		})
		Expect(err).Should(MatchError("Must provide name for Array.: schema build error"))

		Expect(func() {
			schema.MustNewArray(&schema.ArrayConfig{})
		}).Should(Panic())
	})
})
