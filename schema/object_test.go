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

	"github.com/typegraph/typegraph/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// passthroughBinder returns the declared type and optionality as its handle
// so tests can observe what the binder was given.
type boundField struct {
	Type     schema.Type
	Optional bool
}

var passthroughBinder = schema.FieldBinderFunc(
	func(t schema.Type, optional bool) (schema.ResolverHandle, error) {
		return boundField{Type: t, Optional: optional}, nil
	})

var _ = Describe("Object", func() {
	It("defines an object with external and internal fields", func() {
		object, err := schema.NewObject(&schema.ObjectConfig{
			Name: "X",
			ExternalFields: schema.ExternalFields{
				"a": schema.ExternalFieldConfig{
					Type: schema.Int(),
				},
				"b": schema.ExternalFieldConfig{
					Type:     schema.String(),
					Optional: true,
				},
			},
			InternalFields: schema.InternalFields{
				"c": schema.InternalFieldConfig{
					Type:   schema.Int(),
					Binder: passthroughBinder,
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		a := object.ExternalFields()["a"]
		Expect(a).ShouldNot(BeNil())
		Expect(a.Name()).Should(Equal("a"))
		Expect(a.Type()).Should(Equal(schema.Int()))
		Expect(a.Optional()).Should(BeFalse())

		b := object.ExternalFields()["b"]
		Expect(b).ShouldNot(BeNil())
		Expect(b.Type()).Should(Equal(schema.String()))
		Expect(b.Optional()).Should(BeTrue())

		c := object.InternalFields()["c"]
		Expect(c).ShouldNot(BeNil())
		Expect(c.Name()).Should(Equal("c"))
		Expect(c.Type()).Should(Equal(schema.Int()))
		Expect(c.Optional()).Should(BeFalse())
	})

	It("preserves the supplied field maps on read back", func() {
		object, err := schema.NewObject(&schema.ObjectConfig{
			Name: "RoundTrip",
			ExternalFields: schema.ExternalFields{
				"a": schema.ExternalFieldConfig{Type: schema.Int()},
				"b": schema.ExternalFieldConfig{Type: schema.String(), Optional: true},
			},
			InternalFields: schema.InternalFields{
				"c": schema.InternalFieldConfig{Type: schema.Boolean(), Binder: passthroughBinder},
				"d": schema.InternalFieldConfig{Type: schema.ID(), Optional: true, Binder: passthroughBinder},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(object.ExternalFields()).Should(HaveLen(2))
		Expect(object.ExternalFields()).Should(HaveKey("a"))
		Expect(object.ExternalFields()).Should(HaveKey("b"))
		Expect(object.ExternalFields()["a"].Type()).Should(Equal(schema.Int()))
		Expect(object.ExternalFields()["b"].Type()).Should(Equal(schema.String()))

		Expect(object.InternalFields()).Should(HaveLen(2))
		Expect(object.InternalFields()).Should(HaveKey("c"))
		Expect(object.InternalFields()).Should(HaveKey("d"))
		Expect(object.InternalFields()["c"].Type()).Should(Equal(schema.Boolean()))
		Expect(object.InternalFields()["d"].Type()).Should(Equal(schema.ID()))
		Expect(object.InternalFields()["d"].Optional()).Should(BeTrue())
	})

	Describe("duplicate field names", func() {
		It("rejects a name declared in both field maps", func() {
			_, err := schema.NewObject(&schema.ObjectConfig{
				Name: "X",
				ExternalFields: schema.ExternalFields{
					"a": schema.ExternalFieldConfig{Type: schema.Int()},
					"c": schema.ExternalFieldConfig{Type: schema.Int()},
				},
				InternalFields: schema.InternalFields{
					"c": schema.InternalFieldConfig{Type: schema.Int(), Binder: passthroughBinder},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(schema.IsSchemaBuildError(err)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring(`duplicate field name in X: c`))
		})

		It("reports every colliding name in sorted order", func() {
			_, err := schema.NewObject(&schema.ObjectConfig{
				Name: "Y",
				ExternalFields: schema.ExternalFields{
					"b": schema.ExternalFieldConfig{Type: schema.Int()},
					"a": schema.ExternalFieldConfig{Type: schema.Int()},
				},
				InternalFields: schema.InternalFields{
					"b": schema.InternalFieldConfig{Type: schema.Int(), Binder: passthroughBinder},
					"a": schema.InternalFieldConfig{Type: schema.Int(), Binder: passthroughBinder},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("a, b"))
		})

		It("does not invoke binders when the check fails", func() {
			invoked := 0
			_, err := schema.NewObject(&schema.ObjectConfig{
				Name: "Z",
				ExternalFields: schema.ExternalFields{
					"c": schema.ExternalFieldConfig{Type: schema.Int()},
				},
				InternalFields: schema.InternalFields{
					"c": schema.InternalFieldConfig{
						Type: schema.Int(),
						Binder: schema.FieldBinderFunc(
							func(t schema.Type, optional bool) (schema.ResolverHandle, error) {
								invoked++
								return nil, nil
							}),
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(invoked).Should(Equal(0))
		})
	})

	Describe("internal field binding", func() {
		It("invokes the binder once with the declared type and optionality", func() {
			object, err := schema.NewObject(&schema.ObjectConfig{
				Name: "Bound",
				InternalFields: schema.InternalFields{
					"c": schema.InternalFieldConfig{
						Type:     schema.Int(),
						Optional: true,
						Binder:   passthroughBinder,
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			handle := object.InternalFields()["c"].Handle()
			Expect(handle).Should(Equal(boundField{
				Type:     schema.Int(),
				Optional: true,
			}))
		})

		It("aborts construction when a binder fails", func() {
			_, err := schema.NewObject(&schema.ObjectConfig{
				Name: "Broken",
				InternalFields: schema.InternalFields{
					"c": schema.InternalFieldConfig{
						Type: schema.Int(),
						Binder: schema.FieldBinderFunc(
							func(t schema.Type, optional bool) (schema.ResolverHandle, error) {
								return nil, schema.NewError("binder exploded")
							}),
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring(`failed to bind internal field "c" in Broken`))
		})

		It("rejects an internal field without a binder", func() {
			_, err := schema.NewObject(&schema.ObjectConfig{
				Name: "NoBinder",
				InternalFields: schema.InternalFields{
					"c": schema.InternalFieldConfig{Type: schema.Int()},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(schema.IsSchemaBuildError(err)).Should(BeTrue())
		})
	})

	It("does not mutate passed field definitions", func() {
		externalFields := schema.ExternalFields{
			"field1": schema.ExternalFieldConfig{Type: schema.String()},
		}
		internalFields := schema.InternalFields{
			"field2": schema.InternalFieldConfig{Type: schema.String(), Binder: passthroughBinder},
		}

		testObject1, err := schema.NewObject(&schema.ObjectConfig{
			Name:           "Test1",
			ExternalFields: externalFields,
			InternalFields: internalFields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		testObject2, err := schema.NewObject(&schema.ObjectConfig{
			Name:           "Test2",
			ExternalFields: externalFields,
			InternalFields: internalFields,
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(testObject1.ExternalFields()).Should(Equal(testObject2.ExternalFields()))
		Expect(externalFields).Should(Equal(schema.ExternalFields{
			"field1": schema.ExternalFieldConfig{Type: schema.String()},
		}))

		// Mutating the config maps afterwards must not affect the built objects.
		externalFields["field3"] = schema.ExternalFieldConfig{Type: schema.Int()}
		Expect(testObject1.ExternalFields()).ShouldNot(HaveKey("field3"))
	})

	It("stringifies to type name", func() {
		objectType, err := schema.NewObject(&schema.ObjectConfig{
			Name: "Object",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fmt.Sprintf("%s", objectType)).Should(Equal("Object"))
		Expect(fmt.Sprintf("%v", objectType)).Should(Equal("Object"))
	})

	It("rejects creating type without name", func() {
		_, err := schema.NewObject(&schema.ObjectConfig{
			Name: "",
		})
		Expect(err).Should(MatchError("Must provide name for Object.: schema build error"))

		Expect(func() {
			schema.MustNewObject(&schema.ObjectConfig{})
		}).Should(Panic())
	})

	It("accepts creating type without fields", func() {
		objectType, err := schema.NewObject(&schema.ObjectConfig{
			Name: "ObjectWithoutFields",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectType.ExternalFields()).Should(BeEmpty())
		Expect(objectType.InternalFields()).Should(BeEmpty())
	})
})
