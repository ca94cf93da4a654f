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
	"context"
)

// FieldResolver produces a field's value at query execution time.
//
// Context carries deadlines and cancelation signals.
//
// Source is the "self" value: the concrete instance whose field is being
// resolved.
//
// Args are the positional arguments supplied by the request.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}, args ...interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as
// FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, args ...interface{}) (interface{}, error)

// Resolve calls f(ctx, source, args...).
func (f FieldResolverFunc) Resolve(
	ctx context.Context,
	source interface{},
	args ...interface{}) (interface{}, error) {
	return f(ctx, source, args...)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// ResolverBindingConfig provides specification to define a ResolverBinding.
type ResolverBindingConfig struct {
	// ReturnType declares the type of the values the resolver produces.
	ReturnType Type

	// Description of the binding
	Description string

	// Resolver produces the field's value.
	Resolver FieldResolver
}

// ResolverBinding associates a declared return type with the function that
// produces values of that type for a field. The claim that the resolver
// actually returns values of ReturnType's shape is a documentation contract;
// enforcing it is the execution engine's responsibility.
type ResolverBinding struct {
	returnType  Type
	description string
	resolver    FieldResolver
}

// NewResolverBinding builds an immutable binding from a
// ResolverBindingConfig. Beyond presence of the return type and the resolver
// there is no construction-time validation.
func NewResolverBinding(config *ResolverBindingConfig) (*ResolverBinding, error) {
	if config.ReturnType == nil {
		return nil, NewSchemaBuildError("Must provide return type for ResolverBinding.")
	}
	if config.Resolver == nil {
		return nil, NewSchemaBuildError("Must provide resolver for ResolverBinding.")
	}

	return &ResolverBinding{
		returnType:  config.ReturnType,
		description: config.Description,
		resolver:    config.Resolver,
	}, nil
}

// MustNewResolverBinding is a convenience function equivalent to
// NewResolverBinding but panics on failure instead of returning an error.
func MustNewResolverBinding(config *ResolverBindingConfig) *ResolverBinding {
	b, err := NewResolverBinding(config)
	if err != nil {
		panic(err)
	}
	return b
}

// ReturnType declares the type of values produced by the resolver.
func (b *ResolverBinding) ReturnType() Type {
	return b.returnType
}

// Description of the binding
func (b *ResolverBinding) Description() string {
	return b.description
}

// Resolver returns the bound resolver.
func (b *ResolverBinding) Resolver() FieldResolver {
	return b.resolver
}

// Resolve invokes the bound resolver with (ctx, source, args...).
func (b *ResolverBinding) Resolve(
	ctx context.Context,
	source interface{},
	args ...interface{}) (interface{}, error) {
	return b.resolver.Resolve(ctx, source, args...)
}
