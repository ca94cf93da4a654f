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

// Package schema models the type descriptors of a typed API graph. It lets an
// API author declare named types (scalar, interface, object, array and enum),
// describe the fields of each type with explicit optionality, and bind
// resolver functions to fields for consumption by an execution engine.
//
// Config-New-Descriptor Design
//
// Each descriptor variant is defined from a corresponding Config struct given
// to its New function (e.g., NewObject reads an ObjectConfig). The New
// functions copy data out of the config so every descriptor is an immutable
// value from the moment it is returned; a schema built from this package can
// be shared across arbitrarily many concurrent readers without
// synchronization. The only construction that can fail for reasons other than
// a missing name is NewObject, which rejects field names that appear in both
// the external and the internal field map.
//
// The package stores caller-supplied functions (scalar coercers, internal
// field binders and field resolvers) as opaque values. It never schedules or
// invokes them on its own apart from field binders, which run exactly once
// while their owning object is being built.
package schema
