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
	"log"
	"runtime"
	"strings"
)

// Op describes an operation, usually as the package and method, such as
// "schema.NewObject".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther         ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindSchemaBuild                  // Failed to construct a type descriptor; fatal to building the schema.
	ErrKindConversion                   // Failed to convert a wire or literal value to the internal representation.
	ErrKindSerialization                // Failed to represent an internal value on the wire.
	ErrKindInternal                     // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindSchemaBuild:
		return "schema build error"
	case ErrKindConversion:
		return "conversion error"
	case ErrKindSerialization:
		return "serialization error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// An Error describes a failure found while building type descriptors or while
// converting values at the wire boundary on behalf of a scalar. Every failure
// is surfaced synchronously to the immediate caller of the operation that
// produced it; this package performs no retries and no recovery.
//
// It includes Op and ErrKind which will show when printing the error value.
// This makes it helpful for programmers.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being
	// invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of
// upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind from underlying error when one is not provided in argument.
	if e.Kind == ErrKindOther {
		if prev, ok := e.Err.(*Error); ok {
			e.Kind = prev.Kind
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying
// error with a message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	// If the previous error was also one of ours, suppress duplications so the
	// message won't contain the same kind twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}

	if b.Len() == initialLen {
		b.WriteString("no error")
	}
}

// kindOf finds the ErrKind carried by err or any error it wraps.
func kindOf(err error) ErrKind {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return ErrKindOther
		}
		if e.Kind != ErrKindOther {
			return e.Kind
		}
		err = e.Err
	}
	return ErrKindOther
}

//===----------------------------------------------------------------------------------------====//
// Schema Build Error
//===----------------------------------------------------------------------------------------====//

// NewSchemaBuildError produces an error indicating a type descriptor could not
// be constructed. It aborts building the type it was raised for; no partially
// built descriptor is observable.
func NewSchemaBuildError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindSchemaBuild)
}

// NewDuplicateFieldNameError produces the error raised when the external and
// internal field name sets of an object are not disjoint. The offending names
// are included for usability.
func NewDuplicateFieldNameError(typeName string, fieldNames []string) error {
	return NewSchemaBuildError(
		"duplicate field name in %s: %s declared in both external and internal fields",
		typeName, strings.Join(fieldNames, ", "))
}

// IsSchemaBuildError returns true if err signals a descriptor construction
// failure.
func IsSchemaBuildError(err error) bool {
	return kindOf(err) == ErrKindSchemaBuild
}

//===----------------------------------------------------------------------------------------====//
// Conversion Error
//===----------------------------------------------------------------------------------------====//

// NewConversionError produces an error indicating a wire or literal value
// could not be converted to a scalar's internal representation. Catching it
// and translating it into a request-level failure is the execution engine's
// responsibility.
func NewConversionError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindConversion)
}

// IsConversionError returns true if err signals an input conversion failure.
func IsConversionError(err error) bool {
	return kindOf(err) == ErrKindConversion
}

//===----------------------------------------------------------------------------------------====//
// Serialization Error
//===----------------------------------------------------------------------------------------====//

// NewSerializationError produces an error indicating an internal value could
// not be represented on the wire.
func NewSerializationError(format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), ErrKindSerialization)
}

// IsSerializationError returns true if err signals a result serialization
// failure.
func IsSerializationError(err error) bool {
	return kindOf(err) == ErrKindSerialization
}
