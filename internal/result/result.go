// Package result carries the success/failure outcome of every service
// operation. Expected failures (validation, missing references, uniqueness
// violations) travel as a typed Error inside a Result; anything else is
// returned as a plain Go error.
package result

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoValue is returned when the value of a failed result is read.
var ErrNoValue = errors.New("result: value read from a failed result")

// Kind classifies an expected failure.
type Kind int

const (
	KindFailure Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindCanceled
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindCanceled:
		return "canceled"
	case KindUpstream:
		return "upstream"
	default:
		return "failure"
	}
}

// Error is the (code, message) pair carried by a failed result.
// Codes are opaque strings that loosely follow HTTP semantics.
type Error struct {
	Kind    Kind   `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches another *Error with the same kind and code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func Failure(code, message string) *Error {
	return &Error{Kind: KindFailure, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Canceled reports an operation aborted by its context.
func Canceled(message string) *Error {
	return &Error{Kind: KindCanceled, Code: "499", Message: message}
}

// Upstream reports a failed call to an external collaborator such as the media host.
func Upstream(code, message string) *Error {
	return &Error{Kind: KindUpstream, Code: code, Message: message}
}

// AsError extracts an *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// Result is either a success carrying a value or a failure carrying an *Error.
type Result[T any] struct {
	value T
	err   *Error
}

// Success wraps value. A nil pointer, map, slice, interface or func value is
// not a valid payload and yields a failure with code "500".
func Success[T any](value T) Result[T] {
	if isNil(value) {
		return Result[T]{err: Failure("500", "success result created without a value")}
	}
	return Result[T]{value: value}
}

// Fail builds a failed result. A nil err is replaced with a generic failure
// so that the result never ends up in neither state.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = Failure("500", "failure result created without an error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.err == nil }

func (r Result[T]) IsFailure() bool { return r.err != nil }

// Err returns the failure, or nil for a success.
func (r Result[T]) Err() *Error { return r.err }

// Value returns the payload. Reading a failed result returns ErrNoValue
// joined with the failure itself.
func (r Result[T]) Value() (T, error) {
	if r.err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrNoValue, r.err)
	}
	return r.value, nil
}

// MustValue returns the payload or panics on a failed result.
func (r Result[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Unit is the payload of results that carry no value.
type Unit struct{}

// Ok is the payload-less success.
func Ok() Result[Unit] { return Result[Unit]{} }

// FailUnit is the payload-less failure.
func FailUnit(err *Error) Result[Unit] { return Fail[Unit](err) }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
