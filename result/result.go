// Package result provides the two-variant success/failure container used
// as the return currency of validation code. Handlers are the boundary
// that turns a failure variant into an HTTP error response.
package result

import "fmt"

type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool { return r.err == nil }

func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the success value and panics on the failure variant.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("result: Unwrap on failure: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on the failure variant.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Err returns the carried error, nil for the success variant.
func (r Result[T]) Err() error { return r.err }

// Map transforms the success value; a failure passes through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// MapErr transforms the carried error; a success passes through unchanged.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err != nil {
		return Err[T](f(r.err))
	}
	return r
}

// AndThen chains a dependent fallible operation, short-circuiting on failure.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}
