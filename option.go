// Package option provides Option, a container for a value that may or may not be present.
//
// An Option is either Some(value) or None. Calling code handles absence
// explicitly instead of checking for nil:
//
//	port := option.Map(option.Of(cfg.Port), parsePort).GetOrReturn(443)
//
// The zero value of Option[A] is None.
package option

import (
	"fmt"
	"reflect"
)

// Option represents an optional value of type A.
// Instances are either Some, holding exactly one value, or None.
type Option[A any] struct {
	value   A
	defined bool
}

// Some returns a defined Option holding value.
// Some(nil) is valid and is not the same as None.
func Some[A any](value A) Option[A] {
	return Option[A]{value: value, defined: true}
}

// None returns the empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Of returns None if value is nil, and Some(value) otherwise.
// Only pointers, maps, slices, funcs, channels and interfaces can be nil,
// so Of(0) and Of("") are both defined.
func Of[A any](value A) Option[A] {
	if isAbsent(value) {
		return None[A]()
	}

	return Some(value)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}

	return Some(*p)
}

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[A any](value A, ok bool) Option[A] {
	if !ok {
		return None[A]()
	}

	return Some(value)
}

// Get returns the option's value.
// On None it returns an error wrapping ErrNoSuchElement.
func (o Option[A]) Get() (A, error) {
	if !o.defined {
		var zero A
		return zero, fmt.Errorf("get from None[%s]: %w", typeName[A](), ErrNoSuchElement)
	}

	return o.value, nil
}

// MustGet is like Get but panics on None.
func (o Option[A]) MustGet() A {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Unwrap returns the value and whether it is present.
func (o Option[A]) Unwrap() (A, bool) {
	return o.value, o.defined
}

// IsEmpty reports whether the option is None.
func (o Option[A]) IsEmpty() bool {
	return !o.defined
}

// IsDefined reports whether the option is Some.
func (o Option[A]) IsDefined() bool {
	return !o.IsEmpty()
}

// Map returns Some(f(value)) if o is defined, and None otherwise.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.defined {
		return None[B]()
	}

	return Some(f(o.value))
}

// MapNullable is like Map but collapses a nil result of f into None.
func MapNullable[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.defined {
		return None[B]()
	}

	return Of(f(o.value))
}

// FlatMap returns f(value) if o is defined, and None otherwise.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.defined {
		return None[B]()
	}

	return f(o.value)
}

// Fold returns onSome(value) if o is defined, and onNone() otherwise.
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if !o.defined {
		return onNone()
	}

	return onSome(o.value)
}

// ForEach calls f with the value if the option is defined.
func (o Option[A]) ForEach(f func(A)) {
	if o.defined {
		f(o.value)
	}
}

// Filter returns o if it is defined and predicate holds for its value.
// Otherwise it returns None.
func (o Option[A]) Filter(predicate func(A) bool) Option[A] {
	if o.defined && predicate(o.value) {
		return o
	}

	return None[A]()
}

// GetOrElse returns the value, or the result of other if the option is None.
// other is only called when needed.
func (o Option[A]) GetOrElse(other func() A) A {
	if !o.defined {
		return other()
	}

	return o.value
}

// GetOrReturn returns the value, or other if the option is None.
func (o Option[A]) GetOrReturn(other A) A {
	if !o.defined {
		return other
	}

	return o.value
}

// GetOrZero returns the value, or the zero value of A if the option is None.
func (o Option[A]) GetOrZero() A {
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (o Option[A]) Ptr() *A {
	if !o.defined {
		return nil
	}

	v := o.value
	return &v
}

// OrElse returns o if it is defined, and other otherwise.
func (o Option[A]) OrElse(other Option[A]) Option[A] {
	if o.defined {
		return o
	}

	return other
}

// String formats the option as Some(value) or None.
func (o Option[A]) String() string {
	if !o.defined {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// IsZero reports whether the option is None.
// It lets encoding/json drop empty options tagged with omitzero.
func (o Option[A]) IsZero() bool {
	return !o.defined
}

// isAbsent reports whether v is nil.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func typeName[A any]() string {
	return reflect.TypeFor[A]().String()
}
