// Package optional reads through nested data that may be missing at any level.
//
// An Optional is either set or empty. Field and Deref read one level further
// down; once a read meets nil, every later read is a no-op and the final
// ValueOf returns nil:
//
//	type Z struct{ A *string }
//	type Y struct{ Z *Z }
//	type X struct{ Y *Y }
//
//	a := optional.Deref(optional.Deref(optional.Deref(optional.Of(x),
//		func(x *X) *Y { return x.Y }),
//		func(y Y) *Z { return y.Z }),
//		func(z Z) *string { return z.A })
//	if s := a.ValueOf(); s != nil {
//		fmt.Println(*s)
//	}
package optional

import (
	"fmt"

	"github.com/ib-77/failable/internal/nilcheck"
)

// Optional holds a value of type T or nothing. The zero Optional is empty.
// A set Optional never holds a nil pointer, map, slice, interface, func or chan.
type Optional[T any] struct {
	value T
	set   bool
}

// Of returns an Optional holding v, or an empty one when v is nil.
func Of[T any](v T) Optional[T] {
	if nilcheck.IsNil(v) {
		return Optional[T]{}
	}
	return Optional[T]{value: v, set: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Field reads one level down with get. get is not called when o is empty.
func Field[T, U any](o Optional[T], get func(T) U) Optional[U] {
	if !o.set {
		return Optional[U]{}
	}
	return Of(get(o.value))
}

// Deref reads a pointer one level down with get and follows it.
func Deref[T, U any](o Optional[T], get func(T) *U) Optional[U] {
	if !o.set {
		return Optional[U]{}
	}
	p := get(o.value)
	if p == nil {
		return Optional[U]{}
	}
	return Of(*p)
}

// IsSet reports whether o holds a value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// ValueOf returns a pointer to a copy of the value, or nil when o is empty.
func (o Optional[T]) ValueOf() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// GetOr returns the value of o or def if o is empty.
func (o Optional[T]) GetOr(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// String implements [fmt.Stringer].
func (o Optional[T]) String() string {
	if !o.set {
		return fmt.Sprintf("(empty[%T])", o.value)
	}
	return fmt.Sprint(o.value)
}
