// Package nilcheck reports whether a value of unknown type holds nil.
package nilcheck

import "reflect"

// IsNil reports whether i is nil or a typed nil of a nillable kind.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
