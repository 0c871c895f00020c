package option

import "reflect"

// Equal reports whether o and other are both None, or both defined with equal values.
//
// Values compare with == where their dynamic type allows it, so pointers
// compare by identity. Maps, slices and funcs compare by identity as well.
// Structs and arrays holding such fields compare element by element.
func (o Option[A]) Equal(other Option[A]) bool {
	if o.defined != other.defined {
		return false
	}

	if !o.defined {
		return true
	}

	return sameValue(reflect.ValueOf(&o.value).Elem(), reflect.ValueOf(&other.value).Elem())
}

func sameValue(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		a, b = a.Elem(), b.Elem()
	}

	if a.Type() != b.Type() {
		return false
	}

	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}

	switch a.Kind() {
	case reflect.Map, reflect.Func:
		// func pointers are code pointers; closures of one literal share them
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
