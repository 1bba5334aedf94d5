package petit

import "reflect"

// sameAction reports whether two action callbacks are the same
// function value. Go forbids comparing func values directly; this
// approximates identity equality by comparing the underlying code
// pointers, which is exact for top-level functions and methods and
// the common case of a closure captured once and reused.
func sameAction(a, b func(any) any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
