package value

import "reflect"

// Equal compares tag and payload. Lists compare elementwise; functions and
// handles compare by identity.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == List {
		x, y := a.payload.([]Value), b.payload.([]Value)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return samePayload(a.payload, b.payload)
}

func samePayload(x, y any) bool {
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx != ty {
		return false
	}
	if tx == nil {
		return true
	}
	if tx.Kind() == reflect.Func {
		return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
	}
	if !tx.Comparable() {
		return false
	}
	return x == y
}
