package failfast

import (
	"fmt"
	"reflect"
)

// If panics when condition is false. Used for programming-error checks at
// construction time, before any worker has started.
func If(condition bool, message string, args ...interface{}) {
	if !condition {
		panic(fmt.Errorf("fail-fast: "+message, args...))
	}
}

// NotNil panics when value is nil, including typed nil pointers and nil
// functions hiding behind an interface.
func NotNil(value interface{}, name string) {
	if value == nil {
		panic(fmt.Errorf("fail-fast: %s is nil", name))
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func:
		if v.IsNil() {
			panic(fmt.Errorf("fail-fast: %s is nil", name))
		}
	}
}
