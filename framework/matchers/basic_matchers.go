package matchers

import (
	"io"
	"reflect"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"
)

// Equal is a matcher that tests whether the input value matches the expected value according
// to reflect.DeepEqual.
func Equal(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, "equal to ", desc(expectedValue))
		},
	)
}

// BeNil is a matcher that passes for a nil interface value, or for a nil value of any type that
// can be nil (pointer, slice, map, channel, function, or interface).
func BeNil() Matcher {
	return New(
		isNil,
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, "nil")
		},
	)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
