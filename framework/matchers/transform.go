package matchers

import (
	"io"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"
)

// MatcherTransform is a combinator that allows an input value to be transformed to some
// other value (possibly of a different type) before being tested by other Matchers.
//
// For instance, this could be used to access a field inside a struct, so that an element
// expectation for ArrayContaining can look at one property of each element:
//
//	pointX := matchers.Transform("x",
//	    func(value interface{}) (interface{}, error) { return value.(Point).X, nil })
//	matchers.ArrayContaining[Point](pointX.Should(Equal(3)))
//
// If the transformation returns an error, the test fails and the error is reported in the
// mismatch description.
type MatcherTransform struct {
	name                string
	getValue            func(interface{}) (interface{}, error)
	expectedType        interface{}
	describeInputValue  DescribeValueFunc
	describeOutputValue DescribeValueFunc
}

// Transform creates a MatcherTransform. The name parameter is a brief description of what
// the output value is in relation to the input value; it will be prefixed to the
// description of any Matcher that you use with Should(). The getValue parameter is a
// function that transforms the original value into the value you will be testing.
func Transform(
	name string,
	getValue func(interface{}) (interface{}, error),
) MatcherTransform {
	return MatcherTransform{name: name, getValue: getValue}
}

// EnsureInputValueType is the equivalent of Matcher.EnsureType. Given any value of the desired
// type, it returns a modified MatcherTransform that will safely fail if the wrong type is
// passed in.
func (mt MatcherTransform) EnsureInputValueType(valueOfType interface{}) MatcherTransform {
	mt.expectedType = valueOfType
	return mt
}

// WithInputValueDescription is the equivalent of Matcher.WithValueDescription. It ensures
// that failure messages will use the specified formatting for the original value.
func (mt MatcherTransform) WithInputValueDescription(desc DescribeValueFunc) MatcherTransform {
	mt.describeInputValue = desc
	return mt
}

// WithOutputValueDescription is the equivalent of Matcher.WithValueDescription. It ensures
// that failure messages will use the specified formatting for the transformed value.
func (mt MatcherTransform) WithOutputValueDescription(desc DescribeValueFunc) MatcherTransform {
	mt.describeOutputValue = desc
	return mt
}

// Should applies a Matcher to the transformed value. That is, assuming that this MatcherTransform
// converts an A value into a B value, mt.Should(Equal(3)) returns a Matcher that takes A,
// converts it to B, and applies Equal(3) to B.
func (mt MatcherTransform) Should(matcher Matcher) Matcher {
	if mt.getValue == nil {
		mt.getValue = func(value interface{}) (interface{}, error) { return value, nil }
	}
	if mt.name == "" {
		mt.name = "[unspecified name - wrong use of matchers.MatcherTransform]"
	}
	if mt.describeOutputValue != nil {
		matcher = matcher.WithValueDescription(mt.describeOutputValue)
	}
	return New(
		func(value interface{}) bool {
			output, err := mt.getValue(value)
			return err == nil && matcher.Matches(output)
		},
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, mt.name, " ", Describe(matcher))
		},
	).WithMismatchDescription(func(value interface{}, w io.Writer, desc DescribeValueFunc) {
		output, err := mt.getValue(value)
		if err != nil {
			helpers.MustFprintf(w, "could not get %s: %s", mt.name, err)
			return
		}
		helpers.MustFprint(w, mt.name, " ", DescribeMismatch(matcher, output))
	}).WithValueDescription(mt.describeInputValue).EnsureType(mt.expectedType)
}
