// Package matchers provides a flexible test assertion API similar to Java's Hamcrest. Matchers are
// constructed separately from the values being tested, and can then be applied to any value, or
// negated, or combined in various ways.
//
// Every Matcher has three capabilities: it decides whether a value matches, it can describe
// what it expects, and it can explain why a specific value did not match. The descriptions
// are written to an io.Writer so that composite matchers can embed the output of the
// matchers they are built from.
//
// Matchers take values of type interface{} and must explicitly cast the type if needed. The
// simplest way to provide type safety is to use Matcher.EnsureType().
package matchers

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFunc is a function used in defining a new Matcher. It returns true if the value passes
// the test or false for failure.
type TestFunc func(value interface{}) bool

// DescribeExpectationFunc is a function used in defining a new Matcher. It writes a description
// of what the Matcher expects, such as "equal to 3".
//
// The second parameter is the function to use for making a string description of a value of
// the expected type.
type DescribeExpectationFunc func(w io.Writer, describeValueFunc DescribeValueFunc)

// DescribeMismatchFunc is a function that can optionally be added to a Matcher. Given a value
// that failed the test, it writes an explanation of why. If you don't provide one, the
// explanation is "was " followed by the value description.
type DescribeMismatchFunc func(value interface{}, w io.Writer, describeValueFunc DescribeValueFunc)

// DescribeValueFunc is a function that can optionally be added to a Matcher. It returns a
// string description of the value. If you don't provide one, the default logic is
// DefaultDescription.
type DescribeValueFunc func(value interface{}) string

// Matcher is a general mechanism for declaring expectations about a value. Expectations can be
// combined, and they self-describe on failure.
//
// A Matcher is immutable: every method that changes its behavior returns a modified copy.
type Matcher struct {
	maybeTest                TestFunc
	maybeDescribeExpectation DescribeExpectationFunc
	maybeDescribeMismatch    DescribeMismatchFunc
	maybeDescribeValue       DescribeValueFunc
}

// New creates a Matcher.
func New(test TestFunc, describeExpectation DescribeExpectationFunc) Matcher {
	return Matcher{maybeTest: test, maybeDescribeExpectation: describeExpectation}
}

// Matches returns true if the value passes the test.
func (m Matcher) Matches(value interface{}) bool {
	if m.maybeTest == nil {
		return true
	}
	return m.maybeTest(value)
}

// DescribeExpectation writes a description of what the Matcher expects.
func (m Matcher) DescribeExpectation(w io.Writer) {
	if m.maybeDescribeExpectation == nil {
		helpers.MustFprint(w, "no test description given")
		return
	}
	m.maybeDescribeExpectation(w, m.describeValue)
}

// DescribeMismatch writes an explanation of why the value did not pass the test. The result
// is unspecified if the value does pass.
func (m Matcher) DescribeMismatch(value interface{}, w io.Writer) {
	if m.maybeDescribeMismatch == nil {
		helpers.MustFprint(w, "was ", m.describeValue(value))
		return
	}
	m.maybeDescribeMismatch(value, w, m.describeValue)
}

// Test executes the expectation for a specific value. It returns true if the value passes the
// test or false for failure, plus a string describing the expectation that failed.
func (m Matcher) Test(value interface{}) (pass bool, failDescription string) {
	if m.Matches(value) {
		return true, ""
	}
	return false, fmt.Sprintf("expected: %s\nbut: %s", Describe(m), DescribeMismatch(m, value))
}

func (m Matcher) describeValue(value interface{}) string {
	if m.maybeDescribeValue != nil {
		return m.maybeDescribeValue(value)
	}
	return DefaultDescription(value)
}

// Assert is for use with the testify/assert package (or any API with a compatible interface). It
// tests a value and, on failure, calls assert.Fail with the appropriate message.
func (m Matcher) Assert(t assert.TestingT, value interface{}) bool {
	if pass, desc := m.Test(value); !pass {
		assert.Fail(t, desc)
		return false
	}
	return true
}

// Require is for use with the testify/require package (or any API with a compatible interface). It
// tests a value and, on failure, calls require.Fail with the appropriate message.
func (m Matcher) Require(t require.TestingT, value interface{}) bool {
	if pass, desc := m.Test(value); !pass {
		require.Fail(t, desc)
		return false
	}
	return true
}

// EnsureType adds type safety to a matcher. The valueOfType parameter should be any value of the
// expected type. The returned Matcher will guarantee that the value is of that type before calling
// the original test function, so it is safe for the test function to cast the value.
func (m Matcher) EnsureType(valueOfType interface{}) Matcher {
	if valueOfType == nil {
		return m
	}
	wantType := reflect.TypeOf(valueOfType)
	ret := m
	ret.maybeTest = func(value interface{}) bool {
		return reflect.TypeOf(value) == wantType && m.Matches(value)
	}
	ret.maybeDescribeMismatch = func(value interface{}, w io.Writer, desc DescribeValueFunc) {
		if reflect.TypeOf(value) != wantType {
			helpers.MustFprintf(w, "was a value of type %T, not %s", value, wantType)
			return
		}
		m.DescribeMismatch(value, w)
	}
	return ret
}

// WithValueDescription adds custom behavior for rendering the input value as a string in
// descriptions. If not specified, the default behavior is DefaultDescription.
func (m Matcher) WithValueDescription(describeValue DescribeValueFunc) Matcher {
	ret := m
	ret.maybeDescribeValue = describeValue
	return ret
}

// WithMismatchDescription replaces the Matcher's explanation of a failed value.
func (m Matcher) WithMismatchDescription(describeMismatch DescribeMismatchFunc) Matcher {
	ret := m
	ret.maybeDescribeMismatch = describeMismatch
	return ret
}

// Describe returns the Matcher's expectation as a string.
func Describe(m Matcher) string {
	var b strings.Builder
	m.DescribeExpectation(&b)
	return b.String()
}

// DescribeMismatch returns the Matcher's explanation of a failed value as a string.
func DescribeMismatch(m Matcher, value interface{}) string {
	var b strings.Builder
	m.DescribeMismatch(value, &b)
	return b.String()
}

// DefaultDescription is the default behavior for rendering an input value as a string in
// failure messages. It checks whether the value implements the fmt.Stringer interface, and
// if so, calls its String method. If not, it calls fmt.Sprintf with the "%+v" format.
func DefaultDescription(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr && v.IsNil() {
			return "nil"
		}
		return s.String()
	}
	return fmt.Sprintf("%+v", value)
}
