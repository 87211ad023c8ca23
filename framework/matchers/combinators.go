package matchers

import (
	"io"
	"strings"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"
)

// Not negates the result of another Matcher.
//
//	matchers.Not(Equal(3)).Assert(t, 4)
//	// failure message will describe expectation as "not (equal to 3)"
func Not(matcher Matcher) Matcher {
	return New(
		func(value interface{}) bool {
			return !matcher.Matches(value)
		},
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, "not (", Describe(matcher), ")")
		},
	).WithValueDescription(matcher.describeValue)
}

// AllOf requires that the input value passes all of the specified Matchers. If it fails,
// the mismatch description covers only the Matchers that failed.
func AllOf(matchers ...Matcher) Matcher {
	var describeValueFn DescribeValueFunc
	if len(matchers) != 0 {
		describeValueFn = matchers[0].describeValue
	}
	return New(
		func(value interface{}) bool {
			for _, m := range matchers {
				if !m.Matches(value) {
					return false
				}
			}
			return true
		},
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, describeMatchersList(matchers, " and "))
		},
	).WithMismatchDescription(func(value interface{}, w io.Writer, desc DescribeValueFunc) {
		helpers.MustFprint(w, describeFailuresList(failingMatchers(matchers, value), value, " and "))
	}).WithValueDescription(describeValueFn)
}

// AnyOf requires that the input value does not fail any of the specified Matchers. If it fails,
// the mismatch description explains each of the failures.
func AnyOf(matchers ...Matcher) Matcher {
	var describeValueFn DescribeValueFunc
	if len(matchers) != 0 {
		describeValueFn = matchers[0].describeValue
	}
	return New(
		func(value interface{}) bool {
			for _, m := range matchers {
				if m.Matches(value) {
					return true
				}
			}
			return false
		},
		func(w io.Writer, desc DescribeValueFunc) {
			helpers.MustFprint(w, describeMatchersList(matchers, " or "))
		},
	).WithMismatchDescription(func(value interface{}, w io.Writer, desc DescribeValueFunc) {
		helpers.MustFprint(w, describeFailuresList(failingMatchers(matchers, value), value, " and "))
	}).WithValueDescription(describeValueFn)
}

func failingMatchers(matchers []Matcher, value interface{}) []Matcher {
	var fails []Matcher
	for _, m := range matchers {
		if !m.Matches(value) {
			fails = append(fails, m)
		}
	}
	return fails
}

func describeMatchersList(matchers []Matcher, separator string) string {
	if len(matchers) == 1 {
		return Describe(matchers[0])
	}
	parts := make([]string, 0, len(matchers))
	for _, m := range matchers {
		parts = append(parts, "("+Describe(m)+")")
	}
	return strings.Join(parts, separator)
}

func describeFailuresList(matchers []Matcher, value interface{}, separator string) string {
	if len(matchers) == 1 {
		return Describe(matchers[0]) + ": " + DescribeMismatch(matchers[0], value)
	}
	parts := make([]string, 0, len(matchers))
	for _, m := range matchers {
		parts = append(parts, "("+Describe(m)+": "+DescribeMismatch(m, value)+")")
	}
	return strings.Join(parts, separator)
}
