// Package reflective provides a Matcher that compares object graphs field by field, including
// unexported fields, so that tests can check values whose types do not define equality.
//
//	reflective.EqualTo(expectedOrder, reflective.Excluding("createdAt")).Assert(t, actualOrder)
//
// Unlike reflect.DeepEqual, the comparison terminates on cyclic graphs, can ignore fields by
// name, and can be told to treat some types as opaque values. See Comparator.Compare for the
// exact rules.
package reflective

import (
	"errors"
	"io"
	"strings"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"
	"github.com/launchdarkly/go-test-matchers/framework/matchers"

	"github.com/pmezard/go-difflib/difflib"
)

// EqualTo returns a Matcher that passes if the value has exactly the same type as reference and
// is deeply equal to it. The configuration is fixed when EqualTo returns.
//
// If an option is invalid, the Matcher fails for every value and its description says why.
func EqualTo(reference interface{}, options ...Option) matchers.Matcher {
	var config Config
	if err := helpers.ApplyOptions(&config, options...); err != nil {
		return invalidMatcher(err)
	}
	c := NewComparator(config)
	return matchers.New(
		func(value interface{}) bool {
			return c.Compare(reference, value) == nil
		},
		func(w io.Writer, desc matchers.DescribeValueFunc) {
			helpers.MustFprint(w, "should reflectively equal the given object:\n", c.render(reference))
			if len(config.ExcludedFields) != 0 {
				helpers.MustFprintf(w, "\n(ignoring fields: %s)", strings.Join(helpers.Sorted(config.ExcludedFields), ", "))
			}
		},
	).WithMismatchDescription(func(value interface{}, w io.Writer, desc matchers.DescribeValueFunc) {
		expected, actual := c.render(reference), c.render(value)
		helpers.MustFprint(w, "was:\n", actual)
		var d *Difference
		if err := c.Compare(reference, value); errors.As(err, &d) {
			helpers.MustFprint(w, "\n", d.describe())
		}
		if diff := renderingDiff(expected, actual); diff != "" {
			helpers.MustFprint(w, "\ndiff:\n", diff)
		}
	})
}

func renderingDiff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(diff, "\n")
}

func invalidMatcher(err error) matchers.Matcher {
	return matchers.New(
		func(interface{}) bool { return false },
		func(w io.Writer, desc matchers.DescribeValueFunc) {
			helpers.MustFprintf(w, "a valid reflective comparison (%s)", err)
		},
	).WithMismatchDescription(func(value interface{}, w io.Writer, desc matchers.DescribeValueFunc) {
		helpers.MustFprintf(w, "could not be compared: %s", err)
	})
}
