package matchers

import (
	"fmt"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"go.uber.org/mock/gomock"
)

type gomegaAdapter struct {
	matcher Matcher
}

// AsGomega returns the Matcher in the form expected by Gomega's Expect(...).To(...), so that
// matchers from this package can be used in Ginkgo suites.
func (m Matcher) AsGomega() types.GomegaMatcher {
	return gomegaAdapter{matcher: m}
}

func (g gomegaAdapter) Match(actual interface{}) (bool, error) {
	return g.matcher.Matches(actual), nil
}

func (g gomegaAdapter) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nto be %s\nbut: %s",
		format.Object(actual, 1), Describe(g.matcher), DescribeMismatch(g.matcher, actual))
}

func (g gomegaAdapter) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nnot to be %s", format.Object(actual, 1), Describe(g.matcher))
}

type gomockAdapter struct {
	matcher Matcher
}

// AsGomock returns the Matcher in the form expected by gomock for argument matching. The
// result also implements gomock.GotFormatter, so a call that does not match is reported with
// this Matcher's mismatch description.
func (m Matcher) AsGomock() gomock.Matcher {
	return gomockAdapter{matcher: m}
}

func (g gomockAdapter) Matches(x any) bool { return g.matcher.Matches(x) }

func (g gomockAdapter) String() string { return Describe(g.matcher) }

func (g gomockAdapter) Got(got any) string { return DescribeMismatch(g.matcher, got) }
