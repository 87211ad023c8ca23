package matchers

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAsGomega(t *testing.T) {
	g := gomega.NewWithT(t)
	m := ArrayContaining[int](1, 2, 3).InAnyOrder().Matcher()

	g.Expect([]int{3, 2, 1}).To(m.AsGomega())
	g.Expect([]int{3, 3, 1}).NotTo(m.AsGomega())

	gm := m.AsGomega()
	failure := gm.FailureMessage([]int{3, 3, 1})
	assert.Contains(t, failure, "to be [equal to 1, equal to 2, equal to 3] in any order")
	assert.Contains(t, failure, "but: mismatching elements index 0: expected equal to 1, was 3")

	negated := gm.NegatedFailureMessage([]int{3, 2, 1})
	assert.Contains(t, negated, "not to be [equal to 1, equal to 2, equal to 3] in any order")
}

func TestAsGomock(t *testing.T) {
	gm := Equal(3).AsGomock()

	assert.True(t, gm.Matches(3))
	assert.False(t, gm.Matches(4))
	assert.Equal(t, "equal to 3", gm.String())

	formatter, ok := gm.(gomock.GotFormatter)
	if assert.True(t, ok) {
		assert.Equal(t, "was 4", formatter.Got(4))
	}
}
