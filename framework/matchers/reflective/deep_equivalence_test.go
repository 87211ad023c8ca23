package reflective

import (
	"fmt"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
)

type Record struct {
	Name     string
	Values   []int
	Attrs    map[string]int
	Child    *Record
	Duration float64
}

// For acyclic values with only exported fields and no excluded or base types, EqualTo should
// agree with an independent deep comparison.
func TestAgreesWithDeepOnAcyclicValues(t *testing.T) {
	values := []Record{
		{},
		{Name: "a"},
		{Name: "a", Values: []int{1, 2}},
		{Name: "a", Values: []int{2, 1}},
		{Name: "a", Values: []int{}},
		{Name: "a", Attrs: map[string]int{"x": 1}},
		{Name: "a", Attrs: map[string]int{"x": 2}},
		{Name: "a", Attrs: map[string]int{"x": 1, "y": 1}},
		{Name: "a", Child: &Record{Name: "b"}},
		{Name: "a", Child: &Record{Name: "c"}},
		{Name: "a", Child: &Record{Name: "b", Child: &Record{}}},
		{Name: "a", Duration: 1.5},
	}

	for i, a := range values {
		for j, b := range values {
			t.Run(fmt.Sprintf("%d vs %d", i, j), func(t *testing.T) {
				expected := deep.Equal(a, b) == nil
				assert.Equal(t, expected, EqualTo(a).Matches(b))
				assert.Equal(t, expected, EqualTo(&a).Matches(&b))
			})
		}
	}
}
