package matchers

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"go.uber.org/multierr"
)

type arrayMode int

const (
	exactMode arrayMode = iota
	anyOrderMode
	atLeastMode
)

type arrayElement struct {
	matcher   Matcher
	nullCheck bool
}

// ArrayMatcher builds a Matcher for a slice or array of T from a list of per-position
// expectations. Its methods return modified copies, so a Matcher obtained from it is not
// affected by later builder calls.
//
// There are three modes:
//
//   - Exactly (the default): the value has exactly as many elements as there are expectations,
//     and each element satisfies the expectation at the same position.
//   - InAnyOrder: the value has exactly as many elements as there are expectations, and the
//     elements can be assigned to the expectations so that each is satisfied once.
//   - AtLeast: like InAnyOrder, but elements that are not needed by any expectation are ignored.
//
// In the last two modes the assignment is greedy: each element, in order, takes the first
// unconsumed expectation that it satisfies, and is never reassigned. So if an element could
// satisfy two expectations, the result can depend on the order the expectations were given in.
// WithMaximumMatching replaces this with a search for the best possible assignment.
type ArrayMatcher[T any] struct {
	elements        []arrayElement
	mode            arrayMode
	maximumMatching bool
	err             error
}

// ArrayContaining creates an ArrayMatcher for values of type []T or [N]T. Each parameter is
// either a Matcher, which is used as the expectation for that position, or a value of type T,
// which must be equal to the element in that position (or, if it is nil, the element must be
// nil).
//
//	matchers.ArrayContaining[int](1, 2, matchers.Not(matchers.Equal(4))).InAnyOrder().Matcher()
//
// A parameter that is neither a Matcher nor a T makes the resulting Matcher fail for every value,
// and its description lists every such parameter.
func ArrayContaining[T any](elements ...interface{}) ArrayMatcher[T] {
	var a ArrayMatcher[T]
	for i, e := range elements {
		switch v := e.(type) {
		case Matcher:
			a = a.ElementMatching(v)
		case T:
			a = a.Element(v)
		default:
			if e == nil {
				a.elements = append(a.elements, arrayElement{matcher: BeNil(), nullCheck: true})
				continue
			}
			a.err = multierr.Append(a.err,
				fmt.Errorf("element %d is a value of type %T, not %s or Matcher", i, e, elementTypeOf[T]()))
		}
	}
	return a
}

// Element adds an expectation that the next element is equal to value, or is nil if value is nil.
func (a ArrayMatcher[T]) Element(value T) ArrayMatcher[T] {
	if isNil(value) {
		return a.with(arrayElement{matcher: BeNil(), nullCheck: true})
	}
	return a.with(arrayElement{matcher: Equal(value)})
}

// ElementMatching adds an expectation that the next element satisfies the Matcher.
func (a ArrayMatcher[T]) ElementMatching(matcher Matcher) ArrayMatcher[T] {
	return a.with(arrayElement{matcher: matcher})
}

func (a ArrayMatcher[T]) with(e arrayElement) ArrayMatcher[T] {
	a.elements = append(helpers.CopyOf(a.elements), e)
	return a
}

// Exactly selects the positional mode. This is the default.
func (a ArrayMatcher[T]) Exactly() ArrayMatcher[T] {
	a.mode = exactMode
	return a
}

// InAnyOrder selects the mode where element order does not matter but the lengths must be equal.
func (a ArrayMatcher[T]) InAnyOrder() ArrayMatcher[T] {
	a.mode = anyOrderMode
	return a
}

// AtLeast selects the mode where element order does not matter and surplus elements are allowed.
func (a ArrayMatcher[T]) AtLeast() ArrayMatcher[T] {
	a.mode = atLeastMode
	return a
}

// WithMaximumMatching makes InAnyOrder and AtLeast look for any assignment of elements to
// expectations that satisfies all of the expectations, instead of using the greedy assignment.
// It has no effect in the Exactly mode.
func (a ArrayMatcher[T]) WithMaximumMatching() ArrayMatcher[T] {
	a.maximumMatching = true
	return a
}

// Matcher returns the configured Matcher.
func (a ArrayMatcher[T]) Matcher() Matcher {
	frozen := a
	frozen.elements = helpers.CopyOf(a.elements)
	return New(
		frozen.matches,
		func(w io.Writer, desc DescribeValueFunc) {
			frozen.describeExpectation(w)
		},
	).WithMismatchDescription(frozen.describeMismatch)
}

func (a ArrayMatcher[T]) matchers() []Matcher {
	ret := make([]Matcher, 0, len(a.elements))
	for _, e := range a.elements {
		ret = append(ret, e.matcher)
	}
	return ret
}

func (a ArrayMatcher[T]) matches(value interface{}) bool {
	if a.err != nil {
		return false
	}
	items, ok := itemsOf[T](value)
	if !ok {
		return false
	}
	matchers := a.matchers()
	switch a.mode {
	case anyOrderMode:
		if len(items) != len(matchers) {
			return false
		}
		if a.maximumMatching {
			return matchAll(items, matchers)
		}
		return consumeGreedily(items, matchers, false)
	case atLeastMode:
		if len(items) < len(matchers) {
			return false
		}
		if a.maximumMatching {
			return matchAll(items, matchers)
		}
		return consumeGreedily(items, matchers, true)
	default:
		if len(items) != len(matchers) {
			return false
		}
		for i, m := range matchers {
			if !m.Matches(items[i]) {
				return false
			}
		}
		return true
	}
}

// consumeGreedily assigns each item to the first pending matcher it satisfies. An item that
// satisfies none fails the test, unless allowUnmatched is true. All matchers must be consumed.
func consumeGreedily(items []interface{}, matchers []Matcher, allowUnmatched bool) bool {
	pending := append([]Matcher(nil), matchers...)
NextItem:
	for _, item := range items {
		for i, m := range pending {
			if m.Matches(item) {
				pending = append(pending[:i], pending[i+1:]...)
				continue NextItem
			}
		}
		if !allowUnmatched {
			return false
		}
	}
	return len(pending) == 0
}

// matchAll returns true if there is an assignment of items to matchers that satisfies every
// matcher, each with a different item.
func matchAll(items []interface{}, matchers []Matcher) bool {
	right := make([]interface{}, 0, len(matchers))
	for _, m := range matchers {
		right = append(right, m)
	}
	graph, err := bipartitegraph.NewBipartiteGraph(items, right, func(item, m interface{}) (bool, error) {
		return m.(Matcher).Matches(item), nil
	})
	if err != nil {
		return false
	}
	return len(graph.LargestMatching()) == len(matchers)
}

func (a ArrayMatcher[T]) describeExpectation(w io.Writer) {
	if a.err != nil {
		helpers.MustFprintf(w, "a valid array expectation (%s)", a.err)
		return
	}
	parts := make([]string, 0, len(a.elements))
	for _, e := range a.elements {
		parts = append(parts, Describe(e.matcher))
	}
	list := "[" + strings.Join(parts, ", ") + "]"
	switch a.mode {
	case anyOrderMode:
		helpers.MustFprint(w, list, " in any order")
	case atLeastMode:
		helpers.MustFprint(w, "at least ", list, " in any order")
	default:
		helpers.MustFprint(w, list)
	}
}

// describeMismatch always compares the value to the expectations position by position,
// whatever the mode, since that is the easiest report for a reader to follow.
func (a ArrayMatcher[T]) describeMismatch(value interface{}, w io.Writer, desc DescribeValueFunc) {
	if a.err != nil {
		helpers.MustFprintf(w, "could not be tested: %s", a.err)
		return
	}
	items, ok := itemsOf[T](value)
	if !ok {
		helpers.MustFprintf(w, "was %s, not an array of %s", desc(value), elementTypeOf[T]())
		return
	}
	var mismatches []string
	matchers := a.matchers()
	n := min(len(items), len(matchers))
	for i := 0; i < n; i++ {
		if !matchers[i].Matches(items[i]) {
			mismatches = append(mismatches,
				fmt.Sprintf("index %d: expected %s, %s", i, Describe(matchers[i]), DescribeMismatch(matchers[i], items[i])))
		}
	}
	if len(matchers) > n {
		mismatches = append(mismatches, fmt.Sprintf("missing %d elements", len(matchers)-n))
	}
	if len(items) > n {
		surplus := items[n:]
		mismatches = append(mismatches, fmt.Sprintf("found %d elements surplus [%s]",
			len(surplus), strings.Join(a.distinctDescriptions(surplus), ", ")))
	}
	if len(mismatches) == 0 {
		helpers.MustFprint(w, "had no element-wise mismatches, but the elements could not be assigned to the expectations")
		return
	}
	helpers.MustFprint(w, "mismatching elements ", strings.Join(mismatches, ", "))
}

// distinctDescriptions describes each surplus item with the first expectation that is not a
// nil check, since a nil check would only say "was <item>" without any context. Duplicates
// are dropped, keeping the first occurrence.
func (a ArrayMatcher[T]) distinctDescriptions(items []interface{}) []string {
	best := Equal(nil)
	for _, e := range a.elements {
		if !e.nullCheck {
			best = e.matcher
			break
		}
	}
	seen := make(map[string]struct{}, len(items))
	var ret []string
	for _, item := range items {
		d := DescribeMismatch(best, item)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		ret = append(ret, d)
	}
	return ret
}

func itemsOf[T any](value interface{}) ([]interface{}, bool) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) ||
		v.Type().Elem() != elementTypeOf[T]() {
		return nil, false
	}
	ret := make([]interface{}, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		ret = append(ret, v.Index(i).Interface())
	}
	return ret, true
}

func elementTypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
