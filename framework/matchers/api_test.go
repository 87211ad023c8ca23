package matchers

import (
	"fmt"
	"io"
	"testing"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decoratedString string

func (s decoratedString) String() string { return decorate(string(s)) }

func decorate(value interface{}) string { return fmt.Sprintf("Hi, I'm '%s'", value.(string)) }

func assertPasses(t *testing.T, value interface{}, m Matcher) {
	t.Helper()
	pass, desc := m.Test(value)
	assert.True(t, pass)
	assert.Equal(t, "", desc)
}

func assertFails(t *testing.T, value interface{}, m Matcher, expectedDesc string) {
	t.Helper()
	pass, desc := m.Test(value)
	assert.False(t, pass)
	assert.Equal(t, expectedDesc, desc)
}

func shouldBeGood() Matcher {
	return New(
		func(value interface{}) bool { return value == "good" },
		func(w io.Writer, desc DescribeValueFunc) { helpers.MustFprint(w, "should be good") },
	)
}

func TestSimpleMatcher(t *testing.T) {
	m := shouldBeGood()
	assertPasses(t, "good", m)
	assertFails(t, "bad", m, "expected: should be good\nbut: was bad")
}

func TestMatcherWithNoFunctions(t *testing.T) {
	var m Matcher
	assert.True(t, m.Matches("anything"))
	assert.Equal(t, "no test description given", Describe(m))
}

func TestMatcherValueDescriptionUsesStringer(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == decoratedString("good") },
		func(w io.Writer, desc DescribeValueFunc) { helpers.MustFprint(w, "should be good") },
	)
	assertFails(t, decoratedString("bad"), m,
		fmt.Sprintf("expected: should be good\nbut: was %s", decorate("bad")))
}

func TestDefaultDescription(t *testing.T) {
	var nilStringer *decoratedPtr
	assert.Equal(t, "nil", DefaultDescription(nil))
	assert.Equal(t, "nil", DefaultDescription(nilStringer))
	assert.Equal(t, "3", DefaultDescription(3))
	assert.Equal(t, "{X:1}", DefaultDescription(struct{ X int }{1}))
}

type decoratedPtr struct{}

func (d *decoratedPtr) String() string { return "decorated" }

func TestWithMismatchDescription(t *testing.T) {
	m := shouldBeGood().WithMismatchDescription(func(value interface{}, w io.Writer, desc DescribeValueFunc) {
		helpers.MustFprintf(w, "%s is not good enough", desc(value))
	})
	assertFails(t, "ok", m, "expected: should be good\nbut: ok is not good enough")
	assert.Equal(t, "ok is not good enough", DescribeMismatch(m, "ok"))
}

func TestAssert(t *testing.T) {
	var tr1 helpers.TestRecorder
	assert.True(t, Equal(2).Assert(&tr1, 2))
	assert.Len(t, tr1.Errors, 0)

	var tr2 helpers.TestRecorder
	assert.False(t, Equal(2).Assert(&tr2, 3))
	assert.False(t, Equal(2).Assert(&tr2, 4))
	require.Len(t, tr2.Errors, 2)
	assert.Contains(t, tr2.Errors[0], "expected: equal to 2")
	assert.Contains(t, tr2.Errors[0], "but: was 3")
	assert.Contains(t, tr2.Errors[1], "but: was 4")
	assert.False(t, tr2.Terminated)
}

func TestRequire(t *testing.T) {
	var tr helpers.TestRecorder
	assert.False(t, Equal(2).Require(&tr, 3))
	require.Len(t, tr.Errors, 1)
	assert.Contains(t, tr.Errors[0], "but: was 3")
	assert.True(t, tr.Terminated)
}

func TestEnsureType(t *testing.T) {
	m := shouldBeGood()
	assertPasses(t, "good", m)
	assertFails(t, 3, m, "expected: should be good\nbut: was 3")

	m1 := m.EnsureType("example string")
	assertPasses(t, "good", m1)
	assertFails(t, "bad", m1, "expected: should be good\nbut: was bad")
	assertFails(t, 3, m1, "expected: should be good\nbut: was a value of type int, not string")

	m2 := m.EnsureType(nil) // no-op
	assertPasses(t, "good", m2)
	assertFails(t, 3, m2, "expected: should be good\nbut: was 3")
}

func TestWithValueDescription(t *testing.T) {
	m := New(
		func(value interface{}) bool { return value == "good" },
		func(w io.Writer, desc DescribeValueFunc) { helpers.MustFprintf(w, "should be %s", desc("good")) },
	).WithValueDescription(decorate)

	assertPasses(t, "good", m)
	assertFails(t, "bad", m,
		fmt.Sprintf("expected: should be %s\nbut: was %s", decorate("good"), decorate("bad")))
}
