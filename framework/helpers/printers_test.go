package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("sorry") }

func TestMustFprint(t *testing.T) {
	var b strings.Builder
	MustFprint(&b, "a", 1)
	MustFprintf(&b, "[%d]", 2)
	assert.Equal(t, "a1[2]", b.String())

	assert.Panics(t, func() { MustFprint(brokenWriter{}, "x") })
	assert.Panics(t, func() { MustFprintf(brokenWriter{}, "x") })
}

type testConfig struct{ values []string }

type addValue string

func (a addValue) Configure(c *testConfig) error {
	if a == "" {
		return errors.New("empty value")
	}
	c.values = append(c.values, string(a))
	return nil
}

func TestApplyOptions(t *testing.T) {
	var c testConfig
	assert.NoError(t, ApplyOptions(&c, addValue("a"), addValue("b")))
	assert.Equal(t, []string{"a", "b"}, c.values)

	var c1 testConfig
	assert.EqualError(t, ApplyOptions(&c1, addValue("a"), addValue(""), addValue("c")), "empty value")
	assert.Equal(t, []string{"a"}, c1.values)
}
