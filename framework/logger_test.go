package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapturingLogger(t *testing.T) {
	var l CapturingLogger
	l.Println("a", "b")
	l.Printf("c=%d", 3)

	assert.Equal(t, []string{"a b", "c=3"}, l.Messages())

	lines := strings.Split(l.Output().ToString("> "), "\n")
	if assert.Len(t, lines, 2) {
		assert.True(t, strings.HasPrefix(lines[0], "> ["))
		assert.True(t, strings.HasSuffix(lines[0], "] a b"))
		assert.True(t, strings.HasSuffix(lines[1], "] c=3"))
	}
}

func TestLoggerWithPrefix(t *testing.T) {
	var l CapturingLogger
	p := LoggerWithPrefix(&l, "[x] ")
	p.Printf("hello %s", "there")
	p.Println("bye")

	assert.Equal(t, []string{"[x] hello there", "[x]  bye"}, l.Messages())
}

func TestNullLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger().Println("ignored")
		NullLogger().Printf("ignored %d", 1)
	})
}
