package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// TestRecorder is a stub implementation of the assert.TestingT and require.TestingT
// interfaces, for verifying what a matcher's Assert or Require method reports.
type TestRecorder struct {
	Errors     []string
	Terminated bool

	// PanicOnTerminate makes FailNow panic, the way testing.T's FailNow stops the current
	// goroutine. Otherwise FailNow only sets Terminated.
	PanicOnTerminate bool
}

func (t *TestRecorder) Errorf(msgFormat string, msgArgs ...interface{}) {
	t.Errors = append(t.Errors, fmt.Sprintf(msgFormat, msgArgs...))
}

func (t *TestRecorder) FailNow() {
	t.Terminated = true
	if t.PanicOnTerminate {
		panic(t)
	}
}

// Err returns all of the recorded failures combined into one error, or nil if there were none.
func (t *TestRecorder) Err() error {
	if len(t.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(t.Errors, ", "))
}
