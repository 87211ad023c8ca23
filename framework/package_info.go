// Package framework contains the infrastructure shared by the matcher packages. The base
// package contains the Logger abstraction used for debug tracing; other components are in the
// subpackages helpers, matchers, and matchers/reflective.
//
// The general model is:
//
// 1. A Matcher is an immutable value that can test whether another value meets an expectation,
// and can describe both the expectation and the way a value failed to meet it.
//
// 2. Matchers can be combined (AllOf, AnyOf, Not), applied to a derived value (Transform), or
// adapted for use with other test frameworks such as gomega and gomock.
//
// 3. Descriptions are written to an io.Writer, so that composite matchers can nest the
// descriptions of their parts without building intermediate strings.
package framework
