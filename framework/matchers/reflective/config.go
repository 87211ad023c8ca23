package reflective

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/launchdarkly/go-test-matchers/framework"
)

// Config is the complete configuration of a Comparator. It is usually built by passing
// Options to EqualTo, but can also be constructed directly for NewComparator.
type Config struct {
	// ExcludedFields are field names that are never compared or rendered, at any depth.
	ExcludedFields []string

	// BaseTypes are types that are compared with their own notion of equality instead of
	// field by field. A value is treated as a base type if its type is one of these, or if
	// one of these is an interface type that its type implements.
	BaseTypes []reflect.Type

	// DebugLogger, if set, receives a trace of the comparison.
	DebugLogger framework.Logger
}

// Option is a configuration option for EqualTo.
type Option interface {
	Configure(*Config) error
}

type optionFunc func(*Config) error

func (f optionFunc) Configure(c *Config) error { return f(c) }

// Excluding skips fields with the given names, wherever they appear in the object graph. This
// is useful for fields such as timestamps, generated IDs, or caches.
func Excluding(fieldNames ...string) Option {
	return optionFunc(func(c *Config) error {
		for _, name := range fieldNames {
			if name == "" {
				return errors.New("excluded field name must not be empty")
			}
		}
		c.ExcludedFields = append(c.ExcludedFields, fieldNames...)
		return nil
	})
}

// WithBaseTypes adds base types, identified by an example value of each type. Values of these
// types are compared with their Equal method if they have one, or else by go-cmp, rather than
// being traversed field by field.
//
//	reflective.EqualTo(order, reflective.WithBaseTypes(time.Time{}, decimal.Decimal{}))
func WithBaseTypes(valuesOfType ...interface{}) Option {
	return optionFunc(func(c *Config) error {
		for i, v := range valuesOfType {
			if v == nil {
				return fmt.Errorf("base type example %d is nil; use WithBaseType for interface types", i)
			}
			c.BaseTypes = append(c.BaseTypes, reflect.TypeOf(v))
		}
		return nil
	})
}

// WithBaseType adds T as a base type. Unlike WithBaseTypes, this works for interface types:
// WithBaseType[fmt.Stringer]() treats every value that implements fmt.Stringer as a base type.
func WithBaseType[T any]() Option {
	return optionFunc(func(c *Config) error {
		c.BaseTypes = append(c.BaseTypes, reflect.TypeOf((*T)(nil)).Elem())
		return nil
	})
}

// WithDebugLogger makes the comparison trace its progress to the Logger.
func WithDebugLogger(logger framework.Logger) Option {
	return optionFunc(func(c *Config) error {
		c.DebugLogger = logger
		return nil
	})
}
