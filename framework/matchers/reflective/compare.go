package reflective

import (
	"container/list"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"sync"

	"github.com/launchdarkly/go-test-matchers/framework"
	"github.com/launchdarkly/go-test-matchers/framework/matchers"

	"github.com/google/go-cmp/cmp"
)

// Comparator decides whether two object graphs are deeply equal. It is safe to reuse, but its
// configuration cannot be changed after it is created.
type Comparator struct {
	excluded    map[string]struct{}
	baseTypes   []reflect.Type
	logger      framework.Logger
	descriptors map[reflect.Type]*typeDescriptor
	lock        sync.Mutex
}

// Difference is the error returned by Comparator.Compare when the values are not equal. It
// describes the first difference that was found.
type Difference struct {
	// Path locates the differing value from the root, such as ".Items[2].name". It is empty if
	// the root values themselves differ.
	Path string

	// Reason says what was different.
	Reason string
}

func (d *Difference) Error() string {
	return fmt.Sprintf("difference at %s: %s", displayPath(d.Path), d.Reason)
}

func (d *Difference) describe() string {
	return fmt.Sprintf("first difference at %s: %s", displayPath(d.Path), d.Reason)
}

func displayPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}

// NewComparator creates a Comparator with a copy of the given configuration.
func NewComparator(config Config) *Comparator {
	c := &Comparator{
		excluded:    make(map[string]struct{}, len(config.ExcludedFields)),
		baseTypes:   append([]reflect.Type(nil), config.BaseTypes...),
		logger:      config.DebugLogger,
		descriptors: make(map[reflect.Type]*typeDescriptor),
	}
	for _, name := range config.ExcludedFields {
		c.excluded[name] = struct{}{}
	}
	if c.logger == nil {
		c.logger = framework.NullLogger()
	}
	return c
}

// task is a pending obligation to compare the targets of two pointers of the same type.
type task struct {
	typ         reflect.Type
	left, right reflect.Value
	path        string
}

// visitKey identifies a pair of pointers, maps or slices that has been reached. Slices that
// share an array differ only by length, so the length is part of the key.
type visitKey struct {
	typ         reflect.Type
	left, right handle
	length      int
}

type comparison struct {
	c       *Comparator
	logger  framework.Logger
	arena   *arena
	visited map[visitKey]struct{}
	queue   []task
}

func (c *Comparator) newComparison(logger framework.Logger) *comparison {
	return &comparison{c: c, logger: logger, arena: newArena(), visited: make(map[visitKey]struct{})}
}

// Compare returns nil if actual is deeply equal to expected, or a *Difference otherwise.
//
// The two values must have exactly the same type. Pointers are followed breadth-first, and
// each pair of pointers is compared at most once, so cyclic graphs are supported: two graphs
// are equal if no difference can be reached from the roots. Arrays, slices, maps and struct
// values are compared immediately where they are found; a map or slice that contains itself
// is handled the same way as a cyclic pointer. Map entries are paired by key: with ==
// for keys of base types, and by comparing the keys under these same rules otherwise. Any
// unexpected failure while inspecting the values is reported as a difference.
func (c *Comparator) Compare(expected, actual interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Difference{Reason: fmt.Sprintf("comparison failed: %v", r)}
			c.logger.Printf("%s", err)
		}
	}()

	w := c.newComparison(c.logger)
	left, right := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if left.IsValid() != right.IsValid() || (left.IsValid() && left.Type() != right.Type()) {
		return w.differ("", fmt.Sprintf("expected a value of type %s, was %s", typeName(left), typeName(right)))
	}
	return w.run("", left, right)
}

// equalApart compares two values in a comparison of their own, without logging. It is used to
// try out candidate pairings, which must not leave anything behind in the main comparison.
func (c *Comparator) equalApart(left, right reflect.Value) bool {
	return c.newComparison(framework.NullLogger()).run("", left, right) == nil
}

func (w *comparison) run(path string, left, right reflect.Value) error {
	if err := w.compareValues(path, left, right); err != nil {
		return err
	}
	for len(w.queue) > 0 {
		t := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.process(t); err != nil {
			return err
		}
	}
	return nil
}

func (w *comparison) differ(path, reason string) *Difference {
	d := &Difference{Path: path, Reason: reason}
	w.logger.Printf("%s", d)
	return d
}

// reached records a pair of lists, or of non-empty maps or slices, and reports whether the
// pair had been reached before. A pair that is reached again is assumed equal, like a pair of
// pointers, since these are compared where they are found and can contain themselves.
func (w *comparison) reached(path string, left, right reflect.Value) bool {
	key := visitKey{typ: left.Type(), left: w.arena.handleOf(left), right: w.arena.handleOf(right)}
	if left.Kind() != reflect.Ptr {
		if left.Len() == 0 {
			return false
		}
		key.length = left.Len()
	}
	if _, ok := w.visited[key]; ok {
		w.logger.Printf("skipping %s at %s, already compared", left.Type(), displayPath(path))
		return true
	}
	w.visited[key] = struct{}{}
	return false
}

func (w *comparison) process(t task) error {
	key := visitKey{typ: t.typ, left: w.arena.handleOf(t.left), right: w.arena.handleOf(t.right)}
	if _, ok := w.visited[key]; ok {
		w.logger.Printf("skipping %s at %s, already compared", t.typ, displayPath(t.path))
		return nil
	}
	w.visited[key] = struct{}{}
	if t.left.Pointer() == t.right.Pointer() {
		return nil
	}
	w.logger.Printf("comparing %s at %s", t.typ, displayPath(t.path))
	return w.compareValues(t.path, t.left.Elem(), t.right.Elem())
}

func (w *comparison) compareValues(path string, left, right reflect.Value) error {
	c := w.c
	leftNil, rightNil := isNilValue(left), isNilValue(right)
	switch {
	case leftNil && rightNil:
		return nil
	case leftNil:
		return w.differ(path, fmt.Sprintf("expected nil, was a non-nil %s", right.Type()))
	case rightNil:
		return w.differ(path, fmt.Sprintf("expected a non-nil %s, was nil", left.Type()))
	}

	if left.Kind() == reflect.Interface {
		return w.compareValues(path, readable(left.Elem()), readable(right.Elem()))
	}
	if left.Type() != right.Type() {
		return w.differ(path, fmt.Sprintf("expected a value of type %s, was %s", left.Type(), right.Type()))
	}

	switch c.categoryOf(left.Type()) {
	case baseCategory:
		if !c.baseEqual(left, right) {
			return w.differ(path, fmt.Sprintf("expected %s, was %s", formatBase(left), formatBase(right)))
		}
		return nil

	case arrayCategory:
		if left.Len() != right.Len() {
			return w.differ(path, fmt.Sprintf("expected length %d, was %d", left.Len(), right.Len()))
		}
		if left.Kind() == reflect.Slice && (left.Pointer() == right.Pointer() || w.reached(path, left, right)) {
			return nil
		}
		for i := 0; i < left.Len(); i++ {
			p := path + "[" + strconv.Itoa(i) + "]"
			if err := w.compareValues(p, readable(left.Index(i)), readable(right.Index(i))); err != nil {
				return err
			}
		}
		return nil

	case mapCategory:
		if left.Len() != right.Len() {
			return w.differ(path, fmt.Sprintf("expected %d entries, was %d", left.Len(), right.Len()))
		}
		if left.Pointer() == right.Pointer() || w.reached(path, left, right) {
			return nil
		}
		if c.categoryOf(left.Type().Key()) != baseCategory {
			return w.compareMapsByKeyStructure(path, left, right)
		}
		for _, key := range sortedKeys(left) {
			p := path + fmt.Sprintf("[%#v]", key.Interface())
			rightValue := right.MapIndex(key)
			if !rightValue.IsValid() {
				return w.differ(p, "expected key, was missing")
			}
			if err := w.compareValues(p, left.MapIndex(key), rightValue); err != nil {
				return err
			}
		}
		return nil

	case listCategory:
		leftList, rightList := left.Interface().(*list.List), right.Interface().(*list.List)
		if leftList.Len() != rightList.Len() {
			return w.differ(path, fmt.Sprintf("expected length %d, was %d", leftList.Len(), rightList.Len()))
		}
		if leftList == rightList || w.reached(path, left, right) {
			return nil
		}
		i := 0
		for le, re := leftList.Front(), rightList.Front(); le != nil && re != nil; le, re = le.Next(), re.Next() {
			p := path + "[" + strconv.Itoa(i) + "]"
			if err := w.compareValues(p, reflect.ValueOf(le.Value), reflect.ValueOf(re.Value)); err != nil {
				return err
			}
			i++
		}
		return nil

	case structCategory:
		left, right = addressable(left), addressable(right)
		for _, f := range c.descriptorOf(left.Type()).fields {
			if err := w.compareValues(path+"."+f.name, readField(left, f), readField(right, f)); err != nil {
				return err
			}
		}
		return nil

	case objectCategory:
		w.queue = append(w.queue, task{typ: left.Type().Elem(), left: left, right: right, path: path})
		return nil

	default:
		return w.differ(path, fmt.Sprintf("cannot compare values of type %s", left.Type()))
	}
}

// compareMapsByKeyStructure pairs each expected entry with an unpaired actual entry whose key
// is equal to its key, preferring one whose value is also equal, and then compares the values
// of each pair. Keys are identified in paths by their position in the expected map's key order.
func (w *comparison) compareMapsByKeyStructure(path string, left, right reflect.Value) error {
	rightKeys := sortedKeys(right)
	paired := make([]bool, len(rightKeys))
	for i, key := range sortedKeys(left) {
		p := path + fmt.Sprintf("[key %d]", i)
		match := -1
		for j, candidate := range rightKeys {
			if paired[j] || !w.c.equalApart(key, candidate) {
				continue
			}
			if match < 0 {
				match = j
			}
			if w.c.equalApart(left.MapIndex(key), right.MapIndex(candidate)) {
				match = j
				break
			}
		}
		if match < 0 {
			return w.differ(p, "expected key, was missing")
		}
		paired[match] = true
		if err := w.compareValues(p, left.MapIndex(key), right.MapIndex(rightKeys[match])); err != nil {
			return err
		}
	}
	return nil
}

func (c *Comparator) baseEqual(left, right reflect.Value) bool {
	if c.isCustomBaseType(left.Type()) {
		return cmp.Equal(left.Interface(), right.Interface(), cmp.Exporter(func(reflect.Type) bool { return true }))
	}
	if left.Type().Implements(reflectTypeType) {
		return left.Interface() == right.Interface()
	}
	switch left.Kind() {
	case reflect.Bool:
		return left.Bool() == right.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return left.Int() == right.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return left.Uint() == right.Uint()
	case reflect.Float32, reflect.Float64:
		return sameFloat(left.Float(), right.Float())
	case reflect.Complex64, reflect.Complex128:
		l, r := left.Complex(), right.Complex()
		return sameFloat(real(l), real(r)) && sameFloat(imag(l), imag(r))
	case reflect.String:
		return left.String() == right.String()
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return left.Pointer() == right.Pointer()
	default:
		return false
	}
}

// sameFloat compares the bit patterns, so that a NaN equals itself and every value is equal
// to itself.
func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func formatBase(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return strconv.Quote(v.String())
	}
	if !v.CanInterface() {
		return v.Type().String()
	}
	return matchers.DefaultDescription(v.Interface())
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	names := make(map[int]string, len(keys))
	for i, k := range keys {
		names[i] = fmt.Sprintf("%#v", k.Interface())
	}
	indexes := make([]int, len(keys))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool { return names[indexes[a]] < names[indexes[b]] })
	ret := make([]reflect.Value, 0, len(keys))
	for _, i := range indexes {
		ret = append(ret, keys[i])
	}
	return ret
}
