package reflective

import (
	"container/list"
	"reflect"
	"strings"

	"github.com/launchdarkly/go-test-matchers/framework/helpers"
)

// renderer produces the nested textual form of a value that is shown in descriptions. It
// keeps its own record of which pointers, maps and slices it has already printed, unrelated
// to the comparison.
type renderer struct {
	c    *Comparator
	done map[renderKey]struct{}
}

type renderKey struct {
	typ    reflect.Type
	addr   uintptr
	length int
}

func (c *Comparator) render(value interface{}) string {
	r := renderer{c: c, done: make(map[renderKey]struct{})}
	return r.render(reflect.ValueOf(value), 0)
}

// seen marks a pointer, or a non-empty map or slice, as printed, and reports whether it had
// already been printed.
func (r renderer) seen(v reflect.Value) bool {
	key := renderKey{typ: v.Type(), addr: v.Pointer()}
	if v.Kind() != reflect.Ptr {
		if v.Len() == 0 {
			return false
		}
		key.length = v.Len()
	}
	if _, ok := r.done[key]; ok {
		return true
	}
	r.done[key] = struct{}{}
	return false
}

func (r renderer) render(v reflect.Value, indent int) string {
	if isNilValue(v) {
		return "null"
	}
	if v.Kind() == reflect.Interface {
		return r.render(readable(v.Elem()), indent)
	}
	t := v.Type()
	if r.c.isCustomBaseType(t) || t.Implements(reflectTypeType) {
		return formatBase(v)
	}
	if t == listPtrType {
		if r.seen(v) {
			return "@"
		}
		l := v.Interface().(*list.List)
		items := make([]string, 0, l.Len())
		for e := l.Front(); e != nil; e = e.Next() {
			items = append(items, r.render(reflect.ValueOf(e.Value), indent))
		}
		return "list[" + strings.Join(items, ", ") + "]"
	}

	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return formatBase(v)

	case reflect.Ptr:
		if r.seen(v) {
			return "@"
		}
		return r.render(v.Elem(), indent)

	case reflect.Array, reflect.Slice:
		if v.Kind() == reflect.Slice && r.seen(v) {
			return "@"
		}
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, r.render(readable(v.Index(i)), indent))
		}
		return "[" + strings.Join(items, ", ") + "]"

	case reflect.Map:
		if r.seen(v) {
			return "@"
		}
		items := make([]string, 0, v.Len())
		for _, key := range sortedKeys(v) {
			items = append(items, r.render(key, indent)+": "+r.render(v.MapIndex(key), indent))
		}
		return "map[" + strings.Join(items, ", ") + "]"

	case reflect.Struct:
		return r.renderStruct(addressable(v), indent)

	default:
		return t.String()
	}
}

func (r renderer) renderStruct(v reflect.Value, indent int) string {
	name := helpers.IfElse(v.Type().Name() != "", v.Type().Name(), v.Type().String())
	var fields []string
	for _, f := range r.c.descriptorOf(v.Type()).fields {
		if s, ok := r.renderField(v, f, indent+2); ok {
			fields = append(fields, strings.Repeat(" ", indent+2)+f.name+": "+s)
		}
	}
	if len(fields) == 0 {
		return name + " {}"
	}
	return name + " {\n" + strings.Join(fields, ",\n") + "\n" + strings.Repeat(" ", indent) + "}"
}

// renderField returns false if the field could not be read, in which case it is left out.
func (r renderer) renderField(v reflect.Value, f fieldDescriptor, indent int) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return r.render(readField(v, f), indent), true
}
