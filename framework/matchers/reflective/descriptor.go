package reflective

import (
	"container/list"
	"reflect"
	"unsafe"
)

// category says how values of a type take part in a comparison.
type category int

const (
	// baseCategory values are compared by their own equality.
	baseCategory category = iota
	// arrayCategory values (arrays and slices) are compared element by element, immediately.
	arrayCategory
	// mapCategory values are compared key by key, immediately.
	mapCategory
	// listCategory values (*list.List) are compared element by element in iteration order.
	listCategory
	// structCategory values are expanded into their fields, immediately.
	structCategory
	// objectCategory values are pointers; their targets are compared later, once per pair.
	objectCategory
	// interfaceCategory values are classified again by their dynamic type.
	interfaceCategory
)

var (
	reflectTypeType = reflect.TypeOf((*reflect.Type)(nil)).Elem()
	listPtrType     = reflect.TypeOf((*list.List)(nil))
)

type fieldDescriptor struct {
	name  string
	index []int
}

// typeDescriptor is the structural equality descriptor of a struct type: the fields that take
// part in comparison, with the fields of embedded structs flattened in declaration order.
type typeDescriptor struct {
	typ    reflect.Type
	fields []fieldDescriptor
}

func (c *Comparator) isCustomBaseType(t reflect.Type) bool {
	for _, bt := range c.baseTypes {
		if t == bt || (bt.Kind() == reflect.Interface && t.Implements(bt)) {
			return true
		}
	}
	return false
}

func (c *Comparator) categoryOf(t reflect.Type) category {
	if c.isCustomBaseType(t) || t.Implements(reflectTypeType) {
		return baseCategory
	}
	if t == listPtrType {
		return listCategory
	}
	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		return arrayCategory
	case reflect.Map:
		return mapCategory
	case reflect.Struct:
		return structCategory
	case reflect.Ptr:
		return objectCategory
	case reflect.Interface:
		return interfaceCategory
	default:
		return baseCategory
	}
}

// descriptorOf returns the descriptor for a struct type, deriving it on first use.
func (c *Comparator) descriptorOf(t reflect.Type) *typeDescriptor {
	c.lock.Lock()
	defer c.lock.Unlock()
	if d, ok := c.descriptors[t]; ok {
		return d
	}
	d := &typeDescriptor{typ: t}
	c.addFields(d, t, nil)
	c.descriptors[t] = d
	return d
}

func (c *Comparator) addFields(d *typeDescriptor, t reflect.Type, prefix []int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		if _, excluded := c.excluded[f.Name]; excluded {
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !c.isCustomBaseType(f.Type) {
			c.addFields(d, f.Type, index)
			continue
		}
		d.fields = append(d.fields, fieldDescriptor{name: f.Name, index: index})
	}
}

// readField returns the value of a field, readable even if the field is unexported. The
// struct value must be addressable for unexported fields to be readable.
func readField(v reflect.Value, f fieldDescriptor) reflect.Value {
	return readable(v.FieldByIndex(f.index))
}

func readable(v reflect.Value) reflect.Value {
	if !v.IsValid() || v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// addressable returns v itself if it is addressable, or else an addressable copy of it.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func isNilValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
