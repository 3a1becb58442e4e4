// Package clone produces deep, referentially independent copies of values.
//
// Deep walks maps, slices, arrays, pointers, interfaces and the exported fields of
// structs. time.Time is treated as an immutable instant. Functions and channels are
// shared with the original.
//
// Every map, slice and pointer is tracked by identity while walking so that shared
// and cyclic sub-structures are reproduced in the copy instead of recursing forever.
package clone

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Deep returns a deep copy of v.
func Deep[T any](v T) T {
	var out T
	c := &cloner{seen: make(map[visit]reflect.Value)}
	reflect.ValueOf(&out).Elem().Set(c.clone(reflect.ValueOf(&v).Elem()))
	return out
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type cloner struct {
	seen map[visit]reflect.Value
}

func (c *cloner) clone(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	if v.Type() == timeType {
		// time.Time is immutable, copying the value yields an independent instant.
		out := reflect.New(timeType).Elem()
		out.Set(v)
		return out
	}

	switch v.Kind() {
	case reflect.Interface:
		out := reflect.New(v.Type()).Elem()
		if v.IsNil() {
			return out
		}
		out.Set(c.clone(v.Elem()))
		return out
	case reflect.Ptr:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		k := visit{ptr: v.Pointer(), typ: v.Type()}
		if out, ok := c.seen[k]; ok {
			return out
		}
		out := reflect.New(v.Type().Elem())
		c.seen[k] = out
		out.Elem().Set(c.clone(v.Elem()))
		return out
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		k := visit{ptr: v.Pointer(), typ: v.Type()}
		if out, ok := c.seen[k]; ok {
			return out
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		c.seen[k] = out
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), c.clone(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		if v.Len() == 0 {
			return out
		}
		k := visit{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
		if seen, ok := c.seen[k]; ok {
			return seen
		}
		c.seen[k] = out
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(c.clone(v.Index(i)))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		// Unexported fields can only be copied shallowly.
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(c.clone(v.Field(i)))
		}
		return out
	default:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		return out
	}
}
