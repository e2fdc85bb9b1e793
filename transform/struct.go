package transform

import (
	"reflect"
	"strings"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, arrays and map values.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	StructStringFunc(v, strings.ToLower)
}

// StructSteps applies each step, in order, to every string field in the
// struct recursively.
func StructSteps(v any, steps ...func(string) string) {
	StructStringFunc(v, func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	})
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// StructStringFunc applies f to every settable string reachable from the
// struct pointer v. Non-pointers, nil pointers and pointers to non-structs
// are ignored.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	walk(rv.Elem(), f)
}

func walk(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			walk(v.Elem(), f)
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if field := v.Field(i); field.CanSet() {
				walk(field, f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			walk(v.Index(i), f)
		}
	case reflect.Map:
		// Map values aren't addressable; copy, walk, put back.
		for _, key := range v.MapKeys() {
			cp := reflect.New(v.Type().Elem()).Elem()
			cp.Set(v.MapIndex(key))
			walk(cp, f)
			v.SetMapIndex(key, cp)
		}
	case reflect.Interface:
		// Skip interface fields: the dynamic value is not addressable.
	}
}
