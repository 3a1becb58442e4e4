package unlayer

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/tidwall/gjson"
)

var (
	errInvalidDesign     = errors.New("expected a JSON object whose body, if present, is an object")
	errInvalidExportData = errors.New(`expected a JSON object with a string "html" and an object "design"`)
)

// IsValidDesign reports whether v is shaped like a Design: an object that either has
// no body or whose body is an object. Rows, columns and contents are not inspected.
//
// Objects are non-nil maps keyed by strings, structs and non-nil pointers to structs.
// A struct's keys are its JSON field names; an omitempty field that would be omitted
// is absent. Anything else, including nil, arrays and primitives, is invalid.
func IsValidDesign(v interface{}) bool {
	body, has, ok := field(v, "body")
	if !ok {
		return false
	}
	return !has || isObject(body)
}

// IsValidExportData reports whether v is an object with a string html and an object
// design. The design itself is not validated.
func IsValidExportData(v interface{}) bool {
	html, has, ok := field(v, "html")
	if !ok || !has || !isString(html) {
		return false
	}
	design, has, _ := field(v, "design")
	return has && isObject(design)
}

// IsValidDesignJSON is IsValidDesign for undecoded JSON. Like encoding/json, the
// last of duplicate keys wins.
func IsValidDesignJSON(b []byte) bool {
	if !gjson.ValidBytes(b) {
		return false
	}
	r := gjson.ParseBytes(b)
	if !r.IsObject() {
		return false
	}
	body := lastKey(r, "body")
	return !body.Exists() || body.IsObject()
}

// IsValidExportDataJSON is IsValidExportData for undecoded JSON.
func IsValidExportDataJSON(b []byte) bool {
	if !gjson.ValidBytes(b) {
		return false
	}
	r := gjson.ParseBytes(b)
	if !r.IsObject() {
		return false
	}
	return lastKey(r, "html").Type == gjson.String && lastKey(r, "design").IsObject()
}

// lastKey is r.Get(key) except that it returns the last value of a repeated key.
func lastKey(r gjson.Result, key string) gjson.Result {
	var v gjson.Result
	r.ForEach(func(k, kv gjson.Result) bool {
		if k.String() == key {
			v = kv
		}
		return true
	})
	return v
}

// field looks key up in v when v is an object. ok is false when it is not.
func field(v interface{}, key string) (_ interface{}, has, ok bool) {
	if m, isMap := v.(map[string]interface{}); isMap {
		if m == nil {
			return nil, false, false
		}
		fv, has := m[key]
		return fv, has, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return nil, false, false
		}
		fv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return nil, false, true
		}
		return fv.Interface(), true, true
	case reflect.Struct:
		for _, f := range jsonFields(rv.Type()) {
			if f.name != key {
				continue
			}
			fv := rv.Field(f.index)
			if f.omitEmpty && omit(fv) {
				return nil, false, true
			}
			return fv.Interface(), true, true
		}
		return nil, false, true
	default:
		return nil, false, false
	}
}

func isObject(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String && !rv.IsNil()
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

// isString excludes json.Number, which is how a decoder using UseNumber hands back
// JSON numbers.
func isString(v interface{}) bool {
	if _, ok := v.(json.Number); ok {
		return false
	}
	return v != nil && reflect.ValueOf(v).Kind() == reflect.String
}
