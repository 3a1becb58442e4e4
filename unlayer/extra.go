package unlayer

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"sync"

	"oss.terrastruct.com/unlayerkit/lib/go2"
)

// marshalWithExtra encodes core, a struct, and merges in the keys of extra that
// core does not already define.
//
// omitempty on a slice, map, pointer or interface field omits it only when it is
// nil so that an empty array or object in the source document is written back.
// Markup in string values is not escaped.
func marshalWithExtra(core interface{}, extra map[string]interface{}) ([]byte, error) {
	rv := reflect.ValueOf(core)
	fields := jsonFields(rv.Type())

	m := make(map[string]json.RawMessage, len(fields)+len(extra))
	for _, f := range fields {
		fv := rv.Field(f.index)
		if f.omitEmpty && omit(fv) {
			continue
		}
		raw, err := encode(fv.Interface())
		if err != nil {
			return nil, err
		}
		m[f.name] = raw
	}
	for k, v := range extra {
		if _, ok := m[k]; ok {
			continue
		}
		if isKnown(fields, k) {
			continue
		}
		raw, err := encode(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := encode(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(m[k])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// unmarshalWithExtra decodes b into core, a pointer to a struct, and stores every
// key the struct does not declare in extra. Numbers in free form values decode as
// json.Number so they are written back exactly.
func unmarshalWithExtra(b []byte, core interface{}, extra *map[string]interface{}) error {
	err := decode(b, core)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	err = decode(b, &m)
	if err != nil {
		return err
	}
	for _, f := range jsonFields(reflect.TypeOf(core).Elem()) {
		delete(m, f.name)
	}
	if len(m) == 0 {
		m = nil
	}
	*extra = m
	return nil
}

func encode(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

func decode(b []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(v)
}

func omit(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

type jsonField struct {
	name      string
	index     int
	omitEmpty bool
}

func isKnown(fields []jsonField, name string) bool {
	for _, f := range fields {
		if f.name == name {
			return true
		}
	}
	return false
}

var jsonFieldsCache sync.Map

func jsonFields(t reflect.Type) []jsonField {
	if fields, ok := jsonFieldsCache.Load(t); ok {
		return fields.([]jsonField)
	}
	var fields []jsonField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		opts := strings.Split(tag, ",")
		name := opts[0]
		if name == "" {
			name = f.Name
		}
		fields = append(fields, jsonField{
			name:      name,
			index:     i,
			omitEmpty: go2.Contains(opts[1:], "omitempty"),
		})
	}
	jsonFieldsCache.Store(t, fields)
	return fields
}
