package unlayer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type namedMap map[string]interface{}

func TestIsValidDesign(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		v    interface{}
		exp  bool
	}{
		{name: "nil", v: nil, exp: false},
		{name: "string", v: "design", exp: false},
		{name: "number", v: 3.0, exp: false},
		{name: "bool", v: true, exp: false},
		{name: "array", v: []interface{}{map[string]interface{}{}}, exp: false},
		{name: "nil_map", v: map[string]interface{}(nil), exp: false},
		{name: "nil_design", v: (*Design)(nil), exp: false},
		{name: "empty", v: map[string]interface{}{}, exp: true},
		{name: "no_body", v: map[string]interface{}{"counters": map[string]interface{}{}}, exp: true},
		{name: "body_object", v: map[string]interface{}{"body": map[string]interface{}{"rows": []interface{}{}}}, exp: true},
		{name: "body_null", v: map[string]interface{}{"body": nil}, exp: false},
		{name: "body_string", v: map[string]interface{}{"body": "rows"}, exp: false},
		{name: "body_number", v: map[string]interface{}{"body": 1}, exp: false},
		{name: "body_array", v: map[string]interface{}{"body": []interface{}{}}, exp: false},
		{name: "body_struct", v: map[string]interface{}{"body": &Body{}}, exp: true},
		{name: "body_time", v: map[string]interface{}{"body": time.Now()}, exp: true},
		{name: "named_map", v: namedMap{"body": namedMap{}}, exp: true},
		{name: "string_map", v: map[string]string{"body": "x"}, exp: false},
		{name: "int_keys", v: map[int]interface{}{1: "x"}, exp: false},
		{name: "typed", v: Design{}, exp: true},
		{name: "typed_pointer", v: SampleDesign(), exp: true},
		{name: "typed_empty_body", v: &Design{Body: &Body{}}, exp: true},
		{name: "other_struct", v: Body{}, exp: true},
		{name: "other_struct_pointer", v: &ExportData{}, exp: true},
		{name: "anonymous_struct", v: struct{ X int }{}, exp: true},
		{name: "struct_body_string", v: struct {
			Body string `json:"body"`
		}{}, exp: false},
		{name: "struct_body_omitted", v: struct {
			Body string `json:"body,omitempty"`
		}{}, exp: true},
		{name: "struct_body_struct", v: struct {
			Body Body `json:"body"`
		}{}, exp: true},
		{name: "struct_untagged_body", v: struct{ Body string }{}, exp: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, IsValidDesign(tc.v))
		})
	}
}

func TestIsValidExportData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		v    interface{}
		exp  bool
	}{
		{name: "minimal", v: map[string]interface{}{"html": "x", "design": map[string]interface{}{}}, exp: true},
		{name: "html_number", v: map[string]interface{}{"html": 1, "design": map[string]interface{}{}}, exp: false},
		{name: "html_json_number", v: map[string]interface{}{"html": json.Number("1"), "design": map[string]interface{}{}}, exp: false},
		{name: "html_named_string", v: map[string]interface{}{"html": DisplayModeWeb, "design": map[string]interface{}{}}, exp: true},
		{name: "html_missing", v: map[string]interface{}{"design": map[string]interface{}{}}, exp: false},
		{name: "design_missing", v: map[string]interface{}{"html": "x"}, exp: false},
		{name: "design_null", v: map[string]interface{}{"html": "x", "design": nil}, exp: false},
		{name: "design_string", v: map[string]interface{}{"html": "x", "design": "{}"}, exp: false},
		{name: "design_array", v: map[string]interface{}{"html": "x", "design": []interface{}{}}, exp: false},
		{name: "nil", v: nil, exp: false},
		{name: "array", v: []interface{}{"x"}, exp: false},
		{name: "typed", v: ExportData{HTML: "x", Design: &Design{}}, exp: true},
		{name: "typed_nil_design", v: &ExportData{HTML: "x"}, exp: false},
		{name: "typed_nil", v: (*ExportData)(nil), exp: false},
		{name: "struct", v: struct {
			HTML   string      `json:"html"`
			Design interface{} `json:"design"`
		}{Design: Body{}}, exp: true},
		{name: "struct_design_omitted", v: struct {
			HTML   string  `json:"html"`
			Design *Design `json:"design,omitempty"`
		}{}, exp: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, IsValidExportData(tc.v))
		})
	}
}

func TestValidJSONMatchesDecoded(t *testing.T) {
	t.Parallel()

	designs := []string{
		`{}`,
		`{"body": {"rows": []}}`,
		`{"body": null}`,
		`{"body": "x"}`,
		`{"body": []}`,
		`{"body": 1, "body": {}}`,
		`{"body": {}, "body": 1}`,
		`[]`,
		`null`,
		`"x"`,
	}
	for _, s := range designs {
		var v interface{}
		assert.NoError(t, json.Unmarshal([]byte(s), &v))
		assert.Equal(t, IsValidDesign(v), IsValidDesignJSON([]byte(s)), s)
	}

	exports := []string{
		`{"html": "x", "design": {}}`,
		`{"html": 1, "design": {}}`,
		`{"html": "x", "design": null}`,
		`{"html": "x"}`,
		`{"design": {}}`,
		`{"html": 1, "html": "x", "design": [], "design": {}}`,
		`{"html": "x", "design": {}, "html": 1}`,
		`[]`,
	}
	for _, s := range exports {
		var v interface{}
		assert.NoError(t, json.Unmarshal([]byte(s), &v))
		assert.Equal(t, IsValidExportData(v), IsValidExportDataJSON([]byte(s)), s)
	}

	assert.False(t, IsValidDesignJSON([]byte(`{"body": `)))
	assert.False(t, IsValidExportDataJSON([]byte(``)))
}
