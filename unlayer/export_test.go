package unlayer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"
)

func TestParseExportData(t *testing.T) {
	t.Parallel()

	ed, err := ParseExportData([]byte(`{"html":"<p onclick=\"x()\">hi</p><script>alert(1)</script>","design":{"body":{"rows":[]},"schemaVersion":12}}`))
	assert.NoError(t, err)
	assert.True(t, IsValidExportData(ed))
	assert.Equal(t, json.Number("12"), ed.Design.Extra["schemaVersion"])

	san := ed.Sanitized()
	diff.AssertStringEq(t, `<p "x()">hi</p>`, san.HTML)
	diff.AssertStringEq(t, `<p onclick="x()">hi</p><script>alert(1)</script>`, ed.HTML)
	assert.NotSame(t, ed.Design, san.Design)
	assert.Equal(t, ed.Design, san.Design)

	_, err = ParseExportData([]byte(`{"html":1,"design":{}}`))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `string "html"`)
	}
}

func TestExportDataJSON(t *testing.T) {
	t.Parallel()

	ed := &ExportData{HTML: "<p>x</p>", Design: SampleDesign()}
	b, err := json.Marshal(ed)
	assert.NoError(t, err)
	assert.True(t, IsValidExportDataJSON(b))

	var v interface{}
	assert.NoError(t, json.Unmarshal(b, &v))
	assert.True(t, IsValidExportData(v))

	var nilExport *ExportData
	assert.Nil(t, nilExport.Sanitized())
}
