package unlayer

import (
	"encoding/json"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/sanitize"
)

// ExportData is what the editor produces when it renders its design to markup.
type ExportData struct {
	HTML   string  `json:"html"`
	Design *Design `json:"design"`
}

// ParseExportData decodes b after checking it with IsValidExportDataJSON.
func ParseExportData(b []byte) (_ *ExportData, err error) {
	defer xdefer.Errorf(&err, "failed to parse export data")

	if !IsValidExportDataJSON(b) {
		return nil, errInvalidExportData
	}
	ed := &ExportData{}
	err = json.Unmarshal(b, ed)
	if err != nil {
		return nil, err
	}
	return ed, nil
}

func (ed *ExportData) Clone() *ExportData {
	if ed == nil {
		return nil
	}
	return &ExportData{
		HTML:   ed.HTML,
		Design: ed.Design.Clone(),
	}
}

// Sanitized returns a copy whose HTML went through sanitize.HTML.
func (ed *ExportData) Sanitized() *ExportData {
	cp := ed.Clone()
	if cp != nil {
		cp.HTML = sanitize.HTML(cp.HTML)
	}
	return cp
}
