// Package unlayer models the documents exchanged with the hosted drag-and-drop
// email/web design editor: designs, export results and editor options.
//
// The editor owns these shapes and extends them freely, so every type pairs its
// well known fields with an Extra map that round-trips unknown keys through JSON.
package unlayer

import (
	"encoding/json"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/clone"
)

// Design is the row/column/content document describing an editor layout.
type Design struct {
	Body  *Body                  `json:"body,omitempty"`
	Extra map[string]interface{} `json:"-"`
}

type Body struct {
	Rows  []*Row                 `json:"rows,omitempty"`
	Extra map[string]interface{} `json:"-"`
}

type Row struct {
	Cells   []int                  `json:"cells,omitempty"`
	Columns []*Column              `json:"columns,omitempty"`
	Extra   map[string]interface{} `json:"-"`
}

type Column struct {
	Contents []*Content             `json:"contents,omitempty"`
	Extra    map[string]interface{} `json:"-"`
}

// Content is a single block such as text, image or button. Values is free form and
// interpreted by the editor according to Type.
type Content struct {
	Type   string                 `json:"type,omitempty"`
	Values map[string]interface{} `json:"values,omitempty"`
	Extra  map[string]interface{} `json:"-"`
}

const ContentText = "text"

// NewTextContent returns a text block holding html.
func NewTextContent(html string) *Content {
	return &Content{
		Type: ContentText,
		Values: map[string]interface{}{
			"text": html,
		},
	}
}

// ParseDesign decodes b after checking it with IsValidDesignJSON.
func ParseDesign(b []byte) (_ *Design, err error) {
	defer xdefer.Errorf(&err, "failed to parse design")

	if !IsValidDesignJSON(b) {
		return nil, errInvalidDesign
	}
	d := &Design{}
	err = json.Unmarshal(b, d)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Clone returns a deep copy that shares nothing with d.
func (d *Design) Clone() *Design {
	return clone.Deep(d)
}

// Contents returns every content block in document order.
func (d *Design) Contents() []*Content {
	if d == nil || d.Body == nil {
		return nil
	}
	var contents []*Content
	for _, r := range d.Body.Rows {
		if r == nil {
			continue
		}
		for _, c := range r.Columns {
			if c == nil {
				continue
			}
			for _, ct := range c.Contents {
				if ct != nil {
					contents = append(contents, ct)
				}
			}
		}
	}
	return contents
}

func (d Design) MarshalJSON() ([]byte, error) {
	type alias Design
	return marshalWithExtra(alias(d), d.Extra)
}

func (d *Design) UnmarshalJSON(b []byte) error {
	type alias Design
	return unmarshalWithExtra(b, (*alias)(d), &d.Extra)
}

func (b Body) MarshalJSON() ([]byte, error) {
	type alias Body
	return marshalWithExtra(alias(b), b.Extra)
}

func (b *Body) UnmarshalJSON(p []byte) error {
	type alias Body
	return unmarshalWithExtra(p, (*alias)(b), &b.Extra)
}

func (r Row) MarshalJSON() ([]byte, error) {
	type alias Row
	return marshalWithExtra(alias(r), r.Extra)
}

func (r *Row) UnmarshalJSON(b []byte) error {
	type alias Row
	return unmarshalWithExtra(b, (*alias)(r), &r.Extra)
}

func (c Column) MarshalJSON() ([]byte, error) {
	type alias Column
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *Column) UnmarshalJSON(b []byte) error {
	type alias Column
	return unmarshalWithExtra(b, (*alias)(c), &c.Extra)
}

func (c Content) MarshalJSON() ([]byte, error) {
	type alias Content
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *Content) UnmarshalJSON(b []byte) error {
	type alias Content
	return unmarshalWithExtra(b, (*alias)(c), &c.Extra)
}
