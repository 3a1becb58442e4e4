package unlayer

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/go2"
)

type DisplayMode string

const (
	DisplayModeEmail DisplayMode = "email"
	DisplayModeWeb   DisplayMode = "web"
	DisplayModePopup DisplayMode = "popup"
)

type TextDirection string

const (
	TextDirectionLTR TextDirection = "ltr"
	TextDirectionRTL TextDirection = "rtl"
)

// Options are forwarded untouched to the editor's init call.
type Options struct {
	ID            string                   `json:"id,omitempty"`
	DisplayMode   DisplayMode              `json:"displayMode,omitempty"`
	ProjectID     int64                    `json:"projectId,omitempty"`
	Locale        string                   `json:"locale,omitempty"`
	Appearance    map[string]interface{}   `json:"appearance,omitempty"`
	User          *User                    `json:"user,omitempty"`
	MergeTags     []MergeTag               `json:"mergeTags,omitempty"`
	DesignTags    map[string]interface{}   `json:"designTags,omitempty"`
	SpecialLinks  []SpecialLink            `json:"specialLinks,omitempty"`
	Tools         *Tools                   `json:"tools,omitempty"`
	Blocks        []map[string]interface{} `json:"blocks,omitempty"`
	Editor        *EditorConfig            `json:"editor,omitempty"`
	Fonts         *Fonts                   `json:"fonts,omitempty"`
	CustomJS      []string                 `json:"customJS,omitempty"`
	CustomCSS     []string                 `json:"customCSS,omitempty"`
	TextDirection TextDirection            `json:"textDirection,omitempty"`
	Extra         map[string]interface{}   `json:"-"`
}

type User struct {
	// ID is a string or a number.
	ID    interface{}            `json:"id,omitempty"`
	Name  string                 `json:"name,omitempty"`
	Email string                 `json:"email,omitempty"`
	Extra map[string]interface{} `json:"-"`
}

type MergeTag struct {
	Name   string                 `json:"name"`
	Value  string                 `json:"value"`
	Sample string                 `json:"sample,omitempty"`
	Extra  map[string]interface{} `json:"-"`
}

type SpecialLink struct {
	Name   string                 `json:"name"`
	Href   string                 `json:"href"`
	Target string                 `json:"target,omitempty"`
	Extra  map[string]interface{} `json:"-"`
}

type Tools struct {
	Enabled  []string               `json:"enabled,omitempty"`
	Disabled []string               `json:"disabled,omitempty"`
	Extra    map[string]interface{} `json:"-"`
}

type EditorConfig struct {
	MinRows *int                   `json:"minRows,omitempty"`
	MaxRows *int                   `json:"maxRows,omitempty"`
	Extra   map[string]interface{} `json:"-"`
}

type Fonts struct {
	CustomFonts []CustomFont           `json:"customFonts,omitempty"`
	Extra       map[string]interface{} `json:"-"`
}

type CustomFont struct {
	Name   string `json:"name"`
	Family string `json:"family"`
	URL    string `json:"url"`
}

// DefaultOptions mounts an email editor into the element with id "editor".
func DefaultOptions() *Options {
	return &Options{
		ID:          "editor",
		DisplayMode: DisplayModeEmail,
	}
}

const CodeInvalidOptions = "invalid_options"

var errInvalidOptions = errors.New("expected a JSON object")

// ParseOptions decodes b over DefaultOptions and validates the result. Validation
// failures are returned as an *Error.
func ParseOptions(b []byte) (_ *Options, err error) {
	defer xdefer.Errorf(&err, "failed to parse options")

	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return nil, errInvalidOptions
	}
	o := DefaultOptions()
	err = o.UnmarshalJSON(b)
	if err != nil {
		return nil, err
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks the enumerated and required fields. The first problem found is
// returned as an *Error with CodeInvalidOptions.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.DisplayMode != "" && !go2.Contains([]DisplayMode{DisplayModeEmail, DisplayModeWeb, DisplayModePopup}, o.DisplayMode) {
		return invalidOptions("displayMode", "unknown display mode %q", o.DisplayMode)
	}
	if o.TextDirection != "" && !go2.Contains([]TextDirection{TextDirectionLTR, TextDirectionRTL}, o.TextDirection) {
		return invalidOptions("textDirection", "unknown text direction %q", o.TextDirection)
	}
	if o.ProjectID < 0 {
		return invalidOptions("projectId", "must not be negative")
	}
	if e := o.Editor; e != nil {
		if e.MinRows != nil && *e.MinRows < 0 {
			return invalidOptions("editor.minRows", "must not be negative")
		}
		if e.MinRows != nil && e.MaxRows != nil && *e.MinRows > *e.MaxRows {
			return invalidOptions("editor", "minRows %d exceeds maxRows %d", *e.MinRows, *e.MaxRows)
		}
	}
	for i, mt := range o.MergeTags {
		if mt.Name == "" {
			return invalidOptions(fmt.Sprintf("mergeTags[%d]", i), "name is required")
		}
	}
	for i, sl := range o.SpecialLinks {
		if sl.Name == "" || sl.Href == "" {
			return invalidOptions(fmt.Sprintf("specialLinks[%d]", i), "name and href are required")
		}
	}
	if o.Fonts != nil {
		for i, f := range o.Fonts.CustomFonts {
			if f.Name == "" || f.Family == "" || f.URL == "" {
				return invalidOptions(fmt.Sprintf("fonts.customFonts[%d]", i), "name, family and url are required")
			}
		}
	}
	return nil
}

func invalidOptions(field, msg string, v ...interface{}) *Error {
	return &Error{
		Code:    CodeInvalidOptions,
		Message: fmt.Sprintf("%s: %s", field, fmt.Sprintf(msg, v...)),
		Details: map[string]interface{}{"field": field},
	}
}

func (o Options) MarshalJSON() ([]byte, error) {
	type alias Options
	return marshalWithExtra(alias(o), o.Extra)
}

func (o *Options) UnmarshalJSON(b []byte) error {
	type alias Options
	return unmarshalWithExtra(b, (*alias)(o), &o.Extra)
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return marshalWithExtra(alias(u), u.Extra)
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	return unmarshalWithExtra(b, (*alias)(u), &u.Extra)
}

func (mt MergeTag) MarshalJSON() ([]byte, error) {
	type alias MergeTag
	return marshalWithExtra(alias(mt), mt.Extra)
}

func (mt *MergeTag) UnmarshalJSON(b []byte) error {
	type alias MergeTag
	return unmarshalWithExtra(b, (*alias)(mt), &mt.Extra)
}

func (sl SpecialLink) MarshalJSON() ([]byte, error) {
	type alias SpecialLink
	return marshalWithExtra(alias(sl), sl.Extra)
}

func (sl *SpecialLink) UnmarshalJSON(b []byte) error {
	type alias SpecialLink
	return unmarshalWithExtra(b, (*alias)(sl), &sl.Extra)
}

func (t Tools) MarshalJSON() ([]byte, error) {
	type alias Tools
	return marshalWithExtra(alias(t), t.Extra)
}

func (t *Tools) UnmarshalJSON(b []byte) error {
	type alias Tools
	return unmarshalWithExtra(b, (*alias)(t), &t.Extra)
}

func (e EditorConfig) MarshalJSON() ([]byte, error) {
	type alias EditorConfig
	return marshalWithExtra(alias(e), e.Extra)
}

func (e *EditorConfig) UnmarshalJSON(b []byte) error {
	type alias EditorConfig
	return unmarshalWithExtra(b, (*alias)(e), &e.Extra)
}

func (f Fonts) MarshalJSON() ([]byte, error) {
	type alias Fonts
	return marshalWithExtra(alias(f), f.Extra)
}

func (f *Fonts) UnmarshalJSON(b []byte) error {
	type alias Fonts
	return unmarshalWithExtra(b, (*alias)(f), &f.Extra)
}
