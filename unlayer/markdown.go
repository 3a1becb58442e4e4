package unlayer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/unlayerkit/lib/sanitize"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// MarkdownContent renders md into a text content block. Raw HTML in md is not
// passed through and the result is sanitized.
func MarkdownContent(md string) (_ *Content, err error) {
	defer xdefer.Errorf(&err, "failed to render markdown")

	var b bytes.Buffer
	err = markdown.Convert([]byte(md), &b)
	if err != nil {
		return nil, err
	}
	return NewTextContent(sanitize.HTML(string(bytes.TrimSpace(b.Bytes())))), nil
}
