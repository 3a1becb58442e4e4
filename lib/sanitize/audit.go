package sanitize

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

type Rule string

const (
	RuleScript       Rule = "script-element"
	RuleEventHandler Rule = "event-handler"
	RuleDangerousURL Rule = "dangerous-url"
	RuleEmbed        Rule = "embedded-content"
)

// Finding is a construct left in markup that a browser could execute.
type Finding struct {
	Rule  Rule   `json:"rule"`
	Tag   string `json:"tag"`
	Attr  string `json:"attr,omitempty"`
	Value string `json:"value,omitempty"`
}

func (f Finding) String() string {
	if f.Attr == "" {
		return fmt.Sprintf("%s: <%s>", f.Rule, f.Tag)
	}
	return fmt.Sprintf("%s: <%s %s=%q>", f.Rule, f.Tag, f.Attr, f.Value)
}

var urlAttrs = map[string]bool{
	"action":     true,
	"background": true,
	"formaction": true,
	"href":       true,
	"poster":     true,
	"src":        true,
	"xlink:href": true,
}

var dangerousSchemes = []string{"javascript:", "vbscript:", "data:text/html"}

// Audit tokenizes s and reports executable constructs. Attribute values are entity
// decoded first so encodings that slip past HTML are caught here.
func Audit(s string) []Finding {
	var findings []Finding
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a read error, either way there is nothing left to scan.
			return findings
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "script":
				findings = append(findings, Finding{Rule: RuleScript, Tag: tok.Data})
			case "iframe", "object", "embed":
				findings = append(findings, Finding{Rule: RuleEmbed, Tag: tok.Data})
			}
			for _, a := range tok.Attr {
				key := a.Key
				if len(key) > 2 && strings.HasPrefix(key, "on") {
					findings = append(findings, Finding{Rule: RuleEventHandler, Tag: tok.Data, Attr: key, Value: a.Val})
					continue
				}
				if urlAttrs[key] && isDangerousURL(a.Val) {
					findings = append(findings, Finding{Rule: RuleDangerousURL, Tag: tok.Data, Attr: key, Value: a.Val})
				}
			}
		}
	}
}

func isDangerousURL(v string) bool {
	// Browsers ignore whitespace and control characters inside a scheme.
	v = strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, v)
	v = strings.ToLower(v)
	for _, s := range dangerousSchemes {
		if strings.HasPrefix(v, s) {
			return true
		}
	}
	return false
}
