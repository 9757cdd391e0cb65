package mail

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Render replaces every {{key}} in tmpl with vars[key]. Keys without a
// value render as the empty string.
func Render(tmpl string, vars map[string]string) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		return vars[key]
	})
}

// Template is a subject and body rendered with the same variables.
type Template struct {
	Subject string
	HTML    string
}

// Message renders t for recipient to.
func (t Template) Message(to string, vars map[string]string) Message {
	return Message{
		To:      to,
		Subject: Render(t.Subject, vars),
		HTML:    Render(t.HTML, vars),
	}
}
