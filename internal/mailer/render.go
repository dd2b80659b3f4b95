package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown   = goldmark.New()
	htmlPolicy = bluemonday.UGCPolicy()
)

// Render executes a markdown template and returns the plain text body and
// the sanitized HTML body.
func Render(tmpl *template.Template, data interface{}) (string, string, error) {
	var text bytes.Buffer
	if err := tmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}

	var html bytes.Buffer
	if err := markdown.Convert(text.Bytes(), &html); err != nil {
		return "", "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}

	return strings.TrimSpace(text.String()), htmlPolicy.Sanitize(html.String()), nil
}

// escapeMarkdown neutralizes characters that would turn user input into markup.
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"[", `\[`,
		"]", `\]`,
		"#", `\#`,
	)
	return replacer.Replace(strings.TrimSpace(s))
}

var funcs = template.FuncMap{"md": escapeMarkdown}

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(strings.TrimSpace(body) + "\n"))
}
