package render

import (
	"strings"
	"text/template"
)

// moduleData holds everything needed to render the CommonJS module.
type moduleData struct {
	Mode    string
	Presets []string
	Body    string // Pre-rendered JSON object
}

// jsComment strips line breaks so values cannot escape a // comment.
func jsComment(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

const moduleTemplateText = `// Generated by packcfg. Do not edit.
// mode: {{jsComment .Mode}}
{{- if .Presets}}
// presets: {{range $i, $p := .Presets}}{{if $i}}, {{end}}{{jsComment $p}}{{end}}
{{- end}}
'use strict';

module.exports = {{.Body}};
`

var moduleTemplate *template.Template

func init() {
	funcs := template.FuncMap{
		"jsComment": jsComment,
	}
	moduleTemplate = template.Must(template.New("module").Funcs(funcs).Parse(moduleTemplateText))
}
