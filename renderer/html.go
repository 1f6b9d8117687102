package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
table { border-collapse: collapse; }
th, td { padding: 0.2em 0.8em; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<nav><a href="/">Simulations</a></nav>
{{.Body}}
{{- if .Chart}}
<img src="{{.Chart}}" alt="portfolio value">
{{- end}}
</body>
</html>
`))

// HTML converts a markdown report into a standalone HTML page. chart is the
// address of an image shown below the report, if not empty.
func HTML(title, markdown, chart string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("cannot convert markdown: %w", err)
	}
	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title, Chart string
		Body         template.HTML
	}{title, chart, template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("cannot render page: %w", err)
	}
	return out.Bytes(), nil
}
