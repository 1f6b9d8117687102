// Package renderer renders simulation runs and portfolio metrics as markdown,
// HTML and PNG charts.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates, _ = fs.Sub(templateFS, "templates")

// RenderRun renders a simulation run report to markdown.
func RenderRun(v *RunView) string {
	partials := map[string]string{
		"run_title":      "run_title.md",
		"run_parameters": "run_parameters.md",
		"run_outcome":    "run_outcome.md",
		"run_values":     "run_values.md",
	}
	return renderTemplate("run", "run.md", partials, v)
}

// RenderMetrics renders the performance metrics of a strategy to markdown.
func RenderMetrics(v *MetricsView) string {
	return renderTemplate("metrics", "metrics.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
