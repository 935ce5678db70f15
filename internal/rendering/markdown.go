package rendering

import (
	"embed"
	"strings"
	"text/template"

	"github.com/jonathan/devteam-agent/internal/types"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var reportTemplates = template.Must(
	template.New("reports").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.md.tmpl"),
)

// render executes one embedded template against data.
func render(name string, data any) (string, error) {
	var out strings.Builder
	if err := reportTemplates.ExecuteTemplate(&out, name, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template " + name,
			Cause:   err,
		}
	}
	return out.String(), nil
}

// ProductSpecMarkdown renders the full product specification document.
func ProductSpecMarkdown(spec *types.ProductSpecification) (string, error) {
	if spec == nil {
		return "", &RenderError{Message: "nil product specification"}
	}
	return render("product_spec.md.tmpl", spec)
}

// StatusReportMarkdown renders the project manager's status report.
func StatusReportMarkdown(report *types.StatusReport) (string, error) {
	if report == nil {
		return "", &RenderError{Message: "nil status report"}
	}
	return render("status_report.md.tmpl", report)
}

// MonitoringReportMarkdown renders the monitoring analysis report.
func MonitoringReportMarkdown(report *types.MonitoringReport) (string, error) {
	if report == nil {
		return "", &RenderError{Message: "nil monitoring report"}
	}
	return render("monitoring_report.md.tmpl", report)
}

// DocumentationMarkdown renders the final documentation set.
func DocumentationMarkdown(set *types.DocumentationSet) (string, error) {
	if set == nil {
		return "", &RenderError{Message: "nil documentation set"}
	}
	return render("documentation.md.tmpl", set)
}
