// Where: internal/infra/report/renderer.go
// What: Summary rendering for reverse runs.
// Why: Let users reshape the before/after listing with a template.
package report

import (
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultTemplate prints the page order before and after reversal.
const DefaultTemplate = `Original page order: {{ toJson .Original }}
Reversed page order: {{ toJson .Reversed }}
`

// Summary is the data available to report templates.
type Summary struct {
	Source    string
	Output    string
	DryRun    bool
	PageCount int
	Original  []string
	Reversed  []string
}

var templateCache sync.Map

// Render executes text (DefaultTemplate when empty) against summary.
func Render(w io.Writer, text string, summary Summary) error {
	if text == "" {
		text = DefaultTemplate
	}
	tmpl, err := loadTemplate(text)
	if err != nil {
		return err
	}
	if summary.Original == nil {
		summary.Original = []string{}
	}
	if summary.Reversed == nil {
		summary.Reversed = []string{}
	}
	if err := tmpl.Execute(w, summary); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func loadTemplate(text string) (*template.Template, error) {
	if value, ok := templateCache.Load(text); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch")
		}
		return cached, nil
	}
	tmpl, err := template.New("report").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	templateCache.Store(text, tmpl)
	return tmpl, nil
}
