package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/fintoolbox/debtpro/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"year": FormatYearIndex,
	"yearp": func(i *int) string {
		if i == nil {
			return "never"
		}
		return FormatYearIndex(*i)
	},
	"add":  func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeStrategies(results)

	data := struct {
		*domain.PlanComparison
		Recommendation Recommendation
	}{results, rec}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
