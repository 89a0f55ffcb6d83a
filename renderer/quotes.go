package renderer

import (
	"text/template"

	"github.com/etnz/stocktracker"
)

const quotesMarkdownTemplate = `# Quotes
{{- if . }}

| Symbol | Price | Source | Fetched |
|:---|---:|:---|:---|
{{- range . }}
| {{ .Ticker }} | {{ .Price }} | {{ .Source }} | {{ .FetchedAt.Format "2006-01-02 15:04" }} |
{{- end }}
{{- else }}

No quotes available.
{{- end }}
`

var quotesTmpl = template.Must(template.New("quotes").Parse(quotesMarkdownTemplate))

// QuotesMarkdown renders a list of quotes to a markdown table.
func QuotesMarkdown(quotes []stocktracker.Quote) string {
	return render(quotesTmpl, quotes)
}
