package renderer

import (
	"text/template"

	"github.com/etnz/stocktracker"
)

// historyMarkdownTemplate lays out the transaction log, newest first. The
// Realized column only carries a value for sales.
const historyMarkdownTemplate = `# Transaction History{{ if .Security }} for {{ .Security }}{{ end }}
{{- if .Entries }}

| Date | Symbol | Type | Shares | Price | Amount | Realized |
|:---|:---|:---|---:|---:|---:|---:|
{{- range .Entries }}
| {{ .Date }} | {{ .Security }} | {{ .Command }} | {{ .Quantity }} | {{ .Price }} | {{ .Amount }} | {{ .Realized.SignedString }} |
{{- end }}
{{- else }}

No transactions found.
{{- end }}
`

var historyTmpl = template.Must(template.New("history").Parse(historyMarkdownTemplate))

// HistoryMarkdown renders a TransactionReport to a markdown string.
func HistoryMarkdown(r *stocktracker.TransactionReport) string {
	return render(historyTmpl, r)
}
