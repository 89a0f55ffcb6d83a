package renderer

import (
	"text/template"

	"github.com/etnz/stocktracker"
)

// portfolioMarkdownTemplate lays out the holdings table. Positions without a
// known quote show "n/a" in the Current column and are valued at cost.
const portfolioMarkdownTemplate = `# Portfolio Report on {{ .Date }}
{{- if .Holdings }}

Total Market Value: **{{ .TotalMarketValue }}**

| Symbol | Shares | Avg Cost | Current | Value | Gain/Loss | % |
|:---|---:|---:|---:|---:|---:|---:|
{{- range .Holdings }}
| {{ .Ticker }} | {{ .Quantity }} | {{ .AvgCost }} | {{ if .Priced }}{{ .Price }}{{ else }}n/a{{ end }} | {{ .MarketValue }} | {{ .GainLoss.SignedString }} | {{ .GainLossPercent.SignedString }} |
{{- end }}
| **TOTAL** | | | | **{{ .TotalMarketValue }}** | **{{ .TotalGainLoss.SignedString }}** | **{{ .TotalGainLossPercent.SignedString }}** |

Invested: **{{ .TotalCostBasis }}**
{{- if not .TotalRealizedGains.IsZero }}

Realized gains: **{{ .TotalRealizedGains.SignedString }}**
{{- end }}
{{- else }}

Your portfolio is empty. Add some stocks to get started!
{{- end }}
`

var portfolioTmpl = template.Must(template.New("portfolio").Parse(portfolioMarkdownTemplate))

// PortfolioMarkdown renders a PortfolioReport to a markdown string.
func PortfolioMarkdown(r *stocktracker.PortfolioReport) string {
	return render(portfolioTmpl, r)
}
