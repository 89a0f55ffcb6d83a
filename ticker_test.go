package stocktracker

import "testing"

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"aapl", "AAPL"},
		{" msft ", "MSFT"},
		{"brk.b", "BRK.B"},
		{"AAPL", "AAPL"},
	}
	for _, tt := range tests {
		if got := NormalizeTicker(tt.input); got != tt.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateTicker(t *testing.T) {
	tests := []struct {
		ticker string
		err    bool
	}{
		{"AAPL", false},
		{"GOOGL", false},
		{"BRK.B", false},
		{"BF-B", false},
		{"8801", false}, // numeric tickers exist on some exchanges
		{"", true},
		{"aapl", true},          // not normalized
		{"AA PL", true},         // inner space
		{"AAPL.", true},         // dangling separator
		{".AAPL", true},         // leading separator
		{"ABCDEFGHIJKLM", true}, // too long
	}
	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			err := ValidateTicker(tt.ticker)
			if (err != nil) != tt.err {
				t.Errorf("ValidateTicker(%q) error = %v, wantErr %v", tt.ticker, err, tt.err)
			}
		})
	}
}
