package stocktracker

import (
	"fmt"
	"regexp"
	"strings"
)

// tickerRegex checks the normalized form: letters and digits, with optional
// dot or dash separated groups as used by US listings (e.g. "BRK.B").
var tickerRegex = regexp.MustCompile(`^[A-Z0-9]+(?:[.-][A-Z0-9]+)*$`)

// maxTickerLen bounds a ticker to the longest symbols quote APIs accept.
const maxTickerLen = 12

// NormalizeTicker uppercases and trims a user-supplied ticker symbol.
// Quote APIs and the ledger only ever see the normalized form.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidateTicker checks that a normalized ticker is acceptable for the
// ledger and for quote lookups.
func ValidateTicker(s string) error {
	if s == "" {
		return fmt.Errorf("ticker cannot be empty")
	}
	if len(s) > maxTickerLen {
		return fmt.Errorf("invalid ticker %q: must be at most %d characters long, got %d", s, maxTickerLen, len(s))
	}
	if !tickerRegex.MatchString(s) {
		return fmt.Errorf("invalid ticker %q: must contain only letters, digits, '.' or '-'", s)
	}
	return nil
}
