package company

import "strings"

// titleSeparators are the patterns that introduce a trailing company name
// in a free-text headline, e.g. "VP of Sales at Acme" or
// "Founder | Stealth Startup". Checked in order; the first hit wins.
var titleSeparators = []string{" at ", " @ ", " - ", " | "}

// ExtractFromTitle derives a company name from a connection's headline
// when no explicit company field was harvested. Absence of any separator
// yields an empty string, which later fails to match and is treated as
// unmatched rather than an error.
func ExtractFromTitle(title string) string {
	t := strings.TrimSpace(title)
	if t == "" {
		return ""
	}
	lower := strings.ToLower(t)
	for _, sep := range titleSeparators {
		idx := strings.LastIndex(lower, sep)
		if idx < 0 {
			continue
		}
		candidate := strings.TrimSpace(t[idx+len(sep):])
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
