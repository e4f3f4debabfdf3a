// Package company implements company-name normalization and the in-memory
// directory used to match free-text company strings to tracked targets.
package company

import "strings"

// legalSuffixes are trailing legal-entity markers stripped during
// normalization. Matched as whole trailing tokens, case-insensitively.
// Deliberately short: "corporation", "gmbh" etc. are not stripped, so
// "Acme Corp" and "Acme Corporation" remain distinct keys.
var legalSuffixes = []string{
	"inc.", "inc",
	"llc.", "llc",
	"corp.", "corp",
	"ltd.", "ltd",
	"co.", "co",
}

// Normalize canonicalizes a company name for comparison: lower-cases,
// trims, and strips trailing legal suffixes. Idempotent: normalizing an
// already-normalized string is a no-op. Exact equality of normalized
// strings is the only match signal; no fuzzy or phonetic matching.
func Normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	for {
		stripped := StripLegalSuffix(name)
		if stripped == name {
			return name
		}
		name = stripped
	}
}

// StripLegalSuffix removes one trailing legal suffix from an
// already-lowercased name, if present. Exported separately so the
// directory can build a second, further-stripped candidate key.
func StripLegalSuffix(name string) string {
	for _, suffix := range legalSuffixes {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		rest := name[:len(name)-len(suffix)]
		// Only treat it as a suffix when it is a separate trailing token,
		// so "zinc" is not stripped to "z".
		if rest == "" || !strings.HasSuffix(rest, " ") {
			continue
		}
		return strings.TrimSpace(rest)
	}
	return name
}
