package probe

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// phoneScanRe finds US phone numbers in page text. The dash class
	// covers the Unicode hyphen/dash variants seen in the wild.
	phoneScanRe  = regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-‐‑–—\s]\d{4}`)
	phonePartsRe = regexp.MustCompile(`\(?(\d{3})\)?[\s\-]*(\d{3})[\s\-]*(\d{4})`)

	emailRe = regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)

	// locationRe guesses a "city, ca"-shaped fragment from lowercased text.
	// California-only, matching the sheet's lead geography.
	locationRe = regexp.MustCompile(`\b[a-z][a-z ]{2,30}, ca\b`)
)

// FindPhone scans text for a phone number and returns it normalized to
// "(XXX) XXX-XXXX", or "" when none is found.
func FindPhone(text string) string {
	m := phoneScanRe.FindString(text)
	if m == "" {
		return ""
	}
	return NormalizePhone(m)
}

// NormalizePhone folds Unicode dash variants to ASCII and reformats the
// digit groups as "(XXX) XXX-XXXX". Returns "" when raw contains no
// recognizable digit pattern.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	folded := strings.NewReplacer(
		"‐", "-", // hyphen
		"‑", "-", // non-breaking hyphen
		"–", "-", // en dash
		"—", "-", // em dash
	).Replace(raw)

	m := phonePartsRe.FindStringSubmatch(folded)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
}

// FindEmail returns the first email address in the lowercased text buffer,
// or "".
func FindEmail(text string) string {
	return emailRe.FindString(text)
}

// GuessLocation returns a best-effort "city, ca" fragment from the
// lowercased text buffer, or "".
func GuessLocation(text string) string {
	return locationRe.FindString(text)
}
