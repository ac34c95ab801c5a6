// Package sanitize provides pure normalization and validation helpers for
// untrusted intake input (phones, VINs, emails, dates, URLs, free text).
// All functions are stateless and side-effect free.
package sanitize

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// UploadPathPrefix is the only relative URL prefix accepted for media links.
const UploadPathPrefix = "/uploads/"

const maxEmailLen = 320

var (
	rePHMobileLocal    = regexp.MustCompile(`^09\d{9}$`)
	rePHMobileIntl     = regexp.MustCompile(`^63\d{10}$`)
	rePHMobileIntlPlus = regexp.MustCompile(`^\+63\d{10}$`)
	reEmail            = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	reVinChars         = regexp.MustCompile(`^[A-Z0-9]+$`)
	reISODate          = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reAbsoluteHTTP     = regexp.MustCompile(`(?i)^https?://\S+$`)
	reWhitespaceRun    = regexp.MustCompile(`\s+`)
	reNonPhone         = regexp.MustCompile(`[^\d+]`)
	reDigits           = regexp.MustCompile(`\D`)
)

// CleanText collapses internal whitespace runs to single spaces, trims, and
// truncates to maxLen runes. Empty input yields an empty string; emptiness is
// never an error here, field-specific rules decide whether empty is allowed.
func CleanText(v string, maxLen int) string {
	s := strings.TrimSpace(reWhitespaceRun.ReplaceAllString(v, " "))
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if maxLen > 0 && len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return s
}

// CleanEmail trims, collapses, truncates to the RFC cap, and lowercases.
func CleanEmail(v string) string {
	return strings.ToLower(CleanText(v, maxEmailLen))
}

// NormalizePhone strips every character except digits and a leading plus.
func NormalizePhone(v string) string {
	s := strings.TrimSpace(v)
	plus := strings.HasPrefix(s, "+")
	s = reNonPhone.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "+", "")
	if plus {
		return "+" + s
	}
	return s
}

// IsLikelyPhone reports whether the input is a plausible phone number.
// Philippine mobile formats (+63XXXXXXXXXX, 63XXXXXXXXXX, 09XXXXXXXXX) are
// accepted outright; anything else passes when its digit-only length is 8-15.
func IsLikelyPhone(v string) bool {
	p := NormalizePhone(v)
	if p == "" {
		return false
	}
	if rePHMobileIntlPlus.MatchString(p) || rePHMobileIntl.MatchString(p) || rePHMobileLocal.MatchString(p) {
		return true
	}
	digits := reDigits.ReplaceAllString(p, "")
	return len(digits) >= 8 && len(digits) <= 15
}

// IsValidEmail reports whether the input is an acceptable email address.
// Empty input is valid because email is optional at most call sites.
func IsValidEmail(v string) bool {
	e := CleanEmail(v)
	if e == "" {
		return true
	}
	return len(e) <= maxEmailLen && reEmail.MatchString(e)
}

// NormalizeVin uppercases and trims a VIN candidate.
func NormalizeVin(v string) string {
	return strings.ToUpper(CleanText(v, 32))
}

// IsValidVin reports whether the input is a well-formed 17-character VIN.
// I, O, and Q never appear in a VIN and are rejected.
func IsValidVin(v string) bool {
	s := NormalizeVin(v)
	if len(s) != 17 {
		return false
	}
	if strings.ContainsAny(s, "IOQ") {
		return false
	}
	return reVinChars.MatchString(s)
}

// NormalizePlate uppercases and trims a plate, keeping user formatting otherwise.
func NormalizePlate(v string) string {
	return strings.ToUpper(CleanText(v, 32))
}

// IsISODate reports whether the input is a strict YYYY-MM-DD string naming a
// real calendar date.
func IsISODate(s string) bool {
	if !reISODate.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ClampNumber clamps v into [min, max]; non-finite input returns fallback.
func ClampNumber(v, min, max, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// IsSafeURL accepts internal upload paths and absolute http(s) URLs only.
// Everything else (javascript:, data:, relative traversal) is rejected.
func IsSafeURL(u string) bool {
	s := CleanText(u, 600)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, UploadPathPrefix) {
		return true
	}
	return reAbsoluteHTTP.MatchString(s)
}
