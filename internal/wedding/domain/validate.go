package domain

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// CleanText trims s and puts it in Unicode NFC so visually identical
// names compare equal.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// optionalText returns nil for blank input.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanText(*s)
	if v == "" {
		return nil
	}
	return &v
}

var folder = cases.Fold()

// FoldIdentifier case-folds s for case-insensitive identifiers such as
// admin usernames.
func FoldIdentifier(s string) string {
	return folder.String(strings.TrimSpace(s))
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
