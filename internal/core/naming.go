package core

import (
	"strings"
	"unicode"
)

// Placeholder tokens recognized in file names and file contents.
const (
	TokenLower  = "newproject"
	TokenPascal = "NewProject"
	TokenUpper  = "NEWPROJECT"
)

// Rule pairs a placeholder token with the transform deriving its
// replacement from the display name.
type Rule struct {
	Token     string
	Transform func(displayName string) string
}

var rules = [...]Rule{
	{TokenLower, func(s string) string { return lettersOnly(s, unicode.ToLower) }},
	{TokenPascal, func(s string) string { return lettersOnly(s, nil) }},
	{TokenUpper, func(s string) string { return lettersOnly(s, unicode.ToUpper) }},
}

// DeriveReplacement returns the replacement for token under id.
// Strings that are not one of the placeholder tokens are returned unchanged.
func DeriveReplacement(token string, id ProjectIdentity) string {
	for _, r := range rules {
		if r.Token == token {
			return r.Transform(id.displayName)
		}
	}
	return token
}

// SubstituteTokens replaces every occurrence of each placeholder token in s.
// Matching is literal and case-sensitive.
func SubstituteTokens(s string, id ProjectIdentity) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.Token, r.Transform(id.displayName))
	}
	return s
}

// lettersOnly drops every non-letter rune from s and maps the rest through
// recase. A nil recase keeps letters as typed.
func lettersOnly(s string, recase func(rune) rune) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if recase != nil {
			r = recase(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
