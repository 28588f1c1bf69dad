package core

import (
	"strconv"
	"strings"
)

// Markers recognized in file contents only.
const (
	AuthorMarker = "%{AUTHOR}"
	EmailMarker  = "%{EMAIL}"
	YearMarker   = "%{CURRENT_YEAR}"
)

// SubstituteContents applies the placeholder tokens and then the author,
// email and year markers to text, in that order.
func SubstituteContents(text string, id ProjectIdentity, year int) string {
	text = SubstituteTokens(text, id)
	text = strings.ReplaceAll(text, AuthorMarker, id.author)
	text = strings.ReplaceAll(text, EmailMarker, id.email)
	text = strings.ReplaceAll(text, YearMarker, strconv.Itoa(year))
	return text
}
