// Package core holds the project identity and the placeholder substitution rules.
package core

import (
	"unicode"

	"github.com/rfrench3/initialize-repository/internal/errors"
)

// ProjectIdentity is the user-supplied identity the template is renamed to.
// It is immutable once constructed.
type ProjectIdentity struct {
	displayName string
	author      string
	email       string
}

// NewProjectIdentity validates displayName and returns the identity.
// Author and email are taken as typed.
//
// Returns E_INVALID_PROJECT_NAME if displayName fails ValidateDisplayName.
func NewProjectIdentity(displayName, author, email string) (ProjectIdentity, error) {
	if err := ValidateDisplayName(displayName); err != nil {
		return ProjectIdentity{}, err
	}
	return ProjectIdentity{displayName: displayName, author: author, email: email}, nil
}

func (p ProjectIdentity) DisplayName() string { return p.displayName }
func (p ProjectIdentity) Author() string      { return p.author }
func (p ProjectIdentity) Email() string       { return p.email }

// ValidateDisplayName accepts names made of letters and whitespace only.
// A name with no letters at all is rejected as well: it would erase every placeholder.
func ValidateDisplayName(name string) error {
	letters := 0
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsSpace(r):
		default:
			return errors.NewWithDetails(
				errors.EInvalidProjectName,
				"Project name must contain only alphabet characters and spaces.",
				map[string]string{"name": name, "char": string(r)},
			)
		}
	}
	if letters == 0 {
		return errors.NewWithDetails(
			errors.EInvalidProjectName,
			"Project name must contain at least one alphabet character.",
			map[string]string{"name": name},
		)
	}
	return nil
}
