package domain

import "regexp"

// PasswordPolicy gates which passwords are acceptable at registration and
// account deletion.
type PasswordPolicy interface {
	ValidatePassword(password string) error
}

const minPasswordLength = 8

var (
	lowerRe = regexp.MustCompile(`[a-z]`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

type StrengthPasswordPolicy struct {
}

func NewStrengthPasswordPolicy() *StrengthPasswordPolicy {
	return &StrengthPasswordPolicy{}
}

func (p *StrengthPasswordPolicy) ValidatePassword(password string) error {
	if len(password) < minPasswordLength ||
		!lowerRe.MatchString(password) ||
		!upperRe.MatchString(password) ||
		!digitRe.MatchString(password) {
		return &WeakPasswordError{
			Msg: "password must be at least eight characters long and contain a lowercase letter, an uppercase letter and a digit",
		}
	}

	return nil
}
