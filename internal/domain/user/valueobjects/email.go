package valueobjects

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

const emailMaxLength = 255

type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(value string) (Email, error) {
	normalized := NormalizeIdentifier(value)

	if normalized == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > emailMaxLength {
		return Email{}, fmt.Errorf("email cannot exceed %d characters", emailMaxLength)
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, fmt.Errorf("invalid email address format")
	}

	return Email{value: normalized}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
