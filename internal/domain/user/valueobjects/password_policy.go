package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
)

// PasswordSpecialChars is the set a password must draw its special
// character from. Other punctuation is rejected.
const PasswordSpecialChars = "@$!%*?&"

// PasswordPolicy defines the password validation rules.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy caps length at 72 bytes, the most bcrypt hashes.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
		RequireSpecial:   true,
	}
}

func (p *PasswordPolicy) ValidatePassword(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("password must be at least %d characters long", p.MinLength)
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		return fmt.Errorf("password cannot exceed %d characters", p.MaxLength)
	}

	var (
		hasUppercase bool
		hasLowercase bool
		hasNumber    bool
		hasSpecial   bool
	)

	for _, char := range password {
		switch {
		case char > unicode.MaxASCII:
			return fmt.Errorf("password may contain only letters, digits and %s", PasswordSpecialChars)
		case unicode.IsUpper(char):
			hasUppercase = true
		case unicode.IsLower(char):
			hasLowercase = true
		case unicode.IsDigit(char):
			hasNumber = true
		case strings.ContainsRune(PasswordSpecialChars, char):
			hasSpecial = true
		default:
			return fmt.Errorf("password may contain only letters, digits and %s", PasswordSpecialChars)
		}
	}

	if p.RequireUppercase && !hasUppercase {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLowercase {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if p.RequireNumber && !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecial {
		return fmt.Errorf("password must contain at least one special character (%s)", PasswordSpecialChars)
	}

	return nil
}
