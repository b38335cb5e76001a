package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

// ValidatePhoneNumber accepts 7 to 30 characters in a common
// "+(555) 123-4567" style layout.
func ValidatePhoneNumber(phone string) error {
	phone = strings.TrimSpace(phone)
	if len(phone) < 7 {
		return fmt.Errorf("phone number seems too short")
	}
	if len(phone) > 30 {
		return fmt.Errorf("phone number seems too long")
	}
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number format")
	}
	return nil
}
