package valueobjects

import (
	"fmt"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
)

type Username struct {
	value string
}

func NewUsername(value string) (Username, error) {
	normalized := NormalizeIdentifier(value)
	n := utf8.RuneCountInString(normalized)
	if n < UsernameMinLength {
		return Username{}, fmt.Errorf("username must be at least %d characters long", UsernameMinLength)
	}
	if n > UsernameMaxLength {
		return Username{}, fmt.Errorf("username cannot exceed %d characters", UsernameMaxLength)
	}
	return Username{value: normalized}, nil
}

func (u Username) String() string {
	return u.value
}
