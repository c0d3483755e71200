package engine

import (
	"fmt"
	"strings"
)

type Language string

const (
	LanguageUA Language = "ua"
	LanguageEN Language = "en"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageUA, LanguageEN:
		return true
	default:
		return false
	}
}

// DefaultLanguage is used when user input is missing/invalid.
const DefaultLanguage Language = LanguageUA

func ParseLanguage(input string) (Language, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultLanguage, nil
	}
	l := Language(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid language: %q", input)
	}
	return l, nil
}
