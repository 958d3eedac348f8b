// Package naming provides the case conversions behind component naming
// strategies.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy selects how a component name is rewritten before it is stored.
type Strategy int

const (
	// Verbatim keeps names exactly as given.
	Verbatim Strategy = iota
	// Pascal rewrites "user_profile" as "UserProfile".
	Pascal
	// Camel rewrites "user_profile" as "userProfile".
	Camel
	// Snake rewrites "UserProfile" as "user_profile".
	Snake
	// Kebab rewrites "UserProfile" as "user-profile".
	Kebab
)

var strategyNames = map[Strategy]string{
	Verbatim: "verbatim",
	Pascal:   "pascal",
	Camel:    "camel",
	Snake:    "snake",
	Kebab:    "kebab",
}

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy looks a strategy up by name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return Verbatim, fmt.Errorf("unknown naming strategy %q", name)
}

// Apply rewrites name according to s. Unknown strategies leave it as is.
func (s Strategy) Apply(name string) string {
	switch s {
	case Pascal:
		return ToPascalCase(name)
	case Camel:
		return ToCamelCase(name)
	case Snake:
		return ToSnakeCase(name)
	case Kebab:
		return ToKebabCase(name)
	default:
		return name
	}
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || r == ' '
}

// ToPascalCase drops separators and title-cases the rune that follows each
// one. Runes that are already upper case stay upper case.
//
//	"user_profile" -> "UserProfile"
//	"über-user"    -> "ÜberUser"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}
	caser := cases.Title(language.English, cases.NoLower)

	var sb strings.Builder
	sb.Grow(len(s))
	upperNext := true
	for _, r := range s {
		if isSeparator(r) {
			upperNext = true
			continue
		}
		if upperNext {
			sb.WriteString(caser.String(string(r)))
			upperNext = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ToCamelCase is ToPascalCase with the first rune lowered.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase splits s at separators and case boundaries and joins the
// lowered words with underscores. Acronyms stay together.
//
//	"UserProfile" -> "user_profile"
//	"APIClient"   -> "api_client"
func ToSnakeCase(s string) string {
	return strings.Join(words(s), "_")
}

// ToKebabCase is ToSnakeCase joined with hyphens.
func ToKebabCase(s string) string {
	return strings.Join(words(s), "-")
}

// words splits s into lowercase words.
func words(s string) []string {
	runes := []rune(s)
	var (
		out []string
		cur []rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
