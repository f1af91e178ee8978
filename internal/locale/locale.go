// Package locale names the display languages churnlens ships texts for.
package locale

import "fmt"

// Locale is a display language tag.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt-BR"
)

// Default is used when no locale is configured.
const Default = English

// Parse validates a locale tag. An empty tag yields Default.
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case "":
		return Default, nil
	case English, Portuguese:
		return Locale(s), nil
	default:
		return "", fmt.Errorf("unknown locale: %q", s)
	}
}

// Pick returns the entry for l, falling back to English.
func Pick[T any](m map[Locale]T, l Locale) T {
	if v, ok := m[l]; ok {
		return v
	}
	return m[English]
}
