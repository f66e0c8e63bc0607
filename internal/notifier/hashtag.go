package notifier

import "strings"

// Hashtag derives a Telegram hashtag from free text (spec §4.6, §8):
// strip whitespace, replace spaces/hyphens with underscores, collapse
// adjacent underscores, drop characters outside A-Za-zА-Яа-яЁё0-9_.
func Hashtag(name string) string {
	name = strings.TrimSpace(name)

	var b strings.Builder
	b.Grow(len(name) + 1)
	for _, r := range name {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('_')
		case isHashtagRune(r):
			b.WriteRune(r)
		}
	}

	return collapseUnderscores(b.String())
}

func isHashtagRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 'А' && r <= 'Я', r >= 'а' && r <= 'я':
		return true
	case r == 'Ё' || r == 'ё':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevUnderscore := false
	for _, r := range s {
		if r == '_' {
			if prevUnderscore {
				continue
			}
			prevUnderscore = true
		} else {
			prevUnderscore = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
