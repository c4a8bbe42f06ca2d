package utils

import (
	"strings"
	"unicode"
)

// pathUnsafe lists characters that must never appear in a stored
// filename: path separators, shell-hostile characters and wildcard
// characters rejected by most object stores.
const pathUnsafe = `/\:*?"<>|`

// SanitizeFilename converts an arbitrary original filename into a form
// that is safe to store and to embed in object keys: diacritics are
// folded to their ASCII base letter, path-unsafe characters and control
// characters become hyphens, and whitespace collapses to single hyphens.
func SanitizeFilename(filename string) string {
	if filename == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(filename))

	lastHyphen := false
	writeHyphen := func() {
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	for _, r := range filename {
		switch {
		case r < 128 && unicode.IsPrint(r) && !strings.ContainsRune(pathUnsafe, r):
			if unicode.IsSpace(r) {
				writeHyphen()
			} else {
				b.WriteRune(r)
				lastHyphen = false
			}
		case unicode.Is(unicode.Latin, r):
			if folded, ok := foldLatin(r); ok {
				b.WriteRune(folded)
				lastHyphen = false
			} else {
				writeHyphen()
			}
		default:
			writeHyphen()
		}
	}

	return strings.Trim(b.String(), "-")
}

// foldLatin maps accented Latin letters to their unaccented base form.
func foldLatin(r rune) (rune, bool) {
	switch {
	case r >= 'À' && r <= 'Å':
		return 'A', true
	case r >= 'à' && r <= 'å':
		return 'a', true
	case r >= 'È' && r <= 'Ë':
		return 'E', true
	case r >= 'è' && r <= 'ë':
		return 'e', true
	case r >= 'Ì' && r <= 'Ï':
		return 'I', true
	case r >= 'ì' && r <= 'ï':
		return 'i', true
	case r >= 'Ò' && r <= 'Ö':
		return 'O', true
	case r >= 'ò' && r <= 'ö':
		return 'o', true
	case r >= 'Ù' && r <= 'Ü':
		return 'U', true
	case r >= 'ù' && r <= 'ü':
		return 'u', true
	case r == 'Ç':
		return 'C', true
	case r == 'ç':
		return 'c', true
	case r == 'Ñ':
		return 'N', true
	case r == 'ñ':
		return 'n', true
	}
	return 0, false
}
