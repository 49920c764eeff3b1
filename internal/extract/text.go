package extract

import (
	"strings"
)

var deaccent = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// Normalize lowercases text, folds Portuguese accents to ASCII and
// replaces punctuation with spaces. Separators inside numeric tokens
// (50,90 / 1.234) are preserved so amounts survive normalization.
func Normalize(text string) string {
	s := deaccent.Replace(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ':
			b.WriteRune(r)
		case r == '-' && i < len(runes)-1 && isDigit(runes[i+1]):
			// Keep the sign on numeric tokens so negative amounts are
			// detected and rejected instead of silently dropped.
			b.WriteRune(r)
		case (r == ',' || r == '.') && i > 0 && i < len(runes)-1 &&
			isDigit(runes[i-1]) && isDigit(runes[i+1]):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text into words.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// containsPhrase reports whether the normalized text contains the cue
// on word boundaries. Multi-word cues are matched as a whole.
func containsPhrase(normalized, cue string) bool {
	return strings.Contains(" "+normalized+" ", " "+cue+" ")
}

// MatchesAny reports whether any cue occurs in text on word boundaries.
// Cues are expected pre-normalized (lowercase, unaccented).
func MatchesAny(text string, cues []string) bool {
	norm := Normalize(text)
	for _, cue := range cues {
		if containsPhrase(norm, cue) {
			return true
		}
	}
	return false
}
