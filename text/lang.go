package text

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LangAuto disables character-set filtering.
const LangAuto = "auto"

// langCharsets maps a language code to the letters its recognized text
// may contain. Filtering is deliberately permissive: digits,
// punctuation and whitespace always pass, only letters outside the
// set are dropped.
var langCharsets = map[string]map[rune]bool{
	"de": runeSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZäöüÄÖÜßẞſ"),
	"en": runeSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	"fr": runeSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZàâçéèêëîïôùûüÿœÀÂÇÉÈÊËÎÏÔÙÛÜŸŒ"),
	"la": runeSet("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// Languages returns the supported language codes, LangAuto first.
func Languages() []string {
	codes := []string{LangAuto}
	for code := range langCharsets {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == LangAuto {
			return true
		}
		if codes[j] == LangAuto {
			return false
		}
		return codes[i] < codes[j]
	})
	return codes
}

// DetectLanguages reports which supported languages overlap a
// recognition model's alphabet. LangAuto is always included.
func DetectLanguages(alphabet []rune) []string {
	langs := []string{LangAuto}
	if len(alphabet) == 0 {
		return langs
	}

	present := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		present[r] = true
	}

	var matched []string
	for code, charset := range langCharsets {
		for r := range charset {
			if present[r] {
				matched = append(matched, code)
				break
			}
		}
	}
	sort.Strings(matched)
	return append(langs, matched...)
}

// NormalizeLanguage filters recognized text against the character set
// of the given language. The text is NFC-normalized first so that
// decomposed recognizer output (base letter plus combining mark)
// matches the precomposed charset entries. "auto" or an unknown code
// returns the text unchanged apart from NFC normalization and
// trimming.
func NormalizeLanguage(content, lang string) string {
	if content == "" {
		return content
	}

	content = norm.NFC.String(content)

	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == LangAuto {
		return content
	}
	charset, ok := langCharsets[lang]
	if !ok {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case unicode.IsLetter(r):
			if charset[r] {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
