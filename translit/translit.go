// Package translit converts Chinese digit characters to and from Arabic
// digits, one character at a time.
//
// This is the digit-by-digit reading with no positional magnitude logic:
// "你好九五二七" becomes "你好9527". For spoken-form numerals that use
// magnitude words (一百零五 → 105), use the numeral package instead.
//
// Characters outside the digit tables (letters, punctuation, other CJK,
// already-Arabic digits) pass through unchanged, so both directions are
// idempotent on text containing no convertible characters.
//
// All functions are safe for concurrent use by multiple goroutines.
package translit

import "strings"

// ToArabic replaces each Chinese digit character in s with its Arabic
// digit and the sign marker 負 with '-'. The financial variants
// (壹, 貳, …) are converted alongside the standard forms; all other
// characters pass through unchanged.
func ToArabic(s string) string {
	return mapRunes(s, chineseToArabic)
}

// ToChinese replaces each ASCII digit in s with the standard Chinese
// digit character and '-' with 負. All other characters pass through
// unchanged.
func ToChinese(s string) string {
	return mapRunes(s, arabicToChinese)
}

// mapRunes rewrites s rune by rune through table, passing unmapped
// runes through.
func mapRunes(s string, table map[rune]rune) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if out, ok := table[r]; ok {
			b.WriteRune(out)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
