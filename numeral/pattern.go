// Span extraction for spoken numerals in running text.
package numeral

import "regexp"

// tokenPattern matches one maximal spoken-numeral token:
//
//	sign?  core  decimal?
//
// where the core is an optional bare leading 十 followed by one or more
// digit groups (digit, optional unit, then optionally 億 and 萬 — real text
// interleaves the big units, as in 五億七千萬), and the decimal suffix is
// 點 followed by zero or more plain digits. The digit class of the core
// includes 兩; the fractional digits do not (兩 is not used in
// digit-by-digit reading). Financial variants (壹, 貳, …) are deliberately
// not matched in running text; they appear in set phrases far more often
// than in quantities.
//
// regexp's greedy quantifiers give the leftmost-longest match here, and
// FindAllStringIndex resumes after each match, so matches are maximal and
// never overlap.
const tokenPattern = `[-負]?十?(?:[零一二兩三四五六七八九][十百千萬億]?億?萬?)+(?:點[零一二三四五六七八九]*)?`

var reToken = regexp.MustCompile(tokenPattern)

// extract is the internal implementation of Extract.
// The caller guarantees s is non-empty and within the size guard.
func extract(s string) []Match {
	idx := reToken.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	matches := make([]Match, len(idx))
	for i, span := range idx {
		matches[i] = Match{
			Text:  s[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		}
	}
	return matches
}
