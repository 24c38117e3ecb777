// Package numeral recognizes and converts spoken-form Chinese numerals.
//
// A spoken-form numeral uses positional magnitude words (十, 百, 千, 萬, 億)
// rather than digit-by-digit reading: "一百零五" is 105, "五千一百萬" is
// 51000000. The package provides conversion in both directions:
//
//   - Extract and Find locate spoken numerals inside running text,
//     with byte offsets.
//   - Parse turns a standalone spoken numeral into an integer.
//   - Reduce is the low-level value engine operating on a bare numeral body.
//   - Convert turns an integer back into canonical spoken-form text.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Magnitude words above 億 (兆 and beyond) are not recognized.
//   - Convert supports |n| < 10^12 (up to 千億) and returns "" outside
//     that range.
//   - Parse handles integers only; decimal expressions ("三點五") are
//     rejected. Use the normalize package for in-text decimal rewriting.
//   - Unit order inside a section is not validated: "十百" reduces to 110
//     rather than being rejected.
package numeral

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxInputBytes is the maximum input size for Extract.
// Inputs exceeding this yield no matches.
const maxInputBytes = 1 << 20 // 1 MiB

var (
	// ErrNoMatch reports that the input is not a standalone spoken numeral.
	// Callers should treat it as "no numeric value here", not as a fault.
	ErrNoMatch = errors.New("numeral: no match")

	// ErrNotReducible reports that a numeral body handed to Reduce contains
	// a character outside the digit/zero/unit sets, or reduces to a value
	// outside the representable range. A foreign character in a
	// pattern-validated body indicates a caller bug.
	ErrNotReducible = errors.New("numeral: not reducible")
)

// Match represents a spoken numeral found in text, with its position.
// The invariant s[m.Start:m.End] == m.Text holds for every match.
type Match struct {
	Text  string // The matched substring
	Start int    // Byte offset in the original string (inclusive)
	End   int    // Byte offset in the original string (exclusive)
}

// String returns a debug representation, e.g. Match("十八")[6:12].
func (m Match) String() string {
	return fmt.Sprintf("Match(%q)[%d:%d]", m.Text, m.Start, m.End)
}

// Extract finds all spoken numerals in s, in left-to-right order.
// Matches are maximal (no shorter match is returned when a longer valid
// match starts at the same position) and never overlap; scanning resumes
// immediately after each match. Returns nil for empty or oversized
// (>1 MiB) input.
func Extract(s string) []Match {
	if s == "" || len(s) > maxInputBytes {
		return nil
	}
	return extract(s)
}

// Find returns only the matched texts, in left-to-right order.
// For byte offsets, use Extract.
func Find(s string) []string {
	matches := Extract(s)
	if len(matches) == 0 {
		return nil
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts
}

// Parse converts a standalone spoken numeral to an integer.
// The entire input must be one numeral: an optional sign marker
// ("-" or 負) followed by digit, zero, and unit characters. Any other
// character anywhere, including leading or trailing labels, returns
// ErrNoMatch ("體重一百零五" fails; "一百零五" succeeds).
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNoMatch)
	}
	body, negative := splitSign(s)
	if body == "" {
		return 0, fmt.Errorf("%w: bare sign %q", ErrNoMatch, s)
	}
	n, err := reduce(body, negative)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoMatch, s)
	}
	return n, nil
}

// Reduce converts a bare numeral body to an integer in a single
// left-to-right pass. The body must contain only digit, zero, and unit
// characters — no sign or decimal marker; callers split those off first.
// A leading 十 is read as 一十 ("十八" is 18). An empty body reduces to 0.
// When negative is true the result is negated.
//
// A character outside the digit/zero/unit sets returns ErrNotReducible.
func Reduce(body string, negative bool) (int64, error) {
	return reduce(body, negative)
}

// Convert returns the canonical spoken-form text for n.
// Zero returns 零. Negative numbers are prefixed with 負. Values from
// 10 through 19 use the bare-十 form (十八, not 一十八). Numbers with
// absolute value of 10^12 or more return an empty string.
func Convert(n int64) string {
	return convert(n)
}

// splitSign strips one leading sign marker ("-" or 負) from s.
func splitSign(s string) (body string, negative bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == '-' || r == signRune {
		return s[size:], true
	}
	return s, false
}
