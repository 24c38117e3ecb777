// Package normalize rewrites spoken-form Chinese numerals in text as
// Arabic-numeral strings.
//
// Normalize locates every spoken numeral via the numeral package and
// splices the converted value back in place, preserving all other
// characters verbatim: "序號十八號，身高一百零五點七二公分" becomes
// "序號18號，身高105.72公分". Decimal suffixes (點 plus plain digits)
// are carried over as a fractional part; a span that cannot be converted
// is left untouched rather than dropped.
//
// Text containing no recognized Chinese numeral characters is returned
// unchanged, so Normalize is idempotent: running it over its own output
// is a no-op.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strconv"
	"strings"

	"github.com/LiKyle/ChineseNumberTool/numeral"
	"github.com/LiKyle/ChineseNumberTool/translit"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// decimalMark splits a token's integer body from its fractional digits.
const decimalMark = "點"

// Normalize replaces every spoken-form numeral in s with its
// Arabic-numeral string. All characters outside the matched spans are
// preserved byte for byte. Returns the input unchanged for empty or
// oversized (>1 MiB) input.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}

	matches := numeral.Extract(s)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m.Start])
		b.WriteString(rewrite(m.Text))
		last = m.End
	}
	b.WriteString(s[last:])

	return b.String()
}

// rewrite converts one matched token to its Arabic replacement.
// The token is split into sign, integer body, and fractional digits;
// the integer body goes through the reducer and the fraction through
// plain digit transliteration. If the body does not reduce, the
// original token is returned so the surrounding text survives intact.
func rewrite(token string) string {
	body, negative := splitSign(token)

	intBody, fracBody, hasFrac := strings.Cut(body, decimalMark)

	n, err := numeral.Reduce(intBody, false)
	if err != nil {
		return token
	}

	sign := ""
	if negative {
		sign = "-"
	}
	integer := sign + strconv.FormatInt(n, 10)

	// A trailing 點 with no digits is consumed and dropped.
	if hasFrac {
		if frac := translit.ToArabic(fracBody); frac != "" {
			return integer + "." + frac
		}
	}
	return integer
}

// splitSign strips one leading sign marker ("-" or 負) from the token.
func splitSign(token string) (body string, negative bool) {
	if rest, ok := strings.CutPrefix(token, "-"); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(token, "負"); ok {
		return rest, true
	}
	return token, false
}
