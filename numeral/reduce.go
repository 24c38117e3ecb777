// The value engine: left-to-right reduction of a numeral body.
package numeral

import (
	"fmt"
	"strings"
)

// maxAbs bounds the absolute value a reduction may produce. Reduce accepts
// bodies of any length, so unit multiplications are overflow-checked
// against it. Equals 10^18, which fits int64 with room for negation.
const maxAbs int64 = 1_000_000_000_000_000_000

// noDigit marks the pending-digit slot as empty.
const noDigit int64 = -1

// reduce converts a bare numeral body to int64.
//
// State: a pending digit (at most one), the current section (the value
// accumulated since the last big unit, 萬 or 億), and the running total.
// Two transitions carry the grammar's subtlety and are kept explicit:
//
//   - A small unit with no pending digit scales an implicit 1, so a bare
//     leading 十 means 一十 ("十八" is 18).
//   - 零 clears the pending digit, so a unit after it defaults to 1
//     rather than multiplying the discarded zero.
//
// A big unit first absorbs any pending digit into the section, then
// multiplies the section alone — never the running total — and folds it
// in. 五億七千萬 is 5×10⁸ + 7000×10⁴, not (5×10⁸+7000)×10⁴.
func reduce(body string, negative bool) (int64, error) {
	// Normalize the bare leading unit: 十八 reads as 一十八.
	if strings.HasPrefix(body, "十") {
		body = "一" + body
	}

	var (
		pending = noDigit
		section int64
		total   int64
	)

	for _, r := range body {
		class, val := classify(r)
		switch class {
		case classDigit:
			// A second consecutive digit is not valid grammar; last seen wins.
			pending = val
		case classZero:
			pending = noDigit
		case classSmall:
			d := pending
			if d == noDigit {
				d = 1
			}
			section += d * val
			pending = noDigit
		case classBig:
			if pending != noDigit {
				section += pending
				pending = noDigit
			}
			// Overflow-checked close-and-multiply.
			if section > maxAbs/val {
				return 0, fmt.Errorf("%w: value out of range", ErrNotReducible)
			}
			section *= val
			if total > maxAbs-section {
				return 0, fmt.Errorf("%w: value out of range", ErrNotReducible)
			}
			total += section
			section = 0
		default:
			return 0, fmt.Errorf("%w: unexpected character %q", ErrNotReducible, r)
		}
	}

	if pending != noDigit {
		section += pending
	}
	if total > maxAbs-section {
		return 0, fmt.Errorf("%w: value out of range", ErrNotReducible)
	}
	total += section

	if negative {
		total = -total
	}
	return total, nil
}
