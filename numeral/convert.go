// Integer-to-text rendering of canonical spoken-form numerals.
package numeral

import "strings"

const (
	// maxConvert is the largest value Convert can render: 九千九百九十九億
	// 九千九百九十九萬九千九百九十九. 兆 and beyond are not supported.
	maxConvert int64 = 999_999_999_999

	sectionSize int64 = 10_000

	growConvert = 48 // estimated bytes for a full rendering
)

// digitText is indexed by digit value.
var digitText = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// placeText is indexed by decimal place within a four-digit section;
// index 0 (the ones place) carries no unit word.
var placeText = [4]string{"", "十", "百", "千"}

// placeValue is indexed like placeText.
var placeValue = [4]int64{1, 10, 100, 1_000}

// convert renders n as canonical spoken-form text.
// Returns "" if abs(n) exceeds maxConvert.
func convert(n int64) string {
	if n > maxConvert || n < -maxConvert {
		return ""
	}
	if n == 0 {
		return digitText[0]
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteRune(signRune)
	}

	// Values 10–19 conventionally drop the leading 一: 十八, not 一十八.
	if n >= 10 && n <= 19 {
		b.WriteString(placeText[1])
		if d := n % 10; d > 0 {
			b.WriteString(digitText[d])
		}
		return b.String()
	}

	high := n / (sectionSize * sectionSize)
	mid := n / sectionSize % sectionSize
	low := n % sectionSize

	if high > 0 {
		writeSection(&b, high)
		b.WriteString("億")
	}
	if mid > 0 {
		// 零 signals skipped leading places: 一億零五萬, not 一億五萬.
		if high > 0 && mid < placeValue[3] {
			b.WriteString(digitText[0])
		}
		writeSection(&b, mid)
		b.WriteString("萬")
	}
	if low > 0 {
		if mid == 0 && high > 0 {
			// The whole 萬 section is absent: 一億零七千.
			b.WriteString(digitText[0])
		} else if mid > 0 && low < placeValue[3] {
			b.WriteString(digitText[0])
		}
		writeSection(&b, low)
	}

	return b.String()
}

// writeSection writes a number in [1, 9999] as spoken text into b,
// inserting a single 零 for each run of interior zero places.
func writeSection(b *strings.Builder, n int64) {
	started := false
	zeroPending := false
	for place := 3; place >= 0; place-- {
		d := n / placeValue[place] % 10
		if d == 0 {
			if started {
				zeroPending = true
			}
			continue
		}
		if zeroPending {
			b.WriteString(digitText[0])
			zeroPending = false
		}
		b.WriteString(digitText[d])
		b.WriteString(placeText[place])
		started = true
	}
}
