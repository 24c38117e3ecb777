// Character classification tables for spoken-form Chinese numerals.
package numeral

// charClass tags a rune with its role in the numeral grammar.
// The reducer dispatches on the class, never on the raw rune.
type charClass int

const (
	classOther   charClass = iota // not part of the numeral grammar
	classDigit                    // 一–九 and accepted synonyms (value 1–9)
	classZero                     // 零 (clears the pending digit)
	classSmall                    // 十, 百, 千 (scale the pending digit)
	classBig                      // 萬, 億 (close and multiply a section)
	classSign                     // '-' or 負
	classDecimal                  // 點
)

const (
	zeroRune    = '零'
	signRune    = '負'
	decimalRune = '點'
)

// digitValues maps digit characters to their value. Besides the canonical
// 一–九, the financial/formal variants (壹, 貳, …) and the colloquial
// 兩 (2) are accepted. Built at package level; never mutated.
var digitValues = map[rune]int64{
	'一': 1, '壹': 1,
	'二': 2, '貳': 2, '兩': 2,
	'三': 3, '參': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陸': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

// smallUnitValues maps the section-internal magnitude words to their value.
var smallUnitValues = map[rune]int64{
	'十': 10,
	'百': 100,
	'千': 1_000,
}

// bigUnitValues maps the section-closing magnitude words to their value.
var bigUnitValues = map[rune]int64{
	'萬': 10_000,
	'億': 100_000_000,
}

// classify returns the grammar class of r and, for digits and units,
// its numeric value.
func classify(r rune) (charClass, int64) {
	if v, ok := digitValues[r]; ok {
		return classDigit, v
	}
	if v, ok := smallUnitValues[r]; ok {
		return classSmall, v
	}
	if v, ok := bigUnitValues[r]; ok {
		return classBig, v
	}
	switch r {
	case zeroRune:
		return classZero, 0
	case '-', signRune:
		return classSign, 0
	case decimalRune:
		return classDecimal, 0
	}
	return classOther, 0
}
