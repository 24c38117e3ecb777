// Rune tables for Chinese-digit transliteration.
package translit

// chineseToArabic maps each recognized Chinese digit character to its
// ASCII digit. Both the standard 零一二三四五六七八九 and the
// financial/formal variants 壹貳參肆伍陸柒捌玖 are mapped. 兩 (2) is
// deliberately absent: in ordinary prose it usually means "both/two of"
// rather than a digit, and mapping it would corrupt non-numeric text.
// The sign marker 負 maps to '-'.
var chineseToArabic = map[rune]rune{
	'零': '0',
	'一': '1', '壹': '1',
	'二': '2', '貳': '2',
	'三': '3', '參': '3',
	'四': '4', '肆': '4',
	'五': '5', '伍': '5',
	'六': '6', '陸': '6',
	'七': '7', '柒': '7',
	'八': '8', '捌': '8',
	'九': '9', '玖': '9',
	'負': '-',
}

// arabicToChinese maps ASCII digits to the standard Chinese digit
// characters and '-' to 負.
var arabicToChinese = map[rune]rune{
	'0': '零',
	'1': '一',
	'2': '二',
	'3': '三',
	'4': '四',
	'5': '五',
	'6': '六',
	'7': '七',
	'8': '八',
	'9': '九',
	'-': '負',
}
