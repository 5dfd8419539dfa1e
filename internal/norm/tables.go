package norm

// Full-width code-point blocks that map to ASCII by a fixed offset.
// U+FF10..U+FF19 are full-width digits, U+FF21..U+FF3A / U+FF41..U+FF5A the
// Latin letter blocks.
const (
	fullWidthZero   = '０'
	fullWidthNine   = '９'
	fullWidthUpperA = 'Ａ'
	fullWidthUpperZ = 'Ｚ'
	fullWidthLowerA = 'ａ'
	fullWidthLowerZ = 'ｚ'
)

// punctuationTable maps full-width punctuation (including the ideographic
// space and CJK marks that live outside the U+FF01..U+FF5E block) to their
// half-width equivalents. Loaded once, never mutated.
var punctuationTable = map[rune]rune{
	'　': ' ', // ideographic space
	'！':      '!',
	'＂':      '"',
	'＃':      '#',
	'＄':      '$',
	'％':      '%',
	'＆':      '&',
	'＇':      '\'',
	'（':      '(',
	'）':      ')',
	'＊':      '*',
	'＋':      '+',
	'，':      ',',
	'－':      '-',
	'．':      '.',
	'／':      '/',
	'：':      ':',
	'；':      ';',
	'＜':      '<',
	'＝':      '=',
	'＞':      '>',
	'？':      '?',
	'＠':      '@',
	'［':      '[',
	'＼':      '\\',
	'］':      ']',
	'＾':      '^',
	'＿':      '_',
	'｀':      '`',
	'｛':      '{',
	'｜':      '|',
	'｝':      '}',
	'～':      '~',
	'。':      '.',
	'、':      ',',
	'“':      '"',
	'”':      '"',
	'‘':      '\'',
	'’':      '\'',
	'【':      '[',
	'】':      ']',
	'《':      '<',
	'》':      '>',
}

// synonymTable maps a normalized lowercase phrase to its canonical token.
// Keys match whole whitespace-delimited tokens in NormalizeText, and whole
// expected strings in EqualsText when zh-normalization is requested.
var synonymTable = map[string]string{
	"北京时间":   "utc+8",
	"中国标准时间": "utc+8",
	"东八区":    "utc+8",
	"东京时间":   "utc+9",
	"日本时间":   "utc+9",
	"格林尼治时间": "utc",
	"格林威治时间": "utc",
	"世界时":    "utc",
	"gmt":    "utc",
}

// Synonym looks a phrase up in the synonym table.
func Synonym(phrase string) (string, bool) {
	canon, ok := synonymTable[phrase]
	return canon, ok
}
