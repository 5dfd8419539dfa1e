// Package norm canonicalizes raw examinee input for comparison: full-width
// characters to half-width, whitespace collapsing, optional case folding and
// a fixed synonym table. Every function is a pure mapping over its input and
// safe for concurrent use; the lookup tables are read-only for the process
// lifetime.
package norm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// datePattern matches the first year-month-day occurrence in a
// width-normalized string. Year is 4 digits; month and day 1-2 digits; the
// separator classes cover dash, slash, dot and the CJK 年/月 markers.
var datePattern = regexp.MustCompile(`(\d{4})[-/年.](\d{1,2})[-/月.](\d{1,2})`)

// ToHalfWidth maps every character through the transcode table; characters
// outside the mapped ranges pass through unchanged.
func ToHalfWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(toHalfWidthRune(r))
	}
	return b.String()
}

func toHalfWidthRune(r rune) rune {
	if h, ok := punctuationTable[r]; ok {
		return h
	}
	switch {
	case r >= fullWidthZero && r <= fullWidthNine:
		return r - fullWidthZero + '0'
	case r >= fullWidthUpperA && r <= fullWidthUpperZ:
		return r - fullWidthUpperA + 'A'
	case r >= fullWidthLowerA && r <= fullWidthLowerZ:
		return r - fullWidthLowerA + 'a'
	}
	return r
}

// NormalizeWhitespace trims the string and collapses every whitespace run to
// a single ASCII space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// NormalizeText runs the full canonicalization pipeline: width, whitespace,
// optional lowercasing, then whole-token synonym substitution. Synonyms only
// replace complete whitespace-delimited tokens, never substrings.
func NormalizeText(s string, lowercase bool) string {
	s = NormalizeWhitespace(ToHalfWidth(s))
	if lowercase {
		s = strings.ToLower(s)
	}
	if s == "" {
		return s
	}
	tokens := strings.Split(s, " ")
	for i, tok := range tokens {
		if canon, ok := synonymTable[tok]; ok {
			tokens[i] = canon
		}
	}
	return strings.Join(tokens, " ")
}

// canonical is the comparison form used by EqualsText: width, whitespace and
// optional case folding, without synonym substitution.
func canonical(s string, lowercase bool) string {
	s = NormalizeWhitespace(ToHalfWidth(s))
	if lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// ParseDateString extracts the first calendar date from s and returns it
// zero-padded as YYYY-MM-DD. Width normalization runs first with case
// preserved. There is deliberately no calendar-validity check: month 13 or
// day 32 pass through unchanged, and authored candidates are matched with
// the same leniency. Returns ok=false when no date pattern is present.
func ParseDateString(s string) (string, bool) {
	s = NormalizeText(s, false)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// NormalizeNumberInput canonicalizes a typed number: width and whitespace
// normalization, thousands-separator commas stripped, then a float parse.
// ok=false when nothing parseable remains or the value is not finite:
// ParseFloat accepts spellings like "inf" and "nan" without error, and those
// are not numbers an examinee can be graded on.
func NormalizeNumberInput(s string) (float64, bool) {
	s = NormalizeText(s, true)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// EqualsText compares an authored expected value against examinee input.
// With normalizeZh the expected side - and only the expected side - is first
// replaced through a whole-string synonym lookup, so an author can write a
// colloquial phrase while the canonical token is what examinees type. Both
// sides are then canonicalized with the same case-folding option and
// compared for exact equality.
func EqualsText(expected, input string, caseInsensitive, normalizeZh bool) bool {
	if normalizeZh {
		if canon, ok := synonymTable[expected]; ok {
			expected = canon
		}
	}
	return canonical(expected, caseInsensitive) == canonical(input, caseInsensitive)
}
