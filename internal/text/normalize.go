package text

import (
	"regexp"
	"strconv"
	"strings"

	chinesenumber "github.com/ZingYao/chinese_number"
)

// symbolReadings expands symbols that have a spoken Chinese reading. Applied
// in order.
var symbolReadings = []struct {
	from, to string
}{
	{"%", "百分之"},
	{"％", "百分之"},
}

// collapsible lists the punctuation runes whose repeats are collapsed to one.
const collapsible = ",./?!~…・"

var (
	rePercent = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)[%％]`)
	reNumber  = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

var digitReadings = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Normalizer prepares a sentence for phonemization.
type Normalizer struct {
	// ExpandNumbers rewrites ASCII numbers as Chinese words before
	// phonemization. Percentages become 百分之 followed by the number.
	ExpandNumbers bool
}

// Normalize normalizes s with the zero Normalizer.
func Normalize(s string) string {
	return Normalizer{}.Normalize(s)
}

// Normalize expands readable symbols, collapses repeated punctuation and
// trims surrounding whitespace.
func (n Normalizer) Normalize(s string) string {
	if n.ExpandNumbers {
		s = rePercent.ReplaceAllStringFunc(s, func(m string) string {
			return "百分之" + readNumber(rePercent.FindStringSubmatch(m)[1])
		})
		s = reNumber.ReplaceAllStringFunc(s, readNumber)
	}

	for _, sr := range symbolReadings {
		s = strings.ReplaceAll(s, sr.from, sr.to)
	}

	s = collapsePunctuation(s)

	return strings.TrimSpace(s)
}

// collapsePunctuation replaces runs of the same collapsible rune with a
// single occurrence.
func collapsePunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune = -1
	for _, r := range s {
		if r == prev && strings.ContainsRune(collapsible, r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}

	return b.String()
}

// readNumber spells a decimal number in Chinese. The integer part is read as
// a quantity; the fractional part is read digit by digit after 点.
func readNumber(num string) string {
	intPart, frac, hasFrac := strings.Cut(num, ".")

	var out string
	if v, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		out = chinesenumber.Number2Simplified(v)
		// Spoken Mandarin drops the 一 of a leading 一十 (十五, not 一十五).
		if rest, ok := strings.CutPrefix(out, "一十"); ok {
			out = "十" + rest
		}
	} else {
		out = readDigits(intPart)
	}

	if hasFrac {
		out += "点" + readDigits(frac)
	}

	return out
}

func readDigits(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			b.WriteString(digitReadings[r-'0'])
		}
	}

	return b.String()
}
