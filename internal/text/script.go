package text

// Segment is a maximal run of text that is either entirely Chinese or
// entirely non-Chinese.
type Segment struct {
	Text    string
	Chinese bool
}

// IsChinese reports whether r is a CJK unified ideograph in U+4E00..U+9FA5.
func IsChinese(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}

// IsChineseText reports whether s is non-empty and made only of Chinese
// characters.
func IsChineseText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsChinese(r) {
			return false
		}
	}

	return true
}

// SplitScript splits s into alternating Chinese and non-Chinese segments.
// Concatenating the Text of every segment reproduces s exactly.
func SplitScript(s string) []Segment {
	var segments []Segment
	start := 0
	chinese := false

	for i, r := range s {
		c := IsChinese(r)
		if i == 0 {
			chinese = c
			continue
		}
		if c != chinese {
			segments = append(segments, Segment{Text: s[start:i], Chinese: chinese})
			start = i
			chinese = c
		}
	}

	if start < len(s) {
		segments = append(segments, Segment{Text: s[start:], Chinese: chinese})
	}

	return segments
}
