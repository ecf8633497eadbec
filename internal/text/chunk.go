package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// DefaultMinSentenceLength is the effective length below which a sentence is
// merged into the one before it.
const DefaultMinSentenceLength = 5

// Terminators lists the runes that end a sentence. The terminator stays
// attached to the sentence it closes.
const Terminators = "。！？…；!?"

// Segmenter splits long text into sentences suitable as independent
// synthesis units.
type Segmenter struct {
	// MinLength is the minimum effective length of a standalone sentence.
	// Values <= 0 use DefaultMinSentenceLength.
	MinLength int
}

// Split splits text with the default minimum sentence length.
func Split(text string) []string {
	return Segmenter{}.Split(text)
}

// Split splits text into sentences at terminator boundaries. A sentence whose
// effective length is below MinLength is appended to the previous sentence;
// the first sentence is always kept as is. Blank input yields nil.
func (s Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	minLen := s.MinLength
	if minLen <= 0 {
		minLen = DefaultMinSentenceLength
	}

	fragments := splitSentences(text)
	if len(fragments) == 0 {
		return []string{text}
	}

	var sentences []string
	for _, f := range fragments {
		if len(sentences) > 0 && EffectiveLength(f) < minLen {
			sentences[len(sentences)-1] += f
			continue
		}
		sentences = append(sentences, f)
	}

	return sentences
}

// EffectiveLength counts the runes of s that carry speech: CJK ideographs and
// Latin letters or digits in half- or full-width form.
func EffectiveLength(s string) int {
	n := 0
	for _, r := range width.Fold.String(s) {
		switch {
		case IsChinese(r):
			n++
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			n++
		}
	}

	return n
}

// splitSentences splits text after every terminator, keeping the terminator
// attached to its sentence. Fragments are trimmed and empty ones dropped.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i, r := range text {
		if !strings.ContainsRune(Terminators, r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	// Trailing text after the last terminator (if any).
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
