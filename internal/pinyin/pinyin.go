// Package pinyin provides character→syllable lookups for runs of Chinese
// text. Every implementation returns exactly one tone-numbered syllable per
// character, e.g. "zhong1", with 5 marking the neutral tone.
package pinyin

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/go-zhg2p/internal/text"
)

var (
	// ErrNotChinese is returned when a run contains characters outside the
	// Chinese range. Callers are expected to split text with text.SplitScript
	// first, so this indicates a broken caller.
	ErrNotChinese = errors.New("run contains non-Chinese characters")
	// ErrMalformedSyllables is returned when a lookup does not yield one
	// non-empty syllable per character.
	ErrMalformedSyllables = errors.New("malformed syllable lookup")
)

// Syllabifier converts a run of Chinese characters to syllables.
type Syllabifier interface {
	// Syllables returns one syllable per character of run.
	Syllables(run string) ([]string, error)
}

// checkRun rejects runs that are empty or not entirely Chinese.
func checkRun(run string) error {
	if !text.IsChineseText(run) {
		return fmt.Errorf("%w: %q", ErrNotChinese, run)
	}

	return nil
}

// finish validates raw lookup output for run and normalizes each syllable:
// ü is spelled v and a toneless syllable gets the neutral tone 5.
func finish(run string, raw []string) ([]string, error) {
	want := utf8.RuneCountInString(run)
	if len(raw) != want {
		return nil, fmt.Errorf("%w: %q has %d characters but %d syllables", ErrMalformedSyllables, run, want, len(raw))
	}

	out := make([]string, len(raw))
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("%w: empty syllable for character %d of %q", ErrMalformedSyllables, i, run)
		}
		s = strings.ReplaceAll(s, "ü", "v")
		if isLetters(s) {
			s += "5"
		}
		out[i] = s
	}

	return out, nil
}

// isLetters reports whether s consists only of letters. A lookup fallback
// that returns the character itself also counts as letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return s != ""
}
