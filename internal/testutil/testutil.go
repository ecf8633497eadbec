// Package testutil provides shared helpers for tests that depend on optional
// runtime data.
//
// Each Require helper calls t.Skip with a clear human-readable reason when
// the named prerequisite is absent, so the suite stays runnable in partial
// environments without failing noisily.
//
// Typical usage:
//
//	func TestTraditional(t *testing.T) {
//	    testutil.RequireOpenCC(t)
//	    ...
//	}
package testutil

import (
	"testing"

	"github.com/liuzl/gocc"
)

// RequireOpenCC skips the test if the OpenCC t2s dictionaries used by gocc
// cannot be loaded.
func RequireOpenCC(tb testing.TB) {
	tb.Helper()

	_, err := gocc.New("t2s")
	if err != nil {
		tb.Skipf("opencc dictionaries not available: %v", err)
	}
}

// MapSyllabifier is a deterministic syllable lookup backed by a rune→syllable
// map. Runes missing from the map are an error.
type MapSyllabifier map[rune]string

// Syllables returns the mapped syllable of every rune in run.
func (m MapSyllabifier) Syllables(run string) ([]string, error) {
	out := make([]string, 0, len(run))
	for _, r := range run {
		s, ok := m[r]
		if !ok {
			return nil, &MissingRuneError{Rune: r}
		}
		out = append(out, s)
	}

	return out, nil
}

// MissingRuneError reports a rune absent from a MapSyllabifier.
type MissingRuneError struct {
	Rune rune
}

func (e *MissingRuneError) Error() string {
	return "no syllable for " + string(e.Rune)
}
