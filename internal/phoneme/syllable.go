package phoneme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultInitials are the Mandarin onsets, including the y and w glides that
// the symbol vocabulary treats as initials.
var DefaultInitials = []string{
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "zh", "ch", "sh", "r", "z", "c", "s", "y", "w",
}

// apicalInitials take the apical vowel i0 instead of i.
var apicalInitials = map[string]bool{
	"z": true, "c": true, "s": true, "zh": true, "ch": true, "sh": true, "r": true,
}

// ErrInvalidInitials is returned when an initial list is empty or contains
// empty, duplicate or non-lowercase entries.
var ErrInvalidInitials = errors.New("invalid initial list")

// Inventory splits syllables into onset and rime.
type Inventory struct {
	initials []string // longest first
}

// NewInventory validates initials and orders them for longest-prefix match.
func NewInventory(initials []string) (*Inventory, error) {
	if len(initials) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidInitials)
	}

	seen := make(map[string]bool, len(initials))
	for _, in := range initials {
		if in == "" {
			return nil, fmt.Errorf("%w: empty initial", ErrInvalidInitials)
		}
		if strings.Trim(in, "abcdefghijklmnopqrstuvwxyz") != "" {
			return nil, fmt.Errorf("%w: %q is not lowercase ascii", ErrInvalidInitials, in)
		}
		if seen[in] {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidInitials, in)
		}
		seen[in] = true
	}

	sorted := slices.Clone(initials)
	slices.SortStableFunc(sorted, func(a, b string) int { return len(b) - len(a) })

	return &Inventory{initials: sorted}, nil
}

var defaultInventory = mustInventory(DefaultInitials)

func mustInventory(initials []string) *Inventory {
	inv, err := NewInventory(initials)
	if err != nil {
		panic(err)
	}

	return inv
}

// SplitSyllable splits a syllable with the default initials.
func SplitSyllable(syllable string) (onset, rime string) {
	return defaultInventory.Split(syllable)
}

// Split returns the longest initial that prefixes syllable and the rest of
// the syllable. After an apical initial, a rime that starts with i and has
// more characters gets its first i rewritten as i0 (zi3 → z, i03).
func (inv *Inventory) Split(syllable string) (onset, rime string) {
	for _, in := range inv.initials {
		if strings.HasPrefix(syllable, in) {
			onset = in
			break
		}
	}
	rime = syllable[len(onset):]

	if apicalInitials[onset] && len(rime) > 1 && rime[0] == 'i' {
		rime = strings.Replace(rime, "i", "i0", 1)
	}

	return onset, rime
}

// Phonemes returns the onset and rime of syllable as separate tokens,
// omitting empty parts.
func (inv *Inventory) Phonemes(syllable string) []string {
	onset, rime := inv.Split(syllable)

	out := make([]string, 0, 2)
	if onset != "" {
		out = append(out, onset)
	}
	if rime != "" {
		out = append(out, rime)
	}

	return out
}
