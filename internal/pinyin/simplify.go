package pinyin

import (
	"errors"
	"fmt"

	"github.com/liuzl/gocc"
)

// ErrNilSyllabifier is returned when NewSimplifier has nothing to wrap.
var ErrNilSyllabifier = errors.New("simplifier requires a syllabifier")

// Simplifier converts traditional characters to simplified ones with OpenCC
// before delegating the lookup.
type Simplifier struct {
	next Syllabifier
	cc   *gocc.OpenCC
}

// NewSimplifier wraps next with a traditional→simplified conversion. It fails
// when the OpenCC dictionaries cannot be loaded.
func NewSimplifier(next Syllabifier) (*Simplifier, error) {
	if next == nil {
		return nil, ErrNilSyllabifier
	}

	cc, err := gocc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("load opencc t2s: %w", err)
	}

	return &Simplifier{next: next, cc: cc}, nil
}

// Syllables implements Syllabifier.
func (s *Simplifier) Syllables(run string) ([]string, error) {
	if err := checkRun(run); err != nil {
		return nil, err
	}

	simplified, err := s.cc.Convert(run)
	if err != nil {
		return nil, fmt.Errorf("opencc convert %q: %w", run, err)
	}

	return s.next.Syllables(simplified)
}
