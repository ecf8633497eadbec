// Package phoneme converts Chinese sentences into phoneme symbols and
// vocabulary ids.
package phoneme

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/go-zhg2p/internal/pinyin"
	"github.com/example/go-zhg2p/internal/symbols"
	"github.com/example/go-zhg2p/internal/text"
)

var (
	// ErrNilTable is returned when NewConverter is given no symbol table.
	ErrNilTable = errors.New("converter requires a symbol table")
	// ErrNilSyllabifier is returned when NewConverter is given no syllabifier.
	ErrNilSyllabifier = errors.New("converter requires a syllabifier")
)

// Syllabifier is the character→syllable lookup used by Converter.
type Syllabifier = pinyin.Syllabifier

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	initials   []string
	normalizer text.Normalizer
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		initials: DefaultInitials,
		logger:   slog.Default(),
	}
}

// Option configures a Converter.
type Option func(*options)

// WithInitials replaces the onset list used to split syllables.
func WithInitials(initials []string) Option {
	return func(o *options) { o.initials = initials }
}

// WithNormalizer sets the text normalizer applied before segmentation.
func WithNormalizer(n text.Normalizer) Option {
	return func(o *options) { o.normalizer = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// ---------------------------------------------------------------------------
// Converter
// ---------------------------------------------------------------------------

// Converter maps sentences to phoneme tokens and ids. It holds only
// read-only state and is safe for concurrent use.
type Converter struct {
	table      *symbols.Table
	syl        Syllabifier
	inventory  *Inventory
	normalizer text.Normalizer
	log        *slog.Logger
}

// NewConverter builds a Converter. Configuration defects (missing table or
// lookup, malformed initial list) are reported here rather than on first use.
func NewConverter(table *symbols.Table, syl Syllabifier, optFns ...Option) (*Converter, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if syl == nil {
		return nil, ErrNilSyllabifier
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	inv, err := NewInventory(opts.initials)
	if err != nil {
		return nil, err
	}

	return &Converter{
		table:      table,
		syl:        syl,
		inventory:  inv,
		normalizer: opts.normalizer,
		log:        opts.logger,
	}, nil
}

// Tokenize returns the phoneme and punctuation symbols of s, before
// vocabulary mapping. Blank input yields nil.
func (c *Converter) Tokenize(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	norm := c.normalizer.Normalize(s)

	var tokens []string
	for _, seg := range text.SplitScript(norm) {
		if !seg.Chinese {
			if mark := strings.TrimSpace(seg.Text); mark != "" {
				tokens = append(tokens, mark)
			}
			continue
		}

		syllables, err := c.syl.Syllables(seg.Text)
		if err != nil {
			return nil, fmt.Errorf("syllabify %q: %w", seg.Text, err)
		}
		for _, py := range syllables {
			tokens = append(tokens, c.inventory.Phonemes(py)...)
		}
	}

	return text.PostReplaceAll(tokens), nil
}

// Convert returns the vocabulary ids of s. Symbols missing from the table
// map to the UNK id. Blank input yields an empty slice.
func (c *Converter) Convert(s string) ([]int64, error) {
	tokens, err := c.Tokenize(s)
	if err != nil {
		return nil, err
	}

	for _, t := range tokens {
		if !c.table.Contains(t) {
			c.log.Debug("unknown symbol mapped to UNK",
				slog.String("symbol", t),
				slog.Int64("unk_id", c.table.UNK()),
			)
		}
	}

	return c.table.IDs(tokens), nil
}

// Encode implements text.Encoder.
func (c *Converter) Encode(s string) ([]int64, error) {
	return c.Convert(s)
}
