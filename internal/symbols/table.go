// Package symbols provides the phoneme vocabulary that maps phoneme and
// punctuation symbols to model input ids.
package symbols

import (
	"errors"
	"fmt"
	"sort"
)

// UNK is the sentinel symbol that stands in for any symbol absent from a
// table. Every table must contain it.
const UNK = "UNK"

var (
	// ErrMissingUNK is returned when a table does not contain the UNK symbol.
	ErrMissingUNK = errors.New("symbol table has no " + UNK + " entry")
	// ErrEmptySymbol is returned when a table contains an empty symbol.
	ErrEmptySymbol = errors.New("symbol table contains an empty symbol")
	// ErrDuplicateSymbol is returned when a symbol appears more than once.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	// ErrInvalidID is returned for negative or repeated ids.
	ErrInvalidID = errors.New("invalid symbol id")
)

// Table is an immutable symbol→id mapping.
type Table struct {
	ids     map[string]int64
	symbols []string // ordered by id
	unk     int64
}

// New builds a table where each symbol's id is its position in symbols.
func New(symbols []string) (*Table, error) {
	ids := make(map[string]int64, len(symbols))
	for i, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptySymbol)
		}
		if _, ok := ids[s]; ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrDuplicateSymbol, s, i)
		}
		ids[s] = int64(i)
	}

	return build(ids)
}

// NewFromMap builds a table from an explicit symbol→id mapping. Ids must be
// non-negative and unique.
func NewFromMap(m map[string]int64) (*Table, error) {
	ids := make(map[string]int64, len(m))
	seen := make(map[int64]string, len(m))
	for s, id := range m {
		if s == "" {
			return nil, ErrEmptySymbol
		}
		if id < 0 {
			return nil, fmt.Errorf("%w %d for %q", ErrInvalidID, id, s)
		}
		if other, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w %d shared by %q and %q", ErrInvalidID, id, other, s)
		}
		seen[id] = s
		ids[s] = id
	}

	return build(ids)
}

func build(ids map[string]int64) (*Table, error) {
	unk, ok := ids[UNK]
	if !ok {
		return nil, ErrMissingUNK
	}

	symbols := make([]string, 0, len(ids))
	for s := range ids {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return ids[symbols[i]] < ids[symbols[j]] })

	return &Table{ids: ids, symbols: symbols, unk: unk}, nil
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.symbols) }

// Contains reports whether symbol is in the table.
func (t *Table) Contains(symbol string) bool {
	_, ok := t.ids[symbol]
	return ok
}

// ID returns the id of symbol, or the UNK id when symbol is unknown.
func (t *Table) ID(symbol string) int64 {
	if id, ok := t.ids[symbol]; ok {
		return id
	}

	return t.unk
}

// UNK returns the id of the UNK sentinel.
func (t *Table) UNK() int64 { return t.unk }

// IDs maps every symbol to its id, substituting UNK for unknown symbols.
func (t *Table) IDs(symbols []string) []int64 {
	out := make([]int64, len(symbols))
	for i, s := range symbols {
		out[i] = t.ID(s)
	}

	return out
}

// Symbols returns a copy of the table's symbols ordered by id.
func (t *Table) Symbols() []string {
	return append([]string(nil), t.symbols...)
}
