package symbols

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrEmptyPath is returned when LoadFile is called with an empty path.
var ErrEmptyPath = errors.New("symbol table path must not be empty")

//go:embed symbols.yaml
var defaultSymbols []byte

var defaultTable = mustParse(defaultSymbols)

// Default returns the built-in Mandarin symbol table.
func Default() *Table {
	return defaultTable
}

// Load reads a symbol table from r. The document is YAML or JSON and holds
// either a sequence of symbols (ids by position) or a mapping from symbol to
// id.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read symbol table: %w", err)
	}

	return parse(data)
}

// LoadFile reads a symbol table from the file at path.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symbol table %q: %w", path, err)
	}

	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("symbol table %q: %w", path, err)
	}

	return t, nil
}

func parse(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrMissingUNK
	}

	var list []string
	listErr := yaml.Unmarshal(data, &list)
	if listErr == nil {
		return New(list)
	}

	var m map[string]int64
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode symbol table: %w", errors.Join(listErr, err))
	}

	return NewFromMap(m)
}

func mustParse(data []byte) *Table {
	t, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("symbols: embedded table: %v", err))
	}

	return t
}
