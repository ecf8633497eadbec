// Package zhg2p is the Chinese text front end of a text-to-speech pipeline.
//
// A Frontend splits long text into speakable sentences and converts each
// sentence into phoneme symbols and vocabulary ids:
//
//	fe, err := zhg2p.New()
//	if err != nil {
//	    return err
//	}
//	for _, sentence := range fe.Split(text) {
//	    ids, err := fe.Convert(sentence)
//	    ...
//	}
//
// A Frontend is immutable once built and safe for concurrent use.
package zhg2p

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/example/go-zhg2p/internal/config"
	"github.com/example/go-zhg2p/internal/phoneme"
	"github.com/example/go-zhg2p/internal/pinyin"
	"github.com/example/go-zhg2p/internal/symbols"
	"github.com/example/go-zhg2p/internal/text"
)

type (
	// Config holds the settings used by NewFromConfig.
	Config = config.Config
	// SymbolTable maps phoneme symbols to model input ids.
	SymbolTable = symbols.Table
	// Chunk is one sentence of prepared input.
	Chunk = text.Chunk
	// Syllabifier converts a run of Chinese characters to one tone-numbered
	// syllable per character.
	Syllabifier = pinyin.Syllabifier
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config { return config.DefaultConfig() }

// RegisterFlags registers the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) { config.RegisterFlags(fs, config.DefaultConfig()) }

// LoadConfig loads configuration from defaults, fs (may be nil), ZHG2P_*
// environment variables and an optional config file.
func LoadConfig(fs *pflag.FlagSet, configFile string) (Config, error) {
	return config.Load(config.LoadOptions{
		Flags:      fs,
		ConfigFile: configFile,
		Defaults:   config.DefaultConfig(),
	})
}

// DefaultSymbolTable returns the built-in Mandarin symbol table.
func DefaultSymbolTable() *SymbolTable { return symbols.Default() }

// LoadSymbolTable reads a YAML or JSON symbol table from r.
func LoadSymbolTable(r io.Reader) (*SymbolTable, error) { return symbols.Load(r) }

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	logger        *slog.Logger
	table         *symbols.Table
	syl           Syllabifier
	minLength     int
	expandNumbers bool
}

func defaultOptions() options {
	return options{
		logger:    slog.Default(),
		minLength: text.DefaultMinSentenceLength,
	}
}

// Option configures a Frontend.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSymbolTable replaces the built-in symbol table.
func WithSymbolTable(t *SymbolTable) Option {
	return func(o *options) { o.table = t }
}

// WithSyllabifier replaces the default go-pinyin lookup.
func WithSyllabifier(s Syllabifier) Option {
	return func(o *options) { o.syl = s }
}

// WithMinSentenceLength sets the effective length below which a sentence is
// merged into the previous one.
func WithMinSentenceLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// WithNumberExpansion enables reading ASCII numbers as Chinese words.
func WithNumberExpansion(enabled bool) Option {
	return func(o *options) { o.expandNumbers = enabled }
}

// ---------------------------------------------------------------------------
// Frontend
// ---------------------------------------------------------------------------

// Frontend composes the sentence segmenter and the phoneme converter.
type Frontend struct {
	seg  text.Segmenter
	conv *phoneme.Converter
	log  *slog.Logger
}

// New builds a Frontend. Without options it uses go-pinyin, the built-in
// symbol table and a minimum sentence length of 5.
func New(optFns ...Option) (*Frontend, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.minLength < 1 {
		return nil, fmt.Errorf("minimum sentence length must be at least 1 (got %d)", opts.minLength)
	}
	if opts.table == nil {
		opts.table = symbols.Default()
	}
	if opts.syl == nil {
		opts.syl = pinyin.NewGoPinyin()
	}

	conv, err := phoneme.NewConverter(opts.table, opts.syl,
		phoneme.WithNormalizer(text.Normalizer{ExpandNumbers: opts.expandNumbers}),
		phoneme.WithLogger(opts.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build converter: %w", err)
	}

	opts.logger.Debug("frontend ready",
		slog.Int("symbols", opts.table.Len()),
		slog.Int("min_sentence_length", opts.minLength),
		slog.Bool("expand_numbers", opts.expandNumbers),
	)

	return &Frontend{
		seg:  text.Segmenter{MinLength: opts.minLength},
		conv: conv,
		log:  opts.logger,
	}, nil
}

// logOutput receives the JSON log records of frontends built by
// NewFromConfig.
var logOutput io.Writer = os.Stderr

// NewFromConfig builds a Frontend from cfg. It logs JSON records at
// cfg.LogLevel to stderr unless WithLogger is passed. Options passed after
// cfg take precedence over it.
func NewFromConfig(cfg Config, optFns ...Option) (*Frontend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var syl Syllabifier
	switch cfg.G2P.PinyinBackend {
	case config.BackendDict:
		syl = pinyin.NewDict()
	default:
		syl = pinyin.NewGoPinyin()
	}

	if cfg.G2P.ConvertTraditional {
		s, err := pinyin.NewSimplifier(syl)
		if err != nil {
			return nil, err
		}
		syl = s
	}

	base := []Option{
		WithLogger(config.NewLogger(cfg.LogLevel, logOutput)),
		WithSyllabifier(syl),
		WithMinSentenceLength(cfg.Segmenter.MinLength),
		WithNumberExpansion(cfg.G2P.ExpandNumbers),
	}

	if cfg.G2P.SymbolTablePath != "" {
		table, err := symbols.LoadFile(cfg.G2P.SymbolTablePath)
		if err != nil {
			return nil, err
		}
		base = append(base, WithSymbolTable(table))
	}

	return New(append(base, optFns...)...)
}

// Split splits text into sentences. Blank text yields nil.
func (f *Frontend) Split(s string) []string {
	return f.seg.Split(s)
}

// Tokenize returns the phoneme and punctuation symbols of a sentence.
func (f *Frontend) Tokenize(s string) ([]string, error) {
	return f.conv.Tokenize(s)
}

// Convert returns the vocabulary ids of a sentence.
func (f *Frontend) Convert(s string) ([]int64, error) {
	return f.conv.Convert(s)
}

// Prepare splits s into sentences and converts each of them.
func (f *Frontend) Prepare(s string) ([]Chunk, error) {
	chunks, err := text.Prepare(s, f.seg, f.conv)
	if err != nil {
		return nil, err
	}

	f.log.Debug("prepared text",
		slog.Int("text_len", len(s)),
		slog.Int("sentences", len(chunks)),
	)

	return chunks, nil
}
