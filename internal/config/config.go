package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Segmenter SegmenterConfig `mapstructure:"segmenter"`
	G2P       G2PConfig       `mapstructure:"g2p"`
}

type SegmenterConfig struct {
	MinLength int `mapstructure:"min_length"`
}

type G2PConfig struct {
	PinyinBackend      string `mapstructure:"pinyin_backend"`
	SymbolTablePath    string `mapstructure:"symbol_table_path"`
	ExpandNumbers      bool   `mapstructure:"expand_numbers"`
	ConvertTraditional bool   `mapstructure:"convert_traditional"`
}

type LoadOptions struct {
	Flags      *pflag.FlagSet
	ConfigFile string
	Defaults   Config
}

// ErrInvalidMinLength is returned when the configured minimum sentence
// length is not positive.
var ErrInvalidMinLength = errors.New("segmenter.min_length must be at least 1")

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Segmenter: SegmenterConfig{
			MinLength: 5,
		},
		G2P: G2PConfig{
			PinyinBackend:      BackendGoPinyin,
			SymbolTablePath:    "",
			ExpandNumbers:      false,
			ConvertTraditional: false,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Int("segmenter-min-length", defaults.Segmenter.MinLength, "Minimum effective length of a standalone sentence")
	fs.String("g2p-pinyin-backend", defaults.G2P.PinyinBackend, "Pinyin lookup backend (go-pinyin|dict)")
	fs.String("g2p-symbol-table-path", defaults.G2P.SymbolTablePath, "Path to a YAML/JSON symbol table (empty uses the built-in table)")
	fs.Bool("g2p-expand-numbers", defaults.G2P.ExpandNumbers, "Read ASCII numbers as Chinese words")
	fs.Bool("g2p-convert-traditional", defaults.G2P.ConvertTraditional, "Convert traditional characters to simplified before lookup")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("ZHG2P")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("zhg2p")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that cannot be fixed up silently and normalizes
// the pinyin backend name.
func (c *Config) Validate() error {
	if c.Segmenter.MinLength < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMinLength, c.Segmenter.MinLength)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	backend, err := NormalizePinyinBackend(c.G2P.PinyinBackend)
	if err != nil {
		return err
	}
	c.G2P.PinyinBackend = backend

	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("segmenter.min_length", c.Segmenter.MinLength)
	v.SetDefault("g2p.pinyin_backend", c.G2P.PinyinBackend)
	v.SetDefault("g2p.symbol_table_path", c.G2P.SymbolTablePath)
	v.SetDefault("g2p.expand_numbers", c.G2P.ExpandNumbers)
	v.SetDefault("g2p.convert_traditional", c.G2P.ConvertTraditional)
}

// flagKeys maps flag names to their config keys. Binding each flag to its
// dotted key keeps config file and env values visible to Unmarshal.
var flagKeys = map[string]string{
	"log-level":               "log_level",
	"segmenter-min-length":    "segmenter.min_length",
	"g2p-pinyin-backend":      "g2p.pinyin_backend",
	"g2p-symbol-table-path":   "g2p.symbol_table_path",
	"g2p-expand-numbers":      "g2p.expand_numbers",
	"g2p-convert-traditional": "g2p.convert_traditional",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}
