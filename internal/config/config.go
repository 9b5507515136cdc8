package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"formulae/internal/limits"
	"formulae/internal/parser"
	"formulae/internal/printer"
)

// FileNames are the config files Find looks for, in order.
var FileNames = []string{"formula.toml", "formula.yaml", "formula.yml"}

type Config struct {
	// DataName is the container identifier used by lookup rendering.
	DataName string `toml:"data_name" yaml:"data_name"`
	// MaxDepth bounds parser nesting; 0 keeps the default, a negative
	// value disables the limit.
	MaxDepth int       `toml:"max_depth" yaml:"max_depth"`
	Log      LogConfig `toml:"log" yaml:"log"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

func Default() *Config {
	return &Config{
		DataName: printer.DefaultDataName,
		MaxDepth: limits.DefaultMaxDepth,
	}
}

// Load reads a TOML or YAML config, chosen by file extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse TOML config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse YAML config %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Find returns the first config file from FileNames present in dir, or ""
// when there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

func (c *Config) applyDefaults() {
	if c.DataName == "" {
		c.DataName = printer.DefaultDataName
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = limits.DefaultMaxDepth
	}
	if c.Log.Verbosity < 0 {
		c.Log.Verbosity = 0
	}
}

func (c *Config) ParserOptions() []parser.Option {
	depth := c.MaxDepth
	if depth < 0 {
		depth = 0
	}
	return []parser.Option{parser.WithMaxDepth(depth)}
}

func (c *Config) PrinterOptions() []printer.Option {
	return []printer.Option{printer.WithDataName(c.DataName)}
}
