package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/viant/afs"
	"github.com/viant/solemn/detector"
	"github.com/viant/solemn/inspector"
	"github.com/viant/solemn/inspector/javascript"
	"github.com/viant/solemn/reporter"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment variables overriding config values
const EnvPrefix = "SOLEMN_"

// Config represents a scan run configuration
type Config struct {
	Lexicon         string   `yaml:"lexicon,omitempty" json:"lexicon,omitempty" toml:"lexicon,omitempty"`
	Format          string   `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty"`
	Color           bool     `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
	FailOnViolation bool     `yaml:"failOnViolation" json:"failOnViolation" toml:"failOnViolation"`
	Concurrency     int      `yaml:"concurrency,omitempty" json:"concurrency,omitempty" toml:"concurrency,omitempty"`
	DefaultLanguage string   `yaml:"defaultLanguage,omitempty" json:"defaultLanguage,omitempty" toml:"defaultLanguage,omitempty"`
	Exclude         []string `yaml:"exclude,omitempty" json:"exclude,omitempty" toml:"exclude,omitempty"`
	Extensions      []string `yaml:"extensions,omitempty" json:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Default returns the configuration used without a config file
func Default() *Config {
	return &Config{
		Format:          string(reporter.FormatText),
		FailOnViolation: true,
		Concurrency:     runtime.NumCPU(),
		DefaultLanguage: javascript.Name,
		Exclude:         append([]string{}, detector.DefaultExcludes...),
	}
}

// Load reads a YAML or TOML config over the defaults and validates it
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	content, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	var ret *Config
	switch ext := strings.ToLower(path.Ext(URL)); ext {
	case ".toml":
		ret, err = DecodeTOML(content)
	case "", ".yaml", ".yml":
		ret, err = Decode(content)
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// Decode parses YAML config content over the defaults, unknown keys are rejected
func Decode(content []byte) (*Config, error) {
	ret := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(ret); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// DecodeTOML parses TOML config content over the defaults, unknown keys are rejected
func DecodeTOML(content []byte) (*Config, error) {
	ret := Default()
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ApplyEnv overrides values with SOLEMN_* environment variables
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	var errs []error
	lookup := func(key string) string {
		return strings.TrimSpace(getenv(EnvPrefix + key))
	}
	setBool := func(target *bool, key string) {
		if raw := lookup(key); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: invalid bool %q", EnvPrefix, key, raw))
				return
			}
			*target = value
		}
	}
	setList := func(target *[]string, key string) {
		if raw := lookup(key); raw != "" {
			*target = splitList(raw)
		}
	}
	if raw := lookup("LEXICON"); raw != "" {
		c.Lexicon = raw
	}
	if raw := lookup("FORMAT"); raw != "" {
		c.Format = raw
	}
	if raw := lookup("DEFAULT_LANGUAGE"); raw != "" {
		c.DefaultLanguage = raw
	}
	if raw := lookup("CONCURRENCY"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sCONCURRENCY: invalid int %q", EnvPrefix, raw))
		} else {
			c.Concurrency = value
		}
	}
	setBool(&c.Color, "COLOR")
	setBool(&c.FailOnViolation, "FAIL_ON_VIOLATION")
	setList(&c.Exclude, "EXCLUDE")
	setList(&c.Extensions, "EXTENSIONS")
	return errors.Join(errs...)
}

// Validate checks config values
func (c *Config) Validate() error {
	if _, err := reporter.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be positive: %d", c.Concurrency)
	}
	if _, err := inspector.NewFactory().Language(c.DefaultLanguage); err != nil {
		return err
	}
	return nil
}

// DetectorOptions converts the config into detector options
func (c *Config) DetectorOptions() []detector.Option {
	options := []detector.Option{
		detector.WithConcurrency(c.Concurrency),
		detector.WithExcludes(c.Exclude...),
		detector.WithDefaultLanguage(c.DefaultLanguage),
	}
	if len(c.Extensions) > 0 {
		options = append(options, detector.WithExtensions(c.Extensions...))
	}
	return options
}

func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
}
