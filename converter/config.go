package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// HeadingStyle controls how headings are rendered.
type HeadingStyle string

const (
	// HeadingATX renders every heading as "#"-prefixed lines.
	HeadingATX HeadingStyle = "atx"
	// HeadingSetext underlines level 1 and 2 headings with "=" and "-";
	// deeper levels fall back to the atx form.
	HeadingSetext HeadingStyle = "setext"
)

// Config holds all converter configuration options.
//
// The zero value is not usable directly because several defaults are
// non-zero; start from DefaultConfig or rely on New applying defaults.
type Config struct {
	// Image handling.
	DownloadImages bool   `json:"downloadImages" yaml:"downloadImages"`
	ImageFolder    string `json:"imageFolder,omitempty" yaml:"imageFolder,omitempty"`
	MaxImageSize   int64  `json:"maxImageSize,omitempty" yaml:"maxImageSize,omitempty"`

	// Conversion options.
	IncludeLinks       bool         `json:"includeLinks" yaml:"includeLinks"`
	RemoveNavigation   bool         `json:"removeNavigation,omitempty" yaml:"removeNavigation,omitempty"`
	PreserveWhitespace bool         `json:"preserveWhitespace,omitempty" yaml:"preserveWhitespace,omitempty"`
	CodeBlockStyle     string       `json:"codeBlockStyle,omitempty" yaml:"codeBlockStyle,omitempty"`
	HeadingStyle       HeadingStyle `json:"headingStyle,omitempty" yaml:"headingStyle,omitempty"`

	// Network settings. MaxRetries is parsed and validated but not yet
	// acted on; retry support needs backoff plumbing in the fetcher first.
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
	MaxRetries     int    `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty"`
	UserAgent      string `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`

	// Output settings. LineWidth 0 disables wrapping entirely.
	// PreserveEmptyLines is parsed but not yet acted on; the blank-line
	// collapse in postProcess would honor it.
	LineWidth          int  `json:"lineWidth" yaml:"lineWidth"`
	PreserveEmptyLines bool `json:"preserveEmptyLines,omitempty" yaml:"preserveEmptyLines,omitempty"`

	// Logger receives structured progress and warning output. Nil means
	// the package-level default logger.
	Logger *log.Logger `json:"-" yaml:"-"`
}

// DefaultConfig returns the stock configuration: download images into
// "images/", keep links, atx headings, 80-column wrapping.
func DefaultConfig() Config {
	return Config{
		DownloadImages: true,
		ImageFolder:    "images",
		MaxImageSize:   10 * 1024 * 1024,
		IncludeLinks:   true,
		CodeBlockStyle: "```",
		HeadingStyle:   HeadingATX,
		TimeoutSeconds: 30,
		MaxRetries:     3,
		UserAgent:      "Mozilla/5.0 (compatible; wmd/1.0)",
		LineWidth:      80,
	}
}

// applyDefaults fills unset string and numeric fields. Boolean fields are
// left alone: false is not distinguishable from unset, so DefaultConfig is
// the construction path that turns the boolean defaults on.
func (c Config) applyDefaults() Config {
	if c.ImageFolder == "" {
		c.ImageFolder = "images"
	}
	if c.MaxImageSize == 0 {
		c.MaxImageSize = 10 * 1024 * 1024
	}
	if c.CodeBlockStyle == "" {
		c.CodeBlockStyle = "```"
	}
	if c.HeadingStyle == "" {
		c.HeadingStyle = HeadingATX
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; wmd/1.0)"
	}

	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.HeadingStyle != HeadingATX && c.HeadingStyle != HeadingSetext {
		return fmt.Errorf("invalid headingStyle %q", c.HeadingStyle)
	}
	if err := validateFence(c.CodeBlockStyle); err != nil {
		return err
	}
	if c.MaxImageSize <= 0 {
		return fmt.Errorf("maxImageSize must be positive, got %d", c.MaxImageSize)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeoutSeconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("maxRetries must not be negative, got %d", c.MaxRetries)
	}
	if c.LineWidth < 0 {
		return fmt.Errorf("lineWidth must not be negative, got %d", c.LineWidth)
	}
	if strings.TrimSpace(c.ImageFolder) == "" {
		return fmt.Errorf("imageFolder must not be empty")
	}

	return nil
}

// validateFence checks that a code fence is at least three characters of
// either backticks or tildes, unmixed.
func validateFence(fence string) error {
	if len(fence) < 3 {
		return fmt.Errorf("invalid codeBlockStyle %q: fence needs at least three characters", fence)
	}
	for _, r := range fence {
		if r != rune(fence[0]) {
			return fmt.Errorf("invalid codeBlockStyle %q: fence characters must all match", fence)
		}
	}
	if fence[0] != '`' && fence[0] != '~' {
		return fmt.Errorf("invalid codeBlockStyle %q: fence must use backticks or tildes", fence)
	}
	return nil
}

// LoadConfig reads a JSON or YAML config file, chosen by extension, on top
// of DefaultConfig. Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q: want .json, .yaml or .yml", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
