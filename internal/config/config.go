// Package config holds the run configuration for ghostscrub: which files are
// in scope and which character classes get scrubbed. The configuration is
// loaded once per invocation and shared read-only by every component.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFileName = ".ghostscrub"

// Verbosity controls how chatty per-file output is.
type Verbosity string

const (
	VerbositySilent  Verbosity = "silent"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
)

// TargetCharacters selects which cleaning rules are applied. Each boolean
// gates one rule; CustomChars is an ordered list of extra code points given
// as hex strings ("U+2028" or "2028").
type TargetCharacters struct {
	ZeroWidthSpaces    bool     `yaml:"zero_width_spaces"`
	NonBreakingSpaces  bool     `yaml:"non_breaking_spaces"`
	ControlCharacters  bool     `yaml:"control_characters"`
	UnicodeWhitespace  bool     `yaml:"unicode_whitespace"`
	TrailingWhitespace bool     `yaml:"trailing_whitespace"`
	CustomChars        []string `yaml:"custom_chars"`
}

// Config is the immutable per-run configuration.
type Config struct {
	IncludeExtensions []string         `yaml:"include_extensions"`
	ExcludeExtensions []string         `yaml:"exclude_extensions"`
	IncludePatterns   []string         `yaml:"include_patterns"`
	ExcludePatterns   []string         `yaml:"exclude_patterns"`
	TargetCharacters  TargetCharacters `yaml:"target_characters"`
	Verbosity         Verbosity        `yaml:"verbosity"`
}

// Default returns the built-in configuration: a broad allow-list of source
// and text extensions, exclude patterns for VCS/build/dependency/editor/OS
// artifacts, and every cleaning rule enabled.
func Default() *Config {
	return &Config{
		IncludeExtensions: []string{
			"rs", "py", "js", "ts", "jsx", "tsx", "go", "java",
			"c", "cpp", "h", "hpp", "cs", "php", "rb", "swift",
			"kt", "scala", "clj", "hs", "ml",
			"txt", "md", "json", "xml", "yaml", "yml",
			"toml", "ini", "cfg", "conf",
		},
		ExcludeExtensions: []string{},
		IncludePatterns:   []string{"**/*"},
		ExcludePatterns: []string{
			// Version control
			"**/.git/**",
			"**/.svn/**",
			"**/.hg/**",
			"**/.bzr/**",
			// Build artifacts and dependencies
			"**/target/**",
			"**/node_modules/**",
			"**/build/**",
			"**/dist/**",
			"**/out/**",
			"**/bin/**",
			"**/obj/**",
			// Python
			"**/__pycache__/**",
			"**/.pytest_cache/**",
			"**/venv/**",
			"**/.venv/**",
			"**/*.egg-info/**",
			// IDEs and editors
			"**/.idea/**",
			"**/.vscode/**",
			"**/.vs/**",
			"**/*.swp",
			"**/*.swo",
			"**/*~",
			"**/.#*",
			// OS specific
			"**/.DS_Store",
			"**/Thumbs.db",
			"**/desktop.ini",
			// Temporary files
			"**/*.tmp",
			"**/*.temp",
			"**/*.bak",
			"**/*.orig",
			// Logs
			"**/*.log",
			"**/logs/**",
		},
		TargetCharacters: TargetCharacters{
			ZeroWidthSpaces:    true,
			NonBreakingSpaces:  true,
			ControlCharacters:  true,
			UnicodeWhitespace:  true,
			TrailingWhitespace: true,
			CustomChars:        []string{},
		},
		Verbosity: VerbosityNormal,
	}
}

// Load reads and parses a config file. Fields missing from the document keep
// their default values. A missing or unreadable file is an error here; use
// LoadDefault for the optional default-location lookup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads .ghostscrub from the working directory, falling back to
// the built-in defaults if the file is absent or unusable.
func LoadDefault() *Config {
	cfg, err := Load(DefaultFileName)
	if err != nil {
		return Default()
	}
	return cfg
}
