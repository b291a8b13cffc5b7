package scrub

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"ghostscrub/internal/config"
)

// Filter decides which paths are in scope. It is the single filtering
// mechanism for a run: the extension allow/deny rule answers ShouldProcess,
// and the configured exclude globs answer Excluded. Directory skipping is
// plain configuration data (the default exclude patterns), not code.
type Filter struct {
	allow    map[string]struct{}
	deny     map[string]struct{}
	excludes []string
}

// NewFilter builds a Filter from the run configuration.
func NewFilter(cfg *config.Config) *Filter {
	f := &Filter{
		allow:    make(map[string]struct{}, len(cfg.IncludeExtensions)),
		deny:     make(map[string]struct{}, len(cfg.ExcludeExtensions)),
		excludes: cfg.ExcludePatterns,
	}
	for _, ext := range cfg.IncludeExtensions {
		f.allow[ext] = struct{}{}
	}
	for _, ext := range cfg.ExcludeExtensions {
		f.deny[ext] = struct{}{}
	}
	return f
}

// ShouldProcess applies the extension rule: the deny-list wins over the
// allow-list, a non-empty allow-list must contain the extension, and paths
// without an extension always pass.
func (f *Filter) ShouldProcess(path string) bool {
	ext := extensionOf(path)
	if ext == "" {
		return true
	}
	if len(f.deny) > 0 {
		if _, denied := f.deny[ext]; denied {
			return false
		}
	}
	if len(f.allow) > 0 {
		if _, allowed := f.allow[ext]; !allowed {
			return false
		}
	}
	return true
}

// Excluded reports whether any exclude glob matches the path. Malformed
// patterns never match.
func (f *Filter) Excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range f.excludes {
		ok, err := doublestar.Match(pattern, slashed)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// extensionOf returns the extension without its dot, or "" when there is
// none. A leading dot (hidden files like .ghostscrub) does not start an
// extension.
func extensionOf(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}
