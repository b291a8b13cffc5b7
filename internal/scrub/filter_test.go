package scrub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ghostscrub/internal/config"
)

func TestFilterDenyListWinsOverAllowList(t *testing.T) {
	cfg := config.Default()
	cfg.IncludeExtensions = []string{"go", "md"}
	cfg.ExcludeExtensions = []string{"md"}
	f := NewFilter(cfg)

	assert.True(t, f.ShouldProcess("notes/readme.go"))
	assert.False(t, f.ShouldProcess("notes/readme.md"))
}

func TestFilterAllowListRejectsUnlisted(t *testing.T) {
	cfg := config.Default()
	cfg.IncludeExtensions = []string{"go"}
	f := NewFilter(cfg)

	assert.True(t, f.ShouldProcess("main.go"))
	assert.False(t, f.ShouldProcess("image.png"))
}

func TestFilterExtensionlessAlwaysPasses(t *testing.T) {
	cfg := config.Default()
	cfg.IncludeExtensions = []string{"go"}
	cfg.ExcludeExtensions = []string{"png"}
	f := NewFilter(cfg)

	assert.True(t, f.ShouldProcess("Makefile"))
	assert.True(t, f.ShouldProcess("src/LICENSE"))
	// A leading dot does not start an extension.
	assert.True(t, f.ShouldProcess(".ghostscrub"))
}

func TestFilterEmptyListsAcceptEverything(t *testing.T) {
	cfg := config.Default()
	cfg.IncludeExtensions = nil
	cfg.ExcludeExtensions = nil
	f := NewFilter(cfg)

	assert.True(t, f.ShouldProcess("whatever.xyz"))
}

func TestFilterExcludedGlobs(t *testing.T) {
	f := NewFilter(config.Default())

	assert.True(t, f.Excluded("project/.git/config"))
	assert.True(t, f.Excluded(".git/config"))
	assert.True(t, f.Excluded("web/node_modules/pkg/index.js"))
	assert.True(t, f.Excluded("scratch/file.tmp"))
	assert.True(t, f.Excluded("deep/nested/logs/app.log"))

	assert.False(t, f.Excluded("src/main.go"))
	assert.False(t, f.Excluded("docs/readme.md"))
}

func TestFilterMalformedPatternNeverMatches(t *testing.T) {
	cfg := config.Default()
	cfg.ExcludePatterns = []string{"[unclosed", "**/*.log"}
	f := NewFilter(cfg)

	assert.False(t, f.Excluded("src/main.go"))
	assert.True(t, f.Excluded("run.log"))
}

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, "go", extensionOf("a/b/main.go"))
	assert.Equal(t, "gz", extensionOf("archive.tar.gz"))
	assert.Equal(t, "", extensionOf("Makefile"))
	assert.Equal(t, "", extensionOf(".hidden"))
	assert.Equal(t, "", extensionOf("dir.v2/file"))
}
