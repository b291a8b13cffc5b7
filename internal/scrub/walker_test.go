package scrub

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostscrub/internal/config"
)

func newTestWalker(cfg *config.Config) (*Walker, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	w := NewWalker(cfg)
	w.Processor.Out = out
	w.ErrOut = errOut
	return w, out, errOut
}

func TestProcessPathsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "dirty\u200B\n")

	w, _, _ := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{path}, false, false)

	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 1, result.TotalChanges)
	assert.Zero(t, result.Errors)
}

func TestProcessPathsDirectoryRecursion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0o755))
	writeFile(t, dir, "a.md", "one\u200B\n")
	writeFile(t, filepath.Join(dir, "sub"), "b.md", "two\u200B\u200B\n")
	writeFile(t, filepath.Join(dir, "sub", "deeper"), "c.md", "clean\n")
	writeFile(t, dir, "skip.png", "binary-ish but never read")

	w, _, _ := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{dir}, false, false)

	assert.Equal(t, 3, result.FilesProcessed)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, 3, result.TotalChanges)
	assert.Zero(t, result.Errors)
}

func TestProcessPathsPrunesExcludedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "pkg"), 0o755))
	writeFile(t, filepath.Join(dir, ".git"), "cfg.txt", "dirty\u200B\n")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg"), "index.js", "dirty\u200B\n")
	writeFile(t, dir, "keep.md", "dirty\u200B\n")

	w, _, _ := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{dir}, false, false)

	// Only keep.md is visible; excluded entries are pruned silently.
	assert.Equal(t, 1, result.FilesProcessed)
	assert.Zero(t, result.FilesSkipped)
	assert.Equal(t, 1, result.TotalChanges)
}

func TestProcessPathsPartialFailure(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md"} {
		writeFile(t, dir, name, "fine\u200B\n")
	}
	// Not valid UTF-8: surfaces as a per-file error, run continues.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte{0xff, 0xfe, 0x00}, 0o644))

	w, _, errOut := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{dir}, false, false)

	assert.Equal(t, 4, result.FilesProcessed)
	assert.Equal(t, 1, result.Errors)
	assert.Contains(t, errOut.String(), "Error processing")
	assert.Contains(t, errOut.String(), "bad.md")
}

func TestProcessPathsPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "ok.md", "fine\u200B\n")
	locked := writeFile(t, dir, "locked.md", "fine\u200B\n")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })

	w, _, errOut := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{dir}, false, false)

	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 1, result.Errors)
	assert.Contains(t, errOut.String(), "locked.md")
}

func TestProcessPathsDryRunMatchesRealRun(t *testing.T) {
	build := func(t *testing.T) string {
		dir := t.TempDir()
		writeFile(t, dir, "a.md", "one\u200B  \n")
		writeFile(t, dir, "b.md", "two\uFEFF\n")
		return dir
	}

	dryDir := build(t)
	w, _, _ := newTestWalker(config.Default())
	dryResult := w.ProcessPaths([]string{dryDir}, true, false)

	// Dry run leaves every file byte-identical.
	data, err := os.ReadFile(filepath.Join(dryDir, "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "one\u200B  \n", string(data))

	realDir := build(t)
	w2, _, _ := newTestWalker(config.Default())
	realResult := w2.ProcessPaths([]string{realDir}, false, false)

	assert.Equal(t, realResult.TotalChanges, dryResult.TotalChanges)
	assert.Equal(t, realResult.FilesProcessed, dryResult.FilesProcessed)
}

func TestProcessPathsGlobPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, dir, "a.md", "one\u200B\n")
	writeFile(t, filepath.Join(dir, "sub"), "b.md", "two\u200B\n")
	writeFile(t, dir, "c.txt", "three\u200B\n")

	w, _, _ := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{filepath.Join(dir, "**", "*.md")}, false, false)

	assert.Equal(t, 2, result.FilesProcessed)
	assert.Equal(t, 2, result.TotalChanges)
}

func TestProcessPathsBadGlob(t *testing.T) {
	w, _, errOut := newTestWalker(config.Default())
	result := w.ProcessPaths([]string{"[unclosed"}, false, false)

	assert.Equal(t, 1, result.Errors)
	assert.Contains(t, errOut.String(), "Glob error")
}

func TestProgressUpdates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "one\u200B\n")
	writeFile(t, dir, "skip.png", "x")

	updates := make(chan ProgressUpdate, 16)
	w, _, _ := newTestWalker(config.Default())
	w.Updates = updates

	w.ProcessPaths([]string{dir}, false, false)
	close(updates)

	var processed, skipped, changes int
	for u := range updates {
		processed += u.ProcessedDelta
		skipped += u.SkippedDelta
		changes += u.ChangesDelta
	}
	assert.Equal(t, 1, processed)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, changes)
}

func TestProgressUpdatesConsumerGone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "one​\n")
	writeFile(t, dir, "b.md", "two​\n")
	writeFile(t, dir, "c.md", "three​\n")

	// Unbuffered channel with nobody receiving: without UpdatesDone the
	// first send would block forever.
	done := make(chan struct{})
	close(done)

	w, _, _ := newTestWalker(config.Default())
	w.Updates = make(chan ProgressUpdate)
	w.UpdatesDone = done

	result := w.ProcessPaths([]string{dir}, false, false)
	assert.Equal(t, 3, result.FilesProcessed)
	assert.Equal(t, 3, result.TotalChanges)
}

func TestPrintSummary(t *testing.T) {
	result := WalkResult{FilesProcessed: 3, FilesSkipped: 1, TotalChanges: 7, Errors: 2}

	var buf bytes.Buffer
	result.PrintSummary(&buf, false)
	assert.Contains(t, buf.String(), "Processing summary:")
	assert.Contains(t, buf.String(), "Files processed: 3")
	assert.Contains(t, buf.String(), "Invisible characters removed: 7")
	assert.Contains(t, buf.String(), "Files skipped: 1")
	assert.Contains(t, buf.String(), "Errors encountered: 2")

	buf.Reset()
	WalkResult{FilesProcessed: 2, TotalChanges: 5}.PrintSummary(&buf, true)
	assert.Contains(t, buf.String(), "Dry run summary:")
	assert.Contains(t, buf.String(), "Files that would be processed: 2")
	assert.NotContains(t, buf.String(), "Files skipped")
	assert.NotContains(t, buf.String(), "Errors encountered")
}
