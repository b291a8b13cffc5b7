package scrub

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"ghostscrub/internal/config"
)

// ProgressUpdate is one delta of walk progress, consumed by the progress UI.
type ProgressUpdate struct {
	ProcessedDelta int
	SkippedDelta   int
	ErrorDelta     int
	ChangesDelta   int
	Message        string
}

// WalkResult accumulates outcomes over a whole run.
type WalkResult struct {
	FilesProcessed int
	FilesSkipped   int
	TotalChanges   int
	Errors         int
}

// PrintSummary writes the end-of-run report, phrased for the run mode.
// Skipped and error counts appear only when nonzero.
func (r WalkResult) PrintSummary(w io.Writer, dryRun bool) {
	if dryRun {
		fmt.Fprintln(w, "\nDry run summary:")
		fmt.Fprintf(w, "  Files that would be processed: %d\n", r.FilesProcessed)
		fmt.Fprintf(w, "  Invisible characters that would be removed: %d\n", r.TotalChanges)
	} else {
		fmt.Fprintln(w, "\nProcessing summary:")
		fmt.Fprintf(w, "  Files processed: %d\n", r.FilesProcessed)
		fmt.Fprintf(w, "  Invisible characters removed: %d\n", r.TotalChanges)
	}
	if r.FilesSkipped > 0 {
		fmt.Fprintf(w, "  Files skipped: %d\n", r.FilesSkipped)
	}
	if r.Errors > 0 {
		fmt.Fprintf(w, "  Errors encountered: %d\n", r.Errors)
	}
}

// Walker enumerates files under the given roots and feeds them to the
// Processor sequentially. Updates, when set, receives a delta per outcome;
// UpdatesDone, when set, marks the consumer gone so sends stop blocking.
type Walker struct {
	Processor   *Processor
	Filter      *Filter
	ErrOut      io.Writer
	Updates     chan<- ProgressUpdate
	UpdatesDone <-chan struct{}
}

func NewWalker(cfg *config.Config) *Walker {
	filter := NewFilter(cfg)
	return &Walker{
		Processor: NewProcessor(cfg, filter),
		Filter:    filter,
		ErrOut:    os.Stderr,
	}
}

// ProcessPaths handles each argument as an existing file, an existing
// directory, or otherwise a glob pattern to expand. Every failure along the
// way is counted and logged; one bad file never stops the run.
func (w *Walker) ProcessPaths(paths []string, dryRun, verbose bool) WalkResult {
	var result WalkResult

	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
			w.processFile(path, dryRun, verbose, &result)
		case err == nil && info.IsDir():
			w.walkDir(path, dryRun, verbose, &result)
		default:
			w.expandGlob(path, dryRun, verbose, &result)
		}
	}

	return result
}

func (w *Walker) processFile(path string, dryRun, verbose bool, result *WalkResult) {
	res, err := w.Processor.Process(path, dryRun, verbose)
	if err != nil {
		fmt.Fprintf(w.ErrOut, "Error processing %s: %v\n", path, err)
		result.Errors++
		w.notify(ProgressUpdate{ErrorDelta: 1})
		return
	}

	switch res.Outcome {
	case OutcomeCleaned, OutcomeDryRun:
		result.FilesProcessed++
		result.TotalChanges += res.Changes
		w.notify(ProgressUpdate{ProcessedDelta: 1, ChangesDelta: res.Changes})
	case OutcomeNoChanges:
		result.FilesProcessed++
		w.notify(ProgressUpdate{ProcessedDelta: 1})
	case OutcomeSkipped:
		result.FilesSkipped++
		w.notify(ProgressUpdate{SkippedDelta: 1})
	}
}

// walkDir recurses depth-first. Entries matching an exclude glob are pruned
// outright: excluded directories are not descended into and excluded files
// are neither processed nor counted.
func (w *Walker) walkDir(dir string, dryRun, verbose bool, result *WalkResult) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(w.ErrOut, "Error reading directory %s: %v\n", dir, err)
		result.Errors++
		w.notify(ProgressUpdate{ErrorDelta: 1})
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if w.Filter.Excluded(path) {
			continue
		}
		if entry.IsDir() {
			w.walkDir(path, dryRun, verbose, result)
		} else if entry.Type().IsRegular() {
			w.processFile(path, dryRun, verbose, result)
		}
	}
}

func (w *Walker) expandGlob(pattern string, dryRun, verbose bool, result *WalkResult) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		fmt.Fprintf(w.ErrOut, "Glob error: %v\n", err)
		result.Errors++
		w.notify(ProgressUpdate{ErrorDelta: 1})
		return
	}

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.IsDir() {
			w.walkDir(match, dryRun, verbose, result)
		} else if info.Mode().IsRegular() {
			w.processFile(match, dryRun, verbose, result)
		}
	}
}

func (w *Walker) notify(update ProgressUpdate) {
	if w.Updates == nil {
		return
	}
	if w.UpdatesDone == nil {
		w.Updates <- update
		return
	}
	select {
	case w.Updates <- update:
	case <-w.UpdatesDone:
	}
}
