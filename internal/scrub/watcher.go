package scrub

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"ghostscrub/internal/config"
)

// Watcher runs continuous cleaning: filesystem create/modify events are fed
// one at a time into the Processor. Events are handled fully before the next
// one is received, so file processing is never concurrent with itself.
type Watcher struct {
	Processor *Processor
	Filter    *Filter
	Out       io.Writer
	ErrOut    io.Writer
}

func NewWatcher(cfg *config.Config) *Watcher {
	filter := NewFilter(cfg)
	return &Watcher{
		Processor: NewProcessor(cfg, filter),
		Filter:    filter,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
	}
}

// Watch blocks watching the given paths until SIGINT/SIGTERM. Failure to
// establish the watch is fatal; everything after that is logged and survived.
func (w *Watcher) Watch(paths []string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start file watcher: %w", err)
	}
	defer fw.Close()

	for _, path := range paths {
		if err := w.addRecursive(fw, path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		fmt.Fprintf(w.Out, "Watching: %s\n", path)
	}

	fmt.Fprintln(w.Out, "File watcher started. Press Ctrl+C to stop.")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.ErrOut, "Watch error: %v\n", err)
		case <-sig:
			return nil
		}
	}
}

// addRecursive registers path and every non-excluded subdirectory with the
// notifier. Vanished and permission-denied directories are skipped.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) || os.IsPermission(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			if path == root {
				// Watching a single file, not a tree.
				return fw.Add(path)
			}
			return nil
		}
		if path != root && w.Filter.Excluded(path) {
			return fs.SkipDir
		}
		if err := fw.Add(path); err != nil {
			if os.IsPermission(err) {
				return nil
			}
			return err
		}
		return nil
	})
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, event fsnotify.Event) {
	// New directories need to be watched too before their contents settle.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(fw, event.Name); err != nil {
				fmt.Fprintf(w.ErrOut, "Watch error: %v\n", err)
			}
			return
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if isEditorArtifact(filepath.Base(path)) {
		return
	}
	if w.Filter.Excluded(path) {
		return
	}
	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return
	}

	res, err := w.Processor.Process(path, false, false)
	if err != nil {
		fmt.Fprintf(w.ErrOut, "Error processing %s: %v\n", path, err)
		return
	}
	if res.Outcome == OutcomeCleaned {
		fmt.Fprintf(w.Out, "Auto-cleaned %d invisible characters from: %s\n", res.Changes, path)
	}
}

// isEditorArtifact filters out the scratch files editors leave behind while
// saving: hidden files, backup suffixes, swap files, and lock names.
func isEditorArtifact(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".tmp") ||
		strings.HasSuffix(name, ".swp") ||
		strings.Contains(name, ".#")
}
