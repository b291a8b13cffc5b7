package scrub

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"ghostscrub/internal/config"
	"ghostscrub/pkg/textutil"
)

// Outcome tags what happened to a single file.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeNoChanges
	OutcomeDryRun
	OutcomeCleaned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleaned:
		return "cleaned"
	case OutcomeDryRun:
		return "dry-run"
	case OutcomeNoChanges:
		return "no-changes"
	default:
		return "skipped"
	}
}

// Result is the outcome of processing one file. Changes is meaningful for
// OutcomeCleaned and OutcomeDryRun.
type Result struct {
	Outcome Outcome
	Changes int
}

// Processor runs read -> clean -> write (or report) for a single file.
// Out receives its user-facing one-liners and diff reports.
type Processor struct {
	Cfg    *config.Config
	Filter *Filter
	Out    io.Writer
}

func NewProcessor(cfg *config.Config, filter *Filter) *Processor {
	return &Processor{Cfg: cfg, Filter: filter, Out: os.Stdout}
}

// Process cleans one file. Files rejected by the extension rule come back
// Skipped without being read. Decode and write failures are returned as
// errors for the caller to count; they never abort a multi-file run.
func (p *Processor) Process(path string, dryRun, verbose bool) (Result, error) {
	if !p.Filter.ShouldProcess(path) {
		return Result{Outcome: OutcomeSkipped}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	if textutil.SniffContent(data) != textutil.KindText {
		return Result{}, fmt.Errorf("not valid UTF-8 text")
	}

	content := string(data)
	cleaned := Clean(content, p.Cfg.TargetCharacters)

	if cleaned == content {
		if p.Cfg.Verbosity == config.VerbosityVerbose {
			fmt.Fprintf(p.Out, "No changes needed: %s\n", path)
		}
		return Result{Outcome: OutcomeNoChanges}, nil
	}

	changes := CountChanges(content, cleaned)

	if verbose {
		WriteDiff(p.Out, path, content, cleaned, dryRun)
	}

	if dryRun {
		if !verbose {
			fmt.Fprintf(p.Out, "Would clean %d invisible characters from: %s\n", changes, path)
		}
		return Result{Outcome: OutcomeDryRun, Changes: changes}, nil
	}

	if err := writeAtomic(path, cleaned); err != nil {
		return Result{}, err
	}
	if p.Cfg.Verbosity != config.VerbositySilent && !verbose {
		fmt.Fprintf(p.Out, "Cleaned %d invisible characters from: %s\n", changes, path)
	}
	return Result{Outcome: OutcomeCleaned, Changes: changes}, nil
}

// writeAtomic replaces the file's content as a whole via a temp file and
// rename, keeping the existing permissions. Readers never observe a
// half-written file.
func writeAtomic(path, content string) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.WriteString(pending, content); err != nil {
		return fmt.Errorf("write cleaned content: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	return nil
}
