package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ghostscrub/internal/config"
	"ghostscrub/internal/palette"
	"ghostscrub/internal/scrub"
	"ghostscrub/internal/tui"
)

var (
	flagDryRun     bool
	flagWatch      bool
	flagConfigFile string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ghostscrub [flags] [path ...]",
	Short: "ghostscrub 👻 - strip invisible Unicode characters from text and code files",
	Long: "ghostscrub 👻 strips zero-width spaces, non-breaking spaces, stray control\n" +
		"characters, and trailing whitespace from text and code files, either in a\n" +
		"single pass or continuously while watching for changes.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}

		if flagWatch {
			return scrub.NewWatcher(cfg).Watch(paths)
		}
		return runScrub(cfg, paths)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "show what would be changed without modifying files")
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "watch directories for changes and process files automatically")
	rootCmd.Flags().StringVarP(&flagConfigFile, "config", "c", "", "path to configuration file (defaults to .ghostscrub)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "show detailed output including diffs of changes")
}

// loadConfig resolves the run configuration. An explicit --config path must
// load; the default location is optional and falls back to defaults.
func loadConfig() (*config.Config, error) {
	if flagConfigFile == "" {
		return config.LoadDefault(), nil
	}
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", flagConfigFile, err)
	}
	return cfg, nil
}

// runScrub executes a one-shot pass. On an interactive terminal at normal
// verbosity the walk runs behind a live progress view; otherwise per-file
// lines and the plain summary go straight to stdout.
func runScrub(cfg *config.Config, paths []string) error {
	walker := scrub.NewWalker(cfg)

	interactive := !flagVerbose &&
		cfg.Verbosity == config.VerbosityNormal &&
		isatty.IsTerminal(os.Stdout.Fd())

	if !interactive {
		result := walker.ProcessPaths(paths, flagDryRun, flagVerbose)
		result.PrintSummary(os.Stdout, flagDryRun)
		return nil
	}

	updates := make(chan scrub.ProgressUpdate, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)

	// If the UI exits early (quit key, render error), uiDone unblocks every
	// later send so the walk still runs to completion.
	uiDone := make(chan struct{})
	walker.Updates = updates
	walker.UpdatesDone = uiDone
	walker.Processor.Out = tui.NewMessageWriter(updates, uiDone)

	go func() {
		_, _ = program.Run()
		close(uiDone)
	}()

	result := walker.ProcessPaths(paths, flagDryRun, flagVerbose)
	close(updates)
	<-uiDone

	fmt.Fprintln(os.Stdout, summaryHeaderStyle(flagDryRun).Render(summaryHeader(flagDryRun)))
	fmt.Fprintln(os.Stdout, tui.RenderSummary(summaryRows(result, flagDryRun)))
	return nil
}

func summaryHeader(dryRun bool) string {
	if dryRun {
		return "Dry run summary"
	}
	return "Processing summary"
}

func summaryRows(result scrub.WalkResult, dryRun bool) []tui.SummaryRow {
	processedLabel := "Files processed"
	changesLabel := "Invisible characters removed"
	if dryRun {
		processedLabel = "Files that would be processed"
		changesLabel = "Invisible characters that would be removed"
	}

	rows := []tui.SummaryRow{
		{Label: processedLabel, Value: fmt.Sprintf("%d", result.FilesProcessed)},
		{Label: changesLabel, Value: fmt.Sprintf("%d", result.TotalChanges)},
	}
	if result.FilesSkipped > 0 {
		rows = append(rows, tui.SummaryRow{Label: "Files skipped", Value: fmt.Sprintf("%d", result.FilesSkipped)})
	}
	if result.Errors > 0 {
		rows = append(rows, tui.SummaryRow{Label: "Errors encountered", Value: fmt.Sprintf("%d", result.Errors)})
	}
	return rows
}

// Dry runs get the warn color so the header signals nothing was written.
func summaryHeaderStyle(dryRun bool) lipgloss.Style {
	color := palette.ColorSuccess
	if dryRun {
		color = palette.ColorWarn
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
