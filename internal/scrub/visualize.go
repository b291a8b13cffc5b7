package scrub

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"ghostscrub/internal/palette"
)

var (
	diffHeaderStyle  = lipgloss.NewStyle().Bold(true)
	diffRemovedStyle = lipgloss.NewStyle().Foreground(palette.ColorDanger)
	diffAddedStyle   = lipgloss.NewStyle().Foreground(palette.ColorSuccess)
)

// WriteDiff writes a line-aligned report of what a cleaning pass removed or
// changed, with invisible characters rendered as visible tags. It is derived
// entirely from (original, cleaned); the pair of lines at each index is
// emitted only where they differ.
func WriteDiff(w io.Writer, path, original, cleaned string, dryRun bool) {
	action := "Cleaned"
	if dryRun {
		action = "Would clean"
	}

	changes := CountChanges(original, cleaned)
	fmt.Fprintf(w, "%s %d invisible characters from: %s\n", action, changes, path)
	if changes == 0 {
		return
	}

	fmt.Fprintln(w, diffHeaderStyle.Render("--- Original"))
	fmt.Fprintln(w, diffHeaderStyle.Render("+++ Cleaned"))

	originalLines := splitDiffLines(original)
	cleanedLines := splitDiffLines(cleaned)

	maxLines := len(originalLines)
	if len(cleanedLines) > maxLines {
		maxLines = len(cleanedLines)
	}

	for i := 0; i < maxLines; i++ {
		var origLine, cleanLine string
		if i < len(originalLines) {
			origLine = originalLines[i]
		}
		if i < len(cleanedLines) {
			cleanLine = cleanedLines[i]
		}
		if origLine == cleanLine {
			continue
		}
		fmt.Fprintln(w, diffRemovedStyle.Render(fmt.Sprintf("-%d: %s", i+1, VisualizeLine(origLine))))
		fmt.Fprintln(w, diffAddedStyle.Render(fmt.Sprintf("+%d: %s", i+1, VisualizeLine(cleanLine))))
	}
	fmt.Fprintln(w)
}

// VisualizeLine renders one line with invisible characters made explicit.
// Whitespace-only lines and empty lines get dedicated markers; otherwise
// known invisibles become bracketed tags inline and trailing whitespace is
// listed separately after the trimmed content.
func VisualizeLine(text string) string {
	if text == "" {
		return "⦃EMPTY⦄"
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("⦃WHITESPACE-ONLY: %s⦄", shortTags(text))
	}

	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if len(trimmed) != len(text) {
		return fmt.Sprintf("%s⦃TRAILING: %s⦄", visualizeChars(trimmed), shortTags(text[len(trimmed):]))
	}
	return visualizeChars(text)
}

func visualizeChars(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '\u200B':
			b.WriteString("⦃ZWS⦄")
		case '\u200C':
			b.WriteString("⦃ZWNJ⦄")
		case '\u200D':
			b.WriteString("⦃ZWJ⦄")
		case '\uFEFF':
			b.WriteString("⦃BOM⦄")
		case '\u00A0':
			b.WriteString("⦃NBSP⦄")
		case '\t':
			b.WriteString("⦃TAB⦄")
		case ' ':
			b.WriteByte(' ')
		default:
			switch {
			case unicode.IsControl(r) && r != '\n' && r != '\r':
				fmt.Fprintf(&b, "⦃U+%04X⦄", r)
			case unicode.IsSpace(r) && r != '\n' && r != '\r':
				fmt.Fprintf(&b, "⦃WS:U+%04X⦄", r)
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// shortTags renders every character of s as a compact tag, joined by "+".
// Used for whitespace-only lines and trailing-whitespace listings.
func shortTags(s string) string {
	tags := make([]string, 0, len(s))
	for _, r := range s {
		switch r {
		case ' ':
			tags = append(tags, "SP")
		case '\t':
			tags = append(tags, "TAB")
		case '\u00A0':
			tags = append(tags, "NBSP")
		default:
			if unicode.IsSpace(r) {
				tags = append(tags, fmt.Sprintf("WS:U+%04X", r))
			} else {
				tags = append(tags, fmt.Sprintf("U+%04X", r))
			}
		}
	}
	return strings.Join(tags, "+")
}

// splitDiffLines splits on "\n" for the report view, dropping the empty
// segment after a trailing newline and any "\r" left at a line end so a bare
// line-ending difference does not show up as a phantom diff.
func splitDiffLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
