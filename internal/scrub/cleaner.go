// Package scrub implements the character-cleaning pipeline and the file
// traversal that applies it: a pure text transform, a path filter, a per-file
// processor, a tree walker, and a filesystem watcher.
package scrub

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"ghostscrub/internal/config"
)

// Clean applies the enabled cleaning rules to content and returns the result.
// It is deterministic, side-effect-free, and idempotent: cleaning already
// cleaned text is a no-op.
//
// Rules run in a fixed order; later rules see the output of earlier ones:
//
//  1. delete zero-width characters (U+200B, U+200C, U+200D, U+FEFF)
//  2. replace non-breaking spaces (U+00A0) with regular spaces
//  3. delete control characters (<= 0x1F, 0x7F), keeping \n \r \t
//  4. delete Unicode whitespace other than space, \n, \r, \t
//  5. right-trim trailing whitespace from every line
//  6. delete configured custom code points
//  7. blank out whitespace-only lines (always on)
//
// Rules 5 and 7 reconstruct the text by joining lines with "\n", so a "\r"
// directly before a "\n" is collapsed when rule 5 runs. That normalization is
// a long-standing observable behavior and is kept as is.
func Clean(content string, target config.TargetCharacters) string {
	result := content

	if target.ZeroWidthSpaces {
		result = removeZeroWidth(result)
	}
	if target.NonBreakingSpaces {
		result = strings.ReplaceAll(result, "\u00A0", " ")
	}
	if target.ControlCharacters {
		result = removeControl(result)
	}
	if target.UnicodeWhitespace {
		result = removeUnicodeWhitespace(result)
	}
	if target.TrailingWhitespace {
		result = trimTrailingWhitespace(result)
	}
	for _, spec := range target.CustomChars {
		if r, ok := ParseCodePoint(spec); ok {
			result = strings.ReplaceAll(result, string(r), "")
		}
	}

	return blankWhitespaceOnlyLines(result)
}

// CountChanges reports how many characters a cleaning pass removed. It is a
// length delta, so rule 2 (one-for-one substitution) contributes zero even
// though the content changed. The under-count is deliberate and kept for
// output compatibility.
func CountChanges(original, cleaned string) int {
	return utf8.RuneCountInString(original) - utf8.RuneCountInString(cleaned)
}

// ParseCodePoint parses a hex code point like "2028" or "U+2028". The second
// return value is false for unparseable or invalid entries; callers skip
// those silently.
func ParseCodePoint(spec string) (rune, bool) {
	v, err := strconv.ParseUint(strings.TrimPrefix(spec, "U+"), 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

func removeZeroWidth(content string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			return -1
		}
		return r
	}, content)
}

func removeControl(content string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r <= 0x1f || r == 0x7f {
			return -1
		}
		return r
	}, content)
}

func removeUnicodeWhitespace(content string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, content)
}

func trimTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}

// blankWhitespaceOnlyLines replaces lines that contain only whitespace with
// empty lines. Runs unconditionally, after every gated rule.
func blankWhitespaceOnlyLines(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line != "" && strings.TrimSpace(line) == "" {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
