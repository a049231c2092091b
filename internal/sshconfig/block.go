package sshconfig

import (
	"iter"
	"regexp"
	"strings"
)

// blockSeparator matches a newline followed by one or more whitespace-only lines.
var blockSeparator = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Blocks splits config text into host blocks on blank-line runs.
// Blocks that contain only whitespace are skipped. CRLF line endings are
// normalized before splitting.
func Blocks(text string) iter.Seq[string] {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	return func(yield func(string) bool) {
		rest := text
		for rest != "" {
			var block string
			if loc := blockSeparator.FindStringIndex(rest); loc != nil {
				block, rest = rest[:loc[0]], rest[loc[1]:]
			} else {
				block, rest = rest, ""
			}

			if strings.TrimSpace(block) == "" {
				continue
			}
			if !yield(block) {
				return
			}
		}
	}
}
