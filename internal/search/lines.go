package search

import (
	"iter"
	"strings"
)

// Lines splits contents at "\n" and "\r\n" boundaries. A final line terminator
// does not produce an empty trailing line, and empty contents has no lines.
func Lines(contents string) []string {
	out := make([]string, 0, strings.Count(contents, "\n")+1)
	for line := range lines(contents) {
		out = append(out, line)
	}
	return out
}

func lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
