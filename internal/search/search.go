package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns, in order, every line of contents that contains query.
// The comparison is exact.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive is like Search but lowercases both the line and the
// query with full Unicode case mapping before comparing them.
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(lower.String(line), needle)
	})
}

func filter(contents string, keep func(line string) bool) []string {
	var matches []string
	for line := range lines(contents) {
		if keep(line) {
			matches = append(matches, line)
		}
	}
	return matches
}
