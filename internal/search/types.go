package search

// Searcher describes the behaviour required from a line searcher.
type Searcher interface {
	Search(query, contents string) []string
}

// New returns the case-sensitive searcher when caseSensitive is set and the
// case-insensitive one otherwise.
func New(caseSensitive bool) Searcher {
	if caseSensitive {
		return sensitiveSearcher{}
	}
	return insensitiveSearcher{}
}

type sensitiveSearcher struct{}

func (sensitiveSearcher) Search(query, contents string) []string {
	return Search(query, contents)
}

type insensitiveSearcher struct{}

func (insensitiveSearcher) Search(query, contents string) []string {
	return SearchCaseInsensitive(query, contents)
}
