// Package search filters the lines of an in-memory text for a literal query.
// Matched lines are returned as substrings of the input, so they share its
// backing memory and are never copied.
package search
