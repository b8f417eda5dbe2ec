// Package application wires storage, search and output together. It owns the
// run of a single search: load the file, filter its lines, print the matches.
package application
