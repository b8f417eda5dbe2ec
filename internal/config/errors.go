package config

import "errors"

var (
	// ErrMissingQuery is returned when no query argument follows the program name.
	ErrMissingQuery = errors.New("didn't get a query string")
	// ErrMissingFilename is returned when no filename argument follows the query.
	ErrMissingFilename = errors.New("didn't get the file name")
)
