package config

import "os"

// CaseInsensitiveEnv disables case-sensitive matching when present, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// LookupEnvFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupEnvFunc func(key string) (string, bool)

// Config holds the inputs of a single search run.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// Option adjusts how New builds a Config.
type Option func(*options)

type options struct {
	ignoreCase bool
}

// WithIgnoreCase forces case-insensitive matching when enabled. It never turns
// case sensitivity back on once the environment has disabled it.
func WithIgnoreCase(enabled bool) Option {
	return func(o *options) {
		o.ignoreCase = o.ignoreCase || enabled
	}
}

// New builds a Config from invocation arguments. The first element is the
// program name and is skipped; the query and filename follow. Any further
// arguments are ignored.
func New(args []string, lookupEnv LookupEnvFunc, opts ...Option) (Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, ErrMissingFilename
	}
	filename := args[1]

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	_, insensitive := lookupEnv(CaseInsensitiveEnv)

	return Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: !insensitive && !o.ignoreCase,
	}, nil
}
