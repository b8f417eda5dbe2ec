package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/milligrep/internal/application"
	"github.com/eugenenazirov/milligrep/internal/config"
	"github.com/eugenenazirov/milligrep/internal/logging"
	"github.com/eugenenazirov/milligrep/internal/storage"
)

const appName = "milligrep"

var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv config.LookupEnvFunc, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New(appName, "Print the lines of a file that contain a query string")
	kingpinApp.Version(version)
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	// Flags end at the first positional so trailing arguments are ignored, not parsed.
	kingpinApp.Interspersed(false)

	// --help and --version report through terminated instead of exiting the process.
	terminated := -1
	kingpinApp.Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Diagnostics level: debug, info, warn or error").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Diagnostics encoding: console or json").String()
	ignoreCase := kingpinApp.Flag("ignore-case", "Match case-insensitively (same as setting CASE_INSENSITIVE)").Short('i').Bool()
	positionals := kingpinApp.Arg("args", "<query> <filename>; further arguments are ignored. Use -- before a query that starts with -").Strings()

	var cliArgs []string
	if len(args) > 1 {
		cliArgs = args[1:]
	}
	_, err := kingpinApp.Parse(cliArgs)
	if terminated >= 0 {
		return terminated
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitUsage
	}

	settings, err := config.LoadSettings(&config.CLIOverrides{
		ConfigFile:  *configFile,
		LogLevel:    logLevel,
		LogEncoding: logEncoding,
		IgnoreCase:  ignoreCase,
	}, lookupEnv)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to load configuration: %v\n", appName, err)
		return exitError
	}

	logger, err := logging.New(settings.LogLevel, settings.LogEncoding)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize logger: %v\n", appName, err)
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.New(append([]string{appName}, *positionals...), lookupEnv,
		config.WithIgnoreCase(settings.IgnoreCase),
	)
	if err != nil {
		logger.Debug("invalid arguments", zap.Strings("args", *positionals))
		fmt.Fprintf(stderr, "%s: problem parsing arguments: %v\n", appName, err)
		return exitError
	}

	app := application.New(storage.NewFileStorage(), stdout, logger)
	if err := app.Run(cfg); err != nil {
		fmt.Fprintf(stderr, "%s: application error: %v\n", appName, err)
		return exitError
	}

	return exitOK
}
