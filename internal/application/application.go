package application

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/tomaszpagacz/GPT-data-platform/internal/config"
	"github.com/tomaszpagacz/GPT-data-platform/internal/resolver"
)

// App bundles the dependencies of one CLI invocation. Output writers are
// injected so tests can capture stdout and stderr.
type App struct {
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates an App writing resolved values to stdout and diagnostics to stderr.
func New(logger *zap.Logger, stdout, stderr io.Writer) *App {
	return &App{
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes one resolution: parse arguments, load the configuration file,
// resolve the requested key, and print the result. It returns the process
// exit code; 0 on success, 1 on a usage error or unknown key. A failed load
// is never fatal and resolution continues with defaults.
func (a *App) Run(args []string) int {
	cli := kingpin.New("parse-config", "Print the value of a known key from a YAML cleanup configuration file.")
	cli.Terminate(nil)
	cli.UsageWriter(a.stderr)
	cli.ErrorWriter(a.stderr)

	configFile := cli.Arg("config-file", "Path to the YAML configuration file").Required().String()
	key := cli.Arg("key", "Configuration key to resolve (enabledEnvironments, notificationEmail, slackWebhook, dryRun)").Required().String()

	if _, err := cli.Parse(args); err != nil {
		fmt.Fprintf(a.stderr, "%s: error: %v\n", cli.Name, err)
		fmt.Fprintf(a.stderr, "usage: %s <config-file> <key>\n", cli.Name)
		return 1
	}

	doc := config.Load(*configFile, a.logger)

	value, err := resolver.Resolve(doc, *key)
	if err != nil {
		// Nothing informative goes to either stream for an unknown key.
		fmt.Fprintln(a.stderr)
		return 1
	}

	fmt.Fprintln(a.stdout, value)
	return 0
}
