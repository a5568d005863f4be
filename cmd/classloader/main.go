// Package main provides the CLI entrypoint for classloader.
//
// classloader answers where a legacy PHP application would load a class
// from, given a YAML description of the installation:
//   - resolve: list candidate paths per class
//   - explain: show the branch taken, which candidates exist, and diagnostics
//   - load: require the first resolvable candidate and report it
//   - check: validate the config file and the pinned class paths
//   - config dump: print the config with defaults applied
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/common/version"
	"github.com/spf13/afero"
	"gopkg.in/alecthomas/kingpin.v2"

	"classloader/internal/config"
)

var cfg struct {
	verbose    bool
	configFile string
	expandEnv  bool
	resolve    struct {
		classes []string
		dump    bool
	}
	explain struct {
		class string
	}
	load struct {
		classes []string
	}
	configDump struct {
		output string
	}
}

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
	osFs          = afero.NewOsFs()
)

func main() {
	ctx := withOutput(context.Background(), os.Stdout)

	app := kingpin.New(filepath.Base(os.Args[0]), "Resolve legacy PHP class names to the files they load from.").UsageWriter(os.Stdout)
	app.Version(version.Print("classloader"))
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("false").BoolVar(&cfg.verbose)
	app.Flag("config", "Path to the installation config file.").Short('c').Default(config.DefaultFile).StringVar(&cfg.configFile)
	app.Flag("config.expand-env", "Expands ${var} in config according to the values of the environment variables.").Default("false").BoolVar(&cfg.expandEnv)

	resolveCmd := app.Command("resolve", "List candidate paths for classes.")
	resolveCmd.Arg("class", "Class identifiers to resolve.").Required().StringsVar(&cfg.resolve.classes)
	resolveCmd.Flag("dump", "Dump the full resolution of each class.").Default("false").BoolVar(&cfg.resolve.dump)

	explainCmd := app.Command("explain", "Show how a class resolves, which candidates exist, and why.")
	explainCmd.Arg("class", "Class identifier to explain.").Required().StringVar(&cfg.explain.class)

	loadCmd := app.Command("load", "Require the first resolvable candidate of each class.")
	loadCmd.Arg("class", "Class identifiers to load.").Required().StringsVar(&cfg.load.classes)

	checkCmd := app.Command("check", "Validate the config file.")

	configCmd := app.Command("config", "Inspect the config file.")
	configDumpCmd := configCmd.Command("dump", "Print the config with defaults applied.")
	configDumpCmd.Flag("output", "Write to this file instead of stdout.").Short('o').StringVar(&cfg.configDump.output)

	// parse command line arguments
	parsedCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// enable verbose logging if requested
	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	f, err := config.LoadFile(osFs, cfg.configFile, cfg.expandEnv)
	if err != nil {
		os.Exit(checkError(err))
	}

	switch parsedCmd {
	case resolveCmd.FullCommand():
		os.Exit(checkError(resolveClasses(ctx, f.Build(osFs, logger), cfg.resolve.classes, cfg.resolve.dump)))
	case explainCmd.FullCommand():
		os.Exit(checkError(explainClass(ctx, f.Build(osFs, logger), cfg.explain.class)))
	case loadCmd.FullCommand():
		os.Exit(checkError(loadClasses(ctx, f.Build(osFs, logger), cfg.load.classes)))
	case checkCmd.FullCommand():
		os.Exit(checkError(checkConfig(ctx, logger, f, f.Build(osFs, logger))))
	case configDumpCmd.FullCommand():
		os.Exit(checkError(dumpConfig(ctx, osFs, f, cfg.configDump.output)))
	default:
		level.Error(logger).Log("msg", "unknown command", "cmd", parsedCmd)
	}
}

func checkError(err error) int {
	switch err {
	case nil:
		return 0
	case errInvalidConfig, errNotLoaded:
		// The details are already printed, so just exit with an error code.
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return 1
}

type contextKey uint8

const (
	contextKeyOutput contextKey = iota
)

func withOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, contextKeyOutput, w)
}

func output(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(contextKeyOutput).(io.Writer); ok {
		return w
	}
	return os.Stdout
}
