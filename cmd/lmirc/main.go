package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/openlmi/lmirc/internal/conf"
	"github.com/openlmi/lmirc/internal/l10n"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version is set during build.
var Version = "0.1.0"

// active is the configuration the running command resolved. Error
// reporting consults it for the Trace option.
var active = conf.Configuration

func main() {
	app := &cli.App{
		Name:    "lmirc",
		Version: Version,
		Usage:   l10n.T("inspect the LMI scripts configuration"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("load `FILE` on top of the default configuration"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: l10n.T("override the configured log level"),
			},
		},
		Commands: []*cli.Command{
			showCommand,
			validateCommand,
			sampleCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

var showCommand = &cli.Command{
	Name:  "show",
	Usage: l10n.T("print the resolved configuration"),
	Action: func(c *cli.Context) error {
		config, err := resolve(c)
		if err != nil {
			return err
		}
		active = config
		setupLogging(c, config)

		if config.Verbosity >= 1 {
			printConsultedFiles(c)
		}
		return renderListing(os.Stdout, config)
	},
}

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     l10n.T("check a configuration file for problems"),
	ArgsUsage: "FILE",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(l10n.T("usage: lmirc validate FILE"), 2)
		}
		path := c.Args().First()

		warnings, err := conf.CheckFile(path)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, l10n.T("warning: %v", w))
		}
		if err != nil {
			// A linter reports every violation, not just the first.
			return cli.Exit(err.Error(), 1)
		}

		if n := uint32(len(warnings)); n > 0 {
			fmt.Println(l10n.TN("%s: valid, %d warning", "%s: valid, %d warnings", n, path, n))
		} else {
			fmt.Println(l10n.T("%s: valid", path))
		}
		return nil
	},
}

var sampleCommand = &cli.Command{
	Name:  "sample",
	Usage: l10n.T("print a commented sample configuration file"),
	Action: func(c *cli.Context) error {
		fmt.Print(conf.Sample())
		return nil
	},
}

func newSource(c *cli.Context) *conf.ConfigSource {
	return &conf.ConfigSource{
		SystemPath: conf.SystemConfigPath(),
		UserPath:   conf.UserConfigPath(),
		Path:       c.String("config"),
	}
}

// resolve re-reads the configuration stack so that problems in the files
// surface as errors instead of the silent fallback the package-level
// Configuration uses.
func resolve(c *cli.Context) (conf.Config, error) {
	return newSource(c).Read()
}

// setupLogging points the ambient logger where the configuration asks:
// level from Log/Level unless --log-level overrides it, and an optional
// append-only file from Log/OutputFile.
func setupLogging(c *cli.Context, config conf.Config) {
	level := config.LogLevel
	if raw := c.String("log-level"); raw != "" {
		parsed, err := conf.ParseLevel(raw)
		if err != nil {
			log.WithError(err).Warn("ignoring --log-level")
		} else {
			level = parsed
		}
	}
	log.SetLevel(level.LogrusLevel())

	if config.LogFile != "" {
		file, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.WithError(err).Warn("cannot open log file, logging to stderr")
			return
		}
		log.SetOutput(file)
	}
}

// printConsultedFiles lists the locations the loader consulted and whether
// each one existed. Written to stderr to keep stdout clean for listings.
func printConsultedFiles(c *cli.Context) {
	source := newSource(c)
	for _, path := range []string{source.SystemPath, source.UserPath, source.Path} {
		if path == "" {
			continue
		}
		state := l10n.T("loaded")
		if _, err := os.Stat(path); err != nil {
			state = l10n.T("missing")
		}
		fmt.Fprintf(os.Stderr, "# %s (%s)\n", path, state)
	}
}

// reportError prints a failure the way the Trace option asks for it: the
// first line only by default, the full error chain when tracing.
func reportError(err error) {
	msg := err.Error()
	if !active.Trace {
		msg, _, _ = strings.Cut(msg, "\n")
	}
	fmt.Fprintln(os.Stderr, l10n.T("error: %v", msg))
}
