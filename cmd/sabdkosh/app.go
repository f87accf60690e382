// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-sabdkosh/internal/config"
	"github.com/ianlewis/go-sabdkosh/internal/logger"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrSabdkosh is a parent error for all command errors.
var ErrSabdkosh = errors.New("sabdkosh")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrSabdkosh)

// ErrNotFound indicates that a word is not in the dataset.
var ErrNotFound = fmt.Errorf("%w: not found", ErrSabdkosh)

// ErrNotTerminal indicates that the viewer was started without a terminal.
var ErrNotTerminal = fmt.Errorf("%w: not a terminal", ErrSabdkosh)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `sabdkosh --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// env is the per-invocation environment shared by commands.
type env struct {
	cfg     *config.Config
	cfgPath string
	log     *log.Logger
}

// setup loads the config and creates the logger. Flags override config
// values.
func setup(c *cli.Context) (*env, error) {
	cfg, path, err := config.LoadWithPriority(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSabdkosh, err)
	}

	levelName := cfg.Log.Level
	if c.IsSet("log-level") {
		levelName = c.String("log-level")
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	l := logger.NewWithConfig(c.App.ErrWriter, "sabdkosh", level, false)
	if path != "" {
		l.Debug("loaded config", "path", path)
	}

	return &env{
		cfg:     cfg,
		cfgPath: path,
		log:     l,
	}, nil
}

// dataFlag is accepted both globally and by each command that loads the
// dataset.
func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "data",
		Usage:   "load the dataset from `PATH` (JSON file, StarDict .ifo file, or directory)",
		Aliases: []string{"d"},
	}
}

// dataPath returns the dataset path from the --data flag, the config, or the
// first default location that exists. A command's --data takes precedence
// over the global one.
func (e *env) dataPath(c *cli.Context) (string, error) {
	for _, cc := range c.Lineage() {
		if p := cc.String("data"); p != "" {
			return p, nil
		}
	}
	if e.cfg.Data.Path != "" {
		return e.cfg.Data.Path, nil
	}
	for _, p := range dataLocations() {
		if _, err := os.Stat(p); err == nil {
			e.log.Debug("using default data location", "path", p)
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no dataset found; use --data", ErrSabdkosh)
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, versionInfo.GitVersion)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSabdkosh, err)
	}
	_, err = fmt.Fprintln(c.App.Writer, versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSabdkosh, err)
	}
	return nil
}

func newSabdkoshApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search and browse a Nepali dictionary.",
		Description: strings.Join([]string{
			"Nepali dictionary viewer written in Go.",
			"http://github.com/ianlewis/go-sabdkosh",
		}, "\n"),
		Flags: []cli.Flag{
			dataFlag(),
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read config from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			searchCommand(),
			showCommand(),
			lettersCommand(),
			viewCommand(),
			configCommand(),
		},
	}
}
