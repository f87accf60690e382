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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-sabdkosh/internal/logger"
	"github.com/ianlewis/go-sabdkosh/internal/viewer"
	"github.com/ianlewis/go-sabdkosh/search"
)

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:  "view",
		Usage: "Browse the dictionary interactively",
		Flags: []cli.Flag{
			dataFlag(),
			&cli.StringFlag{
				Name:  "debug-log",
				Usage: "write search debug logs to `FILE`",
			},
		},
		Action: func(c *cli.Context) error {
			out := c.App.Writer
			if !isTerminal(out) {
				return ErrNotTerminal
			}

			e, err := setup(c)
			if err != nil {
				return err
			}
			path, err := e.dataPath(c)
			if err != nil {
				return err
			}
			d, err := loadDataset(e, path)
			if err != nil {
				return err
			}

			opts := &search.WorkerOptions{
				QueueSize: search.DefaultWorkerOptions.QueueSize,
				CacheSize: e.cfg.Search.CacheSize,
			}
			if p := c.String("debug-log"); p != "" {
				f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrSabdkosh, err)
				}
				defer f.Close()
				opts.Logger = logger.NewWithConfig(f, "worker", log.DebugLevel, true)
			}
			w, err := search.NewWorker(d.Records(), opts)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}

			ctx, cancel := context.WithCancel(c.Context)
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			styles := viewer.DefaultStyles()
			if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
				styles = viewer.NoColorStyles()
			}
			m := viewer.New(ctx, d, w, &viewer.Config{
				Options: &viewer.Options{
					ItemHeight: e.cfg.View.ItemHeight,
					Buffer:     e.cfg.View.Buffer,
				},
				Debounce: e.cfg.View.Debounce.Duration,
				Styles:   &styles,
				Title:    "शब्दकोश",
			})

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(out),
			)
			g.Go(func() error {
				return w.Run(ctx)
			})
			g.Go(func() error {
				// Quitting the viewer stops the worker.
				defer cancel()
				_, err := p.Run()
				return err
			})
			err = g.Wait()
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}
			return nil
		},
	}
}

// isTerminal returns true if w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
