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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sabdkosh/search"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the dictionary",
		ArgsUsage: "QUERY",
		Description: strings.Join([]string{
			"Search words and definitions. Results are listed in order: exact",
			"matches, words starting with the query, words containing the query",
			"and words whose definitions contain the query.",
		}, "\n"),
		Flags: []cli.Flag{
			dataFlag(),
			&cli.IntFlag{
				Name:    "limit",
				Usage:   "print at most `N` results (0 prints all)",
				Aliases: []string{"n"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return fmt.Errorf("%w: missing query", ErrFlagParse)
			}
			query := strings.Join(c.Args().Slice(), " ")

			e, err := setup(c)
			if err != nil {
				return err
			}
			limit := e.cfg.Search.Limit
			if c.IsSet("limit") {
				limit = c.Int("limit")
			}
			if limit < 0 {
				return fmt.Errorf("%w: invalid limit: %d", ErrFlagParse, limit)
			}

			path, err := e.dataPath(c)
			if err != nil {
				return err
			}
			d, err := loadDataset(e, path)
			if err != nil {
				return err
			}

			res := search.Search(d.Records(), query)
			e.log.Debug("search", "query", res.Query, "results", res.Len())

			tbl := table.New("#", "Tier", "Word", "Preview").
				WithWriter(c.App.Writer).
				WithWidthFunc(lipgloss.Width)
			n := res.Len()
			if limit > 0 {
				n = min(n, limit)
			}
			for i, r := range res.Records[:n] {
				tbl.AddRow(i+1, res.TierOf(i), r.Word, r.Preview())
			}
			tbl.Print()

			counts := make([]string, 0, 4)
			for _, t := range []search.Tier{search.Exact, search.Prefix, search.Contains, search.Definition} {
				counts = append(counts, fmt.Sprintf("%s %d", t, res.Counts[t]))
			}
			_, err = fmt.Fprintf(c.App.Writer, "\n%d results (%s)\n", res.Len(), strings.Join(counts, ", "))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}
			return nil
		},
	}
}
