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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sabdkosh/internal/viewer"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the definitions of a word",
		ArgsUsage: "WORD",
		Flags: []cli.Flag{
			dataFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}
			word := c.Args().First()

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

			records := d.Lookup(word)
			if len(records) == 0 {
				return fmt.Errorf("%w: %q", ErrNotFound, word)
			}

			lines := viewer.DetailLines(records, viewer.NoColorStyles())
			if _, err := fmt.Fprintln(c.App.Writer, strings.Join(lines, "\n")); err != nil {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}
			return nil
		},
	}
}
