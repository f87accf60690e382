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
	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func lettersCommand() *cli.Command {
	return &cli.Command{
		Name:  "letters",
		Usage: "List the first letters of all words",
		Flags: []cli.Flag{
			dataFlag(),
		},
		Action: func(c *cli.Context) error {
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

			records := d.Records()
			letters := d.Letters()

			tbl := table.New("Letter", "Index", "First Word").
				WithWriter(c.App.Writer).
				WithWidthFunc(lipgloss.Width)
			for _, l := range letters.Letters() {
				pos, _ := letters.Position(l)
				tbl.AddRow(l, pos, records[pos].Word)
			}
			tbl.Print()
			return nil
		},
	}
}
