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

	"github.com/urfave/cli/v2"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}

			source := e.cfgPath
			if source == "" {
				source = "defaults"
			}
			if _, err := fmt.Fprintf(c.App.Writer, "# %s\n", source); err != nil {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}
			if err := e.cfg.Encode(c.App.Writer); err != nil {
				return fmt.Errorf("%w: %w", ErrSabdkosh, err)
			}
			return nil
		},
	}
}
