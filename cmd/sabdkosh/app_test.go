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
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-sabdkosh"
	"github.com/ianlewis/go-sabdkosh/internal/logger"
	"github.com/ianlewis/go-sabdkosh/internal/testutil"
)

var testRecords = []*sabdkosh.Record{
	{
		Word: "घर",
		Definitions: []sabdkosh.Definition{
			{Grammar: "ना.", Senses: []string{"बस्ने ठाउँ", "परिवार"}},
		},
	},
	{
		Word: "पानी",
		Definitions: []sabdkosh.Definition{
			{Grammar: "ना.", Senses: []string{"जल"}},
		},
	},
	{
		Word: "घरमा",
		Definitions: []sabdkosh.Definition{
			{Senses: []string{"घरभित्र"}},
		},
	},
	{
		Word: "आकाश",
		Definitions: []sabdkosh.Definition{
			{Grammar: "ना.", Senses: []string{"आसमान"}},
		},
	},
}

func writeJSON(t *testing.T, path string, records []*sabdkosh.Record) {
	t.Helper()

	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
}

func writeGzipJSON(t *testing.T, path string, records []*sabdkosh.Record) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	if err := json.NewEncoder(z).Encode(records); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}

// writeTestFiles writes the test dataset and an empty config file.
func writeTestFiles(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "sabdkosh.json")
	writeJSON(t, dataPath, testRecords)

	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return dataPath, cfgPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newSabdkoshApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"sabdkosh"}, args...))
	return stdout.String(), err
}

func discardLogger() *log.Logger {
	return logger.NewWithConfig(io.Discard, "", log.DebugLevel, false)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	out, err := run(t, "--config", cfgPath, "--data", dataPath, "search", "घर")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, want := range []string{
		"exact",
		"prefix",
		"बस्ने ठाउँ",
		"घरमा",
		"2 results (exact 1, prefix 1, contains 0, definition 0)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("search: missing %q in:\n%s", want, out)
		}
	}
}

func TestDataFlag(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)
	missing := filepath.Join(t.TempDir(), "missing.json")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "search",
			args: []string{"--config", cfgPath, "search", "--data", dataPath, "घर"},
		},
		{
			name: "show",
			args: []string{"--config", cfgPath, "show", "-d", dataPath, "घर"},
		},
		{
			name: "letters",
			args: []string{"--config", cfgPath, "letters", "--data", dataPath},
		},
		{
			name: "command overrides global",
			args: []string{"--config", cfgPath, "--data", missing, "show", "--data", dataPath, "घर"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, test.args...)
			if err != nil {
				t.Fatalf("%v: %v", test.args, err)
			}
			if !strings.Contains(out, "घर") {
				t.Fatalf("%v: missing %q in:\n%s", test.args, "घर", out)
			}
		})
	}
}

func TestSearch_limit(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	out, err := run(t, "--config", cfgPath, "--data", dataPath, "search", "--limit", "1", "घर")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.Contains(out, "घरमा") {
		t.Errorf("search: limited output contains second result:\n%s", out)
	}
	if !strings.Contains(out, "2 results") {
		t.Errorf("search: missing total in:\n%s", out)
	}
}

func TestSearch_config(t *testing.T) {
	t.Parallel()

	dataPath, _ := writeTestFiles(t)

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := "[data]\npath = " + strconv.Quote(dataPath) + "\n\n[search]\nlimit = 1\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", cfgPath, "search", "घर")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.Contains(out, "घरमा") {
		t.Errorf("search: output ignores configured limit:\n%s", out)
	}
}

func TestSearch_missingQuery(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	if _, err := run(t, "--config", cfgPath, "--data", dataPath, "search"); !errors.Is(err, ErrFlagParse) {
		t.Fatalf("search: want %v, got %v", ErrFlagParse, err)
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	out, err := run(t, "--config", cfgPath, "--data", dataPath, "show", "घर")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	want := strings.Join([]string{
		"घर",
		"",
		"ना.",
		"• बस्ने ठाउँ",
		"• परिवार",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("show: want:\n%s\ngot:\n%s", want, out)
	}

	if _, err := run(t, "--config", cfgPath, "--data", dataPath, "show", "गृह"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("show: want %v, got %v", ErrNotFound, err)
	}
}

func TestLetters(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	out, err := run(t, "--config", cfgPath, "--data", dataPath, "letters")
	if err != nil {
		t.Fatalf("letters: %v", err)
	}
	for _, want := range []string{"Letter", "आकाश", "घर", "पानी"} {
		if !strings.Contains(out, want) {
			t.Errorf("letters: missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "घरमा") {
		t.Errorf("letters: listed a word that is not first for its letter:\n%s", out)
	}
}

func TestConfig(t *testing.T) {
	t.Parallel()

	_, cfgPath := writeTestFiles(t)

	out, err := run(t, "--config", cfgPath, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"# " + cfgPath, "item_height = 2", `debounce = "250ms"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config: missing %q in:\n%s", want, out)
		}
	}
}

func TestView_notTerminal(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	if _, err := run(t, "--config", cfgPath, "--data", dataPath, "view"); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("view: want %v, got %v", ErrNotTerminal, err)
	}
}

func TestFlagErrors(t *testing.T) {
	t.Parallel()

	dataPath, cfgPath := writeTestFiles(t)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "unknown flag",
			args: []string{"--bogus"},
		},
		{
			name: "bad log level",
			args: []string{"--config", cfgPath, "--data", dataPath, "--log-level", "loud", "letters"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if _, err := run(t, test.args...); !errors.Is(err, ErrFlagParse) {
				t.Fatalf("run: want %v, got %v", ErrFlagParse, err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if out == "" {
		t.Fatal("--version: no output")
	}
}

func TestOpenDataset_dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "a.json"), testRecords[:2])
	writeGzipJSON(t, filepath.Join(dir, "b.json.gz"), testRecords[2:])
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("not a dataset"), 0o600); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "stardict")
	if err := os.Mkdir(sub, 0o700); err != nil {
		t.Fatal(err)
	}
	testutil.WriteStardict(t, sub, "extra", []testutil.Entry{
		{Word: "गृह", Data: []testutil.Data{{Type: 'm', Data: []byte("घर")}}},
	}, &testutil.Options{DictZip: true})

	d, err := openDataset(dir, discardLogger())
	if err != nil {
		t.Fatalf("openDataset: %v", err)
	}
	if got, want := d.Len(), len(testRecords)+1; got != want {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	if len(d.Lookup("गृह")) != 1 {
		t.Fatal("Lookup: StarDict record missing")
	}
}

func TestOpenDataset_ifo(t *testing.T) {
	t.Parallel()

	path := testutil.WriteStardict(t, t.TempDir(), "extra", []testutil.Entry{
		{Word: "गृह", Data: []testutil.Data{{Type: 'm', Data: []byte("घर")}}},
		{Word: "जल", Data: []testutil.Data{{Type: 'm', Data: []byte("पानी")}}},
	}, nil)

	d, err := openDataset(path, discardLogger())
	if err != nil {
		t.Fatalf("openDataset: %v", err)
	}
	if got, want := d.Len(), 2; got != want {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
}

func TestOpenDataset_errors(t *testing.T) {
	t.Parallel()

	if _, err := openDataset(filepath.Join(t.TempDir(), "missing.json"), discardLogger()); !errors.Is(err, sabdkosh.ErrLoad) {
		t.Errorf("openDataset(missing): want %v, got %v", sabdkosh.ErrLoad, err)
	}
	if _, err := openDataset(t.TempDir(), discardLogger()); !errors.Is(err, errNoRecords) {
		t.Errorf("openDataset(empty dir): want %v, got %v", errNoRecords, err)
	}
}
