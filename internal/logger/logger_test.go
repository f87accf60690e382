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

package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithConfig(&buf, "sabdkosh", log.WarnLevel, false)

	l.Info("hidden")
	l.Warn("shown", "records", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	for _, want := range []string{"sabdkosh", "shown", "records=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if level, err := ParseLevel("debug"); err != nil || level != log.DebugLevel {
		t.Errorf("ParseLevel(debug): got %v, %v", level, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(loud): want error")
	}
}
