/*
Copyright 2025 Flant JSC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deckhouse/deckhouse/pkg/log"
)

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		verbosity int
		expected  slog.Level
	}{
		{name: "error", level: "error", expected: log.LevelError.Level()},
		{name: "upper case warn", level: "WARN", expected: log.LevelWarn.Level()},
		{name: "plain debug", level: "debug", expected: log.LevelDebug.Level()},
		{name: "debug with verbosity", level: "debug", verbosity: 3, expected: slog.Level(-3)},
		{name: "unknown falls back to info", level: "loud", expected: log.LevelInfo.Level()},
		{name: "empty falls back to info", level: "", expected: log.LevelInfo.Level()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, detectLogLevel(test.level, test.verbosity))
		})
	}
}

func TestDetectLogOutput(t *testing.T) {
	require.Equal(t, io.Writer(os.Stdout), detectLogOutput("stdout"))
	require.Equal(t, io.Writer(io.Discard), detectLogOutput("Discard"))
	require.Equal(t, io.Writer(DefaultLogOutput), detectLogOutput(""))
}
