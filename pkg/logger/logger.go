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
	"strings"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/deckhouse/deckhouse/pkg/log"
)

const DefaultLogLevel = log.LevelInfo

// DefaultLogOutput is stderr: stdout is reserved for command results.
var DefaultLogOutput io.Writer = os.Stderr

var levels = map[string]log.Level{
	"error": log.LevelError,
	"warn":  log.LevelWarn,
	"info":  log.LevelInfo,
	"debug": log.LevelDebug,
	"trace": log.LevelTrace,
}

var outputs = map[string]io.Writer{
	"stdout":  os.Stdout,
	"stderr":  os.Stderr,
	"discard": io.Discard,
}

// NewLogger builds the console logger. Unknown level or output names fall back to the defaults.
func NewLogger(level, output string, debugVerbosity int) *log.Logger {
	return log.NewLogger(log.Options{
		Level:  detectLogLevel(level, debugVerbosity),
		Output: detectLogOutput(output),
	})
}

func detectLogLevel(level string, debugVerbosity int) slog.Level {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return DefaultLogLevel.Level()
	}

	// Debug verbosity lowers the level below slog.LevelDebug for klog-style V levels.
	if lvl == log.LevelDebug && debugVerbosity != 0 {
		return slog.Level(-debugVerbosity)
	}

	return lvl.Level()
}

func detectLogOutput(output string) io.Writer {
	if w, ok := outputs[strings.ToLower(output)]; ok {
		return w
	}
	return DefaultLogOutput
}

func SetDefaultLogger(l *log.Logger) {
	slog.SetDefault(slog.New(l.Handler()))
	log.SetDefault(l)
	fromSlog := logr.FromSlogHandler(l.Handler())
	logf.SetLogger(fromSlog)
	klog.SetLogger(fromSlog)
}
