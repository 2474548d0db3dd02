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

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"k8s.io/component-base/logs"

	"github.com/deckhouse/virtualization-console/pkg/config"
	"github.com/deckhouse/virtualization-console/pkg/kubeclient"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

type rootOptions struct {
	configPath     string
	logLevel       string
	logOutput      string
	debugVerbosity int

	cfg config.Config
}

func NewCommand(programName string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         programName + " lists and runs virtual machine actions and exports disks to registries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.complete(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to the config file. Environment variables override its values.")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: error, warn, info, debug or trace.")
	flags.StringVar(&opts.logOutput, "log-output", "", "Log output: stdout, stderr or discard.")
	flags.IntVar(&opts.debugVerbosity, "log-debug-verbosity", 0, "Log debug verbosity.")
	logs.AddFlags(flags)

	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(
		newActionsCommand(),
		newRunCommand(),
		newExportCommand(opts),
		newServeCommand(opts),
	)

	// Subcommands inherit the root context on execution.
	rootCmd.SetContext(newClientConfigContext(context.Background(), kubeclient.DefaultClientConfig(flags)))

	return rootCmd
}

// complete loads the config and sets up logging. Flags win over the config.
func (o *rootOptions) complete(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-output") {
		cfg.Log.Output = o.logOutput
	}
	if flags.Changed("log-debug-verbosity") {
		cfg.Log.DebugVerbosity = o.debugVerbosity
	}
	o.cfg = cfg

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Output, cfg.Log.DebugVerbosity)
	logger.SetDefaultLogger(log)

	cmd.SetContext(logger.ToContext(cmd.Context(), slog.Default().With(logger.SlogCommand(cmd.Name()))))

	return nil
}

func Execute(programName string) {
	cmd := NewCommand(programName)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(cmd.ErrOrStderr(), strings.TrimSpace(err.Error()))
		}
		os.Exit(1)
	}
}
