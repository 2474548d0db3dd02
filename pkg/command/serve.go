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
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/monitoring/metrics"
	"github.com/deckhouse/virtualization-console/pkg/server"
)

type serveOptions struct {
	root   *rootOptions
	listen string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	o := &serveOptions{root: root}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the actions and export API over HTTP.",
		Args:  cobra.NoArgs,
		RunE:  o.Run,
	}

	cmd.Flags().StringVar(&o.listen, "listen", "", "Address to listen on. Overrides the config.")
	return cmd
}

func (o *serveOptions) Run(cmd *cobra.Command, _ []string) error {
	clients, err := clientsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}

	addr := o.root.cfg.Server.ListenAddress
	if o.listen != "" {
		addr = o.listen
	}

	srv := server.NewServer(
		addr,
		newConsole(clients),
		export.NewSequencer(clients.Client, uploaderSettings(o.root.cfg.Uploader)),
		prometheus.DefaultGatherer,
		slog.Default(),
	)

	return srv.Run(cmd.Context())
}
