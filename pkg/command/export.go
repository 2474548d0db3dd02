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
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"

	"github.com/deckhouse/virtualization-console/pkg/config"
	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

const exportExample = `  # Export the 'rootdisk' volume of 'myvm' to a registry:
  vm-console export myvm --volume rootdisk --destination registry.example.com/vms/myvm:latest \
    --username robot --password secret
  # Wait until the uploader pod finishes:
  vm-console export myvm --volume rootdisk --destination registry.example.com/vms/myvm:latest --wait`

type exportOptions struct {
	root *rootOptions

	volume       string
	destination  string
	username     string
	password     string
	registryName string
	wait         bool
	output       string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	o := &exportOptions{root: root}
	cmd := &cobra.Command{
		Use:     "export (VirtualMachine)",
		Short:   "Export a virtual machine disk to a container registry.",
		Example: exportExample,
		Args:    cobra.ExactArgs(1),
		RunE:    o.Run,
	}

	flags := cmd.Flags()
	flags.StringVar(&o.volume, "volume", "", "Name of the volume to export.")
	flags.StringVar(&o.destination, "destination", "", "Image reference to push the disk to.")
	flags.StringVar(&o.username, "username", "", "Registry user name.")
	flags.StringVar(&o.password, "password", "", "Registry password.")
	flags.StringVar(&o.registryName, "registry-name", "", "Name of the registry. Generated if empty.")
	flags.BoolVar(&o.wait, "wait", false, "Wait for the uploader pod to finish.")
	flags.StringVarP(&o.output, "output", "o", outputTable, "Output format: table, json or yaml.")
	_ = cmd.MarkFlagRequired("volume")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func (o *exportOptions) Run(cmd *cobra.Command, args []string) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	ctx := cmd.Context()
	clients, err := clientsFromContext(ctx)
	if err != nil {
		return err
	}

	vm, err := newConsole(clients).VirtualMachine(ctx, clients.Namespace, args[0])
	if err != nil {
		return err
	}

	sequencer := export.NewSequencer(clients.Client, uploaderSettings(o.root.cfg.Uploader))
	result, err := sequencer.Export(ctx, export.Request{
		VM:           vm,
		VolumeName:   o.volume,
		Destination:  o.destination,
		Username:     o.username,
		Password:     o.password,
		RegistryName: o.registryName,
	})
	if err != nil {
		return err
	}

	if err = printExportResult(cmd.OutOrStdout(), o.output, result); err != nil {
		return err
	}

	if !o.wait {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, o.root.cfg.Uploader.WaitTimeout)
	defer cancel()

	logger.FromContext(ctx).Info("Waiting for the uploader pod", logger.SlogName(result.PodName))
	pod, err := sequencer.Wait(waitCtx, result.Namespace, result.PodName)
	if err != nil {
		return fmt.Errorf("wait for pod %s: %w", result.PodName, err)
	}

	cmd.Printf("%s disk %s pushed to %s\n", color.GreenString("✓"), o.volume, export.GetDestinationFromPod(pod))
	return nil
}

func uploaderSettings(cfg config.UploaderConfig) export.Settings {
	return export.Settings{
		Image:              cfg.Image,
		PullPolicy:         corev1.PullPolicy(cfg.PullPolicy),
		ServiceAccountName: cfg.ServiceAccountName,
		PushTimeout:        cfg.PushTimeout,
	}
}
