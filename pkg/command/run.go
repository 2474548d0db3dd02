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
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deckhouse/virtualization-console/pkg/actions"
)

const runExample = `  # Start the virtual machine 'myvm':
  vm-console run start myvm -n mynamespace
  # Take a snapshot:
  vm-console run snapshot myvm --snapshot-name myvm-before-upgrade
  # Replace labels:
  vm-console run edit-labels myvm --label tier=db --label env=prod
  # Print the SSH command:
  vm-console run copy-ssh myvm --ssh-user cloud`

type runOptions struct {
	cloneName    string
	snapshotName string
	labels       []string
	annotations  []string
	sshUser      string
	fromURL      string
}

func newRunCommand() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:     "run (Action) (VirtualMachine)",
		Short:   "Run an action on a virtual machine.",
		Example: runExample,
		Args:    cobra.ExactArgs(2),
		RunE:    o.Run,
	}

	flags := cmd.Flags()
	flags.StringVar(&o.cloneName, "clone-name", "", "Name of the virtual machine created by clone.")
	flags.StringVar(&o.snapshotName, "snapshot-name", "", "Name of the snapshot.")
	flags.StringArrayVar(&o.labels, "label", nil, "Label in key=value form for edit-labels. Repeat for several labels.")
	flags.StringArrayVar(&o.annotations, "annotation", nil, "Annotation in key=value form for edit-annotations. Repeat for several annotations.")
	flags.StringVar(&o.sshUser, "ssh-user", "", "User name for copy-ssh.")
	flags.StringVar(&o.fromURL, "from-url", "", "Console page to return to after migrate-storage. Defaults to the virtual machine page.")
	return cmd
}

func (o *runOptions) Run(cmd *cobra.Command, args []string) error {
	id, err := actions.ParseID(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}
	name := args[1]

	params, err := o.params()
	if err != nil {
		return err
	}
	params.Output = cmd.OutOrStdout()

	clients, err := clientsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	err = newConsole(clients).Run(cmd.Context(), clients.Namespace, name, id, params)
	if err != nil {
		return err
	}

	switch id {
	case actions.CopySSHCommand, actions.MigrateStorage:
	default:
		cmd.Printf("%s %s %s\n", color.GreenString("✓"), id.Alias(), name)
	}
	return nil
}

func (o *runOptions) params() (actions.Params, error) {
	labels, err := parseKeyValues(o.labels)
	if err != nil {
		return actions.Params{}, fmt.Errorf("invalid label: %w", err)
	}

	annotations, err := parseKeyValues(o.annotations)
	if err != nil {
		return actions.Params{}, fmt.Errorf("invalid annotation: %w", err)
	}

	return actions.Params{
		CloneName:    o.cloneName,
		SnapshotName: o.snapshotName,
		Labels:       labels,
		Annotations:  annotations,
		SSHUser:      o.sshUser,
		FromURL:      o.fromURL,
	}, nil
}

func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	res := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q is not in key=value form", pair)
		}
		res[key] = value
	}
	return res, nil
}
