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
	"github.com/spf13/cobra"

	"github.com/deckhouse/virtualization-console/pkg/actions"
)

const actionsExample = `  # List actions of the virtual machine 'myvm':
  vm-console actions myvm -n mynamespace
  # Check permissions of the current user as well:
  vm-console actions myvm --review -o yaml`

type actionsOptions struct {
	output string
	review bool
}

func newActionsCommand() *cobra.Command {
	o := &actionsOptions{}
	cmd := &cobra.Command{
		Use:     "actions (VirtualMachine)",
		Short:   "List actions available for a virtual machine.",
		Example: actionsExample,
		Args:    cobra.ExactArgs(1),
		RunE:    o.Run,
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", outputTable, "Output format: table, json or yaml.")
	cmd.Flags().BoolVar(&o.review, "review", false, "Check whether the current user is allowed to run each action.")
	return cmd
}

func (o *actionsOptions) Run(cmd *cobra.Command, args []string) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	clients, err := clientsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	descriptors, err := newConsole(clients).Descriptors(cmd.Context(), clients.Namespace, args[0], actions.Params{}, o.review)
	if err != nil {
		return err
	}

	return printDescriptors(cmd.OutOrStdout(), o.output, descriptors)
}
