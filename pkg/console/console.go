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

package console

import (
	"context"
	"errors"
	"log/slog"

	"k8s.io/apimachinery/pkg/types"
	virtv1 "kubevirt.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/common/object"
	"github.com/deckhouse/virtualization-console/pkg/logger"
	"github.com/deckhouse/virtualization-console/pkg/topology"
)

var ErrVirtualMachineNotFound = errors.New("virtual machine not found")

//go:generate go tool moq -rm -out mock.go . Reviewer

type Reviewer interface {
	Allowed(ctx context.Context, review accessreview.Review) (bool, error)
}

// Console builds the action menu of virtual machines from the cluster state.
type Console struct {
	client   client.Client
	operator actions.Operator
	reviewer Reviewer
}

func New(client client.Client, operator actions.Operator, reviewer Reviewer) *Console {
	return &Console{
		client:   client,
		operator: operator,
		reviewer: reviewer,
	}
}

type target struct {
	vm         *virtv1.VirtualMachine
	vmim       *virtv1.VirtualMachineInstanceMigration
	singleNode bool
}

func (c *Console) resolve(ctx context.Context, namespace, name string) (*target, error) {
	vm, err := object.FetchObject(ctx, types.NamespacedName{Namespace: namespace, Name: name}, c.client, &virtv1.VirtualMachine{})
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, ErrVirtualMachineNotFound
	}

	vmim, err := FindMigration(ctx, c.client, vm)
	if err != nil {
		return nil, err
	}

	singleNode, err := topology.IsSingleNodeCluster(ctx, c.client)
	if err != nil {
		return nil, err
	}

	return &target{vm: vm, vmim: vmim, singleNode: singleNode}, nil
}

// Descriptors returns the action menu of the VM. With review set, every descriptor gets the Allowed flag.
func (c *Console) Descriptors(ctx context.Context, namespace, name string, params actions.Params, review bool) ([]actions.Descriptor, error) {
	t, err := c.resolve(ctx, namespace, name)
	if err != nil {
		return nil, err
	}

	descriptors := actions.NewFactory(c.operator, t.singleNode).Build(t.vm, t.vmim, params)

	if review {
		for i := range descriptors {
			allowed, err := c.reviewer.Allowed(ctx, descriptors[i].AccessReview)
			if err != nil {
				return nil, err
			}
			descriptors[i].Allowed = &allowed
		}
	}

	return descriptors, nil
}

// Run builds a single action for the VM and invokes it.
func (c *Console) Run(ctx context.Context, namespace, name string, id actions.ID, params actions.Params) error {
	t, err := c.resolve(ctx, namespace, name)
	if err != nil {
		return err
	}

	d, err := actions.NewFactory(c.operator, t.singleNode).Descriptor(id, t.vm, t.vmim, params)
	if err != nil {
		return err
	}

	ctx = logger.ToContext(ctx, logger.FromContext(ctx).With(logger.SlogName(name), logger.SlogNamespace(namespace)))

	return actions.Invoke(ctx, d)
}

// VirtualMachine returns the VM or ErrVirtualMachineNotFound.
func (c *Console) VirtualMachine(ctx context.Context, namespace, name string) (*virtv1.VirtualMachine, error) {
	vm, err := object.FetchObject(ctx, types.NamespacedName{Namespace: namespace, Name: name}, c.client, &virtv1.VirtualMachine{})
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, ErrVirtualMachineNotFound
	}
	return vm, nil
}

// FindMigration returns the unfinished migration of the VM instance, if any.
func FindMigration(ctx context.Context, cl client.Client, vm *virtv1.VirtualMachine) (*virtv1.VirtualMachineInstanceMigration, error) {
	var vmims virtv1.VirtualMachineInstanceMigrationList
	err := cl.List(ctx, &vmims, client.InNamespace(vm.GetNamespace()))
	if err != nil {
		return nil, err
	}

	var found *virtv1.VirtualMachineInstanceMigration
	for i := range vmims.Items {
		vmim := &vmims.Items[i]
		if vmim.Spec.VMIName != vm.GetName() || isMigrationFinished(vmim) {
			continue
		}
		if found != nil {
			logger.FromContext(ctx).Warn("Found more than one unfinished migration",
				logger.SlogName(vm.GetName()),
				slog.String("migration", vmim.GetName()),
			)
			continue
		}
		found = vmim
	}

	return found, nil
}

func isMigrationFinished(vmim *virtv1.VirtualMachineInstanceMigration) bool {
	switch vmim.Status.Phase {
	case virtv1.MigrationSucceeded, virtv1.MigrationFailed:
		return true
	default:
		return false
	}
}
