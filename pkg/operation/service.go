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

package operation

import (
	"context"
	"errors"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	clonev1alpha1 "kubevirt.io/api/clone/v1alpha1"
	virtv1 "kubevirt.io/api/core/v1"
	snapshotv1alpha1 "kubevirt.io/api/snapshot/v1alpha1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/common/annotations"
	"github.com/deckhouse/virtualization-console/pkg/common/patch"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

var (
	ErrEmptyVirtualMachine = errors.New("virtual machine is not specified")
	ErrEmptyMigration      = errors.New("migration is not specified")
)

//go:generate go tool moq -rm -out mock.go . Subresources

// Subresources calls KubeVirt subresource endpoints.
type Subresources interface {
	Start(ctx context.Context, namespace, name string) error
	Stop(ctx context.Context, namespace, name string, gracePeriod *int64) error
	Restart(ctx context.Context, namespace, name string) error
	Pause(ctx context.Context, namespace, name string) error
	Unpause(ctx context.Context, namespace, name string) error
}

var _ actions.Operator = (*Service)(nil)

// Service performs virtual machine actions against the cluster.
type Service struct {
	client       client.Client
	subresources Subresources
}

func NewService(client client.Client, subresources Subresources) *Service {
	return &Service{
		client:       client,
		subresources: subresources,
	}
}

func (s Service) Start(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.subresources.Start(ctx, vm.GetNamespace(), vm.GetName())
}

func (s Service) Stop(ctx context.Context, vm *virtv1.VirtualMachine, gracePeriod *int64) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.subresources.Stop(ctx, vm.GetNamespace(), vm.GetName(), gracePeriod)
}

func (s Service) Restart(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.subresources.Restart(ctx, vm.GetNamespace(), vm.GetName())
}

// Pause and Unpause address the running instance, which shares the VM name.
func (s Service) Pause(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.subresources.Pause(ctx, vm.GetNamespace(), vm.GetName())
}

func (s Service) Unpause(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.subresources.Unpause(ctx, vm.GetNamespace(), vm.GetName())
}

func (s Service) Migrate(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}

	vmim := &virtv1.VirtualMachineInstanceMigration{
		TypeMeta: metav1.TypeMeta{
			APIVersion: virtv1.SchemeGroupVersion.String(),
			Kind:       "VirtualMachineInstanceMigration",
		},
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: vm.GetName() + "-migration-",
			Namespace:    vm.GetNamespace(),
			Annotations: map[string]string{
				annotations.AnnCreatedBy: annotations.CreatedByValue,
			},
		},
		Spec: virtv1.VirtualMachineInstanceMigrationSpec{
			VMIName: vm.GetName(),
		},
	}

	err := s.client.Create(ctx, vmim)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Migration created", logger.SlogName(vmim.GetName()), logger.SlogNamespace(vmim.GetNamespace()))
	return nil
}

func (s Service) CancelMigration(ctx context.Context, vmim *virtv1.VirtualMachineInstanceMigration) error {
	if vmim == nil {
		return ErrEmptyMigration
	}
	return s.client.Delete(ctx, vmim)
}

func (s Service) Clone(ctx context.Context, vm *virtv1.VirtualMachine, targetName string) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}

	vmc := &clonev1alpha1.VirtualMachineClone{
		TypeMeta: metav1.TypeMeta{
			APIVersion: clonev1alpha1.SchemeGroupVersion.String(),
			Kind:       "VirtualMachineClone",
		},
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: vm.GetName() + "-clone-",
			Namespace:    vm.GetNamespace(),
			Annotations: map[string]string{
				annotations.AnnCreatedBy: annotations.CreatedByValue,
			},
		},
		Spec: clonev1alpha1.VirtualMachineCloneSpec{
			Source: virtualMachineRef(vm.GetName()),
			Target: virtualMachineRef(targetName),
		},
	}

	return s.client.Create(ctx, vmc)
}

func (s Service) Snapshot(ctx context.Context, vm *virtv1.VirtualMachine, snapshotName string) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}

	vms := &snapshotv1alpha1.VirtualMachineSnapshot{
		TypeMeta: metav1.TypeMeta{
			APIVersion: snapshotv1alpha1.SchemeGroupVersion.String(),
			Kind:       "VirtualMachineSnapshot",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      snapshotName,
			Namespace: vm.GetNamespace(),
			Annotations: map[string]string{
				annotations.AnnCreatedBy: annotations.CreatedByValue,
			},
		},
		Spec: snapshotv1alpha1.VirtualMachineSnapshotSpec{
			Source: *virtualMachineRef(vm.GetName()),
		},
	}

	return s.client.Create(ctx, vms)
}

func (s Service) Delete(ctx context.Context, vm *virtv1.VirtualMachine) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.client.Delete(ctx, vm)
}

func (s Service) ReplaceLabels(ctx context.Context, vm *virtv1.VirtualMachine, labels map[string]string) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.replaceMap(ctx, vm, "/metadata/labels", vm.GetLabels(), labels)
}

func (s Service) ReplaceAnnotations(ctx context.Context, vm *virtv1.VirtualMachine, annotations map[string]string) error {
	if vm == nil {
		return ErrEmptyVirtualMachine
	}
	return s.replaceMap(ctx, vm, "/metadata/annotations", vm.GetAnnotations(), annotations)
}

// replaceMap sends a JSON patch that makes the map at path equal to desired.
// Replace fails on a missing member, so absent maps are added and empty ones removed.
func (s Service) replaceMap(ctx context.Context, vm *virtv1.VirtualMachine, path string, current, desired map[string]string) error {
	jp := patch.NewJSONPatch()
	switch {
	case len(desired) == 0 && current == nil:
	case len(desired) == 0:
		jp.Append(patch.WithRemove(path))
	case current == nil:
		jp.Append(patch.WithAdd(path, desired))
	default:
		jp.Append(patch.WithReplace(path, desired))
	}

	data, err := jp.Bytes()
	if err != nil {
		return err
	}

	return s.client.Patch(ctx, vm, client.RawPatch(types.JSONPatchType, data))
}

func virtualMachineRef(name string) *corev1.TypedLocalObjectReference {
	return &corev1.TypedLocalObjectReference{
		APIGroup: ptr.To(virtv1.SchemeGroupVersion.Group),
		Kind:     "VirtualMachine",
		Name:     name,
	}
}
