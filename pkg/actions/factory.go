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

package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"k8s.io/utils/ptr"
	clonev1alpha1 "kubevirt.io/api/clone/v1alpha1"
	virtv1 "kubevirt.io/api/core/v1"
	snapshotv1alpha1 "kubevirt.io/api/snapshot/v1alpha1"

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
	"github.com/deckhouse/virtualization-console/pkg/common/object"
	vmutil "github.com/deckhouse/virtualization-console/pkg/common/vm"
)

var (
	virtualMachinesGVR = virtv1.SchemeGroupVersion.WithResource("virtualmachines")
	migrationsGVR      = virtv1.SchemeGroupVersion.WithResource("virtualmachineinstancemigrations")
	clonesGVR          = clonev1alpha1.SchemeGroupVersion.WithResource("virtualmachineclones")
	snapshotsGVR       = snapshotv1alpha1.SchemeGroupVersion.WithResource("virtualmachinesnapshots")
)

const (
	verbPatch  = "patch"
	verbCreate = "create"
	verbDelete = "delete"
)

// resourceURLTpl is the console URL of a namespaced resource: namespace, group~version~kind, name.
const resourceURLTpl = "/k8s/ns/%s/%s~%s~%s/%s"

// Params carries user input for actions that need it.
type Params struct {
	CloneName    string            `json:"cloneName,omitempty"`
	SnapshotName string            `json:"snapshotName,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
	Annotations  map[string]string `json:"annotations,omitempty"`
	SSHUser      string            `json:"sshUser,omitempty"`
	// FromURL is the console page to return to after the storage migration wizard.
	FromURL string `json:"fromURL,omitempty"`

	// Output receives text produced by copy-ssh and migrate-storage.
	Output io.Writer `json:"-"`
}

var (
	ErrEmptyCloneName    = errors.New("clone name is required")
	ErrEmptySnapshotName = errors.New("snapshot name is required")
)

type Factory struct {
	operator            Operator
	isSingleNodeCluster bool
}

func NewFactory(operator Operator, isSingleNodeCluster bool) *Factory {
	return &Factory{
		operator:            operator,
		isSingleNodeCluster: isSingleNodeCluster,
	}
}

// Build returns descriptors of all actions in menu order.
// The vmim is the migration currently running for the VM, if any.
func (f *Factory) Build(vm *virtv1.VirtualMachine, vmim *virtv1.VirtualMachineInstanceMigration, params Params) []Descriptor {
	descriptors := make([]Descriptor, 0, len(All))
	for _, id := range All {
		d, _ := f.Descriptor(id, vm, vmim, params)
		descriptors = append(descriptors, d)
	}
	return descriptors
}

// Descriptor builds a single action. It returns ErrUnknownAction for ids outside the action set.
func (f *Factory) Descriptor(id ID, vm *virtv1.VirtualMachine, vmim *virtv1.VirtualMachineInstanceMigration, params Params) (Descriptor, error) {
	in := NewInput(vm, vmim, f.isSingleNodeCluster)
	namespace := vm.GetNamespace()

	d := Descriptor{
		ID:       id,
		Disabled: IsDisabled(id, in),
	}

	switch id {
	case Start:
		d.Label = "Start"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Start(ctx, vm)
		}
	case Stop:
		d.Label = "Stop"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Stop(ctx, vm, nil)
		}
	case ForceStop:
		d.Label = "Force stop"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Stop(ctx, vm, ptr.To[int64](0))
		}
	case Restart:
		d.Label = "Restart"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Restart(ctx, vm)
		}
	case Pause:
		d.Label = "Pause"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Pause(ctx, vm)
		}
	case Unpause:
		d.Label = "Unpause"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Unpause(ctx, vm)
		}
	case Clone:
		d.Label = "Clone"
		d.AccessReview = accessreview.ForResource(clonesGVR, namespace, verbCreate)
		d.Invoke = func(ctx context.Context) error {
			if params.CloneName == "" {
				return ErrEmptyCloneName
			}
			return f.operator.Clone(ctx, vm, params.CloneName)
		}
	case Snapshot:
		d.Label = "Take snapshot"
		d.AccessReview = accessreview.ForResource(snapshotsGVR, namespace, verbCreate)
		d.Invoke = func(ctx context.Context) error {
			if params.SnapshotName == "" {
				return ErrEmptySnapshotName
			}
			return f.operator.Snapshot(ctx, vm, params.SnapshotName)
		}
	case MigrateCompute:
		d.Label = "Compute"
		d.Description = "Migrate VirtualMachine to a different Node"
		d.Menu = MenuMigration
		d.AccessReview = accessreview.ForResource(migrationsGVR, namespace, verbCreate)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Migrate(ctx, vm)
		}
	case MigrateStorage:
		d.Label = "Storage"
		d.Description = "Migrate VirtualMachine storage to a different StorageClass"
		d.Menu = MenuMigration
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(_ context.Context) error {
			return writeLine(params.Output, storageMigrationURL(vm, params.FromURL))
		}
	case CancelMigrationCompute:
		d.Label = "Cancel migration"
		d.Menu = MenuMigration
		if vmim != nil && object.IsTerminating(vmim) {
			d.Description = "Canceling ongoing migration"
		}
		d.AccessReview = accessreview.ForResource(migrationsGVR, namespace, verbDelete)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.CancelMigration(ctx, vmim)
		}
	case CopySSHCommand:
		d.Label = "Copy SSH command"
		d.Description = "SSH using virtctl"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(_ context.Context) error {
			return writeLine(params.Output, vmutil.SSHCommand(vm, params.SSHUser))
		}
	case EditLabels:
		d.Label = "Edit labels"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.ReplaceLabels(ctx, vm, params.Labels)
		}
	case EditAnnotations:
		d.Label = "Edit annotations"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbPatch)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.ReplaceAnnotations(ctx, vm, params.Annotations)
		}
	case Delete:
		d.Label = "Delete"
		d.AccessReview = accessreview.ForResource(virtualMachinesGVR, namespace, verbDelete)
		d.Invoke = func(ctx context.Context) error {
			return f.operator.Delete(ctx, vm)
		}
	default:
		return Descriptor{}, ErrUnknownAction
	}

	return d, nil
}

func resourceURL(vm *virtv1.VirtualMachine) string {
	gv := virtv1.SchemeGroupVersion
	return fmt.Sprintf(resourceURLTpl, vm.GetNamespace(), gv.Group, gv.Version, virtv1.VirtualMachineGroupVersionKind.Kind, vm.GetName())
}

// storageMigrationURL returns the wizard route. An empty fromURL points back to the VM page.
func storageMigrationURL(vm *virtv1.VirtualMachine, fromURL string) string {
	if fromURL == "" {
		fromURL = resourceURL(vm)
	}
	return resourceURL(vm) + "/migratestorage?fromURL=" + encodeURIComponent(fromURL)
}

// encodeURIComponent escapes a query value with %20 for spaces, as browsers do.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func writeLine(w io.Writer, s string) error {
	if w == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
