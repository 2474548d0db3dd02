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
	virtv1 "kubevirt.io/api/core/v1"

	"github.com/deckhouse/virtualization-console/pkg/common/object"
	vmutil "github.com/deckhouse/virtualization-console/pkg/common/vm"
)

const (
	Migrating    = virtv1.VirtualMachineStatusMigrating
	Paused       = virtv1.VirtualMachineStatusPaused
	Provisioning = virtv1.VirtualMachineStatusProvisioning
	Running      = virtv1.VirtualMachineStatusRunning
	Starting     = virtv1.VirtualMachineStatusStarting
	Stopped      = virtv1.VirtualMachineStatusStopped
	Stopping     = virtv1.VirtualMachineStatusStopping
	Terminating  = virtv1.VirtualMachineStatusTerminating
	Unknown      = virtv1.VirtualMachineStatusUnknown
)

// Input holds everything enablement rules depend on.
type Input struct {
	Status            virtv1.VirtualMachinePrintableStatus
	Snapshotting      bool
	Restoring         bool
	SingleNodeCluster bool
	LiveMigratable    bool
	MigrationPresent  bool
	MigrationDeleting bool
	HasSSHSecret      bool
}

func NewInput(vm *virtv1.VirtualMachine, vmim *virtv1.VirtualMachineInstanceMigration, isSingleNodeCluster bool) Input {
	return Input{
		Status:            vmutil.PrintableStatus(vm),
		Snapshotting:      vmutil.IsSnapshotting(vm),
		Restoring:         vmutil.IsRestoring(vm),
		SingleNodeCluster: isSingleNodeCluster,
		LiveMigratable:    vmutil.IsLiveMigratable(vm, isSingleNodeCluster),
		MigrationPresent:  vmim != nil,
		MigrationDeleting: vmim != nil && object.IsTerminating(vmim),
		HasSSHSecret:      vmutil.SSHSecretName(vm) != "",
	}
}

type statusSet map[virtv1.VirtualMachinePrintableStatus]struct{}

func newStatusSet(statuses ...virtv1.VirtualMachinePrintableStatus) statusSet {
	set := make(statusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func (s statusSet) has(status virtv1.VirtualMachinePrintableStatus) bool {
	_, ok := s[status]
	return ok
}

type rule struct {
	// disabledIn lists statuses that disable the action.
	disabledIn statusSet
	// onlyIn is the single status that enables the action, if set.
	onlyIn virtv1.VirtualMachinePrintableStatus
	// blockedByVolumeOperations disables the action while a snapshot or a restore is in progress.
	blockedByVolumeOperations bool
	disabled                  func(in Input) bool
}

var rules = map[ID]rule{
	Start: {
		disabledIn:                newStatusSet(Migrating, Provisioning, Running, Starting, Stopping, Terminating, Unknown),
		blockedByVolumeOperations: true,
	},
	Stop: {
		disabledIn:                newStatusSet(Provisioning, Stopped, Stopping, Terminating, Unknown),
		blockedByVolumeOperations: true,
	},
	ForceStop: {
		disabledIn: newStatusSet(Migrating, Provisioning, Stopped, Unknown),
	},
	Pause: {
		onlyIn:                    Running,
		blockedByVolumeOperations: true,
	},
	Unpause: {
		onlyIn: Paused,
	},
	Restart: {
		disabledIn:                newStatusSet(Migrating, Provisioning, Stopped, Stopping, Terminating, Unknown),
		blockedByVolumeOperations: true,
	},
	MigrateCompute: {
		disabled: func(in Input) bool {
			return !in.LiveMigratable
		},
	},
	CancelMigrationCompute: {
		disabled: func(in Input) bool {
			return in.SingleNodeCluster || !in.MigrationPresent || in.MigrationDeleting
		},
	},
	CopySSHCommand: {
		disabled: func(in Input) bool {
			return !in.HasSSHSecret
		},
	},
}

// IsDisabled reports whether the action must not be invoked for the input.
// Actions without a rule and statuses outside the known set are enabled unless a rule says otherwise.
func IsDisabled(id ID, in Input) bool {
	r, ok := rules[id]
	if !ok {
		return false
	}

	switch {
	case r.disabledIn.has(in.Status):
		return true
	case r.onlyIn != "" && in.Status != r.onlyIn:
		return true
	case r.blockedByVolumeOperations && (in.Snapshotting || in.Restoring):
		return true
	case r.disabled != nil && r.disabled(in):
		return true
	default:
		return false
	}
}
