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

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	virtv1 "kubevirt.io/api/core/v1"
)

func newVM(status virtv1.VirtualMachinePrintableStatus, conds ...virtv1.VirtualMachineCondition) *virtv1.VirtualMachine {
	return &virtv1.VirtualMachine{
		ObjectMeta: metav1.ObjectMeta{Name: "vm", Namespace: "ns"},
		Spec: virtv1.VirtualMachineSpec{
			Template: &virtv1.VirtualMachineInstanceTemplateSpec{},
		},
		Status: virtv1.VirtualMachineStatus{
			PrintableStatus: status,
			Conditions:      conds,
		},
	}
}

func liveMigratable(status corev1.ConditionStatus) virtv1.VirtualMachineCondition {
	return virtv1.VirtualMachineCondition{
		Type:   virtv1.VirtualMachineConditionType(virtv1.VirtualMachineInstanceIsMigratable),
		Status: status,
	}
}

func TestIsLiveMigratable(t *testing.T) {
	tests := []struct {
		name       string
		vm         *virtv1.VirtualMachine
		singleNode bool
		expected   bool
	}{
		{name: "nil vm", vm: nil, expected: false},
		{name: "running and migratable", vm: newVM(virtv1.VirtualMachineStatusRunning, liveMigratable(corev1.ConditionTrue)), expected: true},
		{name: "single node cluster", vm: newVM(virtv1.VirtualMachineStatusRunning, liveMigratable(corev1.ConditionTrue)), singleNode: true, expected: false},
		{name: "condition is false", vm: newVM(virtv1.VirtualMachineStatusRunning, liveMigratable(corev1.ConditionFalse)), expected: false},
		{name: "no condition", vm: newVM(virtv1.VirtualMachineStatusRunning), expected: false},
		{name: "stopped", vm: newVM(virtv1.VirtualMachineStatusStopped, liveMigratable(corev1.ConditionTrue)), expected: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, IsLiveMigratable(test.vm, test.singleNode))
		})
	}
}

func TestSnapshottingAndRestoring(t *testing.T) {
	vm := newVM(virtv1.VirtualMachineStatusRunning)
	require.False(t, IsSnapshotting(vm))
	require.False(t, IsRestoring(vm))

	vm.Status.SnapshotInProgress = ptr.To("snap-1")
	vm.Status.RestoreInProgress = ptr.To("restore-1")
	require.True(t, IsSnapshotting(vm))
	require.True(t, IsRestoring(vm))

	require.False(t, IsSnapshotting(nil))
	require.False(t, IsRestoring(nil))
}

func TestSSHSecretNameAndCommand(t *testing.T) {
	vm := newVM(virtv1.VirtualMachineStatusRunning)
	require.Empty(t, SSHSecretName(vm))

	vm.Spec.Template.Spec.AccessCredentials = []virtv1.AccessCredential{
		{
			SSHPublicKey: &virtv1.SSHPublicKeyAccessCredential{
				Source: virtv1.SSHPublicKeyAccessCredentialSource{
					Secret: &virtv1.AccessCredentialSecretSource{SecretName: "authorized-keys"},
				},
			},
		},
	}
	require.Equal(t, "authorized-keys", SSHSecretName(vm))

	require.Equal(t, "virtctl -n ns ssh cloud@vm/vm", SSHCommand(vm, "cloud"))
	require.Equal(t, "virtctl -n ns ssh vm/vm", SSHCommand(vm, ""))
}

func TestVolumeNames(t *testing.T) {
	vm := newVM(virtv1.VirtualMachineStatusStopped)
	vm.Spec.Template.Spec.Volumes = []virtv1.Volume{{Name: "rootdisk"}, {Name: "cloudinit"}}
	require.Equal(t, []string{"rootdisk", "cloudinit"}, VolumeNames(vm))
	require.Nil(t, VolumeNames(nil))
}
