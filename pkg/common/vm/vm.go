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
	corev1 "k8s.io/api/core/v1"
	virtv1 "kubevirt.io/api/core/v1"
)

func PrintableStatus(vm *virtv1.VirtualMachine) virtv1.VirtualMachinePrintableStatus {
	if vm == nil {
		return ""
	}
	return vm.Status.PrintableStatus
}

// IsSnapshotting reports whether a VirtualMachineSnapshot is being taken.
func IsSnapshotting(vm *virtv1.VirtualMachine) bool {
	return vm != nil && vm.Status.SnapshotInProgress != nil
}

// IsRestoring reports whether a VirtualMachineRestore is in progress.
func IsRestoring(vm *virtv1.VirtualMachine) bool {
	return vm != nil && vm.Status.RestoreInProgress != nil
}

// IsLiveMigratable reports whether a compute migration can be requested:
// the cluster has more than one node, the VM is Running and KubeVirt reports it as LiveMigratable.
func IsLiveMigratable(vm *virtv1.VirtualMachine, isSingleNodeCluster bool) bool {
	if vm == nil || isSingleNodeCluster {
		return false
	}
	if vm.Status.PrintableStatus != virtv1.VirtualMachineStatusRunning {
		return false
	}
	for _, cond := range vm.Status.Conditions {
		if string(cond.Type) == string(virtv1.VirtualMachineInstanceIsMigratable) {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}

// SSHSecretName returns the name of the first Secret with SSH public keys in the VM access credentials.
func SSHSecretName(vm *virtv1.VirtualMachine) string {
	if vm == nil || vm.Spec.Template == nil {
		return ""
	}
	for _, cred := range vm.Spec.Template.Spec.AccessCredentials {
		if cred.SSHPublicKey == nil || cred.SSHPublicKey.Source.Secret == nil {
			continue
		}
		if name := cred.SSHPublicKey.Source.Secret.SecretName; name != "" {
			return name
		}
	}
	return ""
}

// SSHCommand returns the virtctl command to open an SSH session to the VM.
func SSHCommand(vm *virtv1.VirtualMachine, user string) string {
	if vm == nil {
		return ""
	}
	target := "vm/" + vm.GetName()
	if user != "" {
		target = user + "@" + target
	}
	return "virtctl -n " + vm.GetNamespace() + " ssh " + target
}

// VolumeNames returns names of all volumes declared in the VM template.
func VolumeNames(vm *virtv1.VirtualMachine) []string {
	if vm == nil || vm.Spec.Template == nil {
		return nil
	}
	names := make([]string, 0, len(vm.Spec.Template.Spec.Volumes))
	for _, v := range vm.Spec.Template.Spec.Volumes {
		names = append(names, v.Name)
	}
	return names
}
