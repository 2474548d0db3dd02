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

	virtv1 "kubevirt.io/api/core/v1"
)

//go:generate go tool moq -rm -out mock.go . Operator

// Operator performs the single cluster mutation behind each action.
type Operator interface {
	Start(ctx context.Context, vm *virtv1.VirtualMachine) error
	Stop(ctx context.Context, vm *virtv1.VirtualMachine, gracePeriod *int64) error
	Restart(ctx context.Context, vm *virtv1.VirtualMachine) error
	Pause(ctx context.Context, vm *virtv1.VirtualMachine) error
	Unpause(ctx context.Context, vm *virtv1.VirtualMachine) error
	Migrate(ctx context.Context, vm *virtv1.VirtualMachine) error
	CancelMigration(ctx context.Context, vmim *virtv1.VirtualMachineInstanceMigration) error
	Clone(ctx context.Context, vm *virtv1.VirtualMachine, targetName string) error
	Snapshot(ctx context.Context, vm *virtv1.VirtualMachine, snapshotName string) error
	Delete(ctx context.Context, vm *virtv1.VirtualMachine) error
	ReplaceLabels(ctx context.Context, vm *virtv1.VirtualMachine, labels map[string]string) error
	ReplaceAnnotations(ctx context.Context, vm *virtv1.VirtualMachine, annotations map[string]string) error
}
