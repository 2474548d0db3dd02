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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	virtv1 "kubevirt.io/api/core/v1"
)

var statusGated = []ID{Start, Stop, ForceStop, Pause, Unpause, Restart, MigrateCompute, CancelMigrationCompute}

// D marks a disabled cell in the expectation rows.
const (
	D = true
	e = false
)

var _ = Describe("IsDisabled", func() {
	DescribeTable("status gated actions",
		func(status virtv1.VirtualMachinePrintableStatus, expected []bool) {
			vm := newVM(status, withLiveMigratable())
			in := NewInput(vm, newMigration(false), false)

			Expect(expected).To(HaveLen(len(statusGated)))
			for i, id := range statusGated {
				Expect(IsDisabled(id, in)).To(Equal(expected[i]), "action %s in status %s", id, status)
			}
		},
		//                                     start stop force pause unpause restart migrate cancel
		Entry("Migrating", Migrating, []bool{D, e, D, D, D, D, D, e}),
		Entry("Paused", Paused, []bool{e, e, e, D, e, e, D, e}),
		Entry("Provisioning", Provisioning, []bool{D, D, D, D, D, D, D, e}),
		Entry("Running", Running, []bool{D, e, e, e, D, e, e, e}),
		Entry("Starting", Starting, []bool{D, e, e, D, D, e, D, e}),
		Entry("Stopped", Stopped, []bool{e, D, D, D, D, D, D, e}),
		Entry("Stopping", Stopping, []bool{D, D, e, D, D, D, D, e}),
		Entry("Terminating", Terminating, []bool{D, D, e, D, D, D, D, e}),
		Entry("Unknown", Unknown, []bool{D, D, D, D, D, D, D, e}),
	)

	DescribeTable("volume operations block start, stop, pause and restart in any status",
		func(opt vmOption) {
			statuses := []virtv1.VirtualMachinePrintableStatus{
				Migrating, Paused, Provisioning, Running, Starting, Stopped, Stopping, Terminating, Unknown,
			}
			for _, status := range statuses {
				in := NewInput(newVM(status, opt), nil, false)
				for _, id := range []ID{Start, Stop, Pause, Restart} {
					Expect(IsDisabled(id, in)).To(BeTrue(), "action %s in status %s", id, status)
				}
			}
		},
		Entry("snapshotting", withSnapshotInProgress()),
		Entry("restoring", withRestoreInProgress()),
	)

	It("should keep force stop and unpause independent of volume operations", func() {
		in := NewInput(newVM(Paused, withSnapshotInProgress(), withRestoreInProgress()), nil, false)
		Expect(IsDisabled(Unpause, in)).To(BeFalse())
		Expect(IsDisabled(ForceStop, in)).To(BeFalse())
	})

	DescribeTable("cancel compute migration",
		func(singleNode, present, deleting, disabled bool) {
			Expect(IsDisabled(CancelMigrationCompute, Input{
				Status:            Migrating,
				SingleNodeCluster: singleNode,
				MigrationPresent:  present,
				MigrationDeleting: deleting,
			})).To(Equal(disabled))
		},
		Entry("multi node, migration present", false, true, false, false),
		Entry("multi node, migration being deleted", false, true, true, true),
		Entry("multi node, no migration", false, false, false, true),
		Entry("single node, migration present", true, true, false, true),
		Entry("single node, migration being deleted", true, true, true, true),
		Entry("single node, no migration", true, false, false, true),
	)

	It("should detect a migration being deleted from the object", func() {
		in := NewInput(newVM(Migrating), newMigration(true), false)
		Expect(in.MigrationPresent).To(BeTrue())
		Expect(in.MigrationDeleting).To(BeTrue())
		Expect(IsDisabled(CancelMigrationCompute, in)).To(BeTrue())
	})

	It("should disable compute migration on a single node cluster", func() {
		in := NewInput(newVM(Running, withLiveMigratable()), nil, true)
		Expect(IsDisabled(MigrateCompute, in)).To(BeTrue())
	})

	It("should disable compute migration when the VM is not live migratable", func() {
		in := NewInput(newVM(Running), nil, false)
		Expect(IsDisabled(MigrateCompute, in)).To(BeTrue())
	})

	DescribeTable("actions that are never disabled",
		func(id ID) {
			for _, status := range []virtv1.VirtualMachinePrintableStatus{Running, Stopped, Unknown, "Exotic"} {
				in := NewInput(newVM(status, withSnapshotInProgress()), nil, true)
				Expect(IsDisabled(id, in)).To(BeFalse())
			}
		},
		Entry("clone", Clone),
		Entry("delete", Delete),
		Entry("snapshot", Snapshot),
		Entry("edit labels", EditLabels),
		Entry("edit annotations", EditAnnotations),
		Entry("migrate storage", MigrateStorage),
	)

	It("should depend on SSH credentials for copy SSH command", func() {
		Expect(IsDisabled(CopySSHCommand, NewInput(newVM(Running), nil, false))).To(BeTrue())
		Expect(IsDisabled(CopySSHCommand, NewInput(newVM(Running, withSSHSecret("keys")), nil, false))).To(BeFalse())
	})

	It("should pass through statuses outside the known set", func() {
		in := NewInput(newVM("WaitingForVolumeBinding"), nil, false)
		for _, id := range []ID{Start, Stop, ForceStop, Restart} {
			Expect(IsDisabled(id, in)).To(BeFalse(), "action %s", id)
		}
		Expect(IsDisabled(Pause, in)).To(BeTrue())
		Expect(IsDisabled(Unpause, in)).To(BeTrue())
	})

	It("should enable unknown actions", func() {
		Expect(IsDisabled("vm-action-unknown", Input{Status: Unknown})).To(BeFalse())
	})

	It("should tolerate a nil VM", func() {
		in := NewInput(nil, nil, false)
		Expect(in.Status).To(BeEmpty())
		Expect(IsDisabled(Start, in)).To(BeFalse())
	})

	It("should return the same decisions for the same input", func() {
		vm := newVM(Running, withLiveMigratable(), withSSHSecret("keys"))
		vmim := newMigration(false)
		for _, id := range All {
			first := IsDisabled(id, NewInput(vm, vmim, false))
			second := IsDisabled(id, NewInput(vm, vmim, false))
			Expect(first).To(Equal(second), "action %s", id)
		}
	})
})
