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
	"bytes"
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	virtv1 "kubevirt.io/api/core/v1"

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
)

// newRecordingOperator returns a mock whose methods all succeed.
func newRecordingOperator() *OperatorMock {
	return &OperatorMock{
		StartFunc:   func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		StopFunc:    func(_ context.Context, _ *virtv1.VirtualMachine, _ *int64) error { return nil },
		RestartFunc: func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		PauseFunc:   func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		UnpauseFunc: func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		MigrateFunc: func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		CancelMigrationFunc: func(_ context.Context, _ *virtv1.VirtualMachineInstanceMigration) error {
			return nil
		},
		CloneFunc:    func(_ context.Context, _ *virtv1.VirtualMachine, _ string) error { return nil },
		SnapshotFunc: func(_ context.Context, _ *virtv1.VirtualMachine, _ string) error { return nil },
		DeleteFunc:   func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
		ReplaceLabelsFunc: func(_ context.Context, _ *virtv1.VirtualMachine, _ map[string]string) error {
			return nil
		},
		ReplaceAnnotationsFunc: func(_ context.Context, _ *virtv1.VirtualMachine, _ map[string]string) error {
			return nil
		},
	}
}

func totalCalls(op *OperatorMock) int {
	return len(op.StartCalls()) + len(op.StopCalls()) + len(op.RestartCalls()) +
		len(op.PauseCalls()) + len(op.UnpauseCalls()) + len(op.MigrateCalls()) +
		len(op.CancelMigrationCalls()) + len(op.CloneCalls()) + len(op.SnapshotCalls()) +
		len(op.DeleteCalls()) + len(op.ReplaceLabelsCalls()) + len(op.ReplaceAnnotationsCalls())
}

var _ = Describe("Factory", func() {
	var (
		op      *OperatorMock
		factory *Factory
		vm      *virtv1.VirtualMachine
		vmim    *virtv1.VirtualMachineInstanceMigration
		params  Params
		out     *bytes.Buffer
	)

	BeforeEach(func() {
		op = newRecordingOperator()
		factory = NewFactory(op, false)
		vm = newVM(Running, withLiveMigratable(), withSSHSecret("keys"))
		vmim = newMigration(false)
		out = &bytes.Buffer{}
		params = Params{
			CloneName:    "vm-alpine-clone",
			SnapshotName: "vm-alpine-snapshot",
			Labels:       map[string]string{"tier": "db"},
			Annotations:  map[string]string{"owner": "team-a"},
			SSHUser:      "cloud",
			Output:       out,
		}
	})

	It("should build every action in menu order", func() {
		descriptors := factory.Build(vm, vmim, params)
		ids := make([]ID, 0, len(descriptors))
		for _, d := range descriptors {
			ids = append(ids, d.ID)
			Expect(d.Label).NotTo(BeEmpty())
			Expect(d.Invoke).NotTo(BeNil())
		}
		Expect(ids).To(Equal(All))
	})

	It("should not call the operator while building", func() {
		factory.Build(vm, vmim, params)
		Expect(totalCalls(op)).To(BeZero())
	})

	DescribeTable("invoke performs exactly one mutation",
		func(id ID, calls func(op *OperatorMock) int) {
			d, err := factory.Descriptor(id, vm, vmim, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Invoke(context.Background())).To(Succeed())
			Expect(calls(op)).To(Equal(1))
			Expect(totalCalls(op)).To(Equal(1))
		},
		Entry("start", Start, func(op *OperatorMock) int { return len(op.StartCalls()) }),
		Entry("stop", Stop, func(op *OperatorMock) int { return len(op.StopCalls()) }),
		Entry("force stop", ForceStop, func(op *OperatorMock) int { return len(op.StopCalls()) }),
		Entry("restart", Restart, func(op *OperatorMock) int { return len(op.RestartCalls()) }),
		Entry("pause", Pause, func(op *OperatorMock) int { return len(op.PauseCalls()) }),
		Entry("unpause", Unpause, func(op *OperatorMock) int { return len(op.UnpauseCalls()) }),
		Entry("migrate", MigrateCompute, func(op *OperatorMock) int { return len(op.MigrateCalls()) }),
		Entry("cancel migration", CancelMigrationCompute, func(op *OperatorMock) int { return len(op.CancelMigrationCalls()) }),
		Entry("clone", Clone, func(op *OperatorMock) int { return len(op.CloneCalls()) }),
		Entry("snapshot", Snapshot, func(op *OperatorMock) int { return len(op.SnapshotCalls()) }),
		Entry("delete", Delete, func(op *OperatorMock) int { return len(op.DeleteCalls()) }),
		Entry("edit labels", EditLabels, func(op *OperatorMock) int { return len(op.ReplaceLabelsCalls()) }),
		Entry("edit annotations", EditAnnotations, func(op *OperatorMock) int { return len(op.ReplaceAnnotationsCalls()) }),
	)

	It("should stop gracefully and force stop without grace period", func() {
		stop, _ := factory.Descriptor(Stop, vm, vmim, params)
		forceStop, _ := factory.Descriptor(ForceStop, vm, vmim, params)
		Expect(stop.Invoke(context.Background())).To(Succeed())
		Expect(forceStop.Invoke(context.Background())).To(Succeed())

		calls := op.StopCalls()
		Expect(calls).To(HaveLen(2))
		Expect(calls[0].GracePeriod).To(BeNil())
		Expect(calls[1].GracePeriod).NotTo(BeNil())
		Expect(*calls[1].GracePeriod).To(BeZero())
	})

	It("should pass user input to the operator", func() {
		for _, id := range []ID{Clone, Snapshot, EditLabels, EditAnnotations, CancelMigrationCompute} {
			d, _ := factory.Descriptor(id, vm, vmim, params)
			Expect(d.Invoke(context.Background())).To(Succeed())
		}
		Expect(op.CloneCalls()[0].TargetName).To(Equal("vm-alpine-clone"))
		Expect(op.SnapshotCalls()[0].SnapshotName).To(Equal("vm-alpine-snapshot"))
		Expect(op.ReplaceLabelsCalls()[0].Labels).To(Equal(map[string]string{"tier": "db"}))
		Expect(op.ReplaceAnnotationsCalls()[0].Annotations).To(Equal(map[string]string{"owner": "team-a"}))
		Expect(op.CancelMigrationCalls()[0].Vmim).To(Equal(vmim))
	})

	It("should require names for clone and snapshot", func() {
		params.CloneName = ""
		params.SnapshotName = ""
		clone, _ := factory.Descriptor(Clone, vm, vmim, params)
		snapshot, _ := factory.Descriptor(Snapshot, vm, vmim, params)
		Expect(clone.Invoke(context.Background())).To(MatchError(ErrEmptyCloneName))
		Expect(snapshot.Invoke(context.Background())).To(MatchError(ErrEmptySnapshotName))
		Expect(totalCalls(op)).To(BeZero())
	})

	It("should write the SSH command", func() {
		d, _ := factory.Descriptor(CopySSHCommand, vm, vmim, params)
		Expect(d.Invoke(context.Background())).To(Succeed())
		Expect(out.String()).To(Equal("virtctl -n vms ssh cloud@vm/vm-alpine\n"))
		Expect(totalCalls(op)).To(BeZero())
	})

	It("should write the storage migration path", func() {
		d, _ := factory.Descriptor(MigrateStorage, vm, vmim, params)
		Expect(d.Invoke(context.Background())).To(Succeed())
		Expect(out.String()).To(Equal(
			"/k8s/ns/vms/kubevirt.io~v1~VirtualMachine/vm-alpine/migratestorage?fromURL=%2Fk8s%2Fns%2Fvms%2Fkubevirt.io~v1~VirtualMachine%2Fvm-alpine\n",
		))
	})

	It("should return to the given page after storage migration", func() {
		params.FromURL = "/k8s/all-namespaces/virtualmachines?rowFilter-status=Running"
		d, _ := factory.Descriptor(MigrateStorage, vm, vmim, params)
		Expect(d.Invoke(context.Background())).To(Succeed())
		Expect(out.String()).To(HaveSuffix(
			"/migratestorage?fromURL=%2Fk8s%2Fall-namespaces%2Fvirtualmachines%3FrowFilter-status%3DRunning\n",
		))
	})

	DescribeTable("labels and descriptions",
		func(id ID, label, description string) {
			d, err := factory.Descriptor(id, vm, vmim, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Label).To(Equal(label))
			Expect(d.Description).To(Equal(description))
		},
		Entry("compute migration", MigrateCompute, "Compute", "Migrate VirtualMachine to a different Node"),
		Entry("storage migration", MigrateStorage, "Storage", "Migrate VirtualMachine storage to a different StorageClass"),
		Entry("cancel migration", CancelMigrationCompute, "Cancel migration", ""),
		Entry("copy ssh", CopySSHCommand, "Copy SSH command", "SSH using virtctl"),
		Entry("snapshot", Snapshot, "Take snapshot", ""),
	)

	It("should describe copy-ssh even when it is disabled", func() {
		noSSH := newVM(Running)
		d, _ := factory.Descriptor(CopySSHCommand, noSSH, nil, params)
		Expect(d.Disabled).To(BeTrue())
		Expect(d.Description).To(Equal("SSH using virtctl"))
	})

	It("should propagate operator errors unchanged", func() {
		apiErr := errors.New("the server is currently unable to handle the request")
		op.RestartFunc = func(_ context.Context, _ *virtv1.VirtualMachine) error { return apiErr }
		d, _ := factory.Descriptor(Restart, vm, vmim, params)
		Expect(d.Invoke(context.Background())).To(BeIdenticalTo(apiErr))
	})

	DescribeTable("access reviews",
		func(id ID, expected accessreview.Review) {
			d, err := factory.Descriptor(id, vm, vmim, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.AccessReview).To(Equal(expected))
		},
		Entry("start", Start, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachines", Verb: "patch"}),
		Entry("delete", Delete, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachines", Verb: "delete"}),
		Entry("copy ssh", CopySSHCommand, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachines", Verb: "patch"}),
		Entry("storage migration", MigrateStorage, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachines", Verb: "patch"}),
		Entry("migrate", MigrateCompute, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachineinstancemigrations", Verb: "create"}),
		Entry("cancel migration", CancelMigrationCompute, accessreview.Review{Group: "kubevirt.io", Namespace: testNamespace, Resource: "virtualmachineinstancemigrations", Verb: "delete"}),
		Entry("clone", Clone, accessreview.Review{Group: "clone.kubevirt.io", Namespace: testNamespace, Resource: "virtualmachineclones", Verb: "create"}),
		Entry("snapshot", Snapshot, accessreview.Review{Group: "snapshot.kubevirt.io", Namespace: testNamespace, Resource: "virtualmachinesnapshots", Verb: "create"}),
	)

	It("should describe a migration being canceled", func() {
		d, _ := factory.Descriptor(CancelMigrationCompute, vm, newMigration(true), params)
		Expect(d.Disabled).To(BeTrue())
		Expect(d.Description).To(Equal("Canceling ongoing migration"))
	})

	It("should reject unknown actions", func() {
		_, err := factory.Descriptor("vm-action-reboot", vm, vmim, params)
		Expect(err).To(MatchError(ErrUnknownAction))
	})

	It("should build identical enablement twice", func() {
		first := factory.Build(vm, vmim, params)
		second := factory.Build(vm, vmim, params)
		for i := range first {
			Expect(first[i].Disabled).To(Equal(second[i].Disabled))
		}
	})

	It("should nest migration actions into one menu", func() {
		entries := Nest(factory.Build(vm, vmim, params))
		var menus []*Menu
		for _, entry := range entries {
			if entry.Menu != nil {
				menus = append(menus, entry.Menu)
			}
		}
		Expect(menus).To(HaveLen(1))
		Expect(menus[0].ID).To(Equal(MenuMigration))
		Expect(menus[0].Options).To(HaveLen(3))
		Expect(menus[0].Options[0].ID).To(Equal(MigrateCompute))
		Expect(entries).To(HaveLen(len(All) - 2))
	})

	It("should find descriptors by id", func() {
		descriptors := factory.Build(vm, vmim, params)
		d, ok := Find(descriptors, Pause)
		Expect(ok).To(BeTrue())
		Expect(d.ID).To(Equal(Pause))
		_, ok = Find(descriptors, "vm-action-reboot")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ParseID", func() {
	DescribeTable("known names",
		func(name string, expected ID) {
			id, err := ParseID(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(expected))
		},
		Entry("alias", "force-stop", ForceStop),
		Entry("full id", "vm-action-cancel-migrate", CancelMigrationCompute),
		Entry("storage migration id", "vm-migrate-storage", MigrateStorage),
	)

	It("should fail for unknown names", func() {
		_, err := ParseID("reboot")
		Expect(err).To(MatchError(ErrUnknownAction))
	})

	It("should return short aliases", func() {
		Expect(CancelMigrationCompute.Alias()).To(Equal("cancel-migration"))
	})
})
