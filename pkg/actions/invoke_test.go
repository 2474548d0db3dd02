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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	virtv1 "kubevirt.io/api/core/v1"

	"github.com/deckhouse/virtualization-console/pkg/monitoring/metrics"
)

var _ = Describe("Invoke", func() {
	var op *OperatorMock

	BeforeEach(func() {
		op = newRecordingOperator()
	})

	It("should refuse disabled actions without calling the operator", func() {
		d, _ := NewFactory(op, false).Descriptor(Start, newVM(Running), nil, Params{})
		Expect(d.Disabled).To(BeTrue())

		before := testutil.ToFloat64(metrics.ActionInvocationsTotal.WithLabelValues(string(Start), metrics.ResultDisabled))
		Expect(Invoke(context.Background(), d)).To(MatchError(ErrActionDisabled))
		Expect(op.StartCalls()).To(BeEmpty())
		after := testutil.ToFloat64(metrics.ActionInvocationsTotal.WithLabelValues(string(Start), metrics.ResultDisabled))
		Expect(after - before).To(Equal(1.0))
	})

	It("should invoke enabled actions", func() {
		d, _ := NewFactory(op, false).Descriptor(Start, newVM(Stopped), nil, Params{})

		before := testutil.ToFloat64(metrics.ActionInvocationsTotal.WithLabelValues(string(Start), metrics.ResultSuccess))
		Expect(Invoke(context.Background(), d)).To(Succeed())
		Expect(op.StartCalls()).To(HaveLen(1))
		after := testutil.ToFloat64(metrics.ActionInvocationsTotal.WithLabelValues(string(Start), metrics.ResultSuccess))
		Expect(after - before).To(Equal(1.0))
	})

	It("should return callback errors unchanged", func() {
		apiErr := errors.New("forbidden")
		op.DeleteFunc = func(_ context.Context, _ *virtv1.VirtualMachine) error { return apiErr }
		d, _ := NewFactory(op, false).Descriptor(Delete, newVM(Stopped), nil, Params{})

		Expect(Invoke(context.Background(), d)).To(BeIdenticalTo(apiErr))
	})

	It("should fail descriptors without callback", func() {
		Expect(Invoke(context.Background(), Descriptor{ID: Start})).To(MatchError(ErrNotInvocable))
	})
})
