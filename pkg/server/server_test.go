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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	virtv1 "kubevirt.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/console"
	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/kubeclient"
	"github.com/deckhouse/virtualization-console/pkg/monitoring/metrics"
)

func TestServer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Server Suite")
}

const vmPath = "/api/v1/namespaces/vms/virtualmachines/vm-alpine"

var _ = Describe("APIServer", func() {
	var (
		operator *actions.OperatorMock
		handler  http.Handler
		cl       client.WithWatch
	)

	BeforeEach(func() {
		vm := &virtv1.VirtualMachine{
			ObjectMeta: metav1.ObjectMeta{Name: "vm-alpine", Namespace: "vms"},
			Spec: virtv1.VirtualMachineSpec{
				Template: &virtv1.VirtualMachineInstanceTemplateSpec{
					Spec: virtv1.VirtualMachineInstanceSpec{
						Volumes: []virtv1.Volume{{Name: "rootdisk"}},
					},
				},
			},
			Status: virtv1.VirtualMachineStatus{PrintableStatus: virtv1.VirtualMachineStatusStopped},
		}
		node := &corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "node-1"}}
		cl = fake.NewClientBuilder().WithScheme(kubeclient.Scheme).WithObjects(vm, node).Build()

		operator = &actions.OperatorMock{
			StartFunc: func(_ context.Context, _ *virtv1.VirtualMachine) error { return nil },
			DeleteFunc: func(_ context.Context, _ *virtv1.VirtualMachine) error {
				return k8serrors.NewForbidden(schema.GroupResource{Group: "kubevirt.io", Resource: "virtualmachines"}, "vm-alpine", errors.New("denied"))
			},
			CloneFunc: func(_ context.Context, _ *virtv1.VirtualMachine, _ string) error { return nil },
		}
		reviewer := &console.ReviewerMock{
			AllowedFunc: func(_ context.Context, _ accessreview.Review) (bool, error) { return true, nil },
		}

		registry := prometheus.NewRegistry()
		Expect(metrics.Register(registry)).To(Succeed())

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		srv := NewServer(":0", console.New(cl, operator, reviewer), export.NewSequencer(cl, export.Settings{}), registry, log)
		handler = srv.Handler
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if method == http.MethodPost {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	It("should report health", func() {
		rec := do(http.MethodGet, "/healthz", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("should generate a request id", func() {
		rec := do(http.MethodGet, vmPath+"/actions", "")
		id := rec.Header().Get(RequestIDHeader)
		Expect(id).NotTo(BeEmpty())
		_, err := uuid.Parse(id)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should keep the caller's request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(RequestIDHeader, "trace-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		Expect(rec.Header().Get(RequestIDHeader)).To(Equal("trace-42"))
	})

	It("should serve metrics", func() {
		do(http.MethodPost, vmPath+"/actions/start", "")
		rec := do(http.MethodGet, "/metrics", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("vm_console_action_invocations_total"))
	})

	It("should list actions", func() {
		rec := do(http.MethodGet, vmPath+"/actions?review=true", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var list actionList
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list.Items).To(HaveLen(len(actions.All)))
		Expect(list.Items[0].ID).To(Equal(actions.Start))
		Expect(list.Items[0].Disabled).To(BeFalse())
		Expect(*list.Items[0].Allowed).To(BeTrue())
		Expect(list.Menu).To(HaveLen(len(actions.All) - 2))
	})

	It("should reject a malformed review flag", func() {
		rec := do(http.MethodGet, vmPath+"/actions?review=maybe", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return 404 for a missing VM", func() {
		rec := do(http.MethodGet, "/api/v1/namespaces/vms/virtualmachines/vm-missing/actions", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should run an enabled action", func() {
		rec := do(http.MethodPost, vmPath+"/actions/start", "")
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(operator.StartCalls()).To(HaveLen(1))
	})

	It("should pass parameters to the action", func() {
		rec := do(http.MethodPost, vmPath+"/actions/vm-action-clone", `{"cloneName":"vm-alpine-copy"}`)
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(operator.CloneCalls()[0].TargetName).To(Equal("vm-alpine-copy"))
	})

	It("should return output of the storage migration action", func() {
		rec := do(http.MethodPost, vmPath+"/actions/migrate-storage", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("/migratestorage?fromURL="))
	})

	It("should refuse a disabled action", func() {
		rec := do(http.MethodPost, vmPath+"/actions/stop", "")
		Expect(rec.Code).To(Equal(http.StatusConflict))
	})

	It("should return 404 for an unknown action", func() {
		rec := do(http.MethodPost, vmPath+"/actions/reboot", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should pass API error codes through", func() {
		rec := do(http.MethodPost, vmPath+"/actions/delete", "")
		Expect(rec.Code).To(Equal(http.StatusForbidden))
	})

	It("should require a JSON content type", func() {
		req := httptest.NewRequest(http.MethodPost, vmPath+"/actions/start", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusUnsupportedMediaType))
	})

	It("should start an export", func() {
		body := `{"volumeName":"rootdisk","destination":"registry.example.com/alpine:latest","username":"robot","password":"pass","registryName":"registry-alpine"}`
		rec := do(http.MethodPost, vmPath+"/export", body)
		Expect(rec.Code).To(Equal(http.StatusAccepted))

		var result export.Result
		Expect(json.Unmarshal(rec.Body.Bytes(), &result)).To(Succeed())
		Expect(result.PodName).To(Equal("registry-alpine"))
		Expect(result.Steps).To(HaveLen(3))

		var pod corev1.Pod
		Expect(cl.Get(context.Background(), client.ObjectKey{Namespace: "vms", Name: "registry-alpine"}, &pod)).To(Succeed())
	})

	It("should validate an export request", func() {
		rec := do(http.MethodPost, vmPath+"/export", `{"volumeName":"datadisk","destination":"registry.example.com/alpine"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should reject a malformed body", func() {
		rec := do(http.MethodPost, vmPath+"/export", `{"volumeName":`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})
})
