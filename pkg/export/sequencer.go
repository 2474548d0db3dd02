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

package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/watch"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/deckhouse/virtualization-console/pkg/common/object"
	podutil "github.com/deckhouse/virtualization-console/pkg/common/pod"
	"github.com/deckhouse/virtualization-console/pkg/common/pwgen"
	"github.com/deckhouse/virtualization-console/pkg/logger"
	"github.com/deckhouse/virtualization-console/pkg/monitoring/metrics"
)

const (
	secretNamePrefix   = "registry-secret-"
	registryNamePrefix = "registry-"
	randomSuffixLength = 5

	outcomeFailed = "Failed"
)

// Sequencer provisions the resources that export a VM disk to an external registry:
// the uploader service account, the registry credentials secret and the uploader pod.
type Sequencer struct {
	client   client.WithWatch
	settings Settings
}

func NewSequencer(client client.WithWatch, settings Settings) *Sequencer {
	return &Sequencer{
		client:   client,
		settings: settings.withDefaults(),
	}
}

type exportState struct {
	id           string
	req          Request
	namespace    string
	secretName   string
	registryName string
}

type step struct {
	name Step
	run  func(ctx context.Context, state exportState) (Outcome, error)
}

// Export runs the steps strictly in order. A step starts only after the previous one succeeded,
// or, for the service account, found the account already in place.
// Errors of the cluster API are returned unchanged. Created resources are never rolled back.
func (s *Sequencer) Export(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	state := exportState{
		id:           uuid.NewString(),
		req:          req,
		namespace:    req.VM.GetNamespace(),
		secretName:   secretNamePrefix + pwgen.LowerAlphaNum(randomSuffixLength),
		registryName: req.RegistryName,
	}
	if state.registryName == "" {
		state.registryName = registryNamePrefix + pwgen.LowerAlphaNum(randomSuffixLength)
	}

	ctx = logger.ToContext(ctx, logger.FromContext(ctx).With(logger.SlogExportID(state.id)))

	result := &Result{
		ID:                 state.id,
		Namespace:          state.namespace,
		ServiceAccountName: s.settings.ServiceAccountName,
		SecretName:         state.secretName,
		PodName:            state.registryName,
	}

	steps := []step{
		{name: StepServiceAccount, run: s.ensureServiceAccount},
		{name: StepSecret, run: s.createSecret},
		{name: StepUploaderPod, run: s.createUploaderPod},
	}

	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log, stepCtx := logger.GetStepContext(ctx, string(st.name))

		outcome, err := st.run(stepCtx, state)
		if err != nil {
			log.Error("Export step failed", logger.SlogErr(err))
			metrics.ExportStepDone(string(st.name), outcomeFailed)
			return result, err
		}

		log.Debug("Export step done", slog.String("outcome", string(outcome)))
		metrics.ExportStepDone(string(st.name), string(outcome))
		result.Steps = append(result.Steps, StepResult{Step: st.name, Outcome: outcome})
	}

	logger.FromContext(ctx).Info("Export started",
		logger.SlogName(result.PodName),
		logger.SlogNamespace(result.Namespace),
	)

	return result, nil
}

// ensureServiceAccount creates the uploader service account and its role binding.
// Objects that already exist are left as is.
func (s *Sequencer) ensureServiceAccount(ctx context.Context, state exportState) (Outcome, error) {
	name := s.settings.ServiceAccountName

	outcome, err := s.createIfNotExists(ctx, makeServiceAccount(state.namespace, name))
	if err != nil {
		return "", err
	}

	if _, err = s.createIfNotExists(ctx, makeRole(state.namespace, name)); err != nil {
		return "", err
	}

	if _, err = s.createIfNotExists(ctx, makeRoleBinding(state.namespace, name)); err != nil {
		return "", err
	}

	return outcome, nil
}

func (s *Sequencer) createIfNotExists(ctx context.Context, obj client.Object) (Outcome, error) {
	err := s.client.Create(ctx, obj)
	switch {
	case err == nil:
		return OutcomeCreated, nil
	case k8serrors.IsAlreadyExists(err):
		return OutcomeAlreadyExists, nil
	default:
		return "", err
	}
}

func (s *Sequencer) createSecret(ctx context.Context, state exportState) (Outcome, error) {
	secret := makeSecret(state.namespace, state.secretName, state.id, state.req.Username, state.req.Password)
	if err := s.client.Create(ctx, secret); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

func (s *Sequencer) createUploaderPod(ctx context.Context, state exportState) (Outcome, error) {
	pod := NewUploaderPod(
		&PodSettings{
			Name:               state.registryName,
			Namespace:          state.namespace,
			Image:              s.settings.Image,
			PullPolicy:         s.settings.PullPolicy,
			ServiceAccountName: s.settings.ServiceAccountName,
			Resources:          s.settings.Resources,
		},
		&UploaderSettings{
			ExportID:        state.id,
			VMName:          state.req.VM.GetName(),
			VolumeName:      state.req.VolumeName,
			Destination:     state.req.Destination,
			SecretName:      state.secretName,
			PushTimeoutSecs: int64(s.settings.PushTimeout.Seconds()),
		},
	).makeSpec()

	if err := s.client.Create(ctx, pod); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

// Wait blocks until the uploader pod completes. It returns ErrUploadFailed if the pod failed.
func (s *Sequencer) Wait(ctx context.Context, namespace, name string) (*corev1.Pod, error) {
	key := types.NamespacedName{Namespace: namespace, Name: name}

	pod, err := object.FetchObject(ctx, key, s.client, &corev1.Pod{})
	if err != nil {
		return nil, err
	}
	if pod == nil {
		return nil, ErrUploaderPodNotFound
	}
	if done, err := podFinished(pod); done {
		return pod, err
	}

	w, err := s.client.Watch(ctx, &corev1.PodList{}, client.InNamespace(namespace))
	if err != nil {
		return nil, err
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return pod, ctx.Err()
		case event, ok := <-w.ResultChan():
			if !ok {
				return pod, fmt.Errorf("watch of pod %s closed", key)
			}

			switch event.Type {
			case watch.Deleted:
				if p, ok := event.Object.(*corev1.Pod); ok && p.GetName() == name {
					return p, ErrUploaderPodNotFound
				}
			case watch.Added, watch.Modified:
				p, ok := event.Object.(*corev1.Pod)
				if !ok || p.GetName() != name {
					continue
				}
				pod = p
				if done, err := podFinished(pod); done {
					return pod, err
				}
			}
		}
	}
}

func podFinished(pod *corev1.Pod) (bool, error) {
	switch {
	case podutil.IsPodComplete(pod):
		return true, nil
	case podutil.IsPodFailed(pod):
		return true, ErrUploadFailed
	default:
		return false, nil
	}
}
