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
	"errors"
	"fmt"
	"slices"

	"github.com/distribution/reference"
	virtv1 "kubevirt.io/api/core/v1"

	vmutil "github.com/deckhouse/virtualization-console/pkg/common/vm"
)

var (
	ErrEmptyVirtualMachine = errors.New("virtual machine is not specified")
	ErrEmptyDestination    = errors.New("export destination is not specified")
	ErrInvalidDestination  = errors.New("export destination is not a valid image reference")
	ErrVolumeNotFound      = errors.New("volume not found in the virtual machine")
	ErrUploaderPodNotFound = errors.New("uploader pod not found")
	ErrUploadFailed        = errors.New("uploader pod failed")
)

// Request is the input of a single export run. It is owned by one invocation.
type Request struct {
	VM           *virtv1.VirtualMachine `json:"-"`
	VolumeName   string                 `json:"volumeName"`
	Destination  string                 `json:"destination"`
	Username     string                 `json:"username"`
	Password     string                 `json:"password"`
	RegistryName string                 `json:"registryName,omitempty"`
}

func (r Request) Validate() error {
	if r.VM == nil {
		return ErrEmptyVirtualMachine
	}
	if r.Destination == "" {
		return ErrEmptyDestination
	}
	if _, err := reference.ParseNormalizedNamed(r.Destination); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	if !slices.Contains(vmutil.VolumeNames(r.VM), r.VolumeName) {
		return ErrVolumeNotFound
	}
	return nil
}

type Step string

const (
	StepServiceAccount Step = "ServiceAccount"
	StepSecret         Step = "Secret"
	StepUploaderPod    Step = "UploaderPod"
)

// Outcome tells a created resource from one that was already in place.
type Outcome string

const (
	OutcomeCreated       Outcome = "Created"
	OutcomeAlreadyExists Outcome = "AlreadyExists"
)

type StepResult struct {
	Step    Step    `json:"step"`
	Outcome Outcome `json:"outcome"`
}

type Result struct {
	// ID is the export run id, also set as a label on the secret and the uploader pod.
	ID                 string       `json:"id"`
	Namespace          string       `json:"namespace"`
	ServiceAccountName string       `json:"serviceAccountName"`
	SecretName         string       `json:"secretName"`
	PodName            string       `json:"podName"`
	Steps              []StepResult `json:"steps"`
}
