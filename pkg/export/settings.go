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
	"time"

	corev1 "k8s.io/api/core/v1"
)

const (
	DefaultUploaderImage          = "quay.io/kubevirt/kubevirt-disk-uploader:latest"
	DefaultUploaderServiceAccount = "kubevirt-disk-uploader"
	DefaultPushTimeout            = 120 * time.Second
)

type Settings struct {
	Image              string
	PullPolicy         corev1.PullPolicy
	ServiceAccountName string
	PushTimeout        time.Duration
	Resources          *corev1.ResourceRequirements
}

func (s Settings) withDefaults() Settings {
	if s.Image == "" {
		s.Image = DefaultUploaderImage
	}
	if s.PullPolicy == "" {
		s.PullPolicy = corev1.PullAlways
	}
	if s.ServiceAccountName == "" {
		s.ServiceAccountName = DefaultUploaderServiceAccount
	}
	if s.PushTimeout <= 0 {
		s.PushTimeout = DefaultPushTimeout
	}
	return s
}
