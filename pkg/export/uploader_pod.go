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
	"strconv"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/deckhouse/virtualization-console/pkg/common/annotations"
	podutil "github.com/deckhouse/virtualization-console/pkg/common/pod"
)

const (
	uploaderContainerName = "kubevirt-disk-uploader"
	uploaderCommand       = "/usr/local/bin/kubevirt-disk-uploader"

	// diskVolumeName is the scratch space the exported disk is downloaded to before the push.
	diskVolumeName = "disk"
	diskMountPath  = "/tmp"

	envRegistryUsername = "REGISTRY_USERNAME"
	envRegistryPassword = "REGISTRY_PASSWORD"
	envPodName          = "POD_NAME"
)

type PodSettings struct {
	Name               string
	Namespace          string
	Image              string
	PullPolicy         corev1.PullPolicy
	ServiceAccountName string
	Resources          *corev1.ResourceRequirements
}

type UploaderSettings struct {
	ExportID        string
	VMName          string
	VolumeName      string
	Destination     string
	SecretName      string
	PushTimeoutSecs int64
}

type UploaderPod struct {
	PodSettings *PodSettings
	Settings    *UploaderSettings
}

func NewUploaderPod(podSettings *PodSettings, settings *UploaderSettings) *UploaderPod {
	return &UploaderPod{
		PodSettings: podSettings,
		Settings:    settings,
	}
}

func (p *UploaderPod) makeSpec() *corev1.Pod {
	labels := uploaderLabels()
	labels[annotations.LabelVirtualMachineName] = p.Settings.VMName
	labels[annotations.LabelExportVolumeName] = p.Settings.VolumeName
	labels[annotations.LabelExportID] = p.Settings.ExportID

	pod := &corev1.Pod{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Pod",
			APIVersion: "v1",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      p.PodSettings.Name,
			Namespace: p.PodSettings.Namespace,
			Labels:    labels,
			Annotations: map[string]string{
				annotations.AnnCreatedBy:         annotations.CreatedByValue,
				annotations.AnnExportDestination: p.Settings.Destination,
			},
		},
		Spec: corev1.PodSpec{
			// Container and volumes will be added later.
			Containers:         []corev1.Container{},
			Volumes:            []corev1.Volume{},
			RestartPolicy:      corev1.RestartPolicyNever,
			ServiceAccountName: p.PodSettings.ServiceAccountName,
		},
	}

	container := p.makeUploaderContainerSpec()
	podutil.AddEmptyDirVolume(pod, container, diskVolumeName, diskMountPath)
	pod.Spec.Containers = append(pod.Spec.Containers, *container)

	podutil.SetRestrictedSecurityContext(&pod.Spec)

	return pod
}

func (p *UploaderPod) makeUploaderContainerSpec() *corev1.Container {
	container := &corev1.Container{
		Name:            uploaderContainerName,
		Image:           p.PodSettings.Image,
		ImagePullPolicy: p.PodSettings.PullPolicy,
		Command:         []string{uploaderCommand},
		Args: []string{
			"--vmname", p.Settings.VMName,
			"--volumename", p.Settings.VolumeName,
			"--imagedestination", p.Settings.Destination,
			"--pushtimeout", strconv.FormatInt(p.Settings.PushTimeoutSecs, 10),
		},
		Env: []corev1.EnvVar{
			podutil.SecretKeyEnvVar(envRegistryUsername, p.Settings.SecretName, secretAccessKeyID),
			podutil.SecretKeyEnvVar(envRegistryPassword, p.Settings.SecretName, secretSecretKey),
			podutil.FieldRefEnvVar(envPodName, "metadata.name"),
		},
	}

	if p.PodSettings.Resources != nil {
		container.Resources = *p.PodSettings.Resources
	}

	return container
}

// GetDestinationFromPod returns the registry destination the uploader pushes to.
func GetDestinationFromPod(pod *corev1.Pod) string {
	if pod == nil {
		return ""
	}
	return pod.GetAnnotations()[annotations.AnnExportDestination]
}
