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

package annotations

const (
	// AppLabel is the common label for resources created by the console backend.
	AppLabel = "app"
	// AppLabelValue marks the disk uploader resources.
	AppLabelValue = "kubevirt-disk-uploader"

	// LabelVirtualMachineName is set on export resources to find them by the source virtual machine.
	LabelVirtualMachineName = "vm.kubevirt.io/name"
	// LabelExportVolumeName is set on the uploader Pod to the exported volume name.
	LabelExportVolumeName = "virtualization.deckhouse.io/export-volume"
	// LabelExportID groups the secret and the uploader Pod created by one export run.
	LabelExportID = "virtualization.deckhouse.io/export-id"

	// AnnCreatedBy marks objects created by the console backend.
	AnnCreatedBy = "virtualization.deckhouse.io/created-by"
	// AnnExportDestination keeps the registry destination on the uploader Pod.
	AnnExportDestination = "virtualization.deckhouse.io/export-destination"

	CreatedByValue = "vm-console"
)
