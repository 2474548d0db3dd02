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

package kubeclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	"k8s.io/client-go/rest"
	virtv1 "kubevirt.io/api/core/v1"
)

const subresourceURLTpl = "/apis/subresources.kubevirt.io/v1/namespaces/%s/%s/%s/%s"

const (
	virtualMachinesResource         = "virtualmachines"
	virtualMachineInstancesResource = "virtualmachineinstances"
)

var SubresourceGroupVersion = schema.GroupVersion{Group: "subresources.kubevirt.io", Version: "v1"}

// SubresourceClient calls KubeVirt subresource endpoints that have no object to create or patch.
type SubresourceClient struct {
	restClient rest.Interface
}

func NewSubresourceClient(restClient rest.Interface) *SubresourceClient {
	return &SubresourceClient{restClient: restClient}
}

func NewSubresourceClientForConfig(config *rest.Config) (*SubresourceClient, error) {
	shallowCopy := *config
	shallowCopy.GroupVersion = &SubresourceGroupVersion
	shallowCopy.NegotiatedSerializer = serializer.WithoutConversionCodecFactory{CodecFactory: Codecs}
	shallowCopy.APIPath = "/apis"
	shallowCopy.ContentType = runtime.ContentTypeJSON

	restClient, err := rest.RESTClientFor(&shallowCopy)
	if err != nil {
		return nil, errors.Wrap(err, "create subresource client")
	}

	return NewSubresourceClient(restClient), nil
}

func (c SubresourceClient) Start(ctx context.Context, namespace, name string) error {
	return c.put(ctx, namespace, virtualMachinesResource, name, "start", &virtv1.StartOptions{})
}

// Stop requests a VM stop. A non-nil gracePeriod overrides the VMI termination grace period, 0 means force.
func (c SubresourceClient) Stop(ctx context.Context, namespace, name string, gracePeriod *int64) error {
	return c.put(ctx, namespace, virtualMachinesResource, name, "stop", &virtv1.StopOptions{GracePeriod: gracePeriod})
}

func (c SubresourceClient) Restart(ctx context.Context, namespace, name string) error {
	return c.put(ctx, namespace, virtualMachinesResource, name, "restart", &virtv1.RestartOptions{})
}

func (c SubresourceClient) Pause(ctx context.Context, namespace, name string) error {
	return c.put(ctx, namespace, virtualMachineInstancesResource, name, "pause", &virtv1.PauseOptions{})
}

func (c SubresourceClient) Unpause(ctx context.Context, namespace, name string) error {
	return c.put(ctx, namespace, virtualMachineInstancesResource, name, "unpause", &virtv1.UnpauseOptions{})
}

func (c SubresourceClient) put(ctx context.Context, namespace, resource, name, subresource string, opts any) error {
	body, err := json.Marshal(opts)
	if err != nil {
		return errors.Wrapf(err, "marshal %s options", subresource)
	}

	path := fmt.Sprintf(subresourceURLTpl, namespace, resource, name, subresource)

	return c.restClient.Put().AbsPath(path).Body(body).Do(ctx).Error()
}
