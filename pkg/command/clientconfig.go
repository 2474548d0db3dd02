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

package command

import (
	"context"
	"errors"

	"k8s.io/client-go/tools/clientcmd"

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
	"github.com/deckhouse/virtualization-console/pkg/console"
	"github.com/deckhouse/virtualization-console/pkg/kubeclient"
	"github.com/deckhouse/virtualization-console/pkg/operation"
)

type clientConfigKey struct{}

var ErrNoClientConfig = errors.New("client config is not set in context")

func newClientConfigContext(ctx context.Context, clientConfig clientcmd.ClientConfig) context.Context {
	return context.WithValue(ctx, clientConfigKey{}, clientConfig)
}

func clientsFromContext(ctx context.Context) (*kubeclient.Clients, error) {
	clientConfig, ok := ctx.Value(clientConfigKey{}).(clientcmd.ClientConfig)
	if !ok {
		return nil, ErrNoClientConfig
	}
	return kubeclient.NewClients(clientConfig)
}

func newConsole(clients *kubeclient.Clients) *console.Console {
	return console.New(
		clients.Client,
		operation.NewService(clients.Client, clients.Subresources),
		accessreview.NewChecker(clients.Client),
	)
}
