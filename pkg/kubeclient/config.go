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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func DefaultClientConfig(flags *pflag.FlagSet) clientcmd.ClientConfig {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	loadingRules.DefaultClientConfig = &clientcmd.DefaultClientConfig

	flags.StringVar(&loadingRules.ExplicitPath, "kubeconfig", "",
		"Path to the kubeconfig file to use for CLI requests.")

	overrides := &clientcmd.ConfigOverrides{ClusterDefaults: clientcmd.ClusterDefaults}

	flagNames := clientcmd.RecommendedConfigOverrideFlags("")
	flagNames.ClusterOverrideFlags.APIServer.ShortName = "s"

	clientcmd.BindOverrideFlags(overrides, flags, flagNames)

	return clientcmd.NewInteractiveDeferredLoadingClientConfig(loadingRules, overrides, os.Stdin)
}

// Clients bundles everything the console backend talks to.
type Clients struct {
	Client       client.WithWatch
	Subresources *SubresourceClient
	Namespace    string
}

func NewClients(cmdConfig clientcmd.ClientConfig) (*Clients, error) {
	config, err := cmdConfig.ClientConfig()
	if err != nil {
		return nil, errors.Wrap(err, "load kubeconfig")
	}

	namespace, _, err := cmdConfig.Namespace()
	if err != nil {
		return nil, errors.Wrap(err, "detect namespace")
	}

	return NewClientsFromRESTConfig(config, namespace)
}

func NewClientsFromRESTConfig(config *rest.Config, namespace string) (*Clients, error) {
	if config.UserAgent == "" {
		config.UserAgent = rest.DefaultKubernetesUserAgent()
	}

	cl, err := client.NewWithWatch(config, client.Options{Scheme: Scheme})
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}

	sub, err := NewSubresourceClientForConfig(config)
	if err != nil {
		return nil, err
	}

	return &Clients{
		Client:       cl,
		Subresources: sub,
		Namespace:    namespace,
	}, nil
}
