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

package topology

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// IsSingleNodeCluster reports whether the cluster has exactly one node.
// Compute migrations have nowhere to go in such clusters.
func IsSingleNodeCluster(ctx context.Context, cl client.Reader) (bool, error) {
	var nodes corev1.NodeList
	if err := cl.List(ctx, &nodes, client.Limit(2)); err != nil {
		return false, err
	}
	return len(nodes.Items) == 1, nil
}
