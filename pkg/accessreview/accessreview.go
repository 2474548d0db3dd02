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

package accessreview

import (
	"context"

	authorizationv1 "k8s.io/api/authorization/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Review is a declarative statement of the permission required to perform an action.
type Review struct {
	Group     string `json:"group"`
	Namespace string `json:"namespace,omitempty"`
	Resource  string `json:"resource"`
	Verb      string `json:"verb"`
}

func ForResource(gvr schema.GroupVersionResource, namespace, verb string) Review {
	return Review{
		Group:     gvr.Group,
		Namespace: namespace,
		Resource:  gvr.Resource,
		Verb:      verb,
	}
}

type Checker struct {
	client client.Client
}

func NewChecker(client client.Client) *Checker {
	return &Checker{client: client}
}

// Allowed asks the API server whether the current user may perform the reviewed request.
func (c Checker) Allowed(ctx context.Context, review Review) (bool, error) {
	ssar := &authorizationv1.SelfSubjectAccessReview{
		Spec: authorizationv1.SelfSubjectAccessReviewSpec{
			ResourceAttributes: &authorizationv1.ResourceAttributes{
				Namespace: review.Namespace,
				Verb:      review.Verb,
				Group:     review.Group,
				Resource:  review.Resource,
			},
		},
	}

	if err := c.client.Create(ctx, ssar); err != nil {
		return false, err
	}

	return ssar.Status.Allowed, nil
}
