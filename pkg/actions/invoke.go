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

package actions

import (
	"context"
	"errors"

	"github.com/deckhouse/virtualization-console/pkg/logger"
	"github.com/deckhouse/virtualization-console/pkg/monitoring/metrics"
)

// Invoke runs the descriptor callback unless the action is disabled.
// The callback error is returned as is.
func Invoke(ctx context.Context, d Descriptor) error {
	log, ctx := logger.GetActionContext(ctx, string(d.ID))

	if d.Disabled {
		log.Warn("Refuse to invoke disabled action")
		metrics.ActionInvoked(string(d.ID), metrics.ResultDisabled)
		return ErrActionDisabled
	}

	if d.Invoke == nil {
		metrics.ActionInvoked(string(d.ID), metrics.ResultError)
		return ErrNotInvocable
	}

	err := d.Invoke(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to invoke action", logger.SlogErr(err))
		}
		metrics.ActionInvoked(string(d.ID), metrics.ResultError)
		return err
	}

	log.Info("Action invoked")
	metrics.ActionInvoked(string(d.ID), metrics.ResultSuccess)
	return nil
}
