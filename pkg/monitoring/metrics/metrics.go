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

package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const MetricNamespace = "vm_console"

const (
	actionInvocationsName = "action_invocations_total"
	actionInvocationsHelp = "The number of virtual machine action invocations by result."
	exportStepsName       = "export_steps_total"
	exportStepsHelp       = "The number of disk export steps by outcome."
)

const (
	ResultSuccess  = "success"
	ResultDisabled = "disabled"
	ResultError    = "error"
)

var (
	ActionInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      actionInvocationsName,
			Help:      actionInvocationsHelp,
		},
		[]string{"action", "result"},
	)

	ExportStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      exportStepsName,
			Help:      exportStepsHelp,
		},
		[]string{"step", "outcome"},
	)
)

// Register adds console collectors to the registerer.
// Collectors registered before are reused.
func Register(registerer prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ActionInvocationsTotal, ExportStepsTotal} {
		err := registerer.Register(c)
		if err != nil {
			var alreadyRegisteredErr prometheus.AlreadyRegisteredError
			if errors.As(err, &alreadyRegisteredErr) {
				continue
			}
			return err
		}
	}
	return nil
}

func ActionInvoked(action, result string) {
	ActionInvocationsTotal.WithLabelValues(action, result).Inc()
}

func ExportStepDone(step, outcome string) {
	ExportStepsTotal.WithLabelValues(step, outcome).Inc()
}
