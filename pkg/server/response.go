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

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/console"
	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, console.ErrVirtualMachineNotFound),
		errors.Is(err, actions.ErrUnknownAction):
		return http.StatusNotFound
	case errors.Is(err, actions.ErrActionDisabled):
		return http.StatusConflict
	case errors.Is(err, actions.ErrEmptyCloneName),
		errors.Is(err, actions.ErrEmptySnapshotName),
		errors.Is(err, export.ErrEmptyDestination),
		errors.Is(err, export.ErrInvalidDestination),
		errors.Is(err, export.ErrVolumeNotFound):
		return http.StatusBadRequest
	}

	var status k8serrors.APIStatus
	if errors.As(err, &status) {
		if code := int(status.Status().Code); code != 0 {
			return code
		}
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("Unable to send JSON response", logger.SlogErr(err))
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Message: err.Error(), Code: code})
}
