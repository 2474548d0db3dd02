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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/export"
	"github.com/deckhouse/virtualization-console/pkg/logger"
)

type actionList struct {
	Items []actions.Descriptor `json:"items"`
	Menu  []actions.MenuEntry      `json:"menu"`
}

type actionOutput struct {
	Output string `json:"output"`
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *APIServer) listActions(w http.ResponseWriter, r *http.Request) {
	log, ctx := logger.GetHandlerContext(r.Context(), "listActions")
	vars := mux.Vars(r)

	review := false
	if raw := r.URL.Query().Get("review"); raw != "" {
		var err error
		review, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	descriptors, err := s.console.Descriptors(ctx, vars["namespace"], vars["name"], actions.Params{}, review)
	if err != nil {
		log.Debug("Failed to build actions", logger.SlogErr(err))
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, actionList{Items: descriptors, Menu: actions.Nest(descriptors)})
}

func (s *APIServer) runAction(w http.ResponseWriter, r *http.Request) {
	log, ctx := logger.GetHandlerContext(r.Context(), "runAction")
	vars := mux.Vars(r)

	id, err := actions.ParseID(vars["action"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var params actions.Params
	if err = decodeBody(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var out bytes.Buffer
	params.Output = &out

	err = s.console.Run(ctx, vars["namespace"], vars["name"], id, params)
	if err != nil {
		log.Debug("Failed to run action", logger.SlogAction(string(id)), logger.SlogErr(err))
		writeError(w, statusForError(err), err)
		return
	}

	if out.Len() > 0 {
		writeJSON(w, http.StatusOK, actionOutput{Output: out.String()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type exportRequest struct {
	VolumeName   string `json:"volumeName"`
	Destination  string `json:"destination"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	RegistryName string `json:"registryName,omitempty"`
}

func (s *APIServer) exportDisk(w http.ResponseWriter, r *http.Request) {
	log, ctx := logger.GetHandlerContext(r.Context(), "exportDisk")
	vars := mux.Vars(r)

	var body exportRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	vm, err := s.console.VirtualMachine(ctx, vars["namespace"], vars["name"])
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	result, err := s.exporter.Export(ctx, export.Request{
		VM:           vm,
		VolumeName:   body.VolumeName,
		Destination:  body.Destination,
		Username:     body.Username,
		Password:     body.Password,
		RegistryName: body.RegistryName,
	})
	if err != nil {
		log.Debug("Failed to export disk", logger.SlogErr(err))
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusAccepted, result)
}

// decodeBody accepts an empty body as zero value.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
