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

package patch

import "encoding/json"

const (
	PatchAddOp     = "add"
	PatchRemoveOp  = "remove"
	PatchReplaceOp = "replace"
)

type JSONPatch struct {
	operations []JSONPatchOperation
}

type JSONPatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

func NewJSONPatch(patches ...JSONPatchOperation) *JSONPatch {
	return &JSONPatch{
		operations: patches,
	}
}

func NewJSONPatchOperation(op, path string, value interface{}) JSONPatchOperation {
	return JSONPatchOperation{
		Op:    op,
		Path:  path,
		Value: value,
	}
}

func WithAdd(path string, value interface{}) JSONPatchOperation {
	return NewJSONPatchOperation(PatchAddOp, path, value)
}

func WithRemove(path string) JSONPatchOperation {
	return NewJSONPatchOperation(PatchRemoveOp, path, nil)
}

func WithReplace(path string, value interface{}) JSONPatchOperation {
	return NewJSONPatchOperation(PatchReplaceOp, path, value)
}

func (jp *JSONPatch) Append(patches ...JSONPatchOperation) {
	jp.operations = append(jp.operations, patches...)
}

func (jp *JSONPatch) Bytes() ([]byte, error) {
	return json.Marshal(jp.operations)
}
