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

// ID identifies an action in the virtual machine action menu.
type ID string

const (
	Start                  ID = "vm-action-start"
	Stop                   ID = "vm-action-stop"
	ForceStop              ID = "vm-action-force-stop"
	Pause                  ID = "vm-action-pause"
	Unpause                ID = "vm-action-unpause"
	Restart                ID = "vm-action-restart"
	MigrateCompute         ID = "vm-action-migrate"
	CancelMigrationCompute ID = "vm-action-cancel-migrate"
	Clone                  ID = "vm-action-clone"
	Delete                 ID = "vm-action-delete"
	Snapshot               ID = "vm-action-snapshot"
	EditLabels             ID = "vm-action-edit-labels"
	EditAnnotations        ID = "vm-action-edit-annotations"
	CopySSHCommand         ID = "vm-action-copy-ssh"
	MigrateStorage         ID = "vm-migrate-storage"
)

// MenuMigration groups compute and storage migration actions.
const MenuMigration = "migration-menu"

// All lists actions in menu order.
var All = []ID{
	Start,
	Stop,
	ForceStop,
	Restart,
	Pause,
	Unpause,
	Clone,
	Snapshot,
	MigrateCompute,
	MigrateStorage,
	CancelMigrationCompute,
	CopySSHCommand,
	EditLabels,
	EditAnnotations,
	Delete,
}

// aliases maps short CLI names to action ids.
var aliases = map[string]ID{
	"start":            Start,
	"stop":             Stop,
	"force-stop":       ForceStop,
	"pause":            Pause,
	"unpause":          Unpause,
	"restart":          Restart,
	"migrate":          MigrateCompute,
	"cancel-migration": CancelMigrationCompute,
	"clone":            Clone,
	"delete":           Delete,
	"snapshot":         Snapshot,
	"edit-labels":      EditLabels,
	"edit-annotations": EditAnnotations,
	"copy-ssh":         CopySSHCommand,
	"migrate-storage":  MigrateStorage,
}

// ParseID accepts either a full action id or its short alias.
func ParseID(s string) (ID, error) {
	if id, ok := aliases[s]; ok {
		return id, nil
	}
	for _, id := range All {
		if string(id) == s {
			return id, nil
		}
	}
	return "", ErrUnknownAction
}

// Alias returns the short name of the action.
func (id ID) Alias() string {
	for alias, aliased := range aliases {
		if aliased == id {
			return alias
		}
	}
	return string(id)
}
