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

	"github.com/deckhouse/virtualization-console/pkg/accessreview"
)

// Descriptor is a single entry of the action menu built for one virtual machine.
type Descriptor struct {
	ID           ID                              `json:"id"`
	Label        string                          `json:"label"`
	Description  string                          `json:"description,omitempty"`
	Disabled     bool                            `json:"disabled"`
	Menu         string                          `json:"menu,omitempty"`
	AccessReview accessreview.Review             `json:"accessReview"`
	Allowed      *bool                           `json:"allowed,omitempty"`
	Invoke       func(ctx context.Context) error `json:"-"`
}

// Menu is a nested group of descriptors.
type Menu struct {
	ID      string       `json:"id"`
	Label   string       `json:"label"`
	Options []Descriptor `json:"options"`
}

var menuLabels = map[string]string{
	MenuMigration: "Migration",
}

// MenuEntry is either a top level descriptor or a nested menu.
type MenuEntry struct {
	Action *Descriptor `json:"action,omitempty"`
	Menu   *Menu       `json:"menu,omitempty"`
}

// Nest groups descriptors sharing a menu id into a single Menu entry placed where the first of them was.
func Nest(descriptors []Descriptor) []MenuEntry {
	var entries []MenuEntry
	menus := make(map[string]int)

	for _, d := range descriptors {
		if d.Menu == "" {
			entries = append(entries, MenuEntry{Action: &d})
			continue
		}

		idx, ok := menus[d.Menu]
		if !ok {
			idx = len(entries)
			menus[d.Menu] = idx
			entries = append(entries, MenuEntry{Menu: &Menu{ID: d.Menu, Label: menuLabels[d.Menu]}})
		}
		entries[idx].Menu.Options = append(entries[idx].Menu.Options, d)
	}

	return entries
}

// Find returns the descriptor with the given id.
func Find(descriptors []Descriptor, id ID) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
