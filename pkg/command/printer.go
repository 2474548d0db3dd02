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

package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"

	"github.com/deckhouse/virtualization-console/pkg/actions"
	"github.com/deckhouse/virtualization-console/pkg/export"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected one of: %s", format, strings.Join([]string{outputTable, outputJSON, outputYAML}, ", "))
	}
}

func printDescriptors(w io.Writer, format string, descriptors []actions.Descriptor) error {
	switch format {
	case outputJSON:
		return printJSON(w, actions.Nest(descriptors))
	case outputYAML:
		return printYAML(w, actions.Nest(descriptors))
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Action", "Name", "Menu", "State", "Description"}
	withReview := len(descriptors) > 0 && descriptors[0].Allowed != nil
	if withReview {
		header = append(header, "Allowed")
	}
	t.AppendHeader(header)

	for _, d := range descriptors {
		row := table.Row{d.ID.Alias(), d.Label, d.Menu, stateString(d.Disabled), d.Description}
		if withReview {
			row = append(row, allowedString(d.Allowed))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func printExportResult(w io.Writer, format string, result *export.Result) error {
	switch format {
	case outputJSON:
		return printJSON(w, result)
	case outputYAML:
		return printYAML(w, result)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Export in %s", result.Namespace)
	t.AppendHeader(table.Row{"Step", "Outcome"})
	for _, step := range result.Steps {
		t.AppendRow(table.Row{step.Step, outcomeString(step.Outcome)})
	}
	// Footers are upper-cased by the style, object names must stay as is.
	t.AppendSeparator()
	t.AppendRow(table.Row{"Uploader pod", result.PodName})
	t.AppendRow(table.Row{"Export id", result.ID})
	t.Render()
	return nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func stateString(disabled bool) string {
	if disabled {
		return color.RedString("disabled")
	}
	return color.GreenString("enabled")
}

func allowedString(allowed *bool) string {
	switch {
	case allowed == nil:
		return ""
	case *allowed:
		return color.GreenString("yes")
	default:
		return color.RedString("no")
	}
}

func outcomeString(outcome export.Outcome) string {
	if outcome == export.OutcomeAlreadyExists {
		return color.YellowString(string(outcome))
	}
	return color.GreenString(string(outcome))
}
