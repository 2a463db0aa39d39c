// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().Padding(0, 1)
	// durations are right aligned so magnitudes line up
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// WriteRaw writes the mean of every stage in nanoseconds, one per line.
func (r *Report) WriteRaw(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, res.Mean.Nanoseconds()); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the report as a table.
func (r *Report) Render() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("CONTAINER", "OPERATION", "MEAN (ns)", "TARGET FOUND").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, res := range r.Results {
		found := "-"
		if res.Operation != "insert" {
			found = strconv.FormatBool(res.Found)
		}
		t.Row(res.Container, res.Operation, strconv.FormatInt(res.Mean.Nanoseconds(), 10), found)
	}

	title := fmt.Sprintf("%d points, target %s", r.Points, r.Target)
	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), t.Render())
}
