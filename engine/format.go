// Copyright © 2024 The miniql Authors
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

package engine

import "strings"

// Format renders headers and rows as a bordered, left-aligned table:
// column width is max(header length, max data cell length, 3), with a
// cell whose text is exactly "NULL" treated as zero-width — this
// deliberately conflates SQL NULL with the literal string "NULL".
func Format(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			w := len(cell)
			if cell == "NULL" {
				w = 0
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var b strings.Builder
	b.WriteString(formatRow(headers, widths))
	b.WriteByte('\n')

	b.WriteByte('|')
	for _, w := range widths {
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}
	b.WriteByte('\n')

	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteByte('\n')
	}

	return b.String()
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		display := cell
		if cell == "NULL" {
			display = ""
		}
		padding := widths[i] - len(display)
		b.WriteByte(' ')
		b.WriteString(display)
		b.WriteString(strings.Repeat(" ", padding+1))
		b.WriteByte('|')
	}
	return b.String()
}
