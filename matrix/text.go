// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: Aligned text table for an AdjacencyMatrix.
// Layout (cell width w, default 4):
//
//	      8     9    10          <- (w+2) spaces, then labels right-aligned to w, "  "-separated
//	------------------------     <- dashes, as wide as the header
//	   8 |    0     3     7      <- label, " | ", weights right-aligned to w
//
// Determinism:
//   - Rows and columns follow display order.
//   - w grows to fit the widest label or weight, measured in terminal cells
//     (go-runewidth), so non-ASCII labels stay aligned.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultCellWidth is the minimum width of a rendered cell.
const DefaultCellWidth = 4

// TextOption customizes Render.
type TextOption func(*textOptions)

type textOptions struct {
	cellWidth int
}

// WithCellWidth sets the minimum cell width. Panics if w < 1.
func WithCellWidth(w int) TextOption {
	if w < 1 {
		panic(fmt.Sprintf("matrix: WithCellWidth(%d): width must be >= 1", w))
	}

	return func(o *textOptions) { o.cellWidth = w }
}

// Text renders the matrix with default options. An empty matrix renders "".
func (m *AdjacencyMatrix) Text() string { return m.Render() }

// Render renders the matrix as an aligned table with row and column headers.
// Lines are joined by "\n" with no trailing newline.
// Complexity: O(V²).
func (m *AdjacencyMatrix) Render(opts ...TextOption) string {
	o := textOptions{cellWidth: DefaultCellWidth}
	for _, opt := range opts {
		opt(&o)
	}
	n := len(m.Nodes)
	if n == 0 {
		return ""
	}

	labels := make([]string, n)
	cells := make([][]string, n)
	w := o.cellWidth
	for i, v := range m.Nodes {
		labels[i] = v.String()
		w = max(w, runewidth.StringWidth(labels[i]))
		cells[i] = make([]string, n)
		for j, x := range m.Data.Row(i) {
			cells[i][j] = strconv.FormatInt(x, 10)
			w = max(w, len(cells[i][j]))
		}
	}

	var b strings.Builder
	header := strings.Repeat(" ", w+2) + joinPadded(labels, w)
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(header)))
	for i := range m.Nodes {
		b.WriteByte('\n')
		b.WriteString(runewidth.FillLeft(labels[i], w))
		b.WriteString(" | ")
		b.WriteString(joinPadded(cells[i], w))
	}

	return b.String()
}

// joinPadded right-aligns each item to w cells and joins them with two spaces.
func joinPadded(items []string, w int) string {
	padded := make([]string, len(items))
	for i, s := range items {
		padded[i] = runewidth.FillLeft(s, w)
	}

	return strings.Join(padded, "  ")
}
