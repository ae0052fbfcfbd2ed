// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/gabp/internal/cli/config"
	"github.com/katalvlaran/gabp/matrix"
)

// numeric is the subset of matrix.Element the CLI accepts.
type numeric interface {
	int64 | float64
}

// cellFormatter returns the per-cell formatter for the configured precision.
func cellFormatter[T numeric](precision int) func(T) string {
	return func(v T) string {
		switch x := any(v).(type) {
		case int64:
			return strconv.FormatInt(x, 10)
		case float64:
			return strconv.FormatFloat(x, 'g', precision, 64)
		default:
			return fmt.Sprint(v)
		}
	}
}

// renderMatrix writes m to w in the configured output mode.
func renderMatrix[T numeric](w io.Writer, cfg *config.Config, m matrix.Matrix[T]) error {
	cell := cellFormatter[T](cfg.Precision)
	if cfg.Output == config.OutputTable {
		renderTable(w, m, cell)

		return nil
	}
	_, err := io.WriteString(w, matrix.FormatFunc(m, cell))

	return err
}

// renderTable draws m as a grid with row and column indices.
func renderTable[T numeric](w io.Writer, m matrix.Matrix[T], cell func(T) string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	r, c := m.Rows(), m.Cols()
	header := make(table.Row, c+1)
	header[0] = ""
	for j := 0; j < c; j++ {
		header[j+1] = j
	}
	t.AppendHeader(header)

	for i := 0; i < r; i++ {
		row := make(table.Row, c+1)
		row[0] = i
		for j := 0; j < c; j++ {
			row[j+1] = cell(m.At(i, j))
		}
		t.AppendRow(row)
	}

	t.Render()
}

// renderScalar writes a single value followed by a newline.
func renderScalar[T numeric](w io.Writer, cfg *config.Config, v T) error {
	_, err := fmt.Fprintln(w, cellFormatter[T](cfg.Precision)(v))

	return err
}
