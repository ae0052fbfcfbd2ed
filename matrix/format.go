// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "[ "
	_fmtCell     = "\t"
	_fmtRowBreak = "\n  "
	_fmtClose    = "\t ]\n"
)

// Format renders m as a bracketed, row-delimited block:
//
//	[ 	1	2
//	  	3	4	 ]
//
// Every cell is preceded by a tab; rows after the first start on a new line
// indented by two spaces. Informational only: the output is not meant to be
// parsed back. A nil matrix renders as "[ ]\n".
//
// Complexity: O(r*c).
func Format[T Element](m Matrix[T]) string {
	return FormatFunc(m, func(v T) string { return fmt.Sprint(v) })
}

// FormatFunc is Format with a caller-supplied cell formatter.
func FormatFunc[T Element](m Matrix[T], cell func(T) string) string {
	if isNil(m) {
		return "[ ]\n"
	}
	var b strings.Builder
	r, c := m.Rows(), m.Cols()
	b.WriteString(_fmtOpen)
	for i := 0; i < r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		for j := 0; j < c; j++ {
			b.WriteString(_fmtCell)
			b.WriteString(cell(m.At(i, j)))
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Fprint writes Format(m) to w.
func Fprint[T Element](w io.Writer, m Matrix[T]) error {
	_, err := io.WriteString(w, Format(m))

	return err
}
