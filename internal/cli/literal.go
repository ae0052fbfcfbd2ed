// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gabp/matrix"
)

// Literal syntax: rows separated by ';', cells by ','.
const (
	rowSep  = ";"
	cellSep = ","
)

var (
	// ErrEmptyLiteral is returned for an empty or blank matrix literal.
	ErrEmptyLiteral = errors.New("cli: empty matrix literal")

	// ErrRaggedLiteral is returned when rows have different cell counts.
	ErrRaggedLiteral = errors.New("cli: ragged matrix literal")

	// ErrBadCell is returned when a cell does not parse as the element type.
	ErrBadCell = errors.New("cli: bad matrix cell")
)

// ParseLiteral parses a literal such as "7,13;18,6" into a new Dense, using
// parse for every cell. Whitespace around cells is ignored.
func ParseLiteral[T matrix.Element](lit string, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return nil, ErrEmptyLiteral
	}

	rows := strings.Split(lit, rowSep)
	cols := -1
	data := make([]T, 0, len(rows)*len(rows))
	for i, row := range rows {
		cells := strings.Split(row, cellSep)
		if cols < 0 {
			cols = len(cells)
		} else if len(cells) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(cells), cols, ErrRaggedLiteral)
		}
		for j, cell := range cells {
			cell = strings.TrimSpace(cell)
			v, err := parse(cell)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w: %w", i, j, cell, ErrBadCell, err)
			}
			data = append(data, v)
		}
	}

	return matrix.NewDenseFrom(len(rows), cols, data)
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
