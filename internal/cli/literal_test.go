// SPDX-License-Identifier: MIT

package cli_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gabp/internal/cli"
	"github.com/katalvlaran/gabp/matrix"
)

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func TestParseLiteral(t *testing.T) {
	m, err := cli.ParseLiteral(" 7, 13 ; 18,6 ", parseInt)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []int64{7, 13, 18, 6}, m.Data())

	row, err := cli.ParseLiteral("1,2,3", parseInt)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())

	col, err := cli.ParseLiteral("1;2;3", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	require.NoError(t, err)
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())
}

func TestParseLiteral_Errors(t *testing.T) {
	tests := []struct {
		name string
		lit  string
		want error
	}{
		{name: "empty", lit: "", want: cli.ErrEmptyLiteral},
		{name: "blank", lit: "   ", want: cli.ErrEmptyLiteral},
		{name: "ragged", lit: "1,2;3", want: cli.ErrRaggedLiteral},
		{name: "not a number", lit: "1,x;3,4", want: cli.ErrBadCell},
		{name: "empty cell", lit: "1,,2", want: cli.ErrBadCell},
		{name: "trailing row separator", lit: "1,2;", want: cli.ErrRaggedLiteral},
		{name: "float for int", lit: "1.5", want: cli.ErrBadCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := cli.ParseLiteral(tt.lit, parseInt)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, m)
		})
	}
}

func TestParseLiteral_Independent(t *testing.T) {
	a, err := cli.ParseLiteral("1,2;3,4", parseInt)
	require.NoError(t, err)
	b, err := cli.ParseLiteral("1,2;3,4", parseInt)
	require.NoError(t, err)
	a.Set(0, 0, 9)
	require.False(t, matrix.Equal[int64](a, b))
}
