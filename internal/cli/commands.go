// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gabp/internal/cli/config"
	"github.com/katalvlaran/gabp/matrix"
)

// ErrGaussNeedsFloat is returned by det --gauss with --element int.
var ErrGaussNeedsFloat = errors.New("cli: --gauss requires --element float")

// Operand flag names.
const (
	flagA = "a"
	flagB = "b"
)

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gmat v%s\n", version)
		},
	}
}

func newDetCmd() *cobra.Command {
	var (
		a     string
		gauss bool
	)
	cmd := &cobra.Command{
		Use:   "det",
		Short: "Print the determinant of a square matrix",
		Long: `Print the determinant of a square matrix.

The default method is cofactor expansion along the first row (exact for
integers, O(n!)). --gauss switches to Gaussian elimination with partial
pivoting and requires --element float.`,
		Example: `  gmat det --a "7,13;18,6"
  gmat det -e float --gauss --a "2,1;4,4"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if gauss {
				if cfg.Element != config.ElementFloat {
					return ErrGaussNeedsFloat
				}

				return runDetGauss(cmd, cfg, a)
			}
			if cfg.Element == config.ElementFloat {
				return runDet(cmd, cfg, a, parseFloat)
			}

			return runDet(cmd, cfg, a, parseInt)
		},
	}
	cmd.Flags().StringVar(&a, flagA, "", "Square matrix literal")
	cmd.Flags().BoolVar(&gauss, "gauss", false, "Use Gaussian elimination")
	_ = cmd.MarkFlagRequired(flagA)

	return cmd
}

func runDet[T numeric](cmd *cobra.Command, cfg *config.Config, lit string, parse func(string) (T, error)) error {
	m, err := ParseLiteral(lit, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	GetLogger(cmd.Context()).Debug("det", zap.Int("n", m.Rows()), zap.String("method", "cofactor"))
	d, err := matrix.Det[T](m)
	if err != nil {
		return err
	}

	return renderScalar(cmd.OutOrStdout(), cfg, d)
}

func runDetGauss(cmd *cobra.Command, cfg *config.Config, lit string) error {
	m, err := ParseLiteral(lit, parseFloat)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	GetLogger(cmd.Context()).Debug("det", zap.Int("n", m.Rows()), zap.String("method", "gauss"))
	d, err := matrix.DetGauss[float64](m)
	if err != nil {
		return err
	}

	return renderScalar(cmd.OutOrStdout(), cfg, d)
}

// binaryOp is matrix.Product or matrix.Sum.
type binaryOp[T numeric] func(left, right matrix.Matrix[T]) (*matrix.Dense[T], error)

func newBinaryCmd(use, short string, intOp binaryOp[int64], floatOp binaryOp[float64]) *cobra.Command {
	var a, b string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg.Element == config.ElementFloat {
				return runBinary(cmd, cfg, use, a, b, parseFloat, floatOp)
			}

			return runBinary(cmd, cfg, use, a, b, parseInt, intOp)
		},
	}
	cmd.Flags().StringVar(&a, flagA, "", "Left operand literal")
	cmd.Flags().StringVar(&b, flagB, "", "Right operand literal")
	_ = cmd.MarkFlagRequired(flagA)
	_ = cmd.MarkFlagRequired(flagB)

	return cmd
}

func runBinary[T numeric](cmd *cobra.Command, cfg *config.Config, name, litA, litB string,
	parse func(string) (T, error), op binaryOp[T]) error {
	left, err := ParseLiteral(litA, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	right, err := ParseLiteral(litB, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagB, err)
	}
	GetLogger(cmd.Context()).Debug(name,
		zap.Ints("left", []int{left.Rows(), left.Cols()}),
		zap.Ints("right", []int{right.Rows(), right.Cols()}),
	)
	out, err := op(left, right)
	if err != nil {
		return err
	}

	return renderMatrix[T](cmd.OutOrStdout(), cfg, out)
}

func newMulCmd() *cobra.Command {
	c := newBinaryCmd("mul", "Print the product a × b", matrix.Product[int64], matrix.Product[float64])
	c.Example = `  gmat mul --a "1,2;3,4" --b "5,6;7,8"`

	return c
}

func newAddCmd() *cobra.Command {
	c := newBinaryCmd("add", "Print the element-wise sum a + b", matrix.Sum[int64], matrix.Sum[float64])
	c.Example = `  gmat add --a "1,2" --b "3,4"`

	return c
}

func newInverseCmd() *cobra.Command {
	var a string
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the inverse of a square matrix",
		Long: `Print the inverse of a square matrix.

Prints "singular" and exits non-zero when no inverse is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg.Element == config.ElementFloat {
				return runInverse(cmd, cfg, a, parseFloat)
			}

			return runInverse(cmd, cfg, a, parseInt)
		},
	}
	cmd.Flags().StringVar(&a, flagA, "", "Square matrix literal")
	_ = cmd.MarkFlagRequired(flagA)

	return cmd
}

func runInverse[T numeric](cmd *cobra.Command, cfg *config.Config, lit string, parse func(string) (T, error)) error {
	m, err := ParseLiteral(lit, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	if err = matrix.ValidateSquare[T](m); err != nil {
		return err
	}
	dest, err := matrix.ZerosLike[T](m)
	if err != nil {
		return err
	}
	if !matrix.Inverse[T](m, dest) {
		GetLogger(cmd.Context()).Debug("inverse unavailable", zap.Int("n", m.Rows()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "singular")

		return fmt.Errorf("inverse: %w", matrix.ErrSingular)
	}

	return renderMatrix[T](cmd.OutOrStdout(), cfg, dest)
}

type viewArgs struct {
	lit        string
	rows, cols int
	oi, oj     int
}

func newViewCmd() *cobra.Command {
	var va viewArgs
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print a wraparound window of a matrix",
		Long: `Print a rows×cols window of a matrix starting at (row-offset, col-offset).

Indices wrap around the matrix edges; offsets may be negative. rows and
cols default to the matrix extents.`,
		Example: `  gmat view --a "1,2,3;4,5,6;7,8,9" --rows 2 --cols 2 --row-offset=-1 --col-offset 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg.Element == config.ElementFloat {
				return runView(cmd, cfg, va, parseFloat)
			}

			return runView(cmd, cfg, va, parseInt)
		},
	}
	cmd.Flags().StringVar(&va.lit, flagA, "", "Parent matrix literal")
	cmd.Flags().IntVar(&va.rows, "rows", 0, "View rows (default: parent rows)")
	cmd.Flags().IntVar(&va.cols, "cols", 0, "View columns (default: parent columns)")
	cmd.Flags().IntVar(&va.oi, "row-offset", 0, "Row offset into the parent")
	cmd.Flags().IntVar(&va.oj, "col-offset", 0, "Column offset into the parent")
	_ = cmd.MarkFlagRequired(flagA)

	return cmd
}

func runView[T numeric](cmd *cobra.Command, cfg *config.Config, va viewArgs, parse func(string) (T, error)) error {
	m, err := ParseLiteral(va.lit, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	rows, cols := va.rows, va.cols
	if rows == 0 {
		rows = m.Rows()
	}
	if cols == 0 {
		cols = m.Cols()
	}
	v, err := m.View(rows, cols, va.oi, va.oj)
	if err != nil {
		return err
	}
	oi, oj := v.Offset()
	GetLogger(cmd.Context()).Debug("view",
		zap.Int("rows", rows), zap.Int("cols", cols),
		zap.Int("rowOffset", oi), zap.Int("colOffset", oj),
	)

	return renderMatrix[T](cmd.OutOrStdout(), cfg, v)
}

func newTransposeCmd() *cobra.Command {
	var a string
	cmd := &cobra.Command{
		Use:     "transpose",
		Short:   "Print the transpose of a matrix",
		Example: `  gmat transpose --a "1,2,3;4,5,6"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg.Element == config.ElementFloat {
				return runTranspose(cmd, cfg, a, parseFloat)
			}

			return runTranspose(cmd, cfg, a, parseInt)
		},
	}
	cmd.Flags().StringVar(&a, flagA, "", "Matrix literal")
	_ = cmd.MarkFlagRequired(flagA)

	return cmd
}

func runTranspose[T numeric](cmd *cobra.Command, cfg *config.Config, lit string, parse func(string) (T, error)) error {
	m, err := ParseLiteral(lit, parse)
	if err != nil {
		return fmt.Errorf("--%s: %w", flagA, err)
	}
	out, err := matrix.Transpose[T](m)
	if err != nil {
		return err
	}

	return renderMatrix[T](cmd.OutOrStdout(), cfg, out)
}
