// SPDX-License-Identifier: MIT

package matrix

const (
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// Transpose returns a new Dense where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): fast-path for *Dense or fallback to the interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose[T Element](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.At(i, j)
		}
	}

	return res, nil
}

// Scale returns a new Dense where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale[T Element](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := Materialize(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}
