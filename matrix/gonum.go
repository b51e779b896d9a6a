// SPDX-License-Identifier: MIT

// Package matrix - interoperability with gonum.org/v1/gonum/mat.
//
// Conversions always copy; a gonum value never aliases a *Dense buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// ToGonum copies m into a new *mat.Dense. An empty m yields an empty &mat.Dense{}.
func ToGonum(m Matrix) *mat.Dense {
	if isNil(m) || m.Rows() == 0 || m.Cols() == 0 {
		return &mat.Dense{}
	}
	dm, err := asDense(m)
	if err != nil {
		return &mat.Dense{}
	}
	rows, cols := dm.Rows(), dm.Cols()

	return mat.NewDense(rows, cols, dm.copyDense().data)
}

// VectorToGonum copies v into a new *mat.VecDense (empty for an empty v).
func VectorToGonum(v Vector) *mat.VecDense {
	vals := Values(v)
	if len(vals) == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(len(vals), vals)
}

// FromGonum copies any gonum matrix into a new *Dense.
// Errors: ErrNilMatrix; ErrInvalidDimensions for an empty source; ErrNaNInf under the policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNil(src) {
		return nil, fmt.Errorf("%s: %w", opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	out, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", opFromGonum, err)
			}
		}
	}

	return out, nil
}
