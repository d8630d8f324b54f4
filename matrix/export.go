// SPDX-License-Identifier: MIT

// Package matrix - exports to JSON and to gonum.
//
// JSON shape: {"rows":R,"cols":C,"data":[[...],...]} with R rows of C values.

package matrix

import (
	"fmt"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// jsonMatrix is the wire form used by MarshalJSON/UnmarshalJSON.
type jsonMatrix struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data [][]int32 `json:"data"`
}

// MarshalJSON encodes the matrix row by row. A released matrix encodes as
// zero rows and columns with empty data.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	out := jsonMatrix{Rows: m.Rows(), Cols: m.Cols(), Data: make([][]int32, m.Rows())}
	for i := range out.Data {
		out.Data[i] = m.data[i*m.c : (i+1)*m.c]
	}

	return json.Marshal(out)
}

// UnmarshalJSON replaces the receiver with the decoded matrix.
// The document must be rectangular with positive dimensions that match
// its rows/cols fields; otherwise ErrBadJSON is returned and m is unchanged.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var in jsonMatrix
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if err := checkShape(in.Rows, in.Cols); err != nil {
		return fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	if len(in.Data) != in.Rows {
		return fmt.Errorf("%w: %d rows declared, %d present", ErrBadJSON, in.Rows, len(in.Data))
	}
	data := make([]int32, 0, in.Rows*in.Cols)
	for i, row := range in.Data {
		if len(row) != in.Cols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrBadJSON, i, len(row), in.Cols)
		}
		data = append(data, row...)
	}
	m.r, m.c, m.data = in.Rows, in.Cols, data

	return nil
}

// ToDense copies the matrix into a float64 gonum Dense for linear-algebra
// interop and formatted printing.
//
// Errors:
//   - ErrNilMatrix for a nil or released matrix.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if !m.live() {
		return nil, ErrNilMatrix
	}
	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}
