// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lpsolve/matrix"
)

// problemFile is the on-disk (YAML) and on-stdin (text) form of an LP.
type problemFile struct {
	Mode          string      `yaml:"mode"`
	Objective     []float64   `yaml:"objective"`
	Constraints   [][]float64 `yaml:"constraints"`
	RHS           []float64   `yaml:"rhs"`
	Start         []float64   `yaml:"start,omitempty"`
	Tolerance     *float64    `yaml:"tolerance,omitempty"`
	Alphas        []float64   `yaml:"alphas,omitempty"`
	MaxIterations int         `yaml:"maxIterations,omitempty"`
}

// transportFile is the on-disk (YAML) and on-stdin (text) form of a
// transportation instance.
type transportFile struct {
	Costs     [][]float64 `yaml:"costs"`
	Supply    []float64   `yaml:"supply"`
	Demand    []float64   `yaml:"demand"`
	Tolerance *float64    `yaml:"tolerance,omitempty"`
}

// openInput returns the named file, or stdin when path is empty or "-".
func openInput(path string, stdin io.Reader) (io.Reader, func() error, bool, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, false, err
	}

	return f, f.Close, true, nil
}

// decodeYAML strictly decodes a single YAML document into out.
func decodeYAML(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	return nil
}

// readTextProblem reads the interactive text layout:
//
//	mode line (max | min)
//	objective line
//	constraint rows, terminated by a blank line
//	rhs line
//	start line      (optional)
//	tolerance line  (optional)
func readTextProblem(r io.Reader) (*problemFile, error) {
	sc := bufio.NewScanner(r)
	pf := &problemFile{}

	mode, err := nextLine(sc)
	if err != nil {
		return nil, fmt.Errorf("mode: %w", err)
	}
	pf.Mode = mode

	if pf.Objective, err = scanValues(sc); err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	a, err := matrix.ScanMatrix(sc)
	if err != nil {
		return nil, fmt.Errorf("constraints: %w", err)
	}
	pf.Constraints = denseRows(a)
	if pf.RHS, err = scanValues(sc); err != nil {
		return nil, fmt.Errorf("rhs: %w", err)
	}

	// optional trailing sections
	if pf.Start, err = scanValues(sc); err != nil && !errors.Is(err, matrix.ErrBadShape) {
		return nil, fmt.Errorf("start: %w", err)
	}
	line, err := nextLine(sc)
	switch {
	case errors.Is(err, io.EOF):
		return pf, nil
	case err != nil:
		return nil, fmt.Errorf("tolerance: %w", err)
	}
	eps, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return nil, fmt.Errorf("tolerance %q: %w", line, matrix.ErrParse)
	}
	pf.Tolerance = &eps

	return pf, nil
}

// readTextTransport reads supply line, demand line, then the cost rows.
func readTextTransport(r io.Reader) (*transportFile, error) {
	sc := bufio.NewScanner(r)
	tf := &transportFile{}
	var err error
	if tf.Supply, err = scanValues(sc); err != nil {
		return nil, fmt.Errorf("supply: %w", err)
	}
	if tf.Demand, err = scanValues(sc); err != nil {
		return nil, fmt.Errorf("demand: %w", err)
	}
	costs, err := matrix.ScanMatrix(sc)
	if err != nil {
		return nil, fmt.Errorf("costs: %w", err)
	}
	tf.Costs = denseRows(costs)

	return tf, nil
}

// nextLine returns the next non-blank trimmed line or io.EOF.
func nextLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func scanValues(sc *bufio.Scanner) ([]float64, error) {
	v, err := matrix.ScanVector(sc)
	if err != nil {
		return nil, err
	}

	return matrix.Values(v), nil
}

func denseRows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		row, _ := m.Row(i) // i < Rows
		out[i] = matrix.Values(row)
	}

	return out
}
