// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
)

// NewLPSolveCommand returns the root command; problems are read from in when
// no --file is given and reports are written to out.
func NewLPSolveCommand(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve linear programs and transportation problems",
		Long: `lpsolve solves

  maximize / minimize  c·x  subject to  A·x ≤ b, x ≥ 0

with the tableau simplex method and the affine-scaling interior-point
method, and builds initial transportation plans with the North-West corner,
Vogel and Russell rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.AddCommand(
		NewSolveCommand(methodSimplex, in, out),
		NewSolveCommand(methodAffine, in, out),
		NewSolveCommand(methodAll, in, out),
		NewTransportCommand(in, out),
	)

	return cmd
}
