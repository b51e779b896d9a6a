// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lpsolve/affine"
	"github.com/katalvlaran/lpsolve/lp"
	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/simplex"
	"github.com/katalvlaran/lpsolve/tolerance"
)

const (
	methodSimplex = "simplex"
	methodAffine  = "affine"
	methodAll     = "all"
)

// defaultAlphas are the affine-scaling step fractions tried when neither the
// flags nor the problem file name any.
var defaultAlphas = []float64{0.5, 0.9}

// SolveFlags are the command-line inputs of the simplex / affine / all commands.
type SolveFlags struct {
	File          string
	Mode          string
	Tolerance     float64
	Alphas        []float64
	MaxIterations int
	TieBreak      string
}

// NewSolveFlags returns flags with their documented defaults.
func NewSolveFlags() *SolveFlags {
	return &SolveFlags{
		Tolerance:     tolerance.DefaultEpsilon,
		MaxIterations: lp.DefaultMaxIterations,
		TieBreak:      simplex.PreferLowestIndex.String(),
	}
}

// BindFlags registers the flags on fs.
func (f *SolveFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.File, "file", "f", f.File, "YAML problem file; reads the text layout from stdin when empty or '-'")
	fs.StringVar(&f.Mode, "mode", f.Mode, "Override the optimization mode: max or min")
	fs.Float64Var(&f.Tolerance, "tolerance", f.Tolerance, "Comparison tolerance ε (overrides the problem file)")
	fs.Float64SliceVar(&f.Alphas, "alpha", f.Alphas, "Affine-scaling step fraction in (0,1); repeatable")
	fs.IntVar(&f.MaxIterations, "max-iterations", f.MaxIterations, "Iteration cap per solver run")
	fs.StringVar(&f.TieBreak, "tie-break", f.TieBreak, "Simplex tie-break: lowest or highest")
}

// SolveOptions is the validated, ready-to-run form of SolveFlags.
type SolveOptions struct {
	Method        string
	Problem       lp.Problem
	Start         matrix.Vector
	Tolerance     float64
	Alphas        []float64
	MaxIterations int
	TieBreak      simplex.TieBreak

	Out io.Writer
}

// ToOptions loads the problem and merges file values with explicitly set flags.
func (f *SolveFlags) ToOptions(method string, fs *pflag.FlagSet, in io.Reader, out io.Writer) (*SolveOptions, error) {
	r, closeFn, isFile, err := openInput(f.File, in)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var pf *problemFile
	if isFile {
		pf = &problemFile{}
		err = decodeYAML(r, pf)
	} else {
		pf, err = readTextProblem(r)
	}
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}

	modeName := pf.Mode
	if fs.Changed("mode") || modeName == "" {
		modeName = f.Mode
	}
	if modeName == "" {
		modeName = lp.Maximize.String()
	}
	mode, err := lp.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	problem, err := lp.NewProblem(mode, pf.Objective, pf.Constraints, pf.RHS)
	if err != nil {
		return nil, err
	}

	o := &SolveOptions{
		Method:        method,
		Problem:       problem,
		Tolerance:     f.Tolerance,
		Alphas:        f.Alphas,
		MaxIterations: f.MaxIterations,
		Out:           out,
	}
	if pf.Tolerance != nil && !fs.Changed("tolerance") {
		o.Tolerance = *pf.Tolerance
	}
	if len(pf.Alphas) > 0 && !fs.Changed("alpha") {
		o.Alphas = pf.Alphas
	}
	if len(o.Alphas) == 0 {
		o.Alphas = defaultAlphas
	}
	if pf.MaxIterations > 0 && !fs.Changed("max-iterations") {
		o.MaxIterations = pf.MaxIterations
	}
	if len(pf.Start) > 0 {
		o.Start = matrix.VectorOf(pf.Start...)
	}
	switch f.TieBreak {
	case simplex.PreferLowestIndex.String():
		o.TieBreak = simplex.PreferLowestIndex
	case simplex.PreferHighestIndex.String():
		o.TieBreak = simplex.PreferHighestIndex
	default:
		return nil, fmt.Errorf("--tie-break %q: %w", f.TieBreak, lp.ErrBadOption)
	}

	return o, o.Validate()
}

// Validate checks cross-field requirements.
func (o *SolveOptions) Validate() error {
	if err := tolerance.Validate(o.Tolerance); err != nil {
		return err
	}
	if o.Method != methodSimplex && o.Start == nil {
		return errors.New("the affine-scaling method needs a start point (start: in the file or the start line on stdin)")
	}

	return nil
}

// Run executes the selected methods and prints one report per run.
// Runs that are not applicable, and affine runs that fail numerically, are
// reported and do not stop the others.
func (o *SolveOptions) Run() error {
	if o.Method == methodSimplex || o.Method == methodAll {
		if err := o.runSimplex(); err != nil {
			return err
		}
	}
	if o.Method == methodAffine || o.Method == methodAll {
		for _, alpha := range o.Alphas {
			if err := o.runAffine(alpha); err != nil {
				return err
			}
		}
	}

	return nil
}

func (o *SolveOptions) runSimplex() error {
	s, err := simplex.New(o.Problem, simplex.Options{
		Tolerance:     o.Tolerance,
		TieBreak:      o.TieBreak,
		MaxIterations: o.MaxIterations,
	})
	if err != nil {
		return o.notApplicable("Simplex", err)
	}

	return o.drive("Simplex", s)
}

func (o *SolveOptions) runAffine(alpha float64) error {
	s, err := affine.New(o.Problem, o.Start, affine.Options{
		Alpha:         alpha,
		Tolerance:     o.Tolerance,
		MaxIterations: o.MaxIterations,
	})
	label := fmt.Sprintf("Interior Point, α=%g", alpha)
	if err != nil {
		return o.notApplicable(label, err)
	}
	err = o.drive(label, s)
	if errors.Is(err, matrix.ErrSingular) || errors.Is(err, matrix.ErrDimensionMismatch) {
		klog.Errorf("%v", err)
		fmt.Fprintf(o.Out, "An error occurred during Interior Point calculation: %v\n", err)

		return nil
	}

	return err
}

// drive runs s to termination with per-iteration progress at V(2).
func (o *SolveOptions) drive(label string, s lp.Solver) error {
	klog.V(1).Infof("%s: starting, mode=%v tolerance=%g", label, o.Problem.Mode, o.Tolerance)
	err := lp.Drive(s, o.MaxIterations, func(i int, s lp.Solver) {
		klog.V(2).Infof("%s: iteration %d value=%g", label, i, s.ObjectiveFunctionValue())
	})
	if err != nil {
		return o.notApplicable(label, err)
	}
	klog.Infof("%s: %v after %d iterations", label, s.State(), s.Iterations())

	return writeLPReport(o.Out, label, o.Problem, s, o.Tolerance)
}

// notApplicable prints the not-applicable line for application problems and
// passes every other error through.
func (o *SolveOptions) notApplicable(label string, err error) error {
	if errors.Is(err, lp.ErrApplicationProblem) {
		klog.Warningf("%s: %v", label, err)
		fmt.Fprintf(o.Out, "%s: the method is not applicable! (%v)\n", label, err)

		return nil
	}

	return fmt.Errorf("%s: %w", label, err)
}

// NewSolveCommand returns the simplex, affine or all subcommand.
func NewSolveCommand(method string, in io.Reader, out io.Writer) *cobra.Command {
	f := NewSolveFlags()
	short := map[string]string{
		methodSimplex: "Solve with the tableau simplex method",
		methodAffine:  "Solve with the affine-scaling interior-point method",
		methodAll:     "Solve with simplex and affine scaling and compare",
	}[method]

	cmd := &cobra.Command{
		Use:   method,
		Short: short,
		Long: short + `.

The problem is read from --file (YAML with the keys mode, objective,
constraints, rhs, start, tolerance, alphas, maxIterations) or from stdin in
the text layout: mode line, objective line, constraint rows followed by a
blank line, rhs line, start line, tolerance line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := f.ToOptions(method, cmd.Flags(), in, out)
			if err != nil {
				return err
			}

			return o.Run()
		},
	}
	f.BindFlags(cmd.Flags())

	return cmd
}
