// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/lpsolve/matrix"
	"github.com/katalvlaran/lpsolve/tolerance"
	"github.com/katalvlaran/lpsolve/transport"
)

// TransportFlags are the command-line inputs of the transport command.
type TransportFlags struct {
	File      string
	Method    string
	Tolerance float64
}

// NewTransportFlags returns flags with their documented defaults.
func NewTransportFlags() *TransportFlags {
	return &TransportFlags{Method: methodAll, Tolerance: tolerance.DefaultEpsilon}
}

// BindFlags registers the flags on fs.
func (f *TransportFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.File, "file", "f", f.File, "YAML transportation file; reads the text layout from stdin when empty or '-'")
	fs.StringVar(&f.Method, "method", f.Method, "nw, vogel, russell or all")
	fs.Float64Var(&f.Tolerance, "tolerance", f.Tolerance, "Balance and exhaustion tolerance ε (overrides the file)")
}

// TransportOptions is the validated form of TransportFlags.
type TransportOptions struct {
	Problem   transport.Problem
	Methods   []transport.Method
	Tolerance float64

	Out io.Writer
}

// ToOptions loads the instance and resolves the method list.
func (f *TransportFlags) ToOptions(fs *pflag.FlagSet, in io.Reader, out io.Writer) (*TransportOptions, error) {
	r, closeFn, isFile, err := openInput(f.File, in)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var tf *transportFile
	if isFile {
		tf = &transportFile{}
		err = decodeYAML(r, tf)
	} else {
		tf, err = readTextTransport(r)
	}
	if err != nil {
		return nil, fmt.Errorf("read transportation problem: %w", err)
	}
	costs, err := matrix.NewDenseFrom(tf.Costs)
	if err != nil {
		return nil, fmt.Errorf("costs: %w", err)
	}

	o := &TransportOptions{
		Problem:   transport.Problem{Costs: costs, Supply: tf.Supply, Demand: tf.Demand},
		Tolerance: f.Tolerance,
		Out:       out,
	}
	if tf.Tolerance != nil && !fs.Changed("tolerance") {
		o.Tolerance = *tf.Tolerance
	}
	if f.Method == methodAll {
		o.Methods = transport.Methods()
	} else {
		m, err := transport.ParseMethod(f.Method)
		if err != nil {
			return nil, err
		}
		o.Methods = []transport.Method{m}
	}

	return o, tolerance.Validate(o.Tolerance)
}

// Run builds and prints one plan per method.
func (o *TransportOptions) Run() error {
	for _, m := range o.Methods {
		plan, err := transport.Solve(o.Problem, m, o.Tolerance)
		if err != nil {
			if errors.Is(err, transport.ErrUnbalanced) {
				fmt.Fprintln(o.Out, "The problem is not balanced!")

				return nil
			}

			return fmt.Errorf("%v: %w", m, err)
		}
		klog.V(1).Infof("transport %v: %d basic cells, cost %g", m, len(plan.Basis), plan.Cost)
		if err = writeTransportReport(o.Out, m, plan); err != nil {
			return err
		}
	}

	return nil
}

// NewTransportCommand returns the transport subcommand.
func NewTransportCommand(in io.Reader, out io.Writer) *cobra.Command {
	f := NewTransportFlags()
	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Build initial transportation plans (North-West, Vogel, Russell)",
		Long: `Build initial basic feasible plans for a balanced transportation problem.

The instance is read from --file (YAML with the keys costs, supply, demand,
tolerance) or from stdin in the text layout: supply line, demand line, cost
rows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := f.ToOptions(cmd.Flags(), in, out)
			if err != nil {
				return err
			}

			return o.Run()
		},
	}
	f.BindFlags(cmd.Flags())

	return cmd
}
