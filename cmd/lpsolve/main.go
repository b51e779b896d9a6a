// SPDX-License-Identifier: MIT

// lpsolve reads a linear program (or a transportation instance) and prints
// the results of the simplex, affine-scaling or transportation heuristics.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := NewLPSolveCommand(os.Stdin, os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		klog.Flush()
		os.Exit(1)
	}
}
