// Command polycalc evaluates polynomial expressions and finds their real
// roots from the command line.
//
// Examples:
//
//	polycalc eval "(x+1)*(x-1)"
//	polycalc eval -x 2.5 "x^3 - 2*x + 1"
//	polycalc roots "(x-3)^3 * (x-2)^2 * (x-1)"
//	polycalc squarefree "x^2 * (x^2+2)^3"
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-poly/algebra"
	"github.com/cwbudde/algo-poly/parser"
	"github.com/cwbudde/algo-poly/poly"
	"github.com/cwbudde/algo-poly/roots"
)

var (
	verbose bool
	evalAt  []float64
)

var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "Polynomial calculator: evaluation, square-free decomposition and real roots",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Parse an expression and print the expanded polynomial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parse(args[0])
		if err != nil {
			return err
		}

		fmt.Println(p)
		for _, x := range evalAt {
			fmt.Printf("p(%v) = %v\n", x, p.Evaluate(x))
		}
		return nil
	},
}

var rootsCmd = &cobra.Command{
	Use:   "roots [flags] expression",
	Short: "Find all real roots with multiplicities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parse(args[0])
		if err != nil {
			return err
		}

		logrus.WithField("degree", p.Degree()).Debug("finding roots")

		values, multiplicities, err := roots.FindRoots(p)
		if err != nil {
			return fmt.Errorf("find roots: %w", err)
		}

		if len(values) == 0 {
			fmt.Println("no real roots")
			return nil
		}
		for i, r := range values {
			fmt.Printf("x = %v (multiplicity %d)\n", r, multiplicities[i])
		}
		return nil
	},
}

var squarefreeCmd = &cobra.Command{
	Use:   "squarefree [flags] expression",
	Short: "Print the square-free decomposition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := parse(args[0])
		if err != nil {
			return err
		}

		factors, err := algebra.Yun(p)
		if err != nil {
			return fmt.Errorf("decompose: %w", err)
		}

		for i, q := range factors {
			fmt.Printf("(%v)^%d\n", q, i+1)
		}
		return nil
	},
}

func parse(expr string) (poly.Polynomial[float64], error) {
	logrus.WithField("expr", expr).Debug("parsing expression")

	p, err := parser.Parse(expr)
	if err != nil {
		return poly.Zero[float64](), fmt.Errorf("parse: %w", err)
	}
	return p, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	evalCmd.Flags().Float64SliceVarP(&evalAt, "x", "x", nil, "evaluate the polynomial at the given points")

	rootCmd.AddCommand(evalCmd, rootsCmd, squarefreeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
