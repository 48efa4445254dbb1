// Package main provides the tangent CLI: transform and differentiate
// straight-line programs defined in YAML.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangent-ml/tangent/internal/config"
	"github.com/tangent-ml/tangent/internal/grad"
	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

const version = "v0.1.0-dev"

var at string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tangent",
		Short: "forward-mode automatic differentiation toolkit",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tangent %s\n", version)
		},
	}

	transformCmd := &cobra.Command{
		Use:   "transform [program.yaml]",
		Short: "print the tangent-propagating rewrite of a program",
		Args:  cobra.ExactArgs(1),
		RunE:  runTransform,
	}

	gradCmd := &cobra.Command{
		Use:   "grad [program.yaml]",
		Short: "evaluate a program's value and gradient at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrad,
	}
	gradCmd.Flags().StringVar(&at, "at", "", "evaluation point, comma-separated (e.g. 1.0,2.0)")

	rootCmd.AddCommand(versionCmd, transformCmd, gradCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTransform(cmd *cobra.Command, args []string) error {
	fn, err := loadTransformed(args[0])
	if err != nil {
		return err
	}
	fmt.Print(fn.Render())
	return nil
}

func runGrad(cmd *cobra.Command, args []string) error {
	fn, err := loadTransformed(args[0])
	if err != nil {
		return err
	}

	point, err := parsePoint(at)
	if err != nil {
		return err
	}
	if len(point) != fn.NumParams() {
		return fmt.Errorf("program takes %d parameters, --at has %d values", fn.NumParams(), len(point))
	}

	value, partials, err := grad.ValueGradient(fn, point)
	if err != nil {
		return err
	}

	fmt.Printf("value:    %g\n", value)
	fmt.Printf("gradient: %v\n", partials)
	return nil
}

func loadTransformed(path string) (*transform.Transformed, error) {
	p, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return transform.Transform(rules.Builtin(), p.IR())
}

func parsePoint(s string) ([]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("missing --at")
	}
	parts := strings.Split(s, ",")
	point := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad --at value %q: %w", p, err)
		}
		point[i] = v
	}
	return point, nil
}
