package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/gravity/internal/observability/log"
	"github.com/zeusync/gravity/pkg/math3d"
)

type binaryOp func(v math3d.Vector, o math3d.Operand) (any, error)

var binaryOps = map[string]binaryOp{
	"add":      func(v math3d.Vector, o math3d.Operand) (any, error) { return v.Add(o) },
	"subtract": func(v math3d.Vector, o math3d.Operand) (any, error) { return v.Subtract(o) },
	"multiply": func(v math3d.Vector, o math3d.Operand) (any, error) { return v.Multiply(o) },
	"dot":      func(v math3d.Vector, o math3d.Operand) (any, error) { return v.Dot(o) },
}

func newVectorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vector <add|subtract|multiply|dot|scale|magnitude> <a> [b]",
		Short: "Evaluate a vector operation",
		Long: `Evaluate a single vector operation. Vectors are comma separated numbers
such as 3,1,5 or [3,1,5]; the scale factor is any numeric string.`,
		Example: `  gravity vector add 3,1,5 2,3,6
  gravity vector dot 1,2,3 4,5
  gravity vector scale 3,2,4 0.5
  gravity vector magnitude 4,3`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evaluate(args[0], args[1:])
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated", log.String("op", args[0]), log.Any("args", args[1:]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func evaluate(op string, args []string) (any, error) {
	v, err := parseVector(args[0])
	if err != nil {
		return nil, err
	}

	switch op {
	case "magnitude":
		if len(args) != 1 {
			return nil, fmt.Errorf("magnitude takes one vector")
		}
		return v.Magnitude(), nil
	case "scale":
		if len(args) != 2 {
			return nil, fmt.Errorf("scale takes a vector and a factor")
		}
		return v.ScaleBy(args[1])
	}

	fn, ok := binaryOps[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("%s takes two vectors", op)
	}
	other, err := parseVector(args[1])
	if err != nil {
		return nil, err
	}
	return fn(v, other)
}

// parseVector reads "1,2,3" or "[1, 2, 3]". An empty list is the zero vector.
func parseVector(s string) (math3d.Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if strings.TrimSpace(s) == "" {
		return math3d.New(), nil
	}

	parts := strings.Split(s, ",")
	values := make(math3d.Components, len(parts))
	for idx, part := range parts {
		f, err := math3d.ParseScalar(part)
		if err != nil {
			return math3d.Vector{}, fmt.Errorf("component %d: %w", idx, err)
		}
		values[idx] = f
	}
	return math3d.FromOperand(values)
}
