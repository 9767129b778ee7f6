// taylor prints Taylor partial sums of elementary functions and their
// Lagrange remainder bounds, optionally plotting the approximations against
// the exact function.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/quantfold/scatter.report/internal/calc"
	"github.com/quantfold/scatter.report/internal/report"
)

var (
	fn       = flag.String("fn", "exp", "Function: exp, sin, or cos")
	orderStr = flag.String("orders", "1,3,5", "Comma-separated expansion orders")
	x        = flag.Float64("x", 1.0, "Evaluation point")
	x0       = flag.Float64("x0", -2, "Plot range start")
	x1       = flag.Float64("x1", 2, "Plot range end")
	plotFile = flag.String("plot", "", "Write a PNG comparison plot to this file")
)

func parseOrders(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid order %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func pick(name string) (target func(float64) float64, coeffs func(int) []float64, err error) {
	switch name {
	case "exp":
		return math.Exp, calc.ExpCoeffs, nil
	case "sin":
		return math.Sin, calc.SinCoeffs, nil
	case "cos":
		return math.Cos, calc.CosCoeffs, nil
	}
	return nil, nil, fmt.Errorf("unknown function %q", name)
}

func main() {
	flag.Parse()

	orders, err := parseOrders(*orderStr)
	if err != nil {
		log.Fatal(err)
	}
	target, coeffs, err := pick(*fn)
	if err != nil {
		log.Fatal(err)
	}

	exact := target(*x)
	fmt.Printf("%s(%g) = %.10f\n", *fn, *x, exact)

	// exp is its own derivative, so the remainder bound uses e^|x|; sin and
	// cos have derivatives bounded by 1.
	m := 1.0
	if *fn == "exp" {
		m = math.Exp(math.Abs(*x))
	}

	approx := make(map[int]func(float64) float64, len(orders))
	for _, order := range orders {
		c := coeffs(order)
		val := calc.TaylorEval(c, 0, *x)
		bound := calc.RemainderBound(m, *x, order)
		fmt.Printf("order %2d: %.10f  (error %.3g, bound %.3g)\n",
			order, val, math.Abs(val-exact), bound)

		approx[order] = func(xx float64) float64 { return calc.TaylorEval(c, 0, xx) }
	}

	if *plotFile != "" {
		if err := report.TaylorPlot(target, approx, *x0, *x1, 200, *plotFile); err != nil {
			log.Fatalf("plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}
