package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/costtracker/internal/models"
)

// LinearModel is a fitted line y = Slope*x + Intercept.
type LinearModel struct {
	Slope     float64
	Intercept float64
}

// Predict evaluates the model at x.
func (m LinearModel) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// FitLinear fits an ordinary least-squares line through the points (xs[i], ys[i]).
//
// The closed-form solution is computed on values centred at their means,
// which keeps the sums small when x is a large day number:
//
//	slope     = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)²
//	intercept = ȳ - slope*x̄
//
// When every x is the same (a single point, or several costs on one day)
// the slope is undefined; the model is then flat at the mean of ys.
// Empty or mismatched input, and non-finite values, fail with
// models.ErrInsufficientData.
func FitLinear(xs, ys []float64) (LinearModel, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return LinearModel{}, fmt.Errorf("%w: need matching non-empty series, got %d x and %d y",
			models.ErrInsufficientData, len(xs), len(ys))
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return LinearModel{}, fmt.Errorf("%w: non-finite value at index %d", models.ErrInsufficientData, i)
		}
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return LinearModel{Slope: 0, Intercept: meanY}, nil
	}

	slope := sxy / sxx
	return LinearModel{Slope: slope, Intercept: meanY - slope*meanX}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
