package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPoint is the predicted spend for one cost type on one day.
type ForecastPoint struct {
	CostTypeID      string
	Date            time.Time
	PredictedAmount decimal.Decimal
}

// Forecast is the day-by-day projection for one cost type.
type Forecast struct {
	CostTypeID   string
	CostTypeName string

	// Slope is the fitted change in amount per day; Intercept is expressed
	// against the day number since the Unix epoch.
	Slope     float64
	Intercept float64

	// DataPoints is how many historical records the model was fitted on.
	DataPoints int

	Points []ForecastPoint
}
