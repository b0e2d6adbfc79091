package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
)

// PeriodTotal is the summed spend of one cost type over one period window.
type PeriodTotal struct {
	Period models.PeriodKind
	Start  time.Time
	End    time.Time
	Total  decimal.Decimal
}

// CompareLimit returns how far total is over limit. Reaching the limit
// exactly is not a breach: only totals strictly greater than limit report
// exceeded = true.
func CompareLimit(total, limit decimal.Decimal) (decimal.Decimal, bool) {
	if !total.GreaterThan(limit) {
		return decimal.Zero, false
	}
	return total.Sub(limit), true
}

// ExceededLimits checks every period total against the matching limit in cfg
// and returns one entry per breach, in the order the totals were given.
// Periods without a set limit are ignored. Every period is checked; a
// breach in one does not stop the others.
func ExceededLimits(cfg *models.LimitConfig, totals []PeriodTotal, cost *models.CostRecord) []models.ExceededLimit {
	var exceeded []models.ExceededLimit
	for _, pt := range totals {
		limit, ok := cfg.Limit(pt.Period)
		if !ok {
			continue
		}
		over, breached := CompareLimit(pt.Total, limit)
		if !breached {
			continue
		}
		exceeded = append(exceeded, models.ExceededLimit{
			Period:         pt.Period,
			WindowStart:    pt.Start,
			WindowEnd:      pt.End,
			Total:          pt.Total,
			Limit:          limit,
			ExceededAmount: over,
			Cost:           cost,
		})
	}
	return exceeded
}
