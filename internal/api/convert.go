package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	pb "github.com/mmynk/costtracker/pkg/proto"
)

// parseAmount parses a decimal amount string.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is required", models.ErrInvalidArgument)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q", models.ErrInvalidArgument, s)
	}
	return d, nil
}

// parseLimit parses an optional limit amount. Empty means not set.
func parseLimit(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDateAmount(date, amount string) (time.Time, decimal.Decimal, error) {
	occurredOn, err := period.ParseDate(date)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, err
	}
	d, err := parseAmount(amount)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, err
	}
	return occurredOn, d, nil
}

func parseRange(from, to string) (period.Range, error) {
	start, err := period.ParseDate(from)
	if err != nil {
		return period.Range{}, err
	}
	end, err := period.ParseDate(to)
	if err != nil {
		return period.Range{}, err
	}
	return period.Range{Start: start, End: end}, nil
}

func formatLimit(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func costTypeToProto(ct *models.CostType) *pb.CostType {
	return &pb.CostType{Id: ct.ID, Name: ct.Name, Description: ct.Description}
}

func costToProto(c *models.CostRecord) *pb.Cost {
	return &pb.Cost{
		Id:          c.ID,
		CostTypeId:  c.CostTypeID,
		Date:        c.OccurredOn.Format(models.DateLayout),
		Description: c.Description,
		Amount:      c.Amount.String(),
	}
}

func limitsToProto(cfg *models.LimitConfig) *pb.Limits {
	return &pb.Limits{
		CostTypeId: cfg.CostTypeID,
		Daily:      formatLimit(cfg.Daily),
		Weekly:     formatLimit(cfg.Weekly),
		Monthly:    formatLimit(cfg.Monthly),
		Quarterly:  formatLimit(cfg.Quarterly),
		Yearly:     formatLimit(cfg.Yearly),
	}
}

func forecastToProto(fc models.Forecast) *pb.Forecast {
	out := &pb.Forecast{
		CostTypeId:   fc.CostTypeID,
		CostTypeName: fc.CostTypeName,
		Slope:        fc.Slope,
		Intercept:    fc.Intercept,
		DataPoints:   int32(fc.DataPoints),
		Points:       make([]*pb.ForecastPoint, 0, len(fc.Points)),
	}
	for _, p := range fc.Points {
		out.Points = append(out.Points, &pb.ForecastPoint{
			Date:   p.Date.Format(models.DateLayout),
			Amount: p.PredictedAmount.String(),
		})
	}
	return out
}
