// Package api implements the costtracker.v1.CostService connect handlers on
// top of the cost, stats and forecast services.
package api

import (
	"context"
	"fmt"
	"sort"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/middleware"
	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/service"
	pb "github.com/mmynk/costtracker/pkg/proto"
	"github.com/mmynk/costtracker/pkg/proto/protoconnect"
)

var _ protoconnect.CostServiceHandler = (*Server)(nil)

// Server implements the CostService procedures.
type Server struct {
	costs    *service.CostService
	stats    *service.StatsService
	forecast *service.ForecastService
	now      func() time.Time
}

// NewServer creates a new Server over the given services.
func NewServer(costs *service.CostService, stats *service.StatsService, forecast *service.ForecastService) *Server {
	return &Server{costs: costs, stats: stats, forecast: forecast, now: time.Now}
}

// ownerFrom returns the authenticated owner or CodeUnauthenticated.
func ownerFrom(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("no authenticated user"))
	}
	return userID, nil
}

// CreateCostType adds a cost type for the caller.
func (s *Server) CreateCostType(
	ctx context.Context,
	req *connect.Request[pb.CreateCostTypeRequest],
) (*connect.Response[pb.CreateCostTypeResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	costType, err := s.costs.CreateCostType(ctx, ownerID, req.Msg.Name, req.Msg.Description)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CreateCostTypeResponse{CostType: costTypeToProto(costType)}), nil
}

// ListCostTypes returns the caller's cost types.
func (s *Server) ListCostTypes(
	ctx context.Context,
	req *connect.Request[pb.ListCostTypesRequest],
) (*connect.Response[pb.ListCostTypesResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	costTypes, err := s.costs.ListCostTypes(ctx, ownerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &pb.ListCostTypesResponse{CostTypes: make([]*pb.CostType, 0, len(costTypes))}
	for _, ct := range costTypes {
		resp.CostTypes = append(resp.CostTypes, costTypeToProto(ct))
	}
	return connect.NewResponse(resp), nil
}

// SetLimit creates or replaces the limits of one of the caller's cost types.
func (s *Server) SetLimit(
	ctx context.Context,
	req *connect.Request[pb.SetLimitRequest],
) (*connect.Response[pb.SetLimitResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	l := req.Msg.Limits
	if l == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("limits are required"))
	}
	cfg := &models.LimitConfig{OwnerID: ownerID, CostTypeID: l.CostTypeId}
	for _, field := range []struct {
		dst   **decimal.Decimal
		value string
	}{
		{&cfg.Daily, l.Daily},
		{&cfg.Weekly, l.Weekly},
		{&cfg.Monthly, l.Monthly},
		{&cfg.Quarterly, l.Quarterly},
		{&cfg.Yearly, l.Yearly},
	} {
		if *field.dst, err = parseLimit(field.value); err != nil {
			return nil, toConnectError(err)
		}
	}

	created, err := s.costs.SetLimit(ctx, cfg)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.SetLimitResponse{Limits: limitsToProto(cfg), Created: created}), nil
}

// GetLimit returns the limits of one of the caller's cost types.
func (s *Server) GetLimit(
	ctx context.Context,
	req *connect.Request[pb.GetLimitRequest],
) (*connect.Response[pb.GetLimitResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := s.costs.GetLimit(ctx, ownerID, req.Msg.CostTypeId)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &pb.GetLimitResponse{}
	if cfg != nil {
		resp.Limits = limitsToProto(cfg)
	}
	return connect.NewResponse(resp), nil
}

// RecordCost stores a cost for the caller and evaluates its limits.
func (s *Server) RecordCost(
	ctx context.Context,
	req *connect.Request[pb.RecordCostRequest],
) (*connect.Response[pb.RecordCostResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	occurredOn, amount, err := parseDateAmount(req.Msg.Date, req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}

	cost := &models.CostRecord{
		OwnerID:     ownerID,
		CostTypeID:  req.Msg.CostTypeId,
		OccurredOn:  occurredOn,
		Description: req.Msg.Description,
		Amount:      amount,
	}
	if err := s.costs.RecordCost(ctx, cost); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.RecordCostResponse{Cost: costToProto(cost)}), nil
}

// UpdateCost changes one of the caller's cost records and re-evaluates its
// limits.
func (s *Server) UpdateCost(
	ctx context.Context,
	req *connect.Request[pb.UpdateCostRequest],
) (*connect.Response[pb.UpdateCostResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	occurredOn, amount, err := parseDateAmount(req.Msg.Date, req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}

	cost := &models.CostRecord{
		ID:          req.Msg.Id,
		OwnerID:     ownerID,
		OccurredOn:  occurredOn,
		Description: req.Msg.Description,
		Amount:      amount,
	}
	if err := s.costs.UpdateCost(ctx, cost); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.UpdateCostResponse{Cost: costToProto(cost)}), nil
}

// GetCostStats returns per-cost-type totals for a period or a date range.
func (s *Server) GetCostStats(
	ctx context.Context,
	req *connect.Request[pb.GetCostStatsRequest],
) (*connect.Response[pb.GetCostStatsResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	var stats *service.CostStats
	if req.Msg.From != "" || req.Msg.To != "" {
		r, err := parseRange(req.Msg.From, req.Msg.To)
		if err != nil {
			return nil, toConnectError(err)
		}
		stats, err = s.stats.GetCostStatsForRange(ctx, ownerID, r)
		if err != nil {
			return nil, toConnectError(err)
		}
	} else {
		kind, err := models.ParsePeriodKind(req.Msg.Period)
		if err != nil {
			return nil, toConnectError(err)
		}
		ref := period.Today(s.now())
		if req.Msg.Date != "" {
			if ref, err = period.ParseDate(req.Msg.Date); err != nil {
				return nil, toConnectError(err)
			}
		}
		stats, err = s.stats.GetCostStats(ctx, ownerID, kind, ref)
		if err != nil {
			return nil, toConnectError(err)
		}
	}

	resp := &pb.GetCostStatsResponse{
		Period: string(stats.Period),
		From:   stats.Range.Start.Format(models.DateLayout),
		To:     stats.Range.End.Format(models.DateLayout),
		Totals: make([]*pb.CostTypeTotal, 0, len(stats.Totals)),
		Total:  stats.Total.String(),
	}
	for _, t := range stats.Totals {
		resp.Totals = append(resp.Totals, &pb.CostTypeTotal{
			CostTypeId:   t.CostTypeID,
			CostTypeName: t.CostTypeName,
			Amount:       t.Amount.String(),
		})
	}
	return connect.NewResponse(resp), nil
}

// GetForecast returns the caller's per-cost-type spend projection, ordered
// by cost type name.
func (s *Server) GetForecast(
	ctx context.Context,
	req *connect.Request[pb.GetForecastRequest],
) (*connect.Response[pb.GetForecastResponse], error) {
	ownerID, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	forecasts, err := s.forecast.GetForecast(ctx, ownerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &pb.GetForecastResponse{Forecasts: make([]*pb.Forecast, 0, len(forecasts))}
	for _, fc := range forecasts {
		resp.Forecasts = append(resp.Forecasts, forecastToProto(fc))
	}
	sort.Slice(resp.Forecasts, func(i, j int) bool {
		a, b := resp.Forecasts[i], resp.Forecasts[j]
		if a.CostTypeName != b.CostTypeName {
			return a.CostTypeName < b.CostTypeName
		}
		return a.CostTypeId < b.CostTypeId
	})
	return connect.NewResponse(resp), nil
}
