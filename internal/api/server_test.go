package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/costtracker/internal/auth"
	"github.com/mmynk/costtracker/internal/middleware"
	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/service"
	"github.com/mmynk/costtracker/internal/storage/sqlite"
	pb "github.com/mmynk/costtracker/pkg/proto"
	"github.com/mmynk/costtracker/pkg/proto/protoconnect"
)

// recordingNotifier captures alerts instead of delivering them.
type recordingNotifier struct {
	alerts []models.LimitAlert
}

func (n *recordingNotifier) Notify(_ context.Context, alerts []models.LimitAlert) error {
	n.alerts = append(n.alerts, alerts...)
	return nil
}

type testEnv struct {
	client   protoconnect.CostServiceClient
	store    *sqlite.SQLiteStore
	notifier *recordingNotifier
	users    map[string]*models.User
	url      string
}

// testAuthInterceptor sets the caller from the X-Test-User header.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if userID := req.Header().Get("X-Test-User"); userID != "" {
				ctx = middleware.WithUser(ctx, userID, "")
			}
			return next(ctx, req)
		}
	}
}

// withHeader returns a client option that sets a request header on every call.
func withHeader(key, value string) connect.ClientOption {
	return connect.WithInterceptors(connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set(key, value)
			return next(ctx, req)
		}
	}))
}

func asUser(userID string) connect.ClientOption {
	return withHeader("X-Test-User", userID)
}

// setupTestServer creates a test server with a temp-file SQLite database.
// "Today" is pinned to 2024-05-15.
func setupTestServer(t *testing.T, interceptors ...connect.Interceptor) *testEnv {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	require.NoError(t, err)

	env := &testEnv{store: store, notifier: &recordingNotifier{}, users: map[string]*models.User{}}
	for _, name := range []string{"alice", "bob"} {
		u := models.NewUser(name, name+"@example.com")
		require.NoError(t, store.CreateUser(context.Background(), u))
		env.users[name] = u
	}

	now := func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }
	stats := service.NewStatsService(store)
	evaluator := service.NewLimitEvaluator(store, stats, env.notifier, service.WithClock(now))
	srv := NewServer(
		service.NewCostService(store, evaluator),
		stats,
		service.NewForecastService(store, service.WithForecastClock(now)),
	)
	srv.now = now

	if len(interceptors) == 0 {
		interceptors = []connect.Interceptor{testAuthInterceptor()}
	}
	path, handler := protoconnect.NewCostServiceHandler(srv, connect.WithInterceptors(interceptors...))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	env.url = server.URL
	env.client = env.clientFor("alice")

	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return env
}

func (env *testEnv) clientFor(name string) protoconnect.CostServiceClient {
	return protoconnect.NewCostServiceClient(http.DefaultClient, env.url, asUser(env.users[name].ID))
}

func TestCostFlow(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	ct, err := env.client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Food"}))
	require.NoError(t, err)
	foodID := ct.Msg.CostType.Id
	require.NotEmpty(t, foodID)

	limit, err := env.client.SetLimit(ctx, connect.NewRequest(&pb.SetLimitRequest{
		Limits: &pb.Limits{CostTypeId: foodID, Weekly: "100"},
	}))
	require.NoError(t, err)
	assert.True(t, limit.Msg.Created)
	assert.Equal(t, "100", limit.Msg.Limits.Weekly)
	assert.Empty(t, limit.Msg.Limits.Daily)

	_, err = env.client.RecordCost(ctx, connect.NewRequest(&pb.RecordCostRequest{CostTypeId: foodID, Date: "2024-05-13", Amount: "80"}))
	require.NoError(t, err)
	assert.Empty(t, env.notifier.alerts)

	recorded, err := env.client.RecordCost(ctx, connect.NewRequest(&pb.RecordCostRequest{
		CostTypeId:  foodID,
		Date:        "2024-05-15",
		Description: "groceries",
		Amount:      "30",
	}))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", recorded.Msg.Cost.Date)
	assert.Equal(t, "30", recorded.Msg.Cost.Amount)

	require.Len(t, env.notifier.alerts, 1)
	assert.Equal(t, models.PeriodWeekly, env.notifier.alerts[0].Exceeded.Period)
	assert.Equal(t, "10", env.notifier.alerts[0].Exceeded.ExceededAmount.String())

	stats, err := env.client.GetCostStats(ctx, connect.NewRequest(&pb.GetCostStatsRequest{Period: "weekly"}))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-12", stats.Msg.From)
	assert.Equal(t, "2024-05-18", stats.Msg.To)
	require.Len(t, stats.Msg.Totals, 1)
	assert.Equal(t, "Food", stats.Msg.Totals[0].CostTypeName)
	assert.Equal(t, "110", stats.Msg.Total)

	updated, err := env.client.UpdateCost(ctx, connect.NewRequest(&pb.UpdateCostRequest{
		Id: recorded.Msg.Cost.Id, Date: "2024-05-15", Amount: "5.25",
	}))
	require.NoError(t, err)
	assert.Equal(t, "5.25", updated.Msg.Cost.Amount)
	assert.Equal(t, foodID, updated.Msg.Cost.CostTypeId)

	got, err := env.client.GetLimit(ctx, connect.NewRequest(&pb.GetLimitRequest{CostTypeId: foodID}))
	require.NoError(t, err)
	require.NotNil(t, got.Msg.Limits)
	assert.Equal(t, "100", got.Msg.Limits.Weekly)

	forecast, err := env.client.GetForecast(ctx, connect.NewRequest(&pb.GetForecastRequest{}))
	require.NoError(t, err)
	require.Len(t, forecast.Msg.Forecasts, 1)
	assert.Len(t, forecast.Msg.Forecasts[0].Points, 31)
	assert.Equal(t, "2024-05-15", forecast.Msg.Forecasts[0].Points[0].Date)
	assert.EqualValues(t, 2, forecast.Msg.Forecasts[0].DataPoints)

	types, err := env.client.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
	require.NoError(t, err)
	assert.Len(t, types.Msg.CostTypes, 1)
}

func TestGetLimitWithoutConfig(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	ct, err := env.client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Rent"}))
	require.NoError(t, err)

	got, err := env.client.GetLimit(ctx, connect.NewRequest(&pb.GetLimitRequest{CostTypeId: ct.Msg.CostType.Id}))
	require.NoError(t, err)
	assert.Nil(t, got.Msg.Limits)
}

func TestStatsRangeAndEmpty(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	stats, err := env.client.GetCostStats(ctx, connect.NewRequest(&pb.GetCostStatsRequest{Period: "yearly", Date: "2020-06-01"}))
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", stats.Msg.From)
	assert.Equal(t, "2020-12-31", stats.Msg.To)
	assert.Empty(t, stats.Msg.Totals)
	assert.Equal(t, "0", stats.Msg.Total)

	stats, err = env.client.GetCostStats(ctx, connect.NewRequest(&pb.GetCostStatsRequest{From: "2024-01-01", To: "2024-01-31"}))
	require.NoError(t, err)
	assert.Equal(t, "", stats.Msg.Period)
	assert.Equal(t, "2024-01-31", stats.Msg.To)
}

func TestOwnerIsolation(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	ct, err := env.client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Food"}))
	require.NoError(t, err)
	recorded, err := env.client.RecordCost(ctx, connect.NewRequest(&pb.RecordCostRequest{
		CostTypeId: ct.Msg.CostType.Id, Date: "2024-05-15", Amount: "10",
	}))
	require.NoError(t, err)

	bob := env.clientFor("bob")

	types, err := bob.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
	require.NoError(t, err)
	assert.Empty(t, types.Msg.CostTypes)

	stats, err := bob.GetCostStats(ctx, connect.NewRequest(&pb.GetCostStatsRequest{Period: "daily"}))
	require.NoError(t, err)
	assert.Empty(t, stats.Msg.Totals)

	_, err = bob.RecordCost(ctx, connect.NewRequest(&pb.RecordCostRequest{CostTypeId: ct.Msg.CostType.Id, Date: "2024-05-15", Amount: "1"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = bob.UpdateCost(ctx, connect.NewRequest(&pb.UpdateCostRequest{Id: recorded.Msg.Cost.Id, Date: "2024-05-15", Amount: "1"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestErrorCodes(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	ct, err := env.client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Food"}))
	require.NoError(t, err)
	foodID := ct.Msg.CostType.Id

	record := func(date, amount string) error {
		_, err := env.client.RecordCost(ctx, connect.NewRequest(&pb.RecordCostRequest{CostTypeId: foodID, Date: date, Amount: amount}))
		return err
	}

	tests := []struct {
		name string
		call func() error
		code connect.Code
	}{
		{"bad date", func() error { return record("15/05/2024", "1") }, connect.CodeInvalidArgument},
		{"negative amount", func() error { return record("2024-05-15", "-1") }, connect.CodeInvalidArgument},
		{"malformed amount", func() error { return record("2024-05-15", "ten") }, connect.CodeInvalidArgument},
		{"missing amount", func() error { return record("2024-05-15", "") }, connect.CodeInvalidArgument},
		{"unknown period", func() error {
			_, err := env.client.GetCostStats(ctx, connect.NewRequest(&pb.GetCostStatsRequest{Period: "hourly"}))
			return err
		}, connect.CodeInvalidArgument},
		{"empty cost type name", func() error {
			_, err := env.client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{}))
			return err
		}, connect.CodeInvalidArgument},
		{"missing limits", func() error {
			_, err := env.client.SetLimit(ctx, connect.NewRequest(&pb.SetLimitRequest{}))
			return err
		}, connect.CodeInvalidArgument},
		{"malformed limit", func() error {
			_, err := env.client.SetLimit(ctx, connect.NewRequest(&pb.SetLimitRequest{
				Limits: &pb.Limits{CostTypeId: foodID, Monthly: "lots"},
			}))
			return err
		}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, connect.CodeOf(tt.call()))
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		anon := protoconnect.NewCostServiceClient(http.DefaultClient, env.url)
		_, err := anon.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		code connect.Code
	}{
		{fmt.Errorf("x: %w", models.ErrInvalidArgument), connect.CodeInvalidArgument},
		{fmt.Errorf("x: %w", models.ErrNotFound), connect.CodeNotFound},
		{fmt.Errorf("x: %w", models.ErrInsufficientData), connect.CodeFailedPrecondition},
		{fmt.Errorf("x: %w", models.ErrDataUnavailable), connect.CodeUnavailable},
		{errors.New("boom"), connect.CodeInternal},
		{connect.NewError(connect.CodeUnauthenticated, errors.New("no")), connect.CodeUnauthenticated},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, connect.CodeOf(toConnectError(tt.err)), tt.err.Error())
	}
	assert.NoError(t, toConnectError(nil))
}

func TestWithJWTAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	env := setupTestServer(t, middleware.LoggingInterceptor(nil), middleware.RequireAuth(jwtManager))
	ctx := context.Background()

	token, err := jwtManager.Generate(env.users["alice"])
	require.NoError(t, err)

	client := protoconnect.NewCostServiceClient(http.DefaultClient, env.url, withHeader("Authorization", "Bearer "+token))

	_, err = client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Rent"}))
	require.NoError(t, err)

	types, err := client.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
	require.NoError(t, err)
	require.Len(t, types.Msg.CostTypes, 1)
	assert.Equal(t, "Rent", types.Msg.CostTypes[0].Name)

	anon := protoconnect.NewCostServiceClient(http.DefaultClient, env.url)
	_, err = anon.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestJSONClient(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	client := protoconnect.NewCostServiceClient(http.DefaultClient, env.url,
		asUser(env.users["alice"].ID), connect.WithProtoJSON())

	_, err := client.CreateCostType(ctx, connect.NewRequest(&pb.CreateCostTypeRequest{Name: "Travel"}))
	require.NoError(t, err)

	types, err := client.ListCostTypes(ctx, connect.NewRequest(&pb.ListCostTypesRequest{}))
	require.NoError(t, err)
	require.Len(t, types.Msg.CostTypes, 1)
	assert.Equal(t, "Travel", types.Msg.CostTypes[0].Name)
}
