package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/period"
	"github.com/mmynk/costtracker/internal/service"
)

func newStatsCmd(a *app) *cobra.Command {
	var userID, periodName, date string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per cost type totals for a calendar period",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParsePeriodKind(periodName)
			if err != nil {
				return err
			}
			ref := period.Today(time.Now())
			if date != "" {
				if ref, err = period.ParseDate(date); err != nil {
					return err
				}
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := service.NewStatsService(store).GetCostStats(cmd.Context(), userID, kind, ref)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(stats.Totals)+1)
			for _, t := range stats.Totals {
				rows = append(rows, []string{t.CostTypeName, t.Amount.StringFixed(2)})
			}
			rows = append(rows, []string{"Total", stats.Total.StringFixed(2)})

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", kind.Title(), stats.Range)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Cost type", "Amount"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVarP(&periodName, "period", "p", string(models.PeriodMonthly), "daily, weekly, monthly, quarterly or yearly")
	cmd.Flags().StringVar(&date, "date", "", "Any day in the period, YYYY-MM-DD (default today)")
	cmd.MarkFlagRequired("user")
	return cmd
}

func newForecastCmd(a *app) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print the spend projection per cost type",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			svc := service.NewForecastService(store,
				service.WithForecastWindow(a.cfg.Forecast.LookbackDays, a.cfg.Forecast.HorizonDays))
			forecasts, err := svc.GetForecast(cmd.Context(), userID)
			if err != nil {
				return err
			}

			list := make([]models.Forecast, 0, len(forecasts))
			for _, fc := range forecasts {
				list = append(list, fc)
			}
			sort.Slice(list, func(i, j int) bool { return list[i].CostTypeName < list[j].CostTypeName })

			rows := make([][]string, 0, len(list))
			for _, fc := range list {
				if len(fc.Points) == 0 {
					continue
				}
				sum := decimal.Zero
				for _, p := range fc.Points {
					sum = sum.Add(p.PredictedAmount)
				}
				first, last := fc.Points[0], fc.Points[len(fc.Points)-1]
				rows = append(rows, []string{
					fc.CostTypeName,
					fmt.Sprintf("%d", fc.DataPoints),
					fmt.Sprintf("%+.2f", fc.Slope),
					first.PredictedAmount.StringFixed(2),
					fmt.Sprintf("%s (%s)", last.PredictedAmount.StringFixed(2), last.Date.Format(models.DateLayout)),
					sum.StringFixed(2),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Cost type", "History", "Per day", "Today", "Last day", "Projected total"},
				rows,
			))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.MarkFlagRequired("user")
	return cmd
}
