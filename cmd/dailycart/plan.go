package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i474232898/dailycart/internal/briefing"
	"github.com/i474232898/dailycart/internal/common"
	"github.com/i474232898/dailycart/internal/config"
	"github.com/i474232898/dailycart/internal/estimate"
	"github.com/i474232898/dailycart/internal/sample"
	"github.com/i474232898/dailycart/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print today's weather, stock plan and group-buy ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		location, _ := cmd.Flags().GetString("location")
		if location == "" && len(cfg.Markets) > 0 {
			location = string(cfg.Markets[0])
		}
		if location == "" {
			return fmt.Errorf("a location is required")
		}

		service := briefing.NewService(store.NewMemoryStore(0, 0), estimate.NewEstimator(nil, nil), briefing.Settings{
			Location:    cfg.Location,
			SalesWindow: cfg.SalesWindow,
		})

		in := briefing.PlanInput{Market: briefing.Market(location), At: service.Now()}

		if raw, _ := cmd.Flags().GetString("date"); raw != "" {
			at, err := common.ParseTime(raw, cfg.Location)
			if err != nil {
				return err
			}
			in.At = at.In(cfg.Location)
		}
		if cmd.Flags().Changed("day") {
			day, _ := cmd.Flags().GetInt("day")
			if day < 0 || day > 6 {
				return fmt.Errorf("day must be between 0 (Sunday) and 6 (Saturday), got %d", day)
			}
			in.DayOfWeek = &day
		}
		if days, _ := cmd.Flags().GetInt("sample-days"); days > 0 {
			in.History = sample.NewGenerator().Sales(days, in.At.AddDate(0, 0, -1))
		}

		return writePlan(cmd.OutOrStdout(), service, in)
	},
}

func init() {
	planCmd.Flags().String("location", "", "market location (default: first of MARKET_LOCATIONS)")
	planCmd.Flags().String("date", "", "date to plan for (RFC3339, YYYY-MM-DD or unix seconds)")
	planCmd.Flags().Int("day", 0, "day of week override, 0 = Sunday")
	planCmd.Flags().Int("sample-days", 0, "plan from this many days of generated sample sales")
}

func writePlan(w io.Writer, service *briefing.Service, in briefing.PlanInput) error {
	plan := service.Plan(in)

	at := in.At
	if at.IsZero() {
		at = service.Now()
	}

	fmt.Fprintln(w, estimate.FriendlyGreeting(at, plan.Weather))
	fmt.Fprintf(w, "%s (%s) %s: %s, %.1f°C, %.0f%% humidity\n\n",
		in.Market, estimate.DayNameTamil(plan.DayOfWeek), at.Format("2006-01-02"),
		plan.Weather.Condition, plan.Weather.Temperature, plan.Weather.Humidity)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\tCOST")
	for _, it := range plan.Items {
		fmt.Fprintf(tw, "%s\t%.1f %s\t%s\t%s\n", it.Name, it.Quantity, it.Unit,
			estimate.FormatCurrency(it.PricePerUnit), estimate.FormatCurrency(it.PricePerUnit*it.Quantity))
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%s\n", plan.PlanCost)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUPPLIER\tDISTANCE\tRATING\tCOST\tSAVINGS")
	deals := estimate.CalculateGroupBuySavings(estimate.FindNearbySuppliers(string(in.Market)), plan.Items)
	for _, d := range deals {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%s\n", d.Supplier.Name, d.Supplier.Distance, d.Supplier.Rating,
			estimate.FormatCurrency(float64(d.TotalCost)), estimate.FormatCurrency(float64(d.Savings)))
	}
	return tw.Flush()
}
