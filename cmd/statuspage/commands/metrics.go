package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// NewMetricsCommand creates the metrics command group.
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "metrics",
		Aliases: []string{"metric"},
		Short:   "Manage metrics",
		Long:    "List, update, and delete metrics, and submit data points",
	}

	cmd.AddCommand(newMetricsListCommand())
	cmd.AddCommand(newMetricsGetCommand())
	cmd.AddCommand(newMetricsUpdateCommand())
	cmd.AddCommand(newMetricsDeleteCommand())
	cmd.AddCommand(newMetricsSubmitCommand())
	cmd.AddCommand(newMetricsResetCommand())

	return cmd
}

func newMetricsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			metrics, err := client.Metrics().List(context.Background(), buildListParams(page, perPage))
			if err != nil {
				return fmt.Errorf("failed to list metrics: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(metrics)
			case OutputFormatYAML:
				return StandardYAMLRenderer(metrics)
			default:
				return renderMetricsTable(metrics)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderMetricsTable(metrics []statuspage.Metric) error {
	if len(metrics) == 0 {
		_, _ = os.Stdout.WriteString("No metrics found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Suffix", "Display", "Last Data")

	for _, metric := range metrics {
		_ = table.Append(metric.ID, metric.Name, metric.Suffix,
			fmt.Sprintf("%t", metric.Display), formatTime(metric.MostRecentDataAt))
	}

	_ = table.Render()

	return nil
}

func newMetricsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get METRIC_ID",
		Short: "Show metric details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			metric, err := client.Metrics().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get metric: %w", err)
			}

			return outputMetric(metric)
		},
	}
}

func newMetricsUpdateCommand() *cobra.Command {
	var (
		name    string
		suffix  string
		tooltip string
	)

	cmd := &cobra.Command{
		Use:   "update METRIC_ID",
		Short: "Update a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.MetricRequest{
				Name:               stringOrNil(name),
				Suffix:             stringOrNil(suffix),
				TooltipDescription: stringOrNil(tooltip),
			}

			metric, err := client.Metrics().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update metric: %w", err)
			}

			return outputMetric(metric)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "metric name")
	cmd.Flags().StringVar(&suffix, "suffix", "", "unit suffix (e.g. ms)")
	cmd.Flags().StringVar(&tooltip, "tooltip", "", "tooltip description")

	return cmd
}

func newMetricsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete METRIC_ID",
		Short: "Delete a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Metrics().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete metric: %w", err)
			}

			fmt.Println("Metric deleted")

			return nil
		},
	}
}

func newMetricsSubmitCommand() *cobra.Command {
	var (
		value     float64
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "submit METRIC_ID",
		Short: "Submit a data point",
		Long:  "Submit one data point to a metric. Timestamp defaults to now.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			if timestamp == 0 {
				timestamp = time.Now().Unix()
			}

			point, err := client.Metrics().SubmitData(context.Background(), args[0], statuspage.MetricDataPoint{
				Timestamp: timestamp,
				Value:     value,
			})
			if err != nil {
				return fmt.Errorf("failed to submit metric data: %w", err)
			}

			fmt.Printf("Submitted %g at %s\n", point.Value, time.Unix(point.Timestamp, 0).Format(timeFormat))

			return nil
		},
	}

	cmd.Flags().Float64Var(&value, "value", 0, "data point value (required)")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Unix timestamp (defaults to now)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newMetricsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset METRIC_ID",
		Short: "Delete all data for a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Metrics().ResetData(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to reset metric data: %w", err)
			}

			fmt.Println("Metric data reset")

			return nil
		},
	}
}

func outputMetric(metric *statuspage.Metric) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(metric)
	case OutputFormatYAML:
		return StandardYAMLRenderer(metric)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", metric.ID)
		_ = table.Append("Name", metric.Name)
		_ = table.Append("Identifier", metric.MetricIdentifier)
		_ = table.Append("Suffix", metric.Suffix)
		_ = table.Append("Display", fmt.Sprintf("%t", metric.Display))
		_ = table.Append("Decimal Places", fmt.Sprintf("%d", metric.DecimalPlaces))
		_ = table.Append("Last Data", formatTime(metric.MostRecentDataAt))

		_ = table.Render()

		return nil
	}
}
