package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// NewIncidentsCommand creates the incidents command group.
func NewIncidentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incidents",
		Aliases: []string{"incident"},
		Short:   "Manage incidents",
		Long:    "List, create, update, and delete incidents and scheduled maintenances",
	}

	cmd.AddCommand(newIncidentsListCommand())
	cmd.AddCommand(newIncidentsGetCommand())
	cmd.AddCommand(newIncidentsCreateCommand())
	cmd.AddCommand(newIncidentsUpdateCommand())
	cmd.AddCommand(newIncidentsDeleteCommand())
	cmd.AddCommand(newIncidentsWatchCommand())
	cmd.AddCommand(newIncidentUpdatesCommand())

	return cmd
}

func newIncidentsListCommand() *cobra.Command {
	var (
		page       int
		perPage    int
		unresolved bool
		scheduled  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents",
		Long:  "List incidents, optionally narrowed to unresolved or scheduled ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := buildListParams(page, perPage)

			var incidents []statuspage.Incident

			switch {
			case unresolved:
				incidents, err = client.Incidents().ListUnresolved(ctx, params)
			case scheduled:
				incidents, err = client.Incidents().ListScheduled(ctx, params)
			default:
				incidents, err = client.Incidents().List(ctx, params)
			}

			if err != nil {
				return fmt.Errorf("failed to list incidents: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(incidents)
			case OutputFormatYAML:
				return StandardYAMLRenderer(incidents)
			default:
				return renderIncidentsTable(incidents)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().BoolVar(&unresolved, "unresolved", false, "only unresolved incidents")
	cmd.Flags().BoolVar(&scheduled, "scheduled", false, "only scheduled maintenances")
	cmd.MarkFlagsMutuallyExclusive("unresolved", "scheduled")

	return cmd
}

func renderIncidentsTable(incidents []statuspage.Incident) error {
	if len(incidents) == 0 {
		_, _ = os.Stdout.WriteString("No incidents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Impact", "Created")

	for _, incident := range incidents {
		_ = table.Append(incident.ID, incident.Name, incident.Status,
			incident.Impact, formatTime(incident.CreatedAt))
	}

	_ = table.Render()

	return nil
}

func newIncidentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INCIDENT_ID",
		Short: "Show incident details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			incident, err := client.Incidents().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get incident: %w", err)
			}

			return outputIncident(incident)
		},
	}
}

func newIncidentsCreateCommand() *cobra.Command {
	var (
		name     string
		status   string
		body     string
		impact   string
		notify   bool
		schedule string
		until    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an incident",
		Long:  "Open a new incident, or a scheduled maintenance when --scheduled-for is set",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.IncidentRequest{
				Name:           stringOrNil(name),
				Status:         stringOrNil(status),
				Body:           stringOrNil(body),
				ImpactOverride: stringOrNil(impact),
			}

			if cmd.Flags().Changed("notify") {
				request.DeliverNotifications = &notify
			}

			if schedule != "" {
				scheduledFor, err := time.Parse(time.RFC3339, schedule)
				if err != nil {
					return fmt.Errorf("parsing --scheduled-for: %w", err)
				}

				request.ScheduledFor = &scheduledFor
			}

			if until != "" {
				scheduledUntil, err := time.Parse(time.RFC3339, until)
				if err != nil {
					return fmt.Errorf("parsing --scheduled-until: %w", err)
				}

				request.ScheduledUntil = &scheduledUntil
			}

			incident, err := client.Incidents().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create incident: %w", err)
			}

			return outputIncident(incident)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "incident name (required)")
	cmd.Flags().StringVar(&status, "status", "investigating", "incident status")
	cmd.Flags().StringVar(&body, "body", "", "initial update text")
	cmd.Flags().StringVar(&impact, "impact", "", "impact override (none, minor, major, critical)")
	cmd.Flags().BoolVar(&notify, "notify", false, "deliver notifications to subscribers")
	cmd.Flags().StringVar(&schedule, "scheduled-for", "", "maintenance start (RFC 3339)")
	cmd.Flags().StringVar(&until, "scheduled-until", "", "maintenance end (RFC 3339)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newIncidentsUpdateCommand() *cobra.Command {
	var (
		status string
		body   string
		notify bool
	)

	cmd := &cobra.Command{
		Use:   "update INCIDENT_ID",
		Short: "Update an incident",
		Long:  "Transition an incident's status and post an update message",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.IncidentRequest{
				Status: stringOrNil(status),
				Body:   stringOrNil(body),
			}

			if cmd.Flags().Changed("notify") {
				request.DeliverNotifications = &notify
			}

			incident, err := client.Incidents().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update incident: %w", err)
			}

			return outputIncident(incident)
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&status, "status", "", "incident status (investigating, identified, monitoring, resolved)")
	cmd.Flags().StringVar(&body, "body", "", "update text")
	cmd.Flags().BoolVar(&notify, "notify", false, "deliver notifications to subscribers")

	return cmd
}

func newIncidentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INCIDENT_ID",
		Short: "Delete an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Incidents().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete incident: %w", err)
			}

			fmt.Println("Incident deleted")

			return nil
		},
	}
}

func newIncidentsWatchCommand() *cobra.Command {
	var (
		natsURL  string
		subject  string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch incidents and publish status changes",
		Long: `Poll unresolved incidents and publish each status change as a JSON
event to a NATS subject. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runIncidentsWatch(ctx, client, natsURL, subject, interval)
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", "nats://127.0.0.1:4222", "NATS server URL")
	cmd.Flags().StringVar(&subject, "subject", "statuspage.incidents", "NATS subject for events")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "poll interval")

	return cmd
}

func outputIncident(incident *statuspage.Incident) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(incident)
	case OutputFormatYAML:
		return StandardYAMLRenderer(incident)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", incident.ID)
		_ = table.Append("Name", incident.Name)
		_ = table.Append("Status", incident.Status)
		_ = table.Append("Impact", incident.Impact)
		_ = table.Append("Shortlink", incident.Shortlink)
		_ = table.Append("Created", formatTime(incident.CreatedAt))
		_ = table.Append("Updated", formatTime(incident.UpdatedAt))

		if incident.ScheduledFor != nil {
			_ = table.Append("Scheduled For", formatTime(incident.ScheduledFor))
			_ = table.Append("Scheduled Until", formatTime(incident.ScheduledUntil))
		}

		_ = table.Render()

		if len(incident.IncidentUpdates) > 0 {
			fmt.Println("\nUpdates:")

			updateTable := tablewriter.NewWriter(os.Stdout)
			updateTable.Header("ID", "Status", "Body", "Created")

			for _, update := range incident.IncidentUpdates {
				_ = updateTable.Append(update.ID, update.Status, update.Body,
					formatTime(update.CreatedAt))
			}

			_ = updateTable.Render()
		}

		return nil
	}
}
