package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// newIncidentUpdatesCommand creates the updates subcommand group nested
// under incidents.
func newIncidentUpdatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Manage incident updates",
		Long:  "List and edit the updates posted to an incident",
	}

	cmd.AddCommand(newIncidentUpdatesListCommand())
	cmd.AddCommand(newIncidentUpdatesEditCommand())

	return cmd
}

func newIncidentUpdatesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list INCIDENT_ID",
		Short: "List updates for an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			updates, err := client.IncidentUpdates().List(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to list incident updates: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(updates)
			case OutputFormatYAML:
				return StandardYAMLRenderer(updates)
			default:
				return renderIncidentUpdatesTable(updates)
			}
		},
	}
}

func renderIncidentUpdatesTable(updates []statuspage.IncidentUpdate) error {
	if len(updates) == 0 {
		_, _ = os.Stdout.WriteString("No updates found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Body", "Created")

	for _, update := range updates {
		_ = table.Append(update.ID, update.Status, update.Body,
			formatTime(update.CreatedAt))
	}

	_ = table.Render()

	return nil
}

func newIncidentUpdatesEditCommand() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "edit INCIDENT_ID UPDATE_ID",
		Short: "Edit the text of an existing update",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.IncidentUpdateRequest{
				Body: stringOrNil(body),
			}

			update, err := client.IncidentUpdates().Update(context.Background(), args[0], args[1], request)
			if err != nil {
				return fmt.Errorf("failed to edit incident update: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(update)
			case OutputFormatYAML:
				return StandardYAMLRenderer(update)
			default:
				fmt.Printf("Update %s edited\n", update.ID)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "replacement update text (required)")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}
