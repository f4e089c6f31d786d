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

// NewComponentsCommand creates the components command group.
func NewComponentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component"},
		Short:   "Manage components",
		Long:    "List, create, update, and delete status page components",
	}

	cmd.AddCommand(newComponentsListCommand())
	cmd.AddCommand(newComponentsGetCommand())
	cmd.AddCommand(newComponentsCreateCommand())
	cmd.AddCommand(newComponentsUpdateCommand())
	cmd.AddCommand(newComponentsDeleteCommand())

	return cmd
}

func newComponentsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			components, err := client.Components().List(context.Background(), buildListParams(page, perPage))
			if err != nil {
				return fmt.Errorf("failed to list components: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(components)
			case OutputFormatYAML:
				return StandardYAMLRenderer(components)
			default:
				return renderComponentsTable(components)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderComponentsTable(components []statuspage.Component) error {
	if len(components) == 0 {
		_, _ = os.Stdout.WriteString("No components found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Group", "Updated")

	for _, component := range components {
		_ = table.Append(component.ID, component.Name, component.Status,
			component.GroupID, formatTime(component.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

func newComponentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMPONENT_ID",
		Short: "Show component details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			component, err := client.Components().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get component: %w", err)
			}

			return outputComponent(component)
		},
	}
}

func newComponentsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		status      string
		groupID     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a component",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.ComponentRequest{
				Name:        stringOrNil(name),
				Description: stringOrNil(description),
				Status:      stringOrNil(status),
				GroupID:     stringOrNil(groupID),
			}

			component, err := client.Components().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create component: %w", err)
			}

			return outputComponent(component)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "component name (required)")
	cmd.Flags().StringVar(&description, "description", "", "component description")
	cmd.Flags().StringVar(&status, "status", "", "initial status")
	cmd.Flags().StringVar(&groupID, "group-id", "", "component group ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newComponentsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update COMPONENT_ID",
		Short: "Update a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.ComponentRequest{
				Name:        stringOrNil(name),
				Description: stringOrNil(description),
				Status:      stringOrNil(status),
			}

			component, err := client.Components().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update component: %w", err)
			}

			return outputComponent(component)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "component name")
	cmd.Flags().StringVar(&description, "description", "", "component description")
	cmd.Flags().StringVar(&status, "status", "", "component status (operational, degraded_performance, partial_outage, major_outage, under_maintenance)")

	return cmd
}

func newComponentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete COMPONENT_ID",
		Short: "Delete a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Components().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete component: %w", err)
			}

			fmt.Println("Component deleted")

			return nil
		},
	}
}

func outputComponent(component *statuspage.Component) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(component)
	case OutputFormatYAML:
		return StandardYAMLRenderer(component)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", component.ID)
		_ = table.Append("Name", component.Name)
		_ = table.Append("Description", component.Description)
		_ = table.Append("Status", component.Status)
		_ = table.Append("Group ID", component.GroupID)
		_ = table.Append("Showcase", fmt.Sprintf("%t", component.Showcase))
		_ = table.Append("Created", formatTime(component.CreatedAt))
		_ = table.Append("Updated", formatTime(component.UpdatedAt))

		_ = table.Render()

		return nil
	}
}
