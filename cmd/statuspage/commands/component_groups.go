package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// NewComponentGroupsCommand creates the component-groups command group.
func NewComponentGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "component-groups",
		Aliases: []string{"component-group", "groups"},
		Short:   "Manage component groups",
		Long:    "List, create, update, and delete component groups",
	}

	cmd.AddCommand(newComponentGroupsListCommand())
	cmd.AddCommand(newComponentGroupsGetCommand())
	cmd.AddCommand(newComponentGroupsCreateCommand())
	cmd.AddCommand(newComponentGroupsUpdateCommand())
	cmd.AddCommand(newComponentGroupsDeleteCommand())

	return cmd
}

func newComponentGroupsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List component groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			groups, err := client.ComponentGroups().List(context.Background(), buildListParams(page, perPage))
			if err != nil {
				return fmt.Errorf("failed to list component groups: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(groups)
			case OutputFormatYAML:
				return StandardYAMLRenderer(groups)
			default:
				return renderComponentGroupsTable(groups)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderComponentGroupsTable(groups []statuspage.ComponentGroup) error {
	if len(groups) == 0 {
		_, _ = os.Stdout.WriteString("No component groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Components", "Updated")

	for _, group := range groups {
		_ = table.Append(group.ID, group.Name,
			strings.Join(group.Components, ", "), formatTime(group.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

func newComponentGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Show component group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			group, err := client.ComponentGroups().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get component group: %w", err)
			}

			return outputComponentGroup(group)
		},
	}
}

func newComponentGroupsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		components  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a component group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.ComponentGroupRequest{
				Name:        stringOrNil(name),
				Description: stringOrNil(description),
				Components:  components,
			}

			group, err := client.ComponentGroups().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create component group: %w", err)
			}

			return outputComponentGroup(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name (required)")
	cmd.Flags().StringVar(&description, "description", "", "group description")
	cmd.Flags().StringSliceVar(&components, "components", nil, "component IDs to include")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newComponentGroupsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		components  []string
	)

	cmd := &cobra.Command{
		Use:   "update GROUP_ID",
		Short: "Update a component group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.ComponentGroupRequest{
				Name:        stringOrNil(name),
				Description: stringOrNil(description),
				Components:  components,
			}

			group, err := client.ComponentGroups().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update component group: %w", err)
			}

			return outputComponentGroup(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name")
	cmd.Flags().StringVar(&description, "description", "", "group description")
	cmd.Flags().StringSliceVar(&components, "components", nil, "component IDs to include")

	return cmd
}

func newComponentGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a component group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.ComponentGroups().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete component group: %w", err)
			}

			fmt.Println("Component group deleted")

			return nil
		},
	}
}

func outputComponentGroup(group *statuspage.ComponentGroup) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(group)
	case OutputFormatYAML:
		return StandardYAMLRenderer(group)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", group.ID)
		_ = table.Append("Name", group.Name)
		_ = table.Append("Description", group.Description)
		_ = table.Append("Components", strings.Join(group.Components, ", "))
		_ = table.Append("Created", formatTime(group.CreatedAt))
		_ = table.Append("Updated", formatTime(group.UpdatedAt))

		_ = table.Render()

		return nil
	}
}
