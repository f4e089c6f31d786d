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

// NewPageCommand creates the page command group.
func NewPageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Manage the status page",
		Long:  "Show and update the configured status page",
	}

	cmd.AddCommand(newPageShowCommand())
	cmd.AddCommand(newPageUpdateCommand())
	cmd.AddCommand(newPageListCommand())

	return cmd
}

func newPageShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show page details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			page, err := client.Page().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			return outputPage(page)
		},
	}
}

func newPageUpdateCommand() *cobra.Command {
	var name, supportURL, timeZone string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update page settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.PageUpdateRequest{
				Name:       stringOrNil(name),
				SupportURL: stringOrNil(supportURL),
				TimeZone:   stringOrNil(timeZone),
			}

			page, err := client.Page().Update(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to update page: %w", err)
			}

			return outputPage(page)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "page name")
	cmd.Flags().StringVar(&supportURL, "support-url", "", "support URL")
	cmd.Flags().StringVar(&timeZone, "time-zone", "", "page time zone")

	return cmd
}

func newPageListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pages the API key can manage",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			pages, err := client.Page().ListAll(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(pages)
			case OutputFormatYAML:
				return StandardYAMLRenderer(pages)
			default:
				return renderPagesTable(pages)
			}
		},
	}
}

func outputPage(page *statuspage.Page) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", page.ID)
		_ = table.Append("Name", page.Name)
		_ = table.Append("Subdomain", page.Subdomain)
		_ = table.Append("Domain", page.Domain)
		_ = table.Append("URL", page.URL)
		_ = table.Append("Updated", formatTime(page.UpdatedAt))

		_ = table.Render()

		return nil
	}
}

func renderPagesTable(pages []statuspage.Page) error {
	if len(pages) == 0 {
		_, _ = os.Stdout.WriteString("No pages found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Subdomain", "Domain")

	for _, page := range pages {
		_ = table.Append(page.ID, page.Name, page.Subdomain, page.Domain)
	}

	_ = table.Render()

	return nil
}
