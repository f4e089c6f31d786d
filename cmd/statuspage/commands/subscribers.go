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

// NewSubscribersCommand creates the subscribers command group.
func NewSubscribersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscribers",
		Aliases: []string{"subscriber"},
		Short:   "Manage subscribers",
		Long:    "List, create, and delete page subscribers",
	}

	cmd.AddCommand(newSubscribersListCommand())
	cmd.AddCommand(newSubscribersGetCommand())
	cmd.AddCommand(newSubscribersCreateCommand())
	cmd.AddCommand(newSubscribersDeleteCommand())
	cmd.AddCommand(newSubscribersResendCommand())

	return cmd
}

func newSubscribersListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		query   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := buildListParams(page, perPage)
			if query != "" {
				params.WithFilter("q", query)
			}

			subscribers, err := client.Subscribers().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list subscribers: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(subscribers)
			case OutputFormatYAML:
				return StandardYAMLRenderer(subscribers)
			default:
				return renderSubscribersTable(subscribers)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search filter")

	return cmd
}

func renderSubscribersTable(subscribers []statuspage.Subscriber) error {
	if len(subscribers) == 0 {
		_, _ = os.Stdout.WriteString("No subscribers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Mode", "Target", "Created")

	for _, subscriber := range subscribers {
		_ = table.Append(subscriber.ID, subscriber.Mode,
			subscriberTarget(subscriber), formatTime(subscriber.CreatedAt))
	}

	_ = table.Render()

	return nil
}

// subscriberTarget picks the delivery address for the subscriber's mode.
func subscriberTarget(subscriber statuspage.Subscriber) string {
	switch {
	case subscriber.Email != "":
		return subscriber.Email
	case subscriber.PhoneNumber != "":
		return subscriber.PhoneNumber
	case subscriber.Endpoint != "":
		return subscriber.Endpoint
	default:
		return NotAvailable
	}
}

func newSubscribersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIBER_ID",
		Short: "Show subscriber details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscriber, err := client.Subscribers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subscriber: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(subscriber)
			case OutputFormatYAML:
				return StandardYAMLRenderer(subscriber)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", subscriber.ID)
				_ = table.Append("Mode", subscriber.Mode)
				_ = table.Append("Target", subscriberTarget(*subscriber))
				_ = table.Append("Quarantined", formatTime(subscriber.QuarantinedAt))
				_ = table.Append("Created", formatTime(subscriber.CreatedAt))

				_ = table.Render()

				return nil
			}
		},
	}
}

func newSubscribersCreateCommand() *cobra.Command {
	var (
		email        string
		phoneNumber  string
		phoneCountry string
		endpoint     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscriber",
		Long:  "Subscribe an email address, phone number, or webhook endpoint to the page",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &statuspage.SubscriberRequest{
				Email:        stringOrNil(email),
				PhoneNumber:  stringOrNil(phoneNumber),
				PhoneCountry: stringOrNil(phoneCountry),
				Endpoint:     stringOrNil(endpoint),
			}

			subscriber, err := client.Subscribers().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create subscriber: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(subscriber)
			case OutputFormatYAML:
				return StandardYAMLRenderer(subscriber)
			default:
				fmt.Printf("Subscriber %s created (%s)\n", subscriber.ID, subscriberTarget(*subscriber))

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "SMS phone number")
	cmd.Flags().StringVar(&phoneCountry, "phone-country", "", "phone country code (e.g. US)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "webhook endpoint URL")
	cmd.MarkFlagsOneRequired("email", "phone-number", "endpoint")

	return cmd
}

func newSubscribersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SUBSCRIBER_ID",
		Short: "Delete a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Subscribers().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete subscriber: %w", err)
			}

			fmt.Println("Subscriber deleted")

			return nil
		},
	}
}

func newSubscribersResendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resend-confirmation SUBSCRIBER_ID",
		Short: "Resend the confirmation email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Subscribers().ResendConfirmation(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resend confirmation: %w", err)
			}

			fmt.Println("Confirmation resent")

			return nil
		},
	}
}
