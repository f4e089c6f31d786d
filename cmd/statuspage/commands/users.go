package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// NewUsersCommand creates the users command group. User commands are
// organization scoped and need --organization-id (or the config
// equivalent).
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage organization users",
		Long:    "List, create, and delete users in the organization",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background(), buildListParams(page, perPage))
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(users)
			case OutputFormatYAML:
				return StandardYAMLRenderer(users)
			default:
				return renderUsersTable(users)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func renderUsersTable(users []statuspage.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "First Name", "Last Name", "Created")

	for _, user := range users {
		_ = table.Append(user.ID, user.Email, user.FirstName, user.LastName,
			formatTime(user.CreatedAt))
	}

	_ = table.Render()

	return nil
}

func newUsersCreateCommand() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a user in the organization. The password is prompted, never passed as a flag.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fmt.Print("Password: ")

			passwordBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			password := strings.TrimSpace(string(passwordBytes))

			request := &statuspage.UserRequest{
				Email:     stringOrNil(email),
				Password:  stringOrNil(password),
				FirstName: stringOrNil(firstName),
				LastName:  stringOrNil(lastName),
			}

			user, err := client.Users().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("User %s created (%s)\n", user.ID, user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Users().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Println("User deleted")

			return nil
		},
	}
}
