package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// cliConfig is the on-disk shape of ~/.statuspage/config.yml.
type cliConfig struct {
	APIKey         string `yaml:"api-key"`
	PageID         string `yaml:"page-id"`
	OrganizationID string `yaml:"organization-id,omitempty"`
	BaseURL        string `yaml:"base-url,omitempty"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long:  "Interactively store the API key and page ID in ~/.statuspage/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("API key: ")

	keyBytes, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Println()

	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}

	fmt.Print("Page ID: ")

	pageID, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading page ID: %w", err)
	}

	fmt.Print("Organization ID (optional): ")

	orgID, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading organization ID: %w", err)
	}

	config := cliConfig{
		APIKey:         strings.TrimSpace(string(keyBytes)),
		PageID:         strings.TrimSpace(pageID),
		OrganizationID: strings.TrimSpace(orgID),
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".statuspage")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	// The file holds a credential; keep it owner-readable only.
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Println("Configuration saved to", configPath)

	return nil
}
