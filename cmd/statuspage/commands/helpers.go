// Package commands implements the statuspage CLI command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/al26p/statuspage-go/pkg/spclient"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"

	timeFormat = "2006-01-02 15:04:05"
)

// CreateClient builds an API client from the resolved configuration.
func CreateClient() (statuspage.Client, error) {
	config := &statuspage.Config{
		APIKey:         viper.GetString("api-key"),
		PageID:         viper.GetString("page-id"),
		OrganizationID: viper.GetString("organization-id"),
		BaseURL:        viper.GetString("base-url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewZerologAdapter()
	}

	return spclient.New(config)
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// ZerologAdapter bridges zerolog to the statuspage.Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a console logger writing to stderr.
func NewZerologAdapter() *ZerologAdapter {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return &ZerologAdapter{
		logger: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// Debug implements statuspage.Logger.
func (z *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements statuspage.Logger.
func (z *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements statuspage.Logger.
func (z *ZerologAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements statuspage.Logger.
func (z *ZerologAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// buildListParams assembles pagination parameters from command flags.
func buildListParams(page, perPage int) *statuspage.ListParams {
	params := statuspage.NewListParams()

	if page > 0 {
		params.WithPage(page)
	}

	if perPage > 0 {
		params.WithPerPage(perPage)
	}

	return params
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(timeFormat)
}

// stringOrNil returns a pointer to s, or nil when s is empty. Request
// types use pointer fields so unset flags stay out of the payload.
func stringOrNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
