package spclient

import (
	"fmt"
	"strings"

	"github.com/al26p/statuspage-go/internal/client"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// New creates a new statuspage.io API client from config. The base URL
// is normalized: a trailing slash is trimmed and "https://" is assumed
// when no scheme is given.
func New(config *statuspage.Config) (statuspage.Client, error) {
	if config == nil {
		return nil, statuspage.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, statuspage.ErrAPIKeyRequired
	}

	if config.PageID == "" {
		return nil, statuspage.ErrPageIDRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// NewWithKey creates a client with just an API key and page ID,
// targeting the production endpoint.
func NewWithKey(apiKey, pageID string) (statuspage.Client, error) {
	return New(&statuspage.Config{
		APIKey: apiKey,
		PageID: pageID,
	})
}
