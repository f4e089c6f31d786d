// Package client implements the statuspage.Client interface and its
// resource clients.
package client

import (
	"time"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// Client implements the statuspage.Client interface.
type Client struct {
	httpClient *http.Client
	pageID     string
	orgID      string

	// Resource clients
	page            statuspage.PageClient
	components      statuspage.ComponentsClient
	componentGroups statuspage.ComponentGroupsClient
	incidents       statuspage.IncidentsClient
	incidentUpdates statuspage.IncidentUpdatesClient
	subscribers     statuspage.SubscribersClient
	metrics         statuspage.MetricsClient
	users           statuspage.UsersClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *statuspage.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := 30 * time.Second

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new statuspage API client.
func New(config *statuspage.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, statuspage.ErrAPIKeyRequired
	}

	if config.PageID == "" {
		return nil, statuspage.ErrPageIDRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = statuspage.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		pageID:     config.PageID,
		orgID:      config.OrganizationID,
	}

	client.initializeResourceClients()

	return client, nil
}

// PageID implements statuspage.Client.PageID.
func (c *Client) PageID() string {
	return c.pageID
}

// Page implements statuspage.Client.Page.
func (c *Client) Page() statuspage.PageClient {
	return c.page
}

// Components implements statuspage.Client.Components.
func (c *Client) Components() statuspage.ComponentsClient {
	return c.components
}

// ComponentGroups implements statuspage.Client.ComponentGroups.
func (c *Client) ComponentGroups() statuspage.ComponentGroupsClient {
	return c.componentGroups
}

// Incidents implements statuspage.Client.Incidents.
func (c *Client) Incidents() statuspage.IncidentsClient {
	return c.incidents
}

// IncidentUpdates implements statuspage.Client.IncidentUpdates.
func (c *Client) IncidentUpdates() statuspage.IncidentUpdatesClient {
	return c.incidentUpdates
}

// Subscribers implements statuspage.Client.Subscribers.
func (c *Client) Subscribers() statuspage.SubscribersClient {
	return c.subscribers
}

// Metrics implements statuspage.Client.Metrics.
func (c *Client) Metrics() statuspage.MetricsClient {
	return c.metrics
}

// Users implements statuspage.Client.Users.
func (c *Client) Users() statuspage.UsersClient {
	return c.users
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.page = NewPageClient(c.httpClient, c.pageID)
	c.components = NewComponentsClient(c.httpClient, c.pageID)
	c.componentGroups = NewComponentGroupsClient(c.httpClient, c.pageID)
	c.incidents = NewIncidentsClient(c.httpClient, c.pageID)
	c.incidentUpdates = NewIncidentUpdatesClient(c.httpClient, c.pageID)
	c.subscribers = NewSubscribersClient(c.httpClient, c.pageID)
	c.metrics = NewMetricsClient(c.httpClient, c.pageID)
	c.users = NewUsersClient(c.httpClient, c.orgID)
}
