package statuspage

import (
	"context"
	"time"
)

// DefaultBaseURL is the production statuspage.io API endpoint.
const DefaultBaseURL = "https://api.statuspage.io"

// PageClient provides access to the status page the client is scoped to.
type PageClient interface {
	// Get fetches the configured page.
	Get(ctx context.Context) (*Page, error)
	// Update patches the configured page.
	Update(ctx context.Context, request *PageUpdateRequest) (*Page, error)
	// ListAll lists every page the API key can manage.
	ListAll(ctx context.Context) ([]Page, error)
}

// ComponentsClient manages components of the configured page.
type ComponentsClient interface {
	List(ctx context.Context, params *ListParams) ([]Component, error)
	Get(ctx context.Context, componentID string) (*Component, error)
	Create(ctx context.Context, request *ComponentRequest) (*Component, error)
	Update(ctx context.Context, componentID string, request *ComponentRequest) (*Component, error)
	Delete(ctx context.Context, componentID string) error
}

// ComponentGroupsClient manages component groups of the configured page.
type ComponentGroupsClient interface {
	List(ctx context.Context, params *ListParams) ([]ComponentGroup, error)
	Get(ctx context.Context, groupID string) (*ComponentGroup, error)
	Create(ctx context.Context, request *ComponentGroupRequest) (*ComponentGroup, error)
	Update(ctx context.Context, groupID string, request *ComponentGroupRequest) (*ComponentGroup, error)
	Delete(ctx context.Context, groupID string) error
}

// IncidentsClient manages incidents of the configured page.
type IncidentsClient interface {
	List(ctx context.Context, params *ListParams) ([]Incident, error)
	ListUnresolved(ctx context.Context, params *ListParams) ([]Incident, error)
	ListScheduled(ctx context.Context, params *ListParams) ([]Incident, error)
	Get(ctx context.Context, incidentID string) (*Incident, error)
	Create(ctx context.Context, request *IncidentRequest) (*Incident, error)
	Update(ctx context.Context, incidentID string, request *IncidentRequest) (*Incident, error)
	Delete(ctx context.Context, incidentID string) error
}

// IncidentUpdatesClient manages the updates posted to a single incident.
// New updates are created through IncidentsClient.Update; the API only
// supports listing and patching existing updates here.
type IncidentUpdatesClient interface {
	List(ctx context.Context, incidentID string, params *ListParams) ([]IncidentUpdate, error)
	Update(ctx context.Context, incidentID, updateID string, request *IncidentUpdateRequest) (*IncidentUpdate, error)
}

// SubscribersClient manages subscribers of the configured page.
type SubscribersClient interface {
	List(ctx context.Context, params *ListParams) ([]Subscriber, error)
	Get(ctx context.Context, subscriberID string) (*Subscriber, error)
	Create(ctx context.Context, request *SubscriberRequest) (*Subscriber, error)
	Delete(ctx context.Context, subscriberID string) error
	ResendConfirmation(ctx context.Context, subscriberID string) error
}

// MetricsClient manages system metrics of the configured page.
type MetricsClient interface {
	List(ctx context.Context, params *ListParams) ([]Metric, error)
	Get(ctx context.Context, metricID string) (*Metric, error)
	Update(ctx context.Context, metricID string, request *MetricRequest) (*Metric, error)
	Delete(ctx context.Context, metricID string) error
	SubmitData(ctx context.Context, metricID string, point MetricDataPoint) (*MetricDataPoint, error)
	ResetData(ctx context.Context, metricID string) error
}

// UsersClient manages users of the configured organization. These
// endpoints are organization scoped, not page scoped; Config must carry
// OrganizationID for them to work.
type UsersClient interface {
	List(ctx context.Context, params *ListParams) ([]User, error)
	Create(ctx context.Context, request *UserRequest) (*User, error)
	Delete(ctx context.Context, userID string) error
}

// Client is the root of the statuspage.io API surface. It is immutable
// after construction and safe for concurrent use.
type Client interface {
	Page() PageClient
	Components() ComponentsClient
	ComponentGroups() ComponentGroupsClient
	Incidents() IncidentsClient
	IncidentUpdates() IncidentUpdatesClient
	Subscribers() SubscribersClient
	Metrics() MetricsClient
	Users() UsersClient

	// PageID returns the page identifier the client is scoped to.
	PageID() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a statuspage.Client.
//
// APIKey and PageID are required. BaseURL defaults to DefaultBaseURL.
// The library never reads environment variables or files itself; the
// caller supplies everything here.
//
// Retries are disabled unless RetryMax is set: by default every call
// performs exactly one network round trip, and a 429 or 5xx surfaces as
// the corresponding error for the caller to handle.
type Config struct {
	// APIKey: the statuspage.io API key, sent as "Authorization: OAuth <key>".
	APIKey string
	// PageID: the status page all page-scoped resources operate on.
	PageID string
	// OrganizationID: optional, required only for the Users endpoints.
	OrganizationID string
	// BaseURL: API endpoint override, mainly for tests. Defaults to
	// DefaultBaseURL. spclient.New trims a trailing slash and adds
	// "https://" when no scheme is present.
	BaseURL string

	// HTTPTimeout: default per-request deadline applied by the transport
	// when the caller's context carries none.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for 429/5xx/connection
	// failures. Zero keeps retries off.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
