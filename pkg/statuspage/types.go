package statuspage

import (
	"time"
)

// Page represents a status page, the top-level tenant every page-scoped
// resource belongs to.
type Page struct {
	ID                       string     `json:"id"                                  yaml:"id"`
	Name                     string     `json:"name"                                yaml:"name"`
	URL                      string     `json:"url"                                 yaml:"url"`
	TimeZone                 string     `json:"time_zone"                           yaml:"time_zone"`
	Subdomain                string     `json:"subdomain"                           yaml:"subdomain"`
	Domain                   string     `json:"domain"                              yaml:"domain"`
	SupportURL               string     `json:"support_url"                         yaml:"support_url"`
	Headline                 string     `json:"headline"                            yaml:"headline"`
	Branding                 string     `json:"branding"                            yaml:"branding"`
	AllowEmailSubscribers    bool       `json:"allow_email_subscribers"             yaml:"allow_email_subscribers"`
	AllowSMSSubscribers      bool       `json:"allow_sms_subscribers"               yaml:"allow_sms_subscribers"`
	AllowWebhookSubscribers  bool       `json:"allow_webhook_subscribers"           yaml:"allow_webhook_subscribers"`
	AllowRSSAtomFeeds        bool       `json:"allow_rss_atom_feeds"                yaml:"allow_rss_atom_feeds"`
	NotificationsFromEmail   string     `json:"notifications_from_email"            yaml:"notifications_from_email"`
	NotificationsEmailFooter string     `json:"notifications_email_footer"          yaml:"notifications_email_footer"`
	CreatedAt                *time.Time `json:"created_at,omitempty"                yaml:"created_at,omitempty"`
	UpdatedAt                *time.Time `json:"updated_at,omitempty"                yaml:"updated_at,omitempty"`
}

// PageUpdateRequest holds the writable fields of a page. It is wrapped
// under the "page" envelope key on the wire.
type PageUpdateRequest struct {
	Name                     *string `json:"name,omitempty"                       yaml:"name,omitempty"`
	URL                      *string `json:"url,omitempty"                        yaml:"url,omitempty"`
	TimeZone                 *string `json:"time_zone,omitempty"                  yaml:"time_zone,omitempty"`
	Domain                   *string `json:"domain,omitempty"                     yaml:"domain,omitempty"`
	SupportURL               *string `json:"support_url,omitempty"                yaml:"support_url,omitempty"`
	Branding                 *string `json:"branding,omitempty"                   yaml:"branding,omitempty"`
	AllowEmailSubscribers    *bool   `json:"allow_email_subscribers,omitempty"    yaml:"allow_email_subscribers,omitempty"`
	AllowSMSSubscribers      *bool   `json:"allow_sms_subscribers,omitempty"      yaml:"allow_sms_subscribers,omitempty"`
	AllowWebhookSubscribers  *bool   `json:"allow_webhook_subscribers,omitempty"  yaml:"allow_webhook_subscribers,omitempty"`
	NotificationsFromEmail   *string `json:"notifications_from_email,omitempty"   yaml:"notifications_from_email,omitempty"`
	NotificationsEmailFooter *string `json:"notifications_email_footer,omitempty" yaml:"notifications_email_footer,omitempty"`
}

// Component statuses accepted by the API.
const (
	ComponentOperational         = "operational"
	ComponentDegradedPerformance = "degraded_performance"
	ComponentPartialOutage       = "partial_outage"
	ComponentMajorOutage         = "major_outage"
	ComponentUnderMaintenance    = "under_maintenance"
)

// Component represents a single component of a status page.
type Component struct {
	ID                 string     `json:"id"                             yaml:"id"`
	PageID             string     `json:"page_id"                        yaml:"page_id"`
	GroupID            string     `json:"group_id"                       yaml:"group_id"`
	Name               string     `json:"name"                           yaml:"name"`
	Description        string     `json:"description"                    yaml:"description"`
	Status             string     `json:"status"                         yaml:"status"`
	Position           int        `json:"position"                       yaml:"position"`
	Group              bool       `json:"group"                          yaml:"group"`
	Showcase           bool       `json:"showcase"                       yaml:"showcase"`
	OnlyShowIfDegraded bool       `json:"only_show_if_degraded"          yaml:"only_show_if_degraded"`
	AutomationEmail    string     `json:"automation_email"               yaml:"automation_email"`
	StartDate          string     `json:"start_date"                     yaml:"start_date"`
	CreatedAt          *time.Time `json:"created_at,omitempty"           yaml:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"           yaml:"updated_at,omitempty"`
}

// ComponentRequest holds the writable fields of a component, wrapped
// under the "component" envelope key.
type ComponentRequest struct {
	Name               *string `json:"name,omitempty"                  yaml:"name,omitempty"`
	Description        *string `json:"description,omitempty"           yaml:"description,omitempty"`
	Status             *string `json:"status,omitempty"                yaml:"status,omitempty"`
	GroupID            *string `json:"group_id,omitempty"              yaml:"group_id,omitempty"`
	Showcase           *bool   `json:"showcase,omitempty"              yaml:"showcase,omitempty"`
	OnlyShowIfDegraded *bool   `json:"only_show_if_degraded,omitempty" yaml:"only_show_if_degraded,omitempty"`
	StartDate          *string `json:"start_date,omitempty"            yaml:"start_date,omitempty"`
}

// ComponentGroup represents a named grouping of components.
type ComponentGroup struct {
	ID          string     `json:"id"                   yaml:"id"`
	PageID      string     `json:"page_id"              yaml:"page_id"`
	Name        string     `json:"name"                 yaml:"name"`
	Description string     `json:"description"          yaml:"description"`
	Components  []string   `json:"components"           yaml:"components"`
	Position    int        `json:"position"             yaml:"position"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ComponentGroupRequest holds the writable fields of a component group,
// wrapped under the "component_group" envelope key.
type ComponentGroupRequest struct {
	Name        *string  `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Components  []string `json:"components,omitempty"  yaml:"components,omitempty"`
}

// Incident statuses accepted by the API. Scheduled maintenances use
// the scheduled/in_progress/verifying/completed set.
const (
	IncidentInvestigating = "investigating"
	IncidentIdentified    = "identified"
	IncidentMonitoring    = "monitoring"
	IncidentResolved      = "resolved"
	IncidentScheduled     = "scheduled"
	IncidentInProgress    = "in_progress"
	IncidentVerifying     = "verifying"
	IncidentCompleted     = "completed"
)

// Incident represents a realtime incident or scheduled maintenance.
type Incident struct {
	ID                            string           `json:"id"                                        yaml:"id"`
	PageID                        string           `json:"page_id"                                   yaml:"page_id"`
	Name                          string           `json:"name"                                      yaml:"name"`
	Status                        string           `json:"status"                                    yaml:"status"`
	Impact                        string           `json:"impact"                                    yaml:"impact"`
	ImpactOverride                string           `json:"impact_override"                           yaml:"impact_override"`
	Shortlink                     string           `json:"shortlink"                                 yaml:"shortlink"`
	Metadata                      Value            `json:"metadata"                                  yaml:"-"`
	Components                    []Component      `json:"components"                                yaml:"components"`
	IncidentUpdates               []IncidentUpdate `json:"incident_updates"                          yaml:"incident_updates"`
	ScheduledFor                  *time.Time       `json:"scheduled_for,omitempty"                   yaml:"scheduled_for,omitempty"`
	ScheduledUntil                *time.Time       `json:"scheduled_until,omitempty"                 yaml:"scheduled_until,omitempty"`
	ScheduledRemindPrior          bool             `json:"scheduled_remind_prior"                    yaml:"scheduled_remind_prior"`
	ScheduledAutoInProgress       bool             `json:"scheduled_auto_in_progress"                yaml:"scheduled_auto_in_progress"`
	ScheduledAutoCompleted        bool             `json:"scheduled_auto_completed"                  yaml:"scheduled_auto_completed"`
	MonitoringAt                  *time.Time       `json:"monitoring_at,omitempty"                   yaml:"monitoring_at,omitempty"`
	ResolvedAt                    *time.Time       `json:"resolved_at,omitempty"                     yaml:"resolved_at,omitempty"`
	PostmortemBody                string           `json:"postmortem_body"                           yaml:"postmortem_body"`
	PostmortemPublishedAt         *time.Time       `json:"postmortem_published_at,omitempty"         yaml:"postmortem_published_at,omitempty"`
	PostmortemNotifiedSubscribers bool             `json:"postmortem_notified_subscribers"           yaml:"postmortem_notified_subscribers"`
	CreatedAt                     *time.Time       `json:"created_at,omitempty"                      yaml:"created_at,omitempty"`
	UpdatedAt                     *time.Time       `json:"updated_at,omitempty"                      yaml:"updated_at,omitempty"`
}

// IncidentRequest holds the writable fields of an incident, wrapped
// under the "incident" envelope key. Body becomes the text of the
// incident update the server creates for the state change. Components
// maps component IDs to the status they should transition to.
type IncidentRequest struct {
	Name                    *string           `json:"name,omitempty"                       yaml:"name,omitempty"`
	Status                  *string           `json:"status,omitempty"                     yaml:"status,omitempty"`
	ImpactOverride          *string           `json:"impact_override,omitempty"            yaml:"impact_override,omitempty"`
	Body                    *string           `json:"body,omitempty"                       yaml:"body,omitempty"`
	Components              map[string]string `json:"components,omitempty"                 yaml:"components,omitempty"`
	ComponentIDs            []string          `json:"component_ids,omitempty"              yaml:"component_ids,omitempty"`
	DeliverNotifications    *bool             `json:"deliver_notifications,omitempty"      yaml:"deliver_notifications,omitempty"`
	ScheduledFor            *time.Time        `json:"scheduled_for,omitempty"              yaml:"scheduled_for,omitempty"`
	ScheduledUntil          *time.Time        `json:"scheduled_until,omitempty"            yaml:"scheduled_until,omitempty"`
	ScheduledRemindPrior    *bool             `json:"scheduled_remind_prior,omitempty"     yaml:"scheduled_remind_prior,omitempty"`
	ScheduledAutoInProgress *bool             `json:"scheduled_auto_in_progress,omitempty" yaml:"scheduled_auto_in_progress,omitempty"`
	ScheduledAutoCompleted  *bool             `json:"scheduled_auto_completed,omitempty"   yaml:"scheduled_auto_completed,omitempty"`
	Metadata                *Value            `json:"metadata,omitempty"                   yaml:"-"`
}

// IncidentUpdate represents one update posted to an incident.
type IncidentUpdate struct {
	ID                   string     `json:"id"                     yaml:"id"`
	IncidentID           string     `json:"incident_id"            yaml:"incident_id"`
	Body                 string     `json:"body"                   yaml:"body"`
	Status               string     `json:"status"                 yaml:"status"`
	DeliverNotifications bool       `json:"deliver_notifications"  yaml:"deliver_notifications"`
	WantsTwitterUpdate   bool       `json:"wants_twitter_update"   yaml:"wants_twitter_update"`
	DisplayAt            *time.Time `json:"display_at,omitempty"   yaml:"display_at,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// IncidentUpdateRequest holds the writable fields of an existing
// incident update, wrapped under the "incident_update" envelope key.
type IncidentUpdateRequest struct {
	Body               *string    `json:"body,omitempty"                 yaml:"body,omitempty"`
	DisplayAt          *time.Time `json:"display_at,omitempty"           yaml:"display_at,omitempty"`
	WantsTwitterUpdate *bool      `json:"wants_twitter_update,omitempty" yaml:"wants_twitter_update,omitempty"`
}

// Subscriber represents a page subscriber in any delivery mode
// (email, SMS, or webhook).
type Subscriber struct {
	ID            string     `json:"id"                       yaml:"id"`
	Mode          string     `json:"mode"                     yaml:"mode"`
	Email         string     `json:"email"                    yaml:"email"`
	PhoneNumber   string     `json:"phone_number"             yaml:"phone_number"`
	PhoneCountry  string     `json:"phone_country"            yaml:"phone_country"`
	Endpoint      string     `json:"endpoint"                 yaml:"endpoint"`
	QuarantinedAt *time.Time `json:"quarantined_at,omitempty" yaml:"quarantined_at,omitempty"`
	PurgeAt       *time.Time `json:"purge_at,omitempty"       yaml:"purge_at,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"     yaml:"created_at,omitempty"`
}

// SubscriberRequest holds the fields for creating a subscriber, wrapped
// under the "subscriber" envelope key. Exactly one delivery target
// (email, phone number, or endpoint) should be set.
type SubscriberRequest struct {
	Email                        *string `json:"email,omitempty"                          yaml:"email,omitempty"`
	PhoneNumber                  *string `json:"phone_number,omitempty"                   yaml:"phone_number,omitempty"`
	PhoneCountry                 *string `json:"phone_country,omitempty"                  yaml:"phone_country,omitempty"`
	Endpoint                     *string `json:"endpoint,omitempty"                       yaml:"endpoint,omitempty"`
	SkipConfirmationNotification *bool   `json:"skip_confirmation_notification,omitempty" yaml:"skip_confirmation_notification,omitempty"`
}

// Metric represents a system metric displayed on the page.
type Metric struct {
	ID                 string     `json:"id"                            yaml:"id"`
	MetricIdentifier   string     `json:"metric_identifier"             yaml:"metric_identifier"`
	Name               string     `json:"name"                          yaml:"name"`
	Display            bool       `json:"display"                       yaml:"display"`
	TooltipDescription string     `json:"tooltip_description"           yaml:"tooltip_description"`
	Suffix             string     `json:"suffix"                        yaml:"suffix"`
	YAxisMin           float64    `json:"y_axis_min"                    yaml:"y_axis_min"`
	YAxisMax           float64    `json:"y_axis_max"                    yaml:"y_axis_max"`
	DecimalPlaces      int        `json:"decimal_places"                yaml:"decimal_places"`
	Backfilled         bool       `json:"backfilled"                    yaml:"backfilled"`
	MostRecentDataAt   *time.Time `json:"most_recent_data_at,omitempty" yaml:"most_recent_data_at,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"          yaml:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"          yaml:"updated_at,omitempty"`
}

// MetricRequest holds the writable fields of a metric, wrapped under
// the "metric" envelope key.
type MetricRequest struct {
	Name               *string  `json:"name,omitempty"                yaml:"name,omitempty"`
	MetricIdentifier   *string  `json:"metric_identifier,omitempty"   yaml:"metric_identifier,omitempty"`
	Display            *bool    `json:"display,omitempty"             yaml:"display,omitempty"`
	TooltipDescription *string  `json:"tooltip_description,omitempty" yaml:"tooltip_description,omitempty"`
	Suffix             *string  `json:"suffix,omitempty"              yaml:"suffix,omitempty"`
	YAxisMin           *float64 `json:"y_axis_min,omitempty"          yaml:"y_axis_min,omitempty"`
	YAxisMax           *float64 `json:"y_axis_max,omitempty"          yaml:"y_axis_max,omitempty"`
	DecimalPlaces      *int     `json:"decimal_places,omitempty"      yaml:"decimal_places,omitempty"`
}

// MetricDataPoint is one sample submitted to or returned by a metric.
// Timestamp is Unix seconds, per the API.
type MetricDataPoint struct {
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value"     yaml:"value"`
}

// User represents a member of the organization that owns the page.
type User struct {
	ID        string     `json:"id"                   yaml:"id"`
	Email     string     `json:"email"                yaml:"email"`
	FirstName string     `json:"first_name"           yaml:"first_name"`
	LastName  string     `json:"last_name"            yaml:"last_name"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// UserRequest holds the fields for creating a user, wrapped under the
// "user" envelope key.
type UserRequest struct {
	Email     *string `json:"email,omitempty"      yaml:"email,omitempty"`
	Password  *string `json:"password,omitempty"   yaml:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
}
