package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// IncidentsClient implements statuspage.IncidentsClient.
type IncidentsClient struct {
	httpClient *http.Client
	pageID     string
}

// NewIncidentsClient creates a new incidents client scoped to pageID.
func NewIncidentsClient(httpClient *http.Client, pageID string) *IncidentsClient {
	return &IncidentsClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *IncidentsClient) basePath() string {
	return "/pages/" + c.pageID + "/incidents"
}

// List implements statuspage.IncidentsClient.List.
func (c *IncidentsClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Incident, error) {
	return listResources[statuspage.Incident](ctx, c.httpClient, c.basePath(), params, "listing incidents")
}

// ListUnresolved implements statuspage.IncidentsClient.ListUnresolved.
func (c *IncidentsClient) ListUnresolved(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Incident, error) {
	return listResources[statuspage.Incident](ctx, c.httpClient, c.basePath()+"/unresolved", params, "listing unresolved incidents")
}

// ListScheduled implements statuspage.IncidentsClient.ListScheduled.
func (c *IncidentsClient) ListScheduled(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Incident, error) {
	return listResources[statuspage.Incident](ctx, c.httpClient, c.basePath()+"/scheduled", params, "listing scheduled incidents")
}

// Get implements statuspage.IncidentsClient.Get.
func (c *IncidentsClient) Get(ctx context.Context, incidentID string) (*statuspage.Incident, error) {
	return getResource[statuspage.Incident](ctx, c.httpClient, c.basePath()+"/"+incidentID, "getting incident")
}

// Create implements statuspage.IncidentsClient.Create.
func (c *IncidentsClient) Create(ctx context.Context, request *statuspage.IncidentRequest) (*statuspage.Incident, error) {
	return createResource[statuspage.Incident](ctx, c.httpClient, c.basePath(), "incident", request, "creating incident")
}

// Update implements statuspage.IncidentsClient.Update.
func (c *IncidentsClient) Update(ctx context.Context, incidentID string, request *statuspage.IncidentRequest) (*statuspage.Incident, error) {
	return updateResource[statuspage.Incident](ctx, c.httpClient, c.basePath()+"/"+incidentID, "incident", request, "updating incident")
}

// Delete implements statuspage.IncidentsClient.Delete.
func (c *IncidentsClient) Delete(ctx context.Context, incidentID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+incidentID, "deleting incident")
}
