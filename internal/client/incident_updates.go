package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// IncidentUpdatesClient implements statuspage.IncidentUpdatesClient.
// Updates nest one level under their incident:
// /pages/{page_id}/incidents/{incident_id}/incident_updates[/{id}].
type IncidentUpdatesClient struct {
	httpClient *http.Client
	pageID     string
}

// NewIncidentUpdatesClient creates a new incident updates client scoped to pageID.
func NewIncidentUpdatesClient(httpClient *http.Client, pageID string) *IncidentUpdatesClient {
	return &IncidentUpdatesClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *IncidentUpdatesClient) basePath(incidentID string) string {
	return "/pages/" + c.pageID + "/incidents/" + incidentID + "/incident_updates"
}

// List implements statuspage.IncidentUpdatesClient.List.
func (c *IncidentUpdatesClient) List(ctx context.Context, incidentID string, params *statuspage.ListParams) ([]statuspage.IncidentUpdate, error) {
	return listResources[statuspage.IncidentUpdate](ctx, c.httpClient, c.basePath(incidentID), params, "listing incident updates")
}

// Update implements statuspage.IncidentUpdatesClient.Update.
func (c *IncidentUpdatesClient) Update(ctx context.Context, incidentID, updateID string, request *statuspage.IncidentUpdateRequest) (*statuspage.IncidentUpdate, error) {
	return updateResource[statuspage.IncidentUpdate](ctx, c.httpClient, c.basePath(incidentID)+"/"+updateID, "incident_update", request, "updating incident update")
}
