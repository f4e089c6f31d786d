package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// ComponentsClient implements statuspage.ComponentsClient.
type ComponentsClient struct {
	httpClient *http.Client
	pageID     string
}

// NewComponentsClient creates a new components client scoped to pageID.
func NewComponentsClient(httpClient *http.Client, pageID string) *ComponentsClient {
	return &ComponentsClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *ComponentsClient) basePath() string {
	return "/pages/" + c.pageID + "/components"
}

// List implements statuspage.ComponentsClient.List.
func (c *ComponentsClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Component, error) {
	return listResources[statuspage.Component](ctx, c.httpClient, c.basePath(), params, "listing components")
}

// Get implements statuspage.ComponentsClient.Get.
func (c *ComponentsClient) Get(ctx context.Context, componentID string) (*statuspage.Component, error) {
	return getResource[statuspage.Component](ctx, c.httpClient, c.basePath()+"/"+componentID, "getting component")
}

// Create implements statuspage.ComponentsClient.Create.
func (c *ComponentsClient) Create(ctx context.Context, request *statuspage.ComponentRequest) (*statuspage.Component, error) {
	return createResource[statuspage.Component](ctx, c.httpClient, c.basePath(), "component", request, "creating component")
}

// Update implements statuspage.ComponentsClient.Update.
func (c *ComponentsClient) Update(ctx context.Context, componentID string, request *statuspage.ComponentRequest) (*statuspage.Component, error) {
	return updateResource[statuspage.Component](ctx, c.httpClient, c.basePath()+"/"+componentID, "component", request, "updating component")
}

// Delete implements statuspage.ComponentsClient.Delete.
func (c *ComponentsClient) Delete(ctx context.Context, componentID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+componentID, "deleting component")
}
