package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// ComponentGroupsClient implements statuspage.ComponentGroupsClient.
type ComponentGroupsClient struct {
	httpClient *http.Client
	pageID     string
}

// NewComponentGroupsClient creates a new component groups client scoped to pageID.
func NewComponentGroupsClient(httpClient *http.Client, pageID string) *ComponentGroupsClient {
	return &ComponentGroupsClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *ComponentGroupsClient) basePath() string {
	return "/pages/" + c.pageID + "/component-groups"
}

// List implements statuspage.ComponentGroupsClient.List.
func (c *ComponentGroupsClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.ComponentGroup, error) {
	return listResources[statuspage.ComponentGroup](ctx, c.httpClient, c.basePath(), params, "listing component groups")
}

// Get implements statuspage.ComponentGroupsClient.Get.
func (c *ComponentGroupsClient) Get(ctx context.Context, groupID string) (*statuspage.ComponentGroup, error) {
	return getResource[statuspage.ComponentGroup](ctx, c.httpClient, c.basePath()+"/"+groupID, "getting component group")
}

// Create implements statuspage.ComponentGroupsClient.Create.
func (c *ComponentGroupsClient) Create(ctx context.Context, request *statuspage.ComponentGroupRequest) (*statuspage.ComponentGroup, error) {
	return createResource[statuspage.ComponentGroup](ctx, c.httpClient, c.basePath(), "component_group", request, "creating component group")
}

// Update implements statuspage.ComponentGroupsClient.Update.
func (c *ComponentGroupsClient) Update(ctx context.Context, groupID string, request *statuspage.ComponentGroupRequest) (*statuspage.ComponentGroup, error) {
	return updateResource[statuspage.ComponentGroup](ctx, c.httpClient, c.basePath()+"/"+groupID, "component_group", request, "updating component group")
}

// Delete implements statuspage.ComponentGroupsClient.Delete.
func (c *ComponentGroupsClient) Delete(ctx context.Context, groupID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+groupID, "deleting component group")
}
