package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// PageClient implements statuspage.PageClient.
type PageClient struct {
	httpClient *http.Client
	pageID     string
}

// NewPageClient creates a new page client scoped to pageID.
func NewPageClient(httpClient *http.Client, pageID string) *PageClient {
	return &PageClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

// Get implements statuspage.PageClient.Get.
func (c *PageClient) Get(ctx context.Context) (*statuspage.Page, error) {
	return getResource[statuspage.Page](ctx, c.httpClient, "/pages/"+c.pageID, "getting page")
}

// Update implements statuspage.PageClient.Update.
func (c *PageClient) Update(ctx context.Context, request *statuspage.PageUpdateRequest) (*statuspage.Page, error) {
	return updateResource[statuspage.Page](ctx, c.httpClient, "/pages/"+c.pageID, "page", request, "updating page")
}

// ListAll implements statuspage.PageClient.ListAll.
func (c *PageClient) ListAll(ctx context.Context) ([]statuspage.Page, error) {
	return listResources[statuspage.Page](ctx, c.httpClient, "/pages", nil, "listing pages")
}
