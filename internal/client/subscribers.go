package client

import (
	"context"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// SubscribersClient implements statuspage.SubscribersClient.
type SubscribersClient struct {
	httpClient *http.Client
	pageID     string
}

// NewSubscribersClient creates a new subscribers client scoped to pageID.
func NewSubscribersClient(httpClient *http.Client, pageID string) *SubscribersClient {
	return &SubscribersClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *SubscribersClient) basePath() string {
	return "/pages/" + c.pageID + "/subscribers"
}

// List implements statuspage.SubscribersClient.List.
func (c *SubscribersClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Subscriber, error) {
	return listResources[statuspage.Subscriber](ctx, c.httpClient, c.basePath(), params, "listing subscribers")
}

// Get implements statuspage.SubscribersClient.Get.
func (c *SubscribersClient) Get(ctx context.Context, subscriberID string) (*statuspage.Subscriber, error) {
	return getResource[statuspage.Subscriber](ctx, c.httpClient, c.basePath()+"/"+subscriberID, "getting subscriber")
}

// Create implements statuspage.SubscribersClient.Create.
func (c *SubscribersClient) Create(ctx context.Context, request *statuspage.SubscriberRequest) (*statuspage.Subscriber, error) {
	return createResource[statuspage.Subscriber](ctx, c.httpClient, c.basePath(), "subscriber", request, "creating subscriber")
}

// Delete implements statuspage.SubscribersClient.Delete.
func (c *SubscribersClient) Delete(ctx context.Context, subscriberID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+subscriberID, "deleting subscriber")
}

// ResendConfirmation implements statuspage.SubscribersClient.ResendConfirmation.
func (c *SubscribersClient) ResendConfirmation(ctx context.Context, subscriberID string) error {
	return postAction(ctx, c.httpClient, c.basePath()+"/"+subscriberID+"/resend_confirmation", nil, "resending subscriber confirmation")
}
