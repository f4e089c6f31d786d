package client

import (
	"context"
	"fmt"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// UsersClient implements statuspage.UsersClient. User endpoints hang
// off the organization, not the page.
type UsersClient struct {
	httpClient *http.Client
	orgID      string
}

// NewUsersClient creates a new users client scoped to orgID.
func NewUsersClient(httpClient *http.Client, orgID string) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		orgID:      orgID,
	}
}

func (c *UsersClient) basePath() (string, error) {
	if c.orgID == "" {
		return "", statuspage.ErrOrganizationIDRequired
	}

	return "/organizations/" + c.orgID + "/users", nil
}

// List implements statuspage.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.User, error) {
	path, err := c.basePath()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return listResources[statuspage.User](ctx, c.httpClient, path, params, "listing users")
}

// Create implements statuspage.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *statuspage.UserRequest) (*statuspage.User, error) {
	path, err := c.basePath()
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return createResource[statuspage.User](ctx, c.httpClient, path, "user", request, "creating user")
}

// Delete implements statuspage.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID string) error {
	path, err := c.basePath()
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return deleteResource(ctx, c.httpClient, path+"/"+userID, "deleting user")
}
