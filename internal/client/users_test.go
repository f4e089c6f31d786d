package client_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/internal/client"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestUsers_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/organizations/org1/users",
		body:   `[{"id":"u1","email":"admin@example.com"}]`,
	})

	users, err := c.Users().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)
}

func TestUsers_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPost,
		path:     "/v1/organizations/org1/users",
		status:   nethttp.StatusCreated,
		body:     `{"id":"u1","email":"new@example.com"}`,
		wantBody: `{"user":{"email":"new@example.com","password":"hunter22"}}`,
	})

	email := "new@example.com"
	password := "hunter22"

	user, err := c.Users().Create(context.Background(), &statuspage.UserRequest{
		Email:    &email,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUsers_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/organizations/org1/users/u1",
		status: nethttp.StatusNoContent,
	})

	require.NoError(t, c.Users().Delete(context.Background(), "u1"))
}

func TestUsers_RequiresOrganizationID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(server.Close)

	c, err := client.New(&statuspage.Config{
		APIKey:  "test-key",
		PageID:  "abc123",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	_, err = c.Users().List(context.Background(), nil)
	require.ErrorIs(t, err, statuspage.ErrOrganizationIDRequired)
}
