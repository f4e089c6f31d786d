package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestPage_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123",
		body:   `{"id":"abc123","name":"Example Status","subdomain":"example"}`,
	})

	page, err := c.Page().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", page.ID)
	assert.Equal(t, "Example Status", page.Name)
}

func TestPage_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPatch,
		path:     "/v1/pages/abc123",
		body:     `{"id":"abc123","name":"New Name"}`,
		wantBody: `{"page":{"name":"New Name"}}`,
	})

	name := "New Name"

	page, err := c.Page().Update(context.Background(), &statuspage.PageUpdateRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", page.Name)
}

func TestPage_ListAll(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages",
		body:   `[{"id":"abc123"},{"id":"def456"}]`,
	})

	pages, err := c.Page().ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "def456", pages[1].ID)
}
