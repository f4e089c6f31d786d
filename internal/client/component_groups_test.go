package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestComponentGroups_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/component-groups",
		body:   `[{"id":"g1","name":"Backend","components":["c1","c2"]}]`,
	})

	groups, err := c.ComponentGroups().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"c1", "c2"}, groups[0].Components)
}

func TestComponentGroups_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/component-groups/g1",
		body:   `{"id":"g1","name":"Backend"}`,
	})

	group, err := c.ComponentGroups().Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Backend", group.Name)
}

func TestComponentGroups_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPost,
		path:     "/v1/pages/abc123/component-groups",
		status:   nethttp.StatusCreated,
		body:     `{"id":"g1","name":"Backend","components":["c1"]}`,
		wantBody: `{"component_group":{"name":"Backend","components":["c1"]}}`,
	})

	name := "Backend"

	group, err := c.ComponentGroups().Create(context.Background(), &statuspage.ComponentGroupRequest{
		Name:       &name,
		Components: []string{"c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", group.ID)
}

func TestComponentGroups_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPatch,
		path:     "/v1/pages/abc123/component-groups/g1",
		body:     `{"id":"g1","name":"Platform"}`,
		wantBody: `{"component_group":{"name":"Platform"}}`,
	})

	name := "Platform"

	group, err := c.ComponentGroups().Update(context.Background(), "g1", &statuspage.ComponentGroupRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", group.Name)
}

func TestComponentGroups_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/pages/abc123/component-groups/g1",
		status: nethttp.StatusNoContent,
	})

	require.NoError(t, c.ComponentGroups().Delete(context.Background(), "g1"))
}
