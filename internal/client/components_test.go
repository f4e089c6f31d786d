package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestComponents_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/components",
		body:   `[{"id":"c1","name":"API","status":"operational"},{"id":"c2","name":"Web","status":"major_outage"}]`,
	})

	components, err := c.Components().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, components, 2)
	assert.Equal(t, statuspage.ComponentOperational, components[0].Status)
	assert.Equal(t, statuspage.ComponentMajorOutage, components[1].Status)
}

func TestComponents_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/components/c1",
		body:   `{"id":"c1","name":"API","status":"degraded_performance"}`,
	})

	component, err := c.Components().Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "API", component.Name)
	assert.Equal(t, statuspage.ComponentDegradedPerformance, component.Status)
}

func TestComponents_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPost,
		path:     "/v1/pages/abc123/components",
		status:   nethttp.StatusCreated,
		body:     `{"id":"c1","name":"API"}`,
		wantBody: `{"component":{"name":"API","description":"Public REST API"}}`,
	})

	name := "API"
	description := "Public REST API"

	component, err := c.Components().Create(context.Background(), &statuspage.ComponentRequest{
		Name:        &name,
		Description: &description,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", component.ID)
}

func TestComponents_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPatch,
		path:     "/v1/pages/abc123/components/c1",
		body:     `{"id":"c1","status":"partial_outage"}`,
		wantBody: `{"component":{"status":"partial_outage"}}`,
	})

	status := statuspage.ComponentPartialOutage

	component, err := c.Components().Update(context.Background(), "c1", &statuspage.ComponentRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, statuspage.ComponentPartialOutage, component.Status)
}

func TestComponents_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/pages/abc123/components/c1",
		status: nethttp.StatusNoContent,
	})

	require.NoError(t, c.Components().Delete(context.Background(), "c1"))
}
