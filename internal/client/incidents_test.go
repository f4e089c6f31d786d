package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestIncidents_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents",
		body:   `[{"id":"1","name":"API outage"}]`,
	})

	incidents, err := c.Incidents().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "1", incidents[0].ID)
	assert.Equal(t, "API outage", incidents[0].Name)
}

func TestIncidents_ListUnresolved(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents/unresolved",
		body:   `[{"id":"1","status":"investigating"},{"id":"2","status":"monitoring"}]`,
	})

	incidents, err := c.Incidents().ListUnresolved(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, statuspage.IncidentInvestigating, incidents[0].Status)
}

func TestIncidents_ListScheduled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents/scheduled",
		body:   `[{"id":"3","status":"scheduled"}]`,
	})

	incidents, err := c.Incidents().ListScheduled(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, statuspage.IncidentScheduled, incidents[0].Status)
}

func TestIncidents_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents/inc1",
		body:   `{"id":"inc1","name":"API outage","status":"identified"}`,
	})

	incident, err := c.Incidents().Get(context.Background(), "inc1")
	require.NoError(t, err)
	assert.Equal(t, "inc1", incident.ID)
	assert.Equal(t, statuspage.IncidentIdentified, incident.Status)
}

func TestIncidents_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPost,
		path:     "/v1/pages/abc123/incidents",
		status:   nethttp.StatusCreated,
		body:     `{"id":"inc1","name":"Down","status":"investigating"}`,
		wantBody: `{"incident":{"name":"Down","status":"investigating"}}`,
	})

	name := "Down"
	status := statuspage.IncidentInvestigating

	incident, err := c.Incidents().Create(context.Background(), &statuspage.IncidentRequest{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "inc1", incident.ID)
	assert.Equal(t, "Down", incident.Name)
}

func TestIncidents_CreateValidationError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodPost,
		path:   "/v1/pages/abc123/incidents",
		status: nethttp.StatusUnprocessableEntity,
		body:   `{"errors":{"name":["can't be blank"]}}`,
	})

	_, err := c.Incidents().Create(context.Background(), &statuspage.IncidentRequest{})
	require.Error(t, err)
	assert.True(t, statuspage.IsValidation(err))

	target := &statuspage.ValidationError{}
	require.ErrorAs(t, err, &target)
	assert.Equal(t, []string{"can't be blank"}, target.Errors["name"])
}

func TestIncidents_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPatch,
		path:     "/v1/pages/abc123/incidents/inc1",
		body:     `{"id":"inc1","status":"resolved"}`,
		wantBody: `{"incident":{"status":"resolved"}}`,
	})

	status := statuspage.IncidentResolved

	incident, err := c.Incidents().Update(context.Background(), "inc1", &statuspage.IncidentRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, statuspage.IncidentResolved, incident.Status)
}

func TestIncidents_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/pages/abc123/incidents/inc1",
		status: nethttp.StatusNoContent,
	})

	err := c.Incidents().Delete(context.Background(), "inc1")
	require.NoError(t, err)
}

func TestIncidents_Unauthorized(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents",
		status: nethttp.StatusUnauthorized,
		body:   `{"error":"could not authenticate"}`,
	})

	_, err := c.Incidents().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, statuspage.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "listing incidents")
}

func TestIncidents_NotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents/gone",
		status: nethttp.StatusNotFound,
		body:   `{"error":"not found"}`,
	})

	_, err := c.Incidents().Get(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, statuspage.IsNotFound(err))
}

func TestIncidents_MalformedResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/incidents",
		body:   `{"not":"an array"`,
	})

	_, err := c.Incidents().List(context.Background(), nil)
	require.Error(t, err)

	target := &statuspage.ParseError{}
	require.ErrorAs(t, err, &target)
}
