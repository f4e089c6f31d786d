package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestMetrics_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/metrics",
		body:   `[{"id":"m1","name":"API Latency","suffix":"ms"}]`,
	})

	metrics, err := c.Metrics().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "ms", metrics[0].Suffix)
}

func TestMetrics_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodGet,
		path:   "/v1/pages/abc123/metrics/m1",
		body:   `{"id":"m1","name":"API Latency","decimal_places":2}`,
	})

	metric, err := c.Metrics().Get(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, metric.DecimalPlaces)
}

func TestMetrics_Update(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPatch,
		path:     "/v1/pages/abc123/metrics/m1",
		body:     `{"id":"m1","name":"p99 Latency"}`,
		wantBody: `{"metric":{"name":"p99 Latency"}}`,
	})

	name := "p99 Latency"

	metric, err := c.Metrics().Update(context.Background(), "m1", &statuspage.MetricRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "p99 Latency", metric.Name)
}

func TestMetrics_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/pages/abc123/metrics/m1",
		status: nethttp.StatusNoContent,
	})

	require.NoError(t, c.Metrics().Delete(context.Background(), "m1"))
}

func TestMetrics_SubmitData(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method:   nethttp.MethodPost,
		path:     "/v1/pages/abc123/metrics/m1/data",
		status:   nethttp.StatusCreated,
		body:     `{"timestamp":1700000000,"value":42.5}`,
		wantBody: `{"data":{"timestamp":1700000000,"value":42.5}}`,
	})

	point, err := c.Metrics().SubmitData(context.Background(), "m1", statuspage.MetricDataPoint{
		Timestamp: 1700000000,
		Value:     42.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 42.5, point.Value, 0.001)
}

func TestMetrics_ResetData(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, route{
		method: nethttp.MethodDelete,
		path:   "/v1/pages/abc123/metrics/m1/data",
		status: nethttp.StatusNoContent,
	})

	require.NoError(t, c.Metrics().ResetData(context.Background(), "m1"))
}
