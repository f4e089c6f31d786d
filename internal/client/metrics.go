package client

import (
	"context"
	"fmt"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// MetricsClient implements statuspage.MetricsClient.
type MetricsClient struct {
	httpClient *http.Client
	pageID     string
}

// NewMetricsClient creates a new metrics client scoped to pageID.
func NewMetricsClient(httpClient *http.Client, pageID string) *MetricsClient {
	return &MetricsClient{
		httpClient: httpClient,
		pageID:     pageID,
	}
}

func (c *MetricsClient) basePath() string {
	return "/pages/" + c.pageID + "/metrics"
}

// List implements statuspage.MetricsClient.List.
func (c *MetricsClient) List(ctx context.Context, params *statuspage.ListParams) ([]statuspage.Metric, error) {
	return listResources[statuspage.Metric](ctx, c.httpClient, c.basePath(), params, "listing metrics")
}

// Get implements statuspage.MetricsClient.Get.
func (c *MetricsClient) Get(ctx context.Context, metricID string) (*statuspage.Metric, error) {
	return getResource[statuspage.Metric](ctx, c.httpClient, c.basePath()+"/"+metricID, "getting metric")
}

// Update implements statuspage.MetricsClient.Update.
func (c *MetricsClient) Update(ctx context.Context, metricID string, request *statuspage.MetricRequest) (*statuspage.Metric, error) {
	return updateResource[statuspage.Metric](ctx, c.httpClient, c.basePath()+"/"+metricID, "metric", request, "updating metric")
}

// Delete implements statuspage.MetricsClient.Delete.
func (c *MetricsClient) Delete(ctx context.Context, metricID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+metricID, "deleting metric")
}

// SubmitData implements statuspage.MetricsClient.SubmitData. The data
// point travels under the "data" envelope key rather than the resource
// name.
func (c *MetricsClient) SubmitData(ctx context.Context, metricID string, point statuspage.MetricDataPoint) (*statuspage.MetricDataPoint, error) {
	path := c.basePath() + "/" + metricID + "/data"

	resp, err := c.httpClient.Post(ctx, path, envelope("data", point))
	if err != nil {
		return nil, fmt.Errorf("submitting metric data: %w", err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("submitting metric data: %w", err)
	}

	submitted, err := decodeInto[statuspage.MetricDataPoint](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("submitting metric data: %w", err)
	}

	return submitted, nil
}

// ResetData implements statuspage.MetricsClient.ResetData.
func (c *MetricsClient) ResetData(ctx context.Context, metricID string) error {
	return deleteResource(ctx, c.httpClient, c.basePath()+"/"+metricID+"/data", "resetting metric data")
}
