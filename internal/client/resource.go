package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/al26p/statuspage-go/internal/http"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// The resource clients in this package all run the same pipeline:
// transport call, then response classification, then decoding. The
// generic helpers below implement that pipeline once, parameterized by
// resource path and envelope key; the per-resource clients are thin
// named wrappers around them.

// envelope wraps a write payload under the singular resource-name key
// the API expects, e.g. {"incident": {...}}.
func envelope(key string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{key: payload}
}

func decodeInto[T any](body []byte) (*T, error) {
	var out T

	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, &statuspage.ParseError{Err: err, Body: body}
	}

	return &out, nil
}

func decodeSliceInto[T any](body []byte) ([]T, error) {
	var out []T

	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, &statuspage.ParseError{Err: err, Body: body}
	}

	return out, nil
}

// listResources GETs a collection path with optional filters and
// decodes the array response in source order.
func listResources[T any](ctx context.Context, httpClient *http.Client, path string, params *statuspage.ListParams, action string) ([]T, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	items, err := decodeSliceInto[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return items, nil
}

// getResource GETs an item path and decodes the object response.
func getResource[T any](ctx context.Context, httpClient *http.Client, path, action string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	item, err := decodeInto[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return item, nil
}

// createResource POSTs an enveloped payload to a collection path.
func createResource[T any](ctx context.Context, httpClient *http.Client, path, envelopeKey string, payload interface{}, action string) (*T, error) {
	resp, err := httpClient.Post(ctx, path, envelope(envelopeKey, payload))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	item, err := decodeInto[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return item, nil
}

// updateResource PATCHes an item path with an enveloped payload.
func updateResource[T any](ctx context.Context, httpClient *http.Client, path, envelopeKey string, payload interface{}, action string) (*T, error) {
	resp, err := httpClient.Patch(ctx, path, envelope(envelopeKey, payload))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	item, err := decodeInto[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return item, nil
}

// deleteResource DELETEs an item path. Success is the absence of an
// error; no body is expected or decoded.
func deleteResource(ctx context.Context, httpClient *http.Client, path, action string) error {
	resp, err := httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}

// postAction POSTs to an action path (no envelope) and discards any
// body, for endpoints like resend_confirmation.
func postAction(ctx context.Context, httpClient *http.Client, path string, body interface{}, action string) error {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	err = statuspage.CheckResponse(resp.StatusCode, resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	return nil
}
