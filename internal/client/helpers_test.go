package client_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/internal/client"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

// route matches one expected request and replies with a canned response.
type route struct {
	method string
	path   string
	status int
	body   string

	// wantBody, when set, asserts the exact JSON the client sent.
	wantBody string
}

// newTestClient spins up a test server serving the given routes and
// returns a client pointed at it.
func newTestClient(t *testing.T, routes ...route) *client.Client {
	t.Helper()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		for _, rt := range routes {
			if r.Method != rt.method || r.URL.Path != rt.path {
				continue
			}

			if rt.wantBody != "" {
				got := readAll(t, r)
				require.JSONEq(t, rt.wantBody, string(got))
			}

			if rt.status != 0 {
				w.WriteHeader(rt.status)
			}

			_, _ = w.Write([]byte(rt.body))

			return
		}

		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(nethttp.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	c, err := client.New(&statuspage.Config{
		APIKey:         "test-key",
		PageID:         "abc123",
		OrganizationID: "org1",
		BaseURL:        server.URL,
	})
	require.NoError(t, err)

	return c
}

func readAll(t *testing.T, r *nethttp.Request) []byte {
	t.Helper()

	var raw json.RawMessage

	require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

	return raw
}
