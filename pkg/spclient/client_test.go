package spclient_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/spclient"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := spclient.New(nil)
	require.ErrorIs(t, err, statuspage.ErrConfigRequired)
}

func TestNew_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := spclient.New(&statuspage.Config{PageID: "abc123"})
	require.ErrorIs(t, err, statuspage.ErrAPIKeyRequired)
}

func TestNew_MissingPageID(t *testing.T) {
	t.Parallel()

	_, err := spclient.New(&statuspage.Config{APIKey: "test-key"})
	require.ErrorIs(t, err, statuspage.ErrPageIDRequired)
}

func TestNewWithKey(t *testing.T) {
	t.Parallel()

	c, err := spclient.NewWithKey("test-key", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", c.PageID())
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing slash", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "no scheme", in: "api.example.com", want: "https://api.example.com"},
		{name: "http kept", in: "http://localhost:3000", want: "http://localhost:3000"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &statuspage.Config{
				APIKey:  "test-key",
				PageID:  "abc123",
				BaseURL: testCase.in,
			}

			_, err := spclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, config.BaseURL)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v1/pages/abc123", r.URL.Path)
		assert.Equal(t, "OAuth test-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id":"abc123","name":"Example Status"}`))
	}))
	defer server.Close()

	c, err := spclient.New(&statuspage.Config{
		APIKey:  "test-key",
		PageID:  "abc123",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	page, err := c.Page().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Example Status", page.Name)
}
