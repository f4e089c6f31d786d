package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/internal/client"
	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *statuspage.Config
		wantErr error
	}{
		{
			name:    "missing api key",
			config:  &statuspage.Config{PageID: "abc123"},
			wantErr: statuspage.ErrAPIKeyRequired,
		},
		{
			name:    "missing page id",
			config:  &statuspage.Config{APIKey: "test-key"},
			wantErr: statuspage.ErrPageIDRequired,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := client.New(&statuspage.Config{
		APIKey: "test-key",
		PageID: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", c.PageID())
	assert.NotNil(t, c.Page())
	assert.NotNil(t, c.Components())
	assert.NotNil(t, c.ComponentGroups())
	assert.NotNil(t, c.Incidents())
	assert.NotNil(t, c.IncidentUpdates())
	assert.NotNil(t, c.Subscribers())
	assert.NotNil(t, c.Metrics())
	assert.NotNil(t, c.Users())
}
