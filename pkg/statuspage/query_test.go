package statuspage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	params := statuspage.NewListParams().
		WithPage(2).
		WithPerPage(50).
		WithFilter("q", "outage")

	values := params.ToValues()
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "50", values.Get("per_page"))
	assert.Equal(t, "outage", values.Get("q"))
}

func TestListParams_Empty(t *testing.T) {
	t.Parallel()

	params := statuspage.NewListParams()
	assert.Empty(t, params.ToValues())
}

func TestListParams_NilReceiver(t *testing.T) {
	t.Parallel()

	var params *statuspage.ListParams

	assert.Empty(t, params.ToValues())
}
