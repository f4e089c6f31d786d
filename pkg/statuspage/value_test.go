package statuspage_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/al26p/statuspage-go/pkg/statuspage"
)

func TestParseValue_Object(t *testing.T) {
	t.Parallel()

	value, err := statuspage.ParseValue([]byte(`{
		"id": "1",
		"name": "API outage",
		"impact": null,
		"notified": true,
		"update_count": 3,
		"page": {"id": "abc123", "name": "Example"},
		"tags": ["api", "outage"]
	}`))
	require.NoError(t, err)
	require.Equal(t, statuspage.KindObject, value.Kind())

	name, err := value.Get("name")
	require.NoError(t, err)

	nameStr, err := name.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "API outage", nameStr)

	impact, err := value.Get("impact")
	require.NoError(t, err)
	assert.True(t, impact.IsNull())

	notified, err := value.Get("notified")
	require.NoError(t, err)

	notifiedBool, err := notified.BoolValue()
	require.NoError(t, err)
	assert.True(t, notifiedBool)

	count, err := value.Get("update_count")
	require.NoError(t, err)

	countInt, err := count.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(3), countInt)

	// Nested objects map recursively to the same contract.
	page, err := value.Get("page")
	require.NoError(t, err)
	require.Equal(t, statuspage.KindObject, page.Kind())

	pageID, err := page.Get("id")
	require.NoError(t, err)

	pageIDStr, err := pageID.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "abc123", pageIDStr)

	// Nested arrays map to ordered sequences.
	tags, err := value.Get("tags")
	require.NoError(t, err)
	require.Equal(t, statuspage.KindArray, tags.Kind())
	assert.Equal(t, 2, tags.Len())

	first, err := tags.Index(0)
	require.NoError(t, err)

	firstStr, err := first.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "api", firstStr)
}

func TestParseValue_EveryKeyRetrievable(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"a":1,"b":"two","c":[3],"d":{"e":true},"f":null}`)

	value, err := statuspage.ParseValue(raw)
	require.NoError(t, err)

	var plain map[string]interface{}

	require.NoError(t, json.Unmarshal(raw, &plain))

	for key := range plain {
		field, err := value.Get(key)
		require.NoError(t, err, "key %q", key)
		assert.True(t, value.Has(key))
		_ = field
	}
}

func TestParseValue_MissingKeyIsChecked(t *testing.T) {
	t.Parallel()

	value, err := statuspage.ParseValue([]byte(`{"name":"Down"}`))
	require.NoError(t, err)

	_, err = value.Get("status")
	require.ErrorIs(t, err, statuspage.ErrKeyNotFound)
	assert.False(t, value.Has("status"))
}

func TestParseValue_ArrayOrderPreserved(t *testing.T) {
	t.Parallel()

	value, err := statuspage.ParseValue([]byte(`[{"id":"1"},{"id":"2"},{"id":"3"}]`))
	require.NoError(t, err)
	require.Equal(t, statuspage.KindArray, value.Kind())
	require.Equal(t, 3, value.Len())

	elements, err := value.Slice()
	require.NoError(t, err)

	for i, elem := range elements {
		id, err := elem.Get("id")
		require.NoError(t, err)

		idStr, err := id.StringValue()
		require.NoError(t, err)
		assert.Equal(t, string(rune('1'+i)), idStr)
	}

	_, err = value.Index(3)
	require.ErrorIs(t, err, statuspage.ErrIndexOutOfRange)
}

func TestParseValue_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		kind statuspage.ValueKind
	}{
		{name: "string", raw: `"hello"`, kind: statuspage.KindString},
		{name: "number", raw: `42.5`, kind: statuspage.KindNumber},
		{name: "bool", raw: `false`, kind: statuspage.KindBool},
		{name: "null", raw: `null`, kind: statuspage.KindNull},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := statuspage.ParseValue([]byte(testCase.raw))
			require.NoError(t, err)
			assert.Equal(t, testCase.kind, value.Kind())
		})
	}
}

func TestParseValue_WrongTypeAccess(t *testing.T) {
	t.Parallel()

	value, err := statuspage.ParseValue([]byte(`"hello"`))
	require.NoError(t, err)

	_, err = value.Float64()
	require.ErrorIs(t, err, statuspage.ErrWrongType)

	_, err = value.Get("key")
	require.ErrorIs(t, err, statuspage.ErrNotObject)

	_, err = value.Index(0)
	require.ErrorIs(t, err, statuspage.ErrNotArray)
}

func TestParseValue_Malformed(t *testing.T) {
	t.Parallel()

	_, err := statuspage.ParseValue([]byte(`{"name":`))

	target := &statuspage.ParseError{}
	require.ErrorAs(t, err, &target)
}

func TestValue_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"a":[1,2,{"b":null}],"c":"x","d":true}`)

	value, err := statuspage.ParseValue(raw)
	require.NoError(t, err)

	encoded, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(encoded))
}

func TestValue_AsStructField(t *testing.T) {
	t.Parallel()

	var incident statuspage.Incident

	raw := []byte(`{"id":"inc1","name":"Down","metadata":{"jira":{"ticket":"OPS-12"}}}`)
	require.NoError(t, json.Unmarshal(raw, &incident))

	jira, err := incident.Metadata.Get("jira")
	require.NoError(t, err)

	ticket, err := jira.Get("ticket")
	require.NoError(t, err)

	ticketStr, err := ticket.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "OPS-12", ticketStr)
}

func TestValue_ZeroValueIsNull(t *testing.T) {
	t.Parallel()

	var value statuspage.Value

	assert.True(t, value.IsNull())
	assert.Equal(t, 0, value.Len())
}
