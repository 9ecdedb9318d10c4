package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDateJSONRoundTrip(t *testing.T) {
	d, err := ParseOrderDate("2024-01-01T10:00:00")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01T10:00:00"`, string(data))

	var back OrderDate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestParseOrderDateRejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{
		"2024-01-01",
		"2024-01-01 10:00:00",
		"2024-01-01T10:00:00Z",
		"2024-01-01T10:00:00+02:00",
		"garbage",
	} {
		_, err := ParseOrderDate(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestOrderSerializesNestedProducts(t *testing.T) {
	d, err := ParseOrderDate("2024-01-01T10:00:00")
	require.NoError(t, err)

	order := Order{
		ID:        1,
		OrderDate: d,
		UserID:    1,
		Products:  []Product{{ID: 1, ProductName: "Widget", Price: 9.99}},
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"order_date":"2024-01-01T10:00:00","user_id":1,"products":[{"id":1,"product_name":"Widget","price":9.99}]}`,
		string(data))
}

func TestOrderWithoutProductsSerializesEmptyArray(t *testing.T) {
	d, err := ParseOrderDate("2024-01-01T10:00:00")
	require.NoError(t, err)

	order := Order{ID: 1, OrderDate: d, UserID: 1, Products: []Product{}}

	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"order_date":"2024-01-01T10:00:00","user_id":1,"products":[]}`,
		string(data))
}
