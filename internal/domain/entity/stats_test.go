package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerStats_Empty(t *testing.T) {
	stats, err := ParseCustomerStats(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Orders)
	assert.Equal(t, 0, stats.CateringRequests)
	assert.True(t, stats.TotalSpent.IsZero())
	assert.False(t, stats.LoyaltyRewardAvailable)
}

func TestParseCustomerStats_KnownKeys(t *testing.T) {
	raw := []byte(`{"number_of_orders":3,"number_of_catering_requests":1,"total_spent":125.75,"loyalty_reward_available":true}`)

	stats, err := ParseCustomerStats(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Orders)
	assert.Equal(t, 1, stats.CateringRequests)
	assert.True(t, stats.TotalSpent.Equal(decimal.RequireFromString("125.75")))
	assert.True(t, stats.LoyaltyRewardAvailable)
}

func TestParseCustomerStats_MalformedReturnsError(t *testing.T) {
	_, err := ParseCustomerStats([]byte(`{"number_of_orders":"three"}`))
	assert.Error(t, err)

	_, err = ParseCustomerStats([]byte(`not json`))
	assert.Error(t, err)
}

func TestCustomerStats_Record(t *testing.T) {
	var stats CustomerStats

	stats.Record(ChannelOrder, decimal.RequireFromString("42.50"))
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 0, stats.CateringRequests)
	assert.True(t, stats.TotalSpent.Equal(decimal.RequireFromString("42.50")))

	stats.Record(ChannelCatering, decimal.RequireFromString("300.00"))
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 1, stats.CateringRequests)
	assert.True(t, stats.TotalSpent.Equal(decimal.RequireFromString("342.50")))
}

func TestCustomerStats_UnknownKeysSurviveRoundTrip(t *testing.T) {
	raw := []byte(`{"number_of_orders":2,"total_spent":10,"favorite_dish":"phad thai","visit_log":{"2025":["jan","may"]}}`)

	stats, err := ParseCustomerStats(raw)
	require.NoError(t, err)

	stats.Record(ChannelOrder, decimal.RequireFromString("5.25"))

	out, err := json.Marshal(stats)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.JSONEq(t, `"phad thai"`, string(decoded["favorite_dish"]))
	assert.JSONEq(t, `{"2025":["jan","may"]}`, string(decoded["visit_log"]))
	assert.JSONEq(t, `3`, string(decoded["number_of_orders"]))
	assert.JSONEq(t, `15.25`, string(decoded["total_spent"]))
}

func TestCustomerStats_MarshalEmitsBareNumberTotal(t *testing.T) {
	stats := CustomerStats{TotalSpent: decimal.RequireFromString("42.50")}

	out, err := json.Marshal(stats)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"total_spent":42.5`)
	assert.NotContains(t, string(out), `"total_spent":"`)
}
