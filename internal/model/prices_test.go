package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSeriesSorted(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := PriceSeries{
		{Timestamp: base.Add(2 * time.Hour), Price: 3},
		{Timestamp: base, Price: 1},
		{Timestamp: base.Add(time.Hour), Price: 2},
	}

	sorted := series.Sorted()
	assert.Equal(t, []float64{1, 2, 3}, sorted.Prices())
	// Input untouched.
	assert.Equal(t, 3.0, series[0].Price)
}

func TestPriceSeriesTail(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(PriceSeries, 5)
	for i := range series {
		series[i] = PricePoint{Timestamp: base.Add(time.Duration(i) * time.Hour), Price: float64(i)}
	}

	assert.Equal(t, []float64{3, 4}, series.Tail(2).Prices())
	assert.Len(t, series.Tail(10), 5)
}

func TestParseEIATimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T05", time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"2024-01-01T05:30:00", time.Date(2024, 1, 1, 5, 30, 0, 0, time.UTC)},
		{"2024-01-01T05:00:00Z", time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseEIATimestamp(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(tt.want), "parsing %q", tt.in)
	}
}

func TestParseEIATimestampInvalid(t *testing.T) {
	_, err := ParseEIATimestamp("not-a-timestamp")
	assert.Error(t, err)
}

func TestEIAResponseToSeries(t *testing.T) {
	resp := &EIAPriceResponse{
		Response: EIAPriceData{
			Total: 2,
			Data: []EIAPriceRecord{
				{Timestamp: "2024-01-01T01", Value: 45.5},
				{Timestamp: "2024-01-01T00", Value: 42.0},
			},
		},
	}

	series, err := resp.ToSeries()
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, []float64{42.0, 45.5}, series.Prices())
}

func TestEIAResponseToSeriesBadTimestamp(t *testing.T) {
	resp := &EIAPriceResponse{
		Response: EIAPriceData{
			Data: []EIAPriceRecord{{Timestamp: "bogus", Value: 1}},
		},
	}
	_, err := resp.ToSeries()
	assert.Error(t, err)
}
