package model

import (
	"fmt"
	"sort"
	"time"
)

// PricePoint is one observation of an hourly (or daily) price series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// PriceSeries is an ordered series of price observations.
// Functions that consume a series treat it as read-only.
type PriceSeries []PricePoint

// Sorted returns a copy of the series in ascending timestamp order.
func (s PriceSeries) Sorted() PriceSeries {
	out := make(PriceSeries, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Prices returns just the price values, in series order.
func (s PriceSeries) Prices() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}

// Tail returns the trailing n observations (the whole series if n >= len).
func (s PriceSeries) Tail(n int) PriceSeries {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// EIAPriceResponse matches the JSON shape of the EIA v2 region-price endpoint.
//
// Example:
//
//	{
//	  "response": { "data": [ {"timestamp": "2024-01-01T00", "value": 42.5}, ... ] }
//	}
type EIAPriceResponse struct {
	Response EIAPriceData `json:"response"`
}

type EIAPriceData struct {
	Total int              `json:"total"`
	Data  []EIAPriceRecord `json:"data"`
}

// EIAPriceRecord is one record from the nested data array.
type EIAPriceRecord struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Hourly timestamps come back as "2024-01-01T00"; some endpoints return full
// RFC 3339 strings or date-only values.
var eiaTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEIATimestamp parses the timestamp formats the price API emits.
func ParseEIATimestamp(s string) (time.Time, error) {
	for _, layout := range eiaTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ToSeries converts the raw response into a sorted PriceSeries.
func (r *EIAPriceResponse) ToSeries() (PriceSeries, error) {
	if r == nil {
		return nil, nil
	}
	out := make(PriceSeries, 0, len(r.Response.Data))
	for _, rec := range r.Response.Data {
		ts, err := ParseEIATimestamp(rec.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, PricePoint{Timestamp: ts, Price: rec.Value})
	}
	return out.Sorted(), nil
}
