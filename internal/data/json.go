package data

import (
	"encoding/json"
	"fmt"
	"os"

	"plant-econ/internal/model"
)

// LoadPriceJSON reads a price series from a flat file. Both the plain
// [{timestamp, price}] format written by SavePriceJSON and the raw EIA
// response shape are accepted.
func LoadPriceJSON(path string) (model.PriceSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var series model.PriceSeries
	if err := json.Unmarshal(raw, &series); err == nil {
		return series.Sorted(), nil
	}

	var resp model.EIAPriceResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unrecognized price file %s: %w", path, err)
	}
	return resp.ToSeries()
}

// SavePriceJSON writes a price series to a flat file.
func SavePriceJSON(path string, series model.PriceSeries) error {
	raw, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
