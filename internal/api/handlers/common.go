package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"plant-econ/internal/api/models"
	"plant-econ/internal/data"
	"plant-econ/internal/model"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondFetchError maps client errors to sensible HTTP statuses.
func respondFetchError(c *gin.Context, err error) {
	var eiaErr *data.EIAError
	if errors.As(err, &eiaErr) {
		status := eiaErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		respondError(c, status, eiaErr.Code, eiaErr.Message)
		return
	}
	respondError(c, http.StatusBadGateway, "FETCH_FAILED", err.Error())
}

// resolveSeries materializes the price series for a request source.
func resolveSeries(ctx context.Context, source models.PriceSourceConfig, apiKey string) (model.PriceSeries, error) {
	switch source.Type {
	case "eia":
		start, err := time.Parse("2006-01-02", source.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date format (expected YYYY-MM-DD): %w", err)
		}
		end, err := time.Parse("2006-01-02", source.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date format (expected YYYY-MM-DD): %w", err)
		}
		client := data.NewEIAClient(apiKey, "")
		return client.QueryPrices(ctx, data.QueryParams{
			Region:    source.Region,
			StartTime: start,
			EndTime:   end,
		})
	case "file":
		if source.Path == "" {
			return nil, fmt.Errorf("path is required for the file source")
		}
		return data.LoadPriceJSON(source.Path)
	case "inline":
		if len(source.Prices) == 0 {
			return nil, fmt.Errorf("prices are required for the inline source")
		}
		return source.Prices.Sorted(), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %q", source.Type)
	}
}
