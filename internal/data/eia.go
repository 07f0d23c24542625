package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"plant-econ/internal/model"
)

// EIAClient provides methods to fetch hourly power prices from the EIA API.
type EIAClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client

	limiter *rate.Limiter
}

// NewEIAClient creates a new EIA API client.
// If baseURL is empty, defaults to "https://api.eia.gov".
func NewEIAClient(apiKey string, baseURL string) *EIAClient {
	if baseURL == "" {
		baseURL = "https://api.eia.gov"
	}
	return &EIAClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		// EIA allows a generous hourly quota; 5 req/s keeps bursts polite.
		limiter: rate.NewLimiter(5, 1),
	}
}

// QueryParams defines a price query.
type QueryParams struct {
	Region    string    // RTO or pricing region, e.g. "NY", "PJM"
	StartTime time.Time // start of the range (UTC, hour resolution)
	EndTime   time.Time // end of the range
}

// EIAError represents an error from the EIA API.
type EIAError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *EIAError) Error() string {
	return e.Message
}

const hourLayout = "2006-01-02T15"

// QueryPrices fetches hourly region prices for a time range.
//
// If caching is enabled (ENABLE_EIA_CACHE=true), responses may be served from
// memory; that is intended for local development only.
func (c *EIAClient) QueryPrices(ctx context.Context, params QueryParams) (model.PriceSeries, error) {
	// Validate the API key before making any request.
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}
	if params.Region == "" {
		return nil, fmt.Errorf("region is required")
	}
	if params.StartTime.IsZero() || params.EndTime.IsZero() {
		return nil, fmt.Errorf("start_time and end_time are required")
	}
	if params.StartTime.After(params.EndTime) {
		return nil, fmt.Errorf("start_time must be before end_time")
	}

	cache := GetCache()
	if cache != nil {
		key := GenerateCacheKey(params)
		if cached, found := cache.Get(key); found {
			log.Printf("[EIA] Cache hit: %d points (region=%s, start=%s, end=%s)",
				len(cached), params.Region,
				params.StartTime.Format(hourLayout), params.EndTime.Format(hourLayout))
			return cached, nil
		}
	}

	u, err := url.Parse(c.BaseURL + "/v2/electricity/rto/region-price/data/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.APIKey)
	q.Set("data", "price")
	q.Set("frequency", "hourly")
	q.Set("start", params.StartTime.Format(hourLayout))
	q.Set("end", params.EndTime.Format(hourLayout))
	q.Set("region", params.Region)
	u.RawQuery = q.Encode()

	log.Printf("[EIA] Request: GET %s (region=%s, start=%s, end=%s)",
		u.Path, params.Region,
		params.StartTime.Format(hourLayout), params.EndTime.Format(hourLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[EIA] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[EIA] Response: %d %s (duration: %v, region=%s)",
		resp.StatusCode, resp.Status, duration, params.Region)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue.
	case http.StatusForbidden:
		return nil, &EIAError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_API_KEY",
			Message:    "Invalid API key or insufficient permissions",
		}
	case http.StatusUnauthorized:
		return nil, &EIAError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "Unauthorized: Invalid API key",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &EIAError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return nil, &EIAError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var payload model.EIAPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	series, err := payload.ToSeries()
	if err != nil {
		return nil, fmt.Errorf("failed to parse response data: %w", err)
	}

	log.Printf("[EIA] Success: Received %d price points (region=%s)", len(series), params.Region)

	if cache := GetCache(); cache != nil {
		cache.Set(GenerateCacheKey(params), series)
	}
	return series, nil
}

// QueryRecent fetches the trailing `hours` hours of prices for a region.
func (c *EIAClient) QueryRecent(ctx context.Context, region string, hours int) (model.PriceSeries, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("hours must be > 0")
	}
	end := time.Now().UTC()
	return c.QueryPrices(ctx, QueryParams{
		Region:    region,
		StartTime: end.Add(-time.Duration(hours) * time.Hour),
		EndTime:   end,
	})
}

// validateAPIKey rejects missing or obviously bad keys before any network call.
func (c *EIAClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &EIAError{
			Code:    "MISSING_API_KEY",
			Message: "API key is required",
		}
	}
	if len(c.APIKey) < 10 {
		return &EIAError{
			Code:    "INVALID_API_KEY_FORMAT",
			Message: "API key appears to be invalid (too short)",
		}
	}
	return nil
}
