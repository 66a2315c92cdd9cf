package foodcom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.food.com"

	// Rate limiting: stay well under the site's tolerance
	rateLimit = 2
	rateBurst = 4

	// Retry configuration
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 16 * time.Second
)

// Client handles food.com API requests with rate limiting and retry logic
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new food.com API client. An empty baseURL uses the
// production endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// GetRecipePage fetches one page of the recipe collection. The endpoint
// serves 10 records per page.
func (c *Client) GetRecipePage(ctx context.Context, collectionID, page int) (*SectionFrontResponse, error) {
	params := url.Values{}
	params.Set("pn", strconv.Itoa(page))
	params.Set("recordType", "Recipe")
	params.Set("collectionId", strconv.Itoa(collectionID))

	var response SectionFrontResponse
	if err := c.doRequest(ctx, "/services/mobile/fdc/search/sectionfront", params, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch recipe page %d: %w", page, err)
	}
	return &response, nil
}

// GetReviewPage fetches one page of a recipe's review feed, newest first.
func (c *Client) GetReviewPage(ctx context.Context, recipeID int64, page int) (*ReviewFeedResponse, error) {
	params := url.Values{}
	params.Set("pn", strconv.Itoa(page))
	params.Set("sortBy", "-time")

	endpoint := fmt.Sprintf("/external/v1/recipes/%d/feed/reviews", recipeID)
	var response ReviewFeedResponse
	if err := c.doRequest(ctx, endpoint, params, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for recipe %d: %w", recipeID, err)
	}
	return &response, nil
}

// doRequest performs an HTTP request with rate limiting and retry logic
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	fullURL := c.baseURL + endpoint
	if params != nil {
		fullURL += "?" + params.Encode()
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Rate limit
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "RecipeHub/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				log.Printf("[FoodCom] Request failed (attempt %d/%d): %v, retrying in %v...",
					attempt+1, maxRetries, err, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			if attempt < maxRetries {
				log.Printf("[FoodCom] Status %d (attempt %d/%d), retrying in %v...",
					resp.StatusCode, attempt+1, maxRetries, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		}

		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return lastErr
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
