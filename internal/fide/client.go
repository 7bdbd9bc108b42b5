package fide

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vitorsp/perfboard/internal/logger"
)

// Rating is a FIDE player's published standard rating.
type Rating struct {
	FIDEID   string `json:"fide_id"`
	Name     string `json:"name"`
	Standard int    `json:"standard_rating"`
}

// ClientInterface defines the FIDE lookup used during profile linking.
type ClientInterface interface {
	FetchRating(ctx context.Context, fideID string) (*Rating, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

var _ ClientInterface = (*Client)(nil)

// New creates a FIDE ratings client. baseURL is overridable for tests;
// empty means the public ratings site.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://ratings.fide.com"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Default().WithPrefix("fide"),
	}
}

func (c *Client) FetchRating(ctx context.Context, fideID string) (*Rating, error) {
	log := logger.FromContext(ctx).WithPrefix("fide").WithField("fide_id", fideID)
	url := fmt.Sprintf("%s/api/player/%s", c.baseURL, fideID)

	log.Debug("fetching rating from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch rating: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("rating response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("rating request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("fide rating status %d: %s", resp.StatusCode, string(body))
	}

	var out Rating
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode rating response: %v", err)
		return nil, err
	}

	log.Info("fetched rating %d for FIDE ID %s", out.Standard, fideID)
	return &out, nil
}
