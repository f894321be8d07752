// Package client is a Go consumer of the krux HTTP API. It satisfies the
// deck engine's PageFetcher and ReactionRecorder, so a headless deck can run
// against a live server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"krux_server/internal/domain"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("component", "api_client"),
	}
}

type articlesResponse struct {
	Articles []domain.Story `json:"articles"`
	HasMore  bool           `json:"hasMore"`
}

// FetchPage loads one feed batch. The server's page size is fixed; the limit
// argument is accepted for the PageFetcher contract but not transmitted.
func (c *Client) FetchPage(ctx context.Context, offset, _ int) (domain.Page, error) {
	u := fmt.Sprintf("%s/api/articles?offset=%s", c.baseURL, url.QueryEscape(strconv.Itoa(offset)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("build articles request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetch articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Page{}, fmt.Errorf("fetch articles: unexpected status %d", resp.StatusCode)
	}

	var body articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Page{}, fmt.Errorf("decode articles response: %w", err)
	}

	return domain.Page{Stories: body.Articles, HasMore: body.HasMore}, nil
}

type trackRequest struct {
	ArticleID int64           `json:"articleId"`
	Reaction  domain.Reaction `json:"reaction"`
}

// RecordReaction submits a swipe. Callers treat it as best-effort.
func (c *Client) RecordReaction(ctx context.Context, storyID int64, reaction domain.Reaction) error {
	payload, err := json.Marshal(trackRequest{ArticleID: storyID, Reaction: reaction})
	if err != nil {
		return fmt.Errorf("marshal track request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/track", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build track request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post track: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// GetStory resolves a story by its share slug.
func (c *Client) GetStory(ctx context.Context, slug string) (*domain.StoryDetail, error) {
	u := c.baseURL + "/api/stories/" + url.PathEscape(slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build story request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch story: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrStoryNotFound
	default:
		return nil, fmt.Errorf("fetch story: unexpected status %d", resp.StatusCode)
	}

	var detail domain.StoryDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("decode story response: %w", err)
	}
	return &detail, nil
}
