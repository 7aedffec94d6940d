package tempo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.tempo.io/4"
	DefaultLimit   = 1000
	dateLayout     = "2006-01-02"
)

// APIError is returned when Tempo answers with a non-OK status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Tempo API returned non-OK status: %d: %s", e.StatusCode, e.Body)
}

type Client interface {
	// GetWorklogs returns the worklogs of a worker for exactly one calendar day.
	GetWorklogs(ctx context.Context, accountId string, day time.Time) ([]Worklog, error) // /4/worklogs/user/{accountId}
}

type ClientImpl struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

type Option func(*ClientImpl)

func WithBaseURL(baseURL string) Option {
	return func(c *ClientImpl) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithLimit(limit int) Option {
	return func(c *ClientImpl) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// NewClient returns a client authenticating every request with the given bearer token.
func NewClient(token string, opts ...Option) *ClientImpl {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	c := &ClientImpl{
		httpClient: oauth2.NewClient(context.Background(), tokenSource),
		baseURL:    DefaultBaseURL,
		limit:      DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type worklogsResponse struct {
	Metadata struct {
		Count int    `json:"count"`
		Next  string `json:"next"`
	} `json:"metadata"`
	Results []Worklog `json:"results"`
}

// GetWorklogs issues a single from=to=day query. There is no retry: a failed
// request is the final outcome for that day.
func (c *ClientImpl) GetWorklogs(ctx context.Context, accountId string, day time.Time) ([]Worklog, error) {
	date := day.Format(dateLayout)

	query := url.Values{}
	query.Set("from", date)
	query.Set("to", date)
	query.Set("limit", strconv.Itoa(c.limit))
	endpoint := fmt.Sprintf("%s/worklogs/user/%s?%s", c.baseURL, url.PathEscape(accountId), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return nil, fmt.Errorf("fetching worklogs for %s on %s: %w", accountId, date, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Failed to read response: %v", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	log.Tracef("Tempo response for %s on %s: %s", accountId, date, body)

	var response worklogsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, fmt.Errorf("decoding worklogs for %s on %s: %w", accountId, date, err)
	}
	if response.Metadata.Next != "" {
		log.Warnf("More than %d worklogs for %s on %s, only the first page is used", c.limit, accountId, date)
	}

	if response.Results == nil {
		return []Worklog{}, nil
	}
	return response.Results, nil
}
