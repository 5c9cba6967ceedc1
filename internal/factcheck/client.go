package factcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bilgisen/factcheck/internal/config"
	"github.com/bilgisen/factcheck/internal/logger"
	"github.com/bilgisen/factcheck/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client calls the Google Fact Check Tools claims:search endpoint.
type Client struct {
	client       *resty.Client
	apiKey       string
	baseURL      string
	languageCode string
	pageSize     int
	metrics      *metrics.Metrics
}

// SearchResponse mirrors the parts of the claims:search payload we read.
// Optional review fields are pointers so absent and null values can be told
// apart from empty strings.
type SearchResponse struct {
	Claims []Claim `json:"claims"`
}

// Claim is one matched claim with the reviews published about it.
type Claim struct {
	ClaimReview []Review `json:"claimReview"`
}

// Review is a single publisher's review of a claim.
type Review struct {
	Publisher     *Publisher `json:"publisher"`
	URL           *string    `json:"url"`
	Title         *string    `json:"title"`
	Text          *string    `json:"text"`
	TextualRating *string    `json:"textualRating"`
}

// Publisher identifies who published a review.
type Publisher struct {
	Name *string `json:"name"`
}

// NewClient builds a search client from the upstream settings in cfg. m may
// be nil.
func NewClient(cfg *config.Config, m *metrics.Metrics) *Client {
	log := logger.Get().With().Str("component", "factcheck_client").Logger()

	return &Client{
		client: resty.New().
			SetTimeout(cfg.FactCheckTimeout).
			SetLogger(restyLogger{log: log}).
			SetHeader("Accept", "application/json"),
		apiKey:       cfg.FactCheckAPIKey,
		baseURL:      cfg.FactCheckBaseURL,
		languageCode: cfg.FactCheckLanguageCode,
		pageSize:     cfg.FactCheckPageSize,
		metrics:      m,
	}
}

// Search runs a single claims:search query. Every failure is returned as an
// *UpstreamError.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	params := map[string]string{"query": query}
	if c.apiKey != "" {
		params["key"] = c.apiKey
	}
	if c.languageCode != "" {
		params["languageCode"] = c.languageCode
	}
	if c.pageSize > 0 {
		params["pageSize"] = strconv.Itoa(c.pageSize)
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.baseURL + "/claims:search")
	if err != nil {
		c.metrics.ObserveUpstream(0, time.Since(start))
		return nil, &UpstreamError{Err: fmt.Errorf("request failed: %w", redactURL(err))}
	}
	c.metrics.ObserveUpstream(resp.StatusCode(), time.Since(start))

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Err:        errors.New(http.StatusText(resp.StatusCode())),
		}
	}

	var result SearchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("failed to parse response: %w", err),
		}
	}

	return &result, nil
}

// redactURL drops the request URL from transport errors; its query string
// carries the API key and the claim text.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// restyLogger routes resty's internal messages through zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
