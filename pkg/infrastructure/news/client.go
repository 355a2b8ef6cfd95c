package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the Google News RSS search endpoint
const DefaultBaseURL = "https://news.google.com/rss/search"

// ErrFetchFailed marks a failure talking to the upstream feed
var ErrFetchFailed = errors.New("news fetch failed")

// Region selects the locale of the news search
type Region string

const (
	RegionGlobal Region = "Global"
	RegionTurkey Region = "Turkey"
)

// Regions lists the supported regions
var Regions = []Region{RegionGlobal, RegionTurkey}

// ParseRegion converts a string into a Region; empty means Global
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global":
		return RegionGlobal, nil
	case "turkey":
		return RegionTurkey, nil
	default:
		return "", fmt.Errorf("unknown region: %s", s)
	}
}

var turkishTerms = map[string]string{
	"Hazelnuts": "Fındık fiyatları Giresun Ordu",
	"Cocoa":     "Kakao fiyatları",
	"Avocados":  "Avokado üretimi",
	"Coffee":    "Kahve piyasası",
	"Wheat":     "Buğday fiyatları TMO",
	"Corn":      "Mısır hasadı",
	"Soybeans":  "Soya fasulyesi fiyatları",
	"Palm Oil":  "Palm yağı piyasası",
	"Cotton":    "Pamuk fiyatları Adana",
	"Sugar":     "Şeker pancarı fiyatları",
}

// Fetcher retrieves headlines from an upstream source
type Fetcher interface {
	Fetch(ctx context.Context, query string, region Region) ([]Item, error)
}

// Client fetches commodity headlines from the Google News RSS search
type Client struct {
	baseURL  string
	maxItems int
	client   *http.Client
	log      *logrus.Logger
	now      func() time.Time
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a news client; an empty baseURL uses DefaultBaseURL
func NewClient(baseURL string, maxItems int, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "?"),
		maxItems: maxItems,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}
}

// BuildURL returns the feed URL for a commodity query in a region
func (c *Client) BuildURL(query string, region Region) string {
	if region == RegionTurkey {
		term := query
		if translated, ok := turkishTerms[query]; ok {
			term = translated
		}
		return fmt.Sprintf("%s?q=%s&hl=tr&gl=TR&ceid=TR:tr", c.baseURL, url.PathEscape(term))
	}
	return fmt.Sprintf("%s?q=%s+commodity+market&hl=en-US&gl=US&ceid=US:en", c.baseURL, url.PathEscape(query))
}

// Fetch downloads and parses the feed for a query
func (c *Client) Fetch(ctx context.Context, query string, region Region) ([]Item, error) {
	feedURL := c.BuildURL(query, region)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrFetchFailed, err)
	}

	items, err := ParseFeed(body, c.now(), c.maxItems)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"query":  query,
			"region": region,
			"items":  len(items),
		}).Debug("Fetched news feed")
	}
	return items, nil
}
