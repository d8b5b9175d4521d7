package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// updateSelector matches the relief agency's update snippets. The selector
// and target URL are fixed configuration, never user input.
const updateSelector = ".disaster-info"

// DefaultURL is the relief-agency page scraped for official updates.
const DefaultURL = "https://www.redcross.org/"

// DefaultTimeout bounds the outbound fetch so a slow upstream cannot pin
// request resources.
const DefaultTimeout = 10 * time.Second

// UpdateRecord is one extracted official update.
type UpdateRecord struct {
	Title string `json:"title"`
}

// Scraper fetches and extracts official updates from a fixed upstream page.
type Scraper struct {
	url    string
	client *http.Client
}

// Option customises a Scraper.
type Option func(*Scraper)

// WithURL overrides the upstream page, used by tests and configuration.
func WithURL(url string) Option {
	return func(s *Scraper) {
		if strings.TrimSpace(url) != "" {
			s.url = url
		}
	}
}

// WithTimeout overrides the outbound request deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scraper) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// New constructs a Scraper for the relief-agency page.
func New(opts ...Option) *Scraper {
	s := &Scraper{
		url:    DefaultURL,
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves the upstream page and extracts every update snippet in
// document order. A page without matching nodes yields an empty slice, not
// an error. Network failures, non-2xx statuses, and parse failures are all
// reported as errors.
func (s *Scraper) Fetch(ctx context.Context) ([]UpdateRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("scraper: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper: fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scraper: unexpected status %d from %s", resp.StatusCode, s.url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse response: %w", err)
	}

	updates := make([]UpdateRecord, 0)
	doc.Find(updateSelector).Each(func(_ int, sel *goquery.Selection) {
		updates = append(updates, UpdateRecord{Title: strings.TrimSpace(sel.Text())})
	})

	return updates, nil
}
