package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/model"
)

// Client speaks the SerpAPI REST surface. There is no maintained Go SDK for
// the service, so requests are issued directly.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ImageResult is a single Google Images hit. URL candidates are probed in
// order of quality.
type ImageResult struct {
	Original  string `json:"original"`
	Link      string `json:"link"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Thumbnail string `json:"thumbnail"`
}

// BestURL returns the most useful URL variant carried by the hit, or "".
func (r ImageResult) BestURL() string {
	for _, candidate := range []string{r.Original, r.Link, r.URL, r.Source} {
		if candidate != "" {
			return candidate
		}
	}
	if r.Thumbnail != "" {
		return strings.Replace(r.Thumbnail, "/thumb/", "/", 1)
	}
	return ""
}

// HighQuality reports whether the provider flagged an original-size asset.
func (r ImageResult) HighQuality() bool {
	return r.Original != ""
}

func NewClient(apiKey, baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://serpapi.com"
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Configured reports whether an API key is available. Unconfigured clients
// return empty results from every call.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Search runs a Google web search and returns organic results.
func (c *Client) Search(ctx context.Context, query string, num int) ([]model.SearchResult, error) {
	if !c.Configured() {
		return nil, nil
	}
	var payload struct {
		OrganicResults []model.SearchResult `json:"organic_results"`
	}
	if err := c.get(ctx, "google", query, num, nil, &payload); err != nil {
		return nil, err
	}
	return payload.OrganicResults, nil
}

// SearchImages runs a Google Images search.
func (c *Client) SearchImages(ctx context.Context, query string, num int) ([]ImageResult, error) {
	if !c.Configured() {
		return nil, nil
	}
	var payload struct {
		ImagesResults []ImageResult `json:"images_results"`
		Images        []ImageResult `json:"images"`
	}
	extra := url.Values{"safe": {"active"}}
	if err := c.get(ctx, "google_images", query, num, extra, &payload); err != nil {
		return nil, err
	}
	if len(payload.ImagesResults) > 0 {
		return payload.ImagesResults, nil
	}
	return payload.Images, nil
}

func (c *Client) get(ctx context.Context, engine, query string, num int, extra url.Values, out interface{}) error {
	if num <= 0 {
		num = 10
	}
	params := url.Values{
		"engine":  {engine},
		"q":       {query},
		"api_key": {c.apiKey},
		"num":     {strconv.Itoa(num)},
	}
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}
	endpoint := c.baseURL + "/search.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build search request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode search response: %w", err)
	}
	common.Logger().Debug("search: query completed", "engine", engine, "query", query)
	return nil
}
