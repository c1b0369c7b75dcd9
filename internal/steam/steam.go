// Package steam queries the Steam store search API.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// MinQueryLength is the shortest query forwarded to Steam.
const MinQueryLength = 2

// Result is one search hit, shaped for the add-game form.
type Result struct {
	SteamID  int64  `json:"steam_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// StatusError reports a non-success response from Steam.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("steam search: unexpected status %d", e.Status)
}

type searchResponse struct {
	Total int `json:"total"`
	Items []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		TinyImage string `json:"tiny_image"`
	} `json:"items"`
}

// Client searches the Steam store.
type Client struct {
	searchURL  string
	httpClient *http.Client
}

// NewClient creates a client for the store search endpoint at searchURL.
func NewClient(searchURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{searchURL: searchURL, httpClient: httpClient}
}

// Search returns the store entries matching query. Queries shorter than
// MinQueryLength return no results without contacting Steam.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	results := []Result{}
	if len([]rune(query)) < MinQueryLength {
		return results, nil
	}

	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("term", query)
	q.Set("l", "english")
	q.Set("cc", "US")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("steam search: decode: %w", err)
	}
	for _, item := range payload.Items {
		results = append(results, Result{
			SteamID:  item.ID,
			Name:     item.Name,
			ImageURL: item.TinyImage,
		})
	}
	return results, nil
}
