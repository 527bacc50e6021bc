// Package catalog fetches the list of available project templates from the
// remote repository search API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Template is one entry of the remote template catalog. Immutable once
// fetched.
type Template struct {
	Name          string
	Description   string
	RepositoryURL string
	CloneURL      string
}

// NetworkError reports a catalog fetch that failed in transport or while
// decoding the response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("catalog fetch failed: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	owner   string
	topic   string
	token   string
	http    *http.Client
}

func NewClient(baseURL, owner, topic, token string) *Client {
	return &Client{
		baseURL: baseURL,
		owner:   owner,
		topic:   topic,
		token:   token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	CloneURL    string `json:"clone_url"`
}

// FetchTemplates queries the search endpoint for repositories of the
// configured owner tagged with the template topic. The remote ordering is
// preserved and an empty catalog is not an error.
func (c *Client) FetchTemplates(ctx context.Context) ([]Template, error) {
	query := fmt.Sprintf("user:%s %s in:topics", c.owner, c.topic)
	endpoint := fmt.Sprintf("%s/search/repositories?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Err: fmt.Errorf("search returned status %d", resp.StatusCode)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &NetworkError{Err: err}
	}

	templates := make([]Template, 0, len(result.Items))
	for _, item := range result.Items {
		templates = append(templates, Template{
			Name:          item.Name,
			Description:   item.Description,
			RepositoryURL: item.HTMLURL,
			CloneURL:      item.CloneURL,
		})
	}
	return templates, nil
}
