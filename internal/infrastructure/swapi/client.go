// Package swapi fetches film listings from the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cinevault/movies-service/internal/application/movies"
	"github.com/cinevault/movies-service/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type filmsResponse struct {
	Results []film `json:"results"`
}

type film struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Director    string `json:"director"`
}

// FetchFilms retrieves the full film list. Any failure (transport, non-2xx,
// malformed payload) fails the call as a whole; the reconciler treats that
// as total failure of the sync.
func (c *Client) FetchFilms(ctx context.Context) ([]movies.CatalogFilm, error) {
	url := c.baseURL + "/films"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.ErrCatalogFetchFailed(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrCatalogFetchFailed(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrCatalogFetchFailed(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrCatalogFetchFailed(fmt.Errorf("films fetch: status %d", resp.StatusCode))
	}

	var fr filmsResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, domain.ErrCatalogFetchFailed(err)
	}

	out := make([]movies.CatalogFilm, 0, len(fr.Results))
	for _, f := range fr.Results {
		out = append(out, movies.CatalogFilm{
			Title:       f.Title,
			ReleaseDate: f.ReleaseDate,
			Director:    f.Director,
		})
	}
	return out, nil
}
