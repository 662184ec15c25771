package nusmods

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для загрузки открытых данных NUSMods
type Client struct {
	catalogURL      string
	availabilityURL string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр клиента NUSMods
func NewClient(catalogURL, availabilityURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		catalogURL:      catalogURL,
		availabilityURL: availabilityURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchCatalog загружает каталог аудиторий с координатами
func (c *Client) FetchCatalog(ctx context.Context) (Catalog, error) {
	var catalog Catalog
	if err := c.getJSON(ctx, c.catalogURL, &catalog); err != nil {
		return nil, err
	}
	c.log.Info("NUSMods catalog fetched: venues=%d", len(catalog))
	return catalog, nil
}

// FetchAvailability загружает недельную занятость аудиторий
func (c *Client) FetchAvailability(ctx context.Context) (AvailabilityFeed, error) {
	var feed AvailabilityFeed
	if err := c.getJSON(ctx, c.availabilityURL, &feed); err != nil {
		return nil, err
	}
	c.log.Info("NUSMods availability fetched: venues=%d", len(feed))
	return feed, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d from %s: %s", ErrInvalidResponse, resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response from %s: %v", ErrInvalidResponse, url, err)
	}

	return nil
}
