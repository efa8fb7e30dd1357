package source

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"gdpetl/internal"
	"gdpetl/internal/config"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) gdpetl/1.0"

// Client fetches the source page. It makes exactly one request per call;
// failures are returned, never retried.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Config) *Client {
	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetHeader("accept", "text/html")
	client.SetRetryCount(0)
	if cfg.HTTPTimeoutMs > 0 {
		client.SetTimeout(time.Duration(cfg.HTTPTimeoutMs) * time.Millisecond)
	}
	return &Client{http: client}
}

func (c *Client) SetTransport(rt http.RoundTripper) {
	c.http.SetTransport(rt)
}

func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &internal.FetchError{URL: url, Err: err}
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &internal.FetchError{URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.String(), nil
}
