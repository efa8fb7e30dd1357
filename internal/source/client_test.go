package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"gdpetl/internal"
	"gdpetl/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestFetchPage(t *testing.T) {
	client := NewClient(config.Config{})
	calls := 0
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if r.Method != http.MethodGet {
			t.Fatalf("method=%s", r.Method)
		}
		if r.URL.Path != "/wiki/gdp" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html><body>ok</body></html>")),
			Header:     http.Header{"Content-Type": []string{"text/html"}},
		}, nil
	}))

	body, err := client.FetchPage(context.Background(), "https://example.test/wiki/gdp")
	if err != nil {
		t.Fatal(err)
	}
	if body != "<html><body>ok</body></html>" {
		t.Fatalf("body=%q", body)
	}
	if calls != 1 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestFetchPageStatusIsNotRetried(t *testing.T) {
	client := NewClient(config.Config{})
	calls := 0
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("down")),
			Header:     make(http.Header),
		}, nil
	}))

	_, err := client.FetchPage(context.Background(), "https://example.test/wiki/gdp")
	var fetchErr *internal.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("got %v", err)
	}
	if fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", fetchErr.StatusCode)
	}
	if calls != 1 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestFetchPageTransportError(t *testing.T) {
	client := NewClient(config.Config{HTTPTimeoutMs: 1000})
	boom := errors.New("connection refused")
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	}))

	_, err := client.FetchPage(context.Background(), "https://example.test/wiki/gdp")
	var fetchErr *internal.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}
