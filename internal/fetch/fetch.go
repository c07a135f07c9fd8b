// Package fetch retrieves recipe pages over HTTP. It is the default
// implementation of the Fetcher the schema.org parser consumes; callers
// with their own transport can inject anything satisfying that interface.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ladlehq/ladle/internal/cache"
)

// statusError distinguishes retryable server failures from permanent ones.
type statusError struct {
	code int
}

func (e *statusError) Error() string { return fmt.Sprintf("server error: %d", e.code) }

// Client fetches recipe pages with a user agent, per-request timeout,
// bounded retry on transient failures, and optional conditional
// revalidation against an on-disk page cache.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// Timeout bounds each individual request.
	Timeout time.Duration
	// Cache, when set, serves 304 revalidations and stores fresh bodies.
	Cache *cache.PageCache
	// RedirectMaxHops caps redirect following. Zero means 5.
	RedirectMaxHops int
}

// Fetch returns the page body for url. Non-HTML responses are rejected:
// a recipe importer has no use for a PDF or image body on the URL path.
func (c *Client) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	var etag, lastMod string
	if c.Cache != nil {
		if meta, err := c.Cache.LoadMeta(ctx, pageURL); err == nil && meta != nil {
			etag = meta.ETag
			lastMod = meta.LastModified
		}
	}

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, err := c.tryOnce(ctx, pageURL, etag, lastMod)
		if err == nil {
			return body, nil
		}
		var se *statusError
		if !errors.As(err, &se) || i == attempts-1 {
			return nil, err
		}
		lastErr = err
		log.Warn().Str("url", pageURL).Int("attempt", i+1).Err(err).Msg("retrying fetch")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	return nil, lastErr
}

func (c *Client) tryOnce(ctx context.Context, pageURL, etag, lastMod string) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", pageURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastMod != "" {
		req.Header.Set("If-Modified-Since", lastMod)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified && c.Cache != nil:
		return c.Cache.LoadBody(ctx, pageURL)
	case resp.StatusCode >= 500:
		return nil, &statusError{code: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if c.Cache != nil {
		if err := c.Cache.Save(ctx, pageURL, contentType,
			resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), body); err != nil {
			log.Warn().Str("url", pageURL).Err(err).Msg("cache save failed")
		}
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	checkRedirect := func(req *http.Request, via []*http.Request) error {
		max := c.RedirectMaxHops
		if max <= 0 {
			max = 5
		}
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
	if c.HTTPClient != nil {
		// Clone to attach the redirect policy without mutating the
		// caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = checkRedirect
		return &base
	}
	return &http.Client{CheckRedirect: checkRedirect}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	s := strings.ToLower(u.Scheme)
	return s == "http" || s == "https"
}

func isHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return ct == "" || strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
