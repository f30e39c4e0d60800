package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// UserAgent identifies the client as a desktop browser; the scoreboard
	// site serves a reduced page to unknown agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	Timeout = 30 * time.Second

	maxAttempts     = 3
	initialInterval = 1 * time.Second
)

var (
	// ErrBlocked indicates the upstream denied access outright (HTTP 403).
	ErrBlocked = errors.New("blocked by upstream")

	// ErrExhausted indicates every retry attempt failed.
	ErrExhausted = errors.New("retries exhausted")
)

// httpDoer lets tests substitute the HTTP client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher performs one GET per scoreboard date.
type Fetcher struct {
	client    httpDoer
	userAgent string
	interval  time.Duration // first backoff wait, shortened in tests
}

// New creates a Fetcher with a timeout-bounded HTTP client.
func New() *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: Timeout},
		userAgent: UserAgent,
		interval:  initialInterval,
	}
}

// FetchPage retrieves the page body at url.
//
// Up to three attempts are made, waiting 1s then 2s between them. A 403
// response aborts immediately with ErrBlocked; exhausting the attempt budget
// returns ErrExhausted wrapping the last failure. The call mutates no shared
// state and is safe to repeat.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.interval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	var body string
	attempts := 0
	operation := func() error {
		attempts++
		b, err := f.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxAttempts-1), ctx))
	if err != nil {
		if errors.Is(err, ErrBlocked) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("%w after %d attempts: %v", ErrExhausted, attempts, err)
	}
	return body, nil
}

// fetchOnce performs a single GET. A 403 comes back as a permanent error so
// the retry loop stops instead of backing off.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return "", backoff.Permanent(ErrBlocked)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}
