package engine

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"
)

// BackoffConfig controls retry behavior of FetchWithBackoff.
type BackoffConfig struct {
	MaxRetries  int           // total attempts, not extra retries
	BackoffBase float64       // exponent base for the backoff curve
	Unit        time.Duration // duration of one backoff unit; seconds in production
}

// DefaultBackoffConfig matches the Data API's quota behavior: 403/429 sometimes
// self-resolve mid-window, so bounded backoff avoids hammering without masking
// a hard quota stop behind infinite retry.
var DefaultBackoffConfig = BackoffConfig{
	MaxRetries:  6,
	BackoffBase: 1.5,
	Unit:        time.Second,
}

// delay returns the sleep before retry attempt+1: base^attempt + attempt*0.5 units.
func (bc BackoffConfig) delay(attempt int) time.Duration {
	units := math.Pow(bc.BackoffBase, float64(attempt)) + float64(attempt)*0.5
	return time.Duration(units * float64(bc.Unit))
}

// transientStatus reports whether a status code is worth retrying.
// 403 is included because the Data API uses it for quota exhaustion.
func transientStatus(code int) bool {
	switch code {
	case http.StatusForbidden, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}

// FetchWithBackoff performs a GET with bounded exponential backoff on transient
// statuses. 200 returns immediately (body open, caller closes). Any other
// non-transient status fails at once with *APIError; running out of attempts on
// transient statuses fails with *RetriesExhaustedError. Sleeps abort on ctx.
func FetchWithBackoff(ctx context.Context, client *http.Client, rawURL string, bc BackoffConfig) (*http.Response, error) {
	lastStatus := 0
	for attempt := 0; attempt < bc.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgentBot)
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}

		// Drain so the connection can be reused across attempts.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if !transientStatus(resp.StatusCode) {
			return nil, &APIError{Status: resp.StatusCode}
		}
		lastStatus = resp.StatusCode
		IncrFetchRetries()

		if attempt+1 < bc.MaxRetries {
			wait := bc.delay(attempt)
			slog.Debug("transient status, backing off",
				slog.Int("status", resp.StatusCode),
				slog.Int("attempt", attempt+1),
				slog.Duration("wait", wait))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, &RetriesExhaustedError{LastStatus: lastStatus}
}
