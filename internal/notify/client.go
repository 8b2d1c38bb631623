// Package notify talks to the hosted backend's system-notification
// surface: a fetch of currently active notifications and a polling
// subscription for inserts/updates.
//
// Fetch failures are logged and degrade to "no notifications" — the
// feature is best-effort and never fatal, and there is deliberately no
// retry beyond the next poll.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	now     func() time.Time
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		now:     time.Now,
		logger:  logger,
	}
}

// FetchActive returns the backend's notifications that are flagged
// active and not yet expired, ordered by priority (highest first) and
// then recency.
func (c *Client) FetchActive(ctx context.Context) ([]Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/notifications", nil)
	if err != nil {
		return nil, fmt.Errorf("build notifications request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch notifications: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch notifications: unexpected status %d", resp.StatusCode)
	}

	var all []Notification
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}

	now := c.now()
	active := all[:0]
	for _, n := range all {
		if !n.Active || n.Expired(now) {
			continue
		}
		active = append(active, n)
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

// ActiveOrNone is FetchActive with the degrade-on-error policy applied:
// the error is logged and an empty list returned.
func (c *Client) ActiveOrNone(ctx context.Context) []Notification {
	ns, err := c.FetchActive(ctx)
	if err != nil {
		c.logger.Warn("notification fetch failed", zap.Error(err))
		return nil
	}
	return ns
}
