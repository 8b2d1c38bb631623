package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Handler receives a notification that is new or has been updated since
// the previous poll.
type Handler func(Notification)

// Subscription is a live polling loop. Close releases it; release is
// guaranteed once Close returns.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Close stops the loop and waits for it to exit. Safe to call more than
// once.
func (s *Subscription) Close() {
	s.cancel()
	<-s.done
}

// Subscribe polls the backend every interval and hands inserts/updates
// to handler. Poll errors are logged and the loop keeps going; there is
// no retry beyond the next tick.
func (c *Client) Subscribe(ctx context.Context, interval time.Duration, handler Handler) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)

		seen := make(map[string]time.Time)
		deliver := func() {
			ns, err := c.FetchActive(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Warn("notification poll failed", zap.Error(err))
				return
			}
			for _, n := range ns {
				prev, ok := seen[n.ID]
				if ok && !n.UpdatedAt.After(prev) {
					continue
				}
				seen[n.ID] = n.UpdatedAt
				handler(n)
			}
		}

		deliver()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver()
			}
		}
	}()

	return sub
}
