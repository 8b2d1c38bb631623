package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, zap.NewNop())
	return c, srv
}

func serveNotifications(t *testing.T, ns []Notification) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notifications" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(ns)
	}
}

func TestFetchActiveFiltersAndOrders(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	c, _ := newTestClient(t, serveNotifications(t, []Notification{
		{ID: "old-low", Message: "low", Type: TypeInfo, Priority: 1, Active: true, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "inactive", Message: "hidden", Type: TypeInfo, Priority: 9, Active: false, CreatedAt: now},
		{ID: "expired", Message: "gone", Type: TypeWarning, Priority: 9, Active: true, CreatedAt: now, ExpiresAt: &past},
		{ID: "urgent", Message: "maintenance", Type: TypeError, Priority: 5, Active: true, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: &future},
		{ID: "new-low", Message: "fresh", Type: TypeSuccess, Priority: 1, Active: true, CreatedAt: now.Add(-time.Hour)},
	}))
	c.now = func() time.Time { return now }

	got, err := c.FetchActive(context.Background())
	if err != nil {
		t.Fatalf("FetchActive: %v", err)
	}

	wantOrder := []string{"urgent", "new-low", "old-low"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d notifications, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestFetchActiveErrorSurfaces(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := c.FetchActive(context.Background()); err == nil {
		t.Fatalf("expected error on 500")
	}
	// Degrade path: logged, empty result, no error.
	if ns := c.ActiveOrNone(context.Background()); len(ns) != 0 {
		t.Fatalf("ActiveOrNone should be empty on failure, got %v", ns)
	}
}

func TestReloadActionSpecialCase(t *testing.T) {
	n := Notification{ActionLabel: "Reload", ActionURL: "REFRESH"}
	if !n.IsReloadAction() {
		t.Fatalf("REFRESH must be recognized as the reload action")
	}
	link := Notification{ActionLabel: "Docs", ActionURL: "https://example.com"}
	if link.IsReloadAction() {
		t.Fatalf("a plain URL is not the reload action")
	}
	if !link.HasAction() {
		t.Fatalf("expected HasAction for label+url")
	}
}

func TestSubscribeDeliversInsertsAndUpdatesOnce(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	current := []Notification{
		{ID: "a", Message: "v1", Type: TypeInfo, Active: true, CreatedAt: now, UpdatedAt: now},
	}

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		_ = json.NewEncoder(w).Encode(current)
	})

	var got []string
	var gotMu sync.Mutex
	sub := c.Subscribe(context.Background(), 20*time.Millisecond, func(n Notification) {
		gotMu.Lock()
		got = append(got, n.ID+":"+n.Message)
		gotMu.Unlock()
	})
	defer sub.Close()

	waitFor := func(want int) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for {
			gotMu.Lock()
			n := len(got)
			gotMu.Unlock()
			if n >= want {
				return
			}
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for %d deliveries, have %d", want, n)
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	waitFor(1)

	// Unchanged rows are not redelivered; an update is.
	mu.Lock()
	current[0].Message = "v2"
	current[0].UpdatedAt = now.Add(time.Minute)
	mu.Unlock()

	waitFor(2)

	gotMu.Lock()
	defer gotMu.Unlock()
	if got[0] != "a:v1" || got[1] != "a:v2" {
		t.Fatalf("deliveries=%v", got)
	}
}

func TestSubscriptionCloseStopsLoop(t *testing.T) {
	c, _ := newTestClient(t, serveNotifications(t, nil))
	sub := c.Subscribe(context.Background(), 10*time.Millisecond, func(Notification) {})
	sub.Close()

	select {
	case <-sub.done:
	default:
		t.Fatalf("expected loop to have exited after Close")
	}
}
