// Package analytics captures product events. The PostHog client is built
// once at startup and injected; without a key every capture is a no-op.
// Events are also mirrored best-effort into the analytics_events table when
// a database is configured.
package analytics

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"

	db "github.com/smartprobono/intake-api/internal/core/database"
	"github.com/smartprobono/intake-api/internal/models"
)

type Client struct {
	ph    posthog.Client
	store db.DbClient
}

// NewClient wires the process-lifetime analytics client. Either argument may
// be absent: an empty key disables PostHog and a nil store disables the
// database mirror.
func NewClient(apiKey, host string, store db.DbClient) *Client {
	c := &Client{store: store}
	if apiKey == "" {
		log.Println("POSTHOG_API_KEY not set; analytics disabled")
		return c
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: host})
	if err != nil {
		log.Printf("posthog init failed (non-critical): %v", err)
		return c
	}
	c.ph = ph
	return c
}

// Capture records one event. Failures are logged and discarded; capture must
// never affect the request that triggered it.
func (c *Client) Capture(ctx context.Context, distinctID, event string, props map[string]any) {
	if c == nil {
		return
	}
	if distinctID == "" {
		distinctID = "anonymous"
	}

	if c.ph != nil {
		if err := c.ph.Enqueue(posthog.Capture{
			DistinctId: distinctID,
			Event:      event,
			Properties: posthog.Properties(props),
		}); err != nil {
			log.Printf("posthog capture failed (non-critical): %v", err)
		}
	}

	if c.store != nil {
		go c.mirror(distinctID, event, props)
	}
}

// mirror copies the event into analytics_events off the request path. The
// request has already been answered; a slow database costs nothing here.
func (c *Client) mirror(distinctID, event string, props map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ev := &models.AnalyticsEvent{
		ID:         uuid.NewString(),
		UserID:     distinctID,
		Event:      event,
		Properties: props,
		CreatedAt:  time.Now(),
	}
	if err := c.store.InsertAnalyticsEvent(ctx, ev); err != nil {
		log.Printf("analytics event store failed (non-critical): %v", err)
	}
}

// Close flushes and shuts down the PostHog client.
func (c *Client) Close() {
	if c != nil && c.ph != nil {
		_ = c.ph.Close()
	}
}
