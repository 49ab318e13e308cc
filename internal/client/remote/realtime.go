package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// subscribeMsg joins one table's change channel, filtered server-side the
// same way the web client filters its realtime subscription.
type subscribeMsg struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
	Filter string `json:"filter,omitempty"`
	Ref    string `json:"ref"`
}

const reconnectDelay = 5 * time.Second

// SubscribeEvents maintains a websocket subscription to the events change
// feed, invoking onChange for every row-level notification. It reconnects
// after connection loss and only returns when ctx ends.
func (c *HTTPClient) SubscribeEvents(ctx context.Context, onChange func(Change)) error {
	for {
		if err := c.subscribeOnce(ctx, onChange); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn(ctx, "realtime connection lost, reconnecting", "error", err, "delay", reconnectDelay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *HTTPClient) subscribeOnce(ctx context.Context, onChange func(Change)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.realtimeURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	join := subscribeMsg{
		Action: "subscribe",
		Topic:  "events",
		Filter: "is_active=eq.true",
		Ref:    uuid.NewString(),
	}
	if err := conn.WriteJSON(join); err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}

	c.logger.Info(ctx, "realtime subscription established", "topic", join.Topic)

	// Unblock ReadMessage when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("reading change feed: %w", err)
		}

		var change Change
		if err := json.Unmarshal(data, &change); err != nil {
			c.logger.Warn(ctx, "skipping malformed change notification", "error", err)
			continue
		}
		if change.Table != "events" {
			continue
		}
		onChange(change)
	}
}
