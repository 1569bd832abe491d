package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextEvent reads frames until one of the wanted type arrives and returns its data
func nextEvent(t *testing.T, r *bufio.Reader, eventType string) Event {
	t.Helper()
	current := ""
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: ") && current == eventType:
			var evt Event
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &evt))
			return evt
		}
	}
}

func TestStreamHandler(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(streamHandler(hub, 20*time.Millisecond))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=quest.added,+item.crafted&slot=slot-1", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	connected := nextEvent(t, r, EventTypeConnected)
	assert.Equal(t, "slot-1", connected.Slot)
	assert.NotEmpty(t, connected.ID)
	waitForClients(t, hub, 1)

	hub.Broadcast("quest.added", "slot-2", nil)
	hub.Broadcast("item.crafted", "slot-1", map[string]string{"output_name": "Leather Vest"})

	got := nextEvent(t, r, "item.crafted")
	assert.Equal(t, "slot-1", got.Slot)
	assert.Equal(t, map[string]interface{}{"output_name": "Leather Vest"}, got.Payload)

	nextEvent(t, r, EventTypeKeepalive)

	cancel()
	waitForClients(t, hub, 0)
}

func TestStreamHandler_HubStopped(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStreamHandler_EndsWhenHubStops(t *testing.T) {
	hub := NewHub()
	hub.Start()

	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		Handler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	}()
	waitForClients(t, hub, 1)

	hub.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler still running after hub stop")
	}
	assert.Contains(t, rec.Body.String(), "event: connected")
}
