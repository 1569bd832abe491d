package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftQuest_Go/internal/crafting"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/handler"
	"github.com/osse101/CraftQuest_Go/internal/item"
	"github.com/osse101/CraftQuest_Go/internal/quest"
	"github.com/osse101/CraftQuest_Go/internal/session"
	"github.com/osse101/CraftQuest_Go/internal/sse"
)

func TestRouter_EventStream(t *testing.T) {
	handler.InitValidator()
	parser, err := crafting.NewParser(crafting.FormatAuto)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	sse.NewSubscriber(hub, bus).Subscribe()

	manager := session.NewManager(session.Deps{
		Registry: item.NewMemoryRegistry(),
		Parser:   parser,
		Labels:   quest.DefaultLabels(),
		Bus:      bus,
	}, nil, nil)
	srv := httptest.NewServer(NewRouter(Options{APIKey: testAPIKey, Events: sse.Handler(hub)}, manager, nil))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events?slot=watched", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	post := func(slot, line string) {
		body, _ := json.Marshal(map[string]string{"slot": slot, "line": line})
		r, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/command", bytes.NewReader(body))
		require.NoError(t, err)
		r.Header.Set(HeaderAPIKey, testAPIKey)
		r.Header.Set("Content-Type", "application/json")
		res, err := srv.Client().Do(r)
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
	}
	post("other", "QuestManager add 7 Ignored elsewhere")
	post("watched", "QuestManager add 1 Find the herb")

	reader := bufio.NewReader(resp.Body)
	var data string
	for data == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: quest.added") {
			data, err = reader.ReadString('\n')
			require.NoError(t, err)
		}
	}

	var got sse.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(data), "data: ")), &got))
	assert.Equal(t, "watched", got.Slot)
	assert.Equal(t, float64(1), got.Payload.(map[string]interface{})["quest_id"])
}

func TestRouter_EventStreamRequiresKey(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	r := NewRouter(Options{APIKey: testAPIKey, Events: sse.Handler(hub)}, nil, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_NoEventStreamConfigured(t *testing.T) {
	rr := do(t, newTestRouter(t), http.MethodGet, "/api/v1/events", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
