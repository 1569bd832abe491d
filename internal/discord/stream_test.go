package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/sse"
)

type sentEmbed struct {
	channel string
	embed   *discordgo.MessageEmbed
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentEmbed
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmbed{channel: channelID, embed: embed})
	return &discordgo.Message{}, nil
}

func (f *fakeSender) messages() []sentEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEmbed(nil), f.sent...)
}

func newStreamServer(t *testing.T) (*sse.Hub, *httptest.Server) {
	t.Helper()
	hub := sse.NewHub()
	hub.Start()
	srv := httptest.NewServer(sse.Handler(hub))
	t.Cleanup(func() {
		hub.Stop()
		srv.Close()
	})
	return hub, srv
}

func TestStreamClient_Notifications(t *testing.T) {
	hub, srv := newStreamServer(t)
	sender := &fakeSender{}

	c := NewStreamClient(srv.URL, "secret", NotifyEventTypes)
	RegisterNotifications(c, sender)
	c.Start(context.Background())
	defer c.Stop()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 && c.IsConnected() }, time.Second, 5*time.Millisecond)

	hub.Broadcast(string(event.ItemCrafted), "discord-42", event.CraftPayloadV1{
		OutputKind: domain.KindWeapon, OutputID: 2, OutputName: "Iron Sword",
	})
	hub.Broadcast(string(event.QuestAdded), "terminal", event.QuestPayloadV1{QuestID: 1, Title: "Ignored"})
	hub.Broadcast(string(event.QuestRemoved), "discord-42", event.QuestPayloadV1{QuestID: 1})
	hub.Broadcast(string(event.QuestCompleted), "discord-42", event.QuestPayloadV1{QuestID: 3, Title: "Slay the rat"})

	require.Eventually(t, func() bool { return len(sender.messages()) == 2 }, time.Second, 5*time.Millisecond)
	msgs := sender.messages()
	assert.Equal(t, "42", msgs[0].channel)
	assert.Contains(t, msgs[0].embed.Description, "Iron Sword")
	assert.Equal(t, "🏆 Quest Completed", msgs[1].embed.Title)
	assert.Contains(t, msgs[1].embed.Description, "Slay the rat")
}

func TestStreamClient_Reconnects(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathEvents, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		if attempts.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewStreamClient(srv.URL, "secret", nil)
	c.initialBackoff = time.Millisecond
	c.maxBackoff = 2 * time.Millisecond
	c.Start(context.Background())

	require.Eventually(t, c.IsConnected, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, attempts.Load(), int32(3))

	done := make(chan struct{})
	go func() {
		c.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
	assert.False(t, c.IsConnected())
}

func TestStreamClient_Dispatch(t *testing.T) {
	c := NewStreamClient("http://unused", "", nil)
	var got []StreamEvent
	c.OnEvent("quest.added", func(_ context.Context, evt StreamEvent) error {
		got = append(got, evt)
		return nil
	})

	data, err := json.Marshal(sse.Event{ID: "body-id", Type: "quest.added", Slot: "discord-7", Payload: map[string]int{"quest_id": 7}})
	require.NoError(t, err)

	c.dispatch(context.Background(), "", "keepalive", `{}`)
	c.dispatch(context.Background(), "frame-id", "quest.added", "not json")
	c.dispatch(context.Background(), "frame-id", "quest.added", string(data))

	require.Len(t, got, 1)
	assert.Equal(t, "frame-id", got[0].ID)
	assert.Equal(t, "discord-7", got[0].Slot)
	assert.JSONEq(t, `{"quest_id":7}`, string(got[0].Payload))
}

func TestChannelForSlot(t *testing.T) {
	id, ok := channelForSlot(slotFor("123"))
	assert.True(t, ok)
	assert.Equal(t, "123", id)

	_, ok = channelForSlot("default")
	assert.False(t, ok)
	_, ok = channelForSlot(SlotPrefix)
	assert.False(t, ok)
}

func TestNotificationEmbed(t *testing.T) {
	embed, err := notificationEmbed(StreamEvent{Type: string(event.ItemCrafted), Payload: json.RawMessage(`{"output_kind":"armor","output_id":1}`)})
	require.NoError(t, err)
	assert.Contains(t, embed.Description, "Armor #1")

	embed, err = notificationEmbed(StreamEvent{Type: string(event.QuestAdded), Payload: json.RawMessage(`{"quest_id":4,"description":"Find it"}`)})
	require.NoError(t, err)
	assert.Equal(t, ColorInfo, embed.Color)
	assert.Contains(t, embed.Description, "Quest #4")
	assert.Contains(t, embed.Description, "Find it")

	_, err = notificationEmbed(StreamEvent{Type: string(event.QuestAdded), Payload: json.RawMessage(`[]`)})
	assert.ErrorContains(t, err, "invalid quest payload")

	_, err = notificationEmbed(StreamEvent{Type: "recipe.registered"})
	assert.Error(t, err)
}
