package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Handler streams hub events as text/event-stream.
// ?types=a,b narrows by event type and ?slot=x to one save slot.
//
// @Summary Stream game events
// @Description Server-sent events for crafting and quest activity
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Param slot query string false "Only events from this save slot"
// @Success 200 {string} string "event stream"
// @Failure 401 {object} handler.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return streamHandler(hub, KeepaliveInterval)
}

func streamHandler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		var eventTypes []string
		if raw := r.URL.Query().Get(QueryParamTypes); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}
		slot := strings.TrimSpace(r.URL.Query().Get(QueryParamSlot))

		client := hub.Register(eventTypes, slot)
		if client == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes, "slot", slot)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(evt Event) bool {
			msg, err := FormatSSEMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Slot:      slot,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}) {
			return
		}

		ticker := time.NewTicker(keepalive)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(evt) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
