package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Stream settings
const (
	StreamInitialBackoff    = time.Second
	StreamMaxBackoff        = 30 * time.Second
	StreamBackoffMultiplier = 2.0
	StreamBufferSize        = 64 * 1024
	PathEvents              = "/api/v1/events"
)

// errStreamClosed is returned when the server ends the stream
var errStreamClosed = errors.New("stream closed unexpectedly")

// StreamEvent is one parsed event from the game server stream
type StreamEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Slot      string          `json:"slot,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// StreamHandler handles one event type
type StreamHandler func(ctx context.Context, evt StreamEvent) error

// StreamClient follows the server event stream and reconnects with backoff
type StreamClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	handlers   map[string][]StreamHandler
	httpClient *http.Client

	initialBackoff time.Duration
	maxBackoff     time.Duration

	mu        sync.RWMutex
	connected bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewStreamClient creates a client for the given event types. No types means every event.
func NewStreamClient(baseURL, apiKey string, eventTypes []string) *StreamClient {
	return &StreamClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         apiKey,
		eventTypes:     eventTypes,
		handlers:       make(map[string][]StreamHandler),
		httpClient:     &http.Client{}, // streams stay open, no timeout
		initialBackoff: StreamInitialBackoff,
		maxBackoff:     StreamMaxBackoff,
	}
}

// OnEvent registers a handler for an event type
func (c *StreamClient) OnEvent(eventType string, handler StreamHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start connects in the background until Stop or ctx is done
func (c *StreamClient) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.wg.Add(1)
	go c.connectLoop(ctx)
}

// Stop closes the stream and waits for the loop to exit
func (c *StreamClient) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// IsConnected reports whether the stream is currently open
func (c *StreamClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *StreamClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *StreamClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()

	backoff := c.initialBackoff
	failures := 0

	for {
		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			slog.Info(LogMsgStreamStopped)
			return
		}

		if errors.Is(err, errStreamClosed) {
			// A stream that was open resets the backoff
			backoff = c.initialBackoff
			failures = 0
		} else {
			failures++
		}
		slog.Warn(LogMsgStreamFailed, "error", err, "backoff", backoff, "consecutive_failures", failures)

		select {
		case <-time.After(backoff):
			backoff = time.Duration(float64(backoff) * StreamBackoffMultiplier)
			if backoff > c.maxBackoff {
				backoff = c.maxBackoff
			}
		case <-ctx.Done():
			slog.Info(LogMsgStreamStopped)
			return
		}
	}
}

func (c *StreamClient) connect(ctx context.Context) error {
	url := c.baseURL + PathEvents
	if len(c.eventTypes) > 0 {
		url += "?types=" + strings.Join(c.eventTypes, ",")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.setConnected(true)
	slog.Info(LogMsgStreamConnected, "url", url)
	return c.readEvents(ctx, resp.Body)
}

func (c *StreamClient) readEvents(ctx context.Context, body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, StreamBufferSize), StreamBufferSize)

	var id, eventType, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data != "" {
				c.dispatch(ctx, id, eventType, data)
			}
			id, eventType, data = "", "", ""
		case strings.HasPrefix(line, "id: "):
			id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func (c *StreamClient) dispatch(ctx context.Context, id, eventType, data string) {
	if eventType == "" || eventType == "connected" || eventType == "keepalive" {
		return
	}

	var evt StreamEvent
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		slog.Warn(LogMsgStreamParseError, "error", err)
		return
	}
	evt.Type = eventType
	if id != "" {
		evt.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[evt.Type]
	c.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			slog.Error(LogMsgStreamHandlerError, "event_type", evt.Type, "error", err)
		}
	}
}
