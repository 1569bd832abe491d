package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/CraftQuest_Go/internal/command"
	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// APIError is a non-2xx reply from the game API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// GameAPI is the slice of the HTTP API the bot's commands use
type GameAPI interface {
	Command(ctx context.Context, slot, line string) (command.Result, error)
	Recipes(ctx context.Context, slot string) ([]domain.RecipeListing, error)
	Craft(ctx context.Context, slot string, kind domain.ItemKind, id int) (string, error)
	Quests(ctx context.Context, slot string, bucket domain.QuestBucket) (domain.QuestListing, error)
	Inventory(ctx context.Context, slot string) ([]domain.InventorySlot, error)
	Save(ctx context.Context, slot string) (string, error)
	Load(ctx context.Context, slot string) (string, error)
}

// APIClient talks to the CraftQuest HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: DefaultClientTimeout},
		APIKey:     apiKey,
		RetryDelay: RetryBaseDelay,
	}
}

// doRequest retries transport failures and 5xx replies with exponential backoff.
// out is decoded from a 2xx body when non-nil.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	log := logger.FromContext(ctx)
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = decodeAPIError(resp)
			log.Warn(LogMsgServerErrorRetry, "status", resp.StatusCode, "attempt", attempt)
			continue
		}
		return decodeResponse(resp, out)
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError consumes and closes the body
func decodeAPIError(resp *http.Response) error {
	defer resp.Body.Close()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Command dispatches a raw command line to slot
func (c *APIClient) Command(ctx context.Context, slot, line string) (command.Result, error) {
	var res command.Result
	err := c.doRequest(ctx, http.MethodPost, PathCommand, map[string]string{"slot": slot, "line": line}, &res)
	return res, err
}

// Recipes lists slot's craft box
func (c *APIClient) Recipes(ctx context.Context, slot string) ([]domain.RecipeListing, error) {
	var out []domain.RecipeListing
	err := c.doRequest(ctx, http.MethodGet, PathRecipes+"?"+url.Values{"slot": {slot}}.Encode(), nil, &out)
	return out, err
}

// Craft crafts one unit of (kind, id) in slot and returns the confirmation message
func (c *APIClient) Craft(ctx context.Context, slot string, kind domain.ItemKind, id int) (string, error) {
	var out messageResponse
	body := map[string]interface{}{"slot": slot, "kind": kind, "id": id}
	err := c.doRequest(ctx, http.MethodPost, PathCraft, body, &out)
	return out.Message, err
}

// Quests returns one bucket of slot's quest ledger
func (c *APIClient) Quests(ctx context.Context, slot string, bucket domain.QuestBucket) (domain.QuestListing, error) {
	var out domain.QuestListing
	q := url.Values{"slot": {slot}, "bucket": {string(bucket)}}
	err := c.doRequest(ctx, http.MethodGet, PathQuests+"?"+q.Encode(), nil, &out)
	return out, err
}

// Inventory returns the stacks slot holds
func (c *APIClient) Inventory(ctx context.Context, slot string) ([]domain.InventorySlot, error) {
	var out struct {
		Items []domain.InventorySlot `json:"items"`
	}
	err := c.doRequest(ctx, http.MethodGet, PathInventory+"?"+url.Values{"slot": {slot}}.Encode(), nil, &out)
	return out.Items, err
}

// Save persists slot
func (c *APIClient) Save(ctx context.Context, slot string) (string, error) {
	var out messageResponse
	err := c.doRequest(ctx, http.MethodPost, PathSave, map[string]string{"slot": slot}, &out)
	return out.Message, err
}

// Load restores slot from its last save
func (c *APIClient) Load(ctx context.Context, slot string) (string, error) {
	var out messageResponse
	err := c.doRequest(ctx, http.MethodPost, PathLoad, map[string]string{"slot": slot}, &out)
	return out.Message, err
}

// Healthy reports whether the API answers its liveness probe. It does not retry.
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealth, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
