// Package telegram is the outbound notification sink: a thin client for the
// Telegram Bot API. Delivery is best-effort; transport failures are logged
// and reported as booleans, never propagated. The webhook contract upstream
// is "accepted for processing", not "confirmed delivered".
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.telegram.org"

// ParseModeHTML enables Telegram's HTML markup dialect. The format package
// assumes this mode is active on send.
const ParseModeHTML = "HTML"

// sendInterval paces batch sends to respect Telegram's outbound rate limits
// and preserve message order in the channel.
const sendInterval = 100 * time.Millisecond

// Client talks to the Telegram Bot API for a single chat.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a Client with default HTTP settings.
func New(token, chatID string, logger *slog.Logger) *Client {
	return NewWithHTTPClient(defaultBaseURL, token, chatID, &http.Client{Timeout: 10 * time.Second}, logger)
}

// NewWithHTTPClient creates a Client with a custom base URL and HTTP client
// (for testing).
func NewWithHTTPClient(baseURL, token, chatID string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		chatID:     chatID,
		limiter:    rate.NewLimiter(rate.Every(sendInterval), 1),
		logger:     logger.With(slog.String("component", "telegram")),
	}
}

// apiResponse is the Bot API envelope wrapping every method result.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// botUser is the result of getMe.
type botUser struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// sendMessageRequest is the body of a sendMessage call.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendMessage attempts one delivery to the configured chat. It returns true
// on success; any transport or API failure is logged and reported as false.
func (c *Client) SendMessage(ctx context.Context, text, parseMode string) bool {
	req := sendMessageRequest{ChatID: c.chatID, Text: text, ParseMode: parseMode}
	if err := c.call(ctx, "sendMessage", req, nil); err != nil {
		c.logger.Error("failed to send telegram message", "error", err)
		return false
	}
	c.logger.Info("message sent", slog.String("chat_id", c.chatID))
	return true
}

// SendMessages delivers a batch sequentially, pacing sends to one per
// sendInterval. It continues past individual failures and returns the count
// of confirmed sends. An empty batch returns 0 without any network call.
func (c *Client) SendMessages(ctx context.Context, texts []string) int {
	if len(texts) == 0 {
		c.logger.Warn("no messages provided to send")
		return 0
	}

	sent := 0
	for i, text := range texts {
		if err := c.limiter.Wait(ctx); err != nil {
			c.logger.Error("batch send interrupted", "error", err)
			break
		}
		req := sendMessageRequest{ChatID: c.chatID, Text: text}
		if err := c.call(ctx, "sendMessage", req, nil); err != nil {
			c.logger.Error("failed to send batch message",
				slog.Int("index", i+1),
				slog.Int("total", len(texts)),
				slog.Any("error", err),
			)
			continue
		}
		sent++
	}

	c.logger.Info("batch send complete",
		slog.Int("sent", sent),
		slog.Int("total", len(texts)),
	)
	return sent
}

// TestConnection verifies the bot credential by calling getMe. Diagnostic
// only; the webhook flow never calls it.
func (c *Client) TestConnection(ctx context.Context) bool {
	var me botUser
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		c.logger.Error("telegram connection failed", "error", err)
		return false
	}
	c.logger.Info("telegram connection ok",
		slog.String("bot", me.FirstName),
		slog.String("username", me.Username),
	)
	return true
}

// Close releases held connections. Failures here are logged, never raised.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
	c.logger.Info("telegram client closed")
}

// call invokes one Bot API method and decodes the result envelope.
func (c *Client) call(ctx context.Context, method string, params, result any) error {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	var body io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !envelope.OK {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, envelope.Description)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decoding result: %w", err)
		}
	}
	return nil
}
