package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is one turn of a tutoring conversation. Session-scoped, never
// persisted.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client speaks to the tutor endpoint: POST the conversation, read back an
// SSE stream of chat-completion deltas.
type Client struct {
	endpoint string
	apiKey   string
	hc       *http.Client
}

func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		hc:       &http.Client{Timeout: timeout},
	}
}

type streamRequest struct {
	Messages []Message `json:"messages"`
	Subject  string    `json:"subject"`
}

type apiError struct {
	Error string `json:"error"`
}

// Stream posts the conversation and invokes onDelta for each text fragment as
// it arrives. It returns the full reassembled assistant text. A non-2xx
// response or transport failure yields a single error and no deltas beyond
// those already delivered.
func (c *Client) Stream(ctx context.Context, msgs []Message, subject string, onDelta func(string)) (string, error) {
	body, err := json.Marshal(streamRequest{Messages: msgs, Subject: subject})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("tutor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp)
	}

	var (
		dec  Decoder
		full bytes.Buffer
		buf  = make([]byte, 4096)
	)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, delta := range dec.Feed(buf[:n]) {
				full.WriteString(delta)
				if onDelta != nil {
					onDelta(delta)
				}
			}
		}
		if dec.Done() {
			break
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				// connection close without a sentinel still ends the stream
				break
			}
			return full.String(), fmt.Errorf("tutor stream interrupted: %w", readErr)
		}
	}
	return full.String(), nil
}

func decodeAPIError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var ae apiError
	if err := json.Unmarshal(b, &ae); err == nil && ae.Error != "" {
		return fmt.Errorf("tutor endpoint: %s", ae.Error)
	}
	return fmt.Errorf("tutor endpoint returned status %d", resp.StatusCode)
}
