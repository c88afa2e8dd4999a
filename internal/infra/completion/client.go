package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client wraps the chat-completion service behind the announcement drafting
// helper. Constructed once at startup from explicit configuration; a missing
// API key is caught at boot, not here.
type Client struct {
	url   string
	key   string
	model string
	http  *http.Client
}

func NewClient(url, key string) *Client {
	return &Client{
		url:   url,
		key:   key,
		model: "gpt-4o-mini",
		http:  &http.Client{Timeout: 45 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const draftSystemPrompt = "You write short internal company announcements. " +
	"Write a friendly, professional announcement body for the given title and category. " +
	"Plain text, no markdown, at most three short paragraphs."

// DraftAnnouncement asks the completion service for an announcement body.
func (c *Client) DraftAnnouncement(ctx context.Context, title, category string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: draftSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Title: %s\nCategory: %s", title, category)},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", errors.New("completion service returned no content")
	}
	return out.Choices[0].Message.Content, nil
}
