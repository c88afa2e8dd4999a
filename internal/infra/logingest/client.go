package logingest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Report is a client-reported error. Every field is optional: browsers send
// whatever they managed to capture before the page died.
type Report struct {
	ReportID  string `json:"reportId,omitempty"`
	Message   string `json:"message,omitempty"`
	Stack     string `json:"stack,omitempty"`
	Digest    string `json:"digest,omitempty"`
	Href      string `json:"href,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// Client forwards client error reports to the log ingestion service. Flush
// never fails the caller: the error pipeline must not create errors of its
// own, so ingestion problems are logged locally and swallowed.
type Client struct {
	url   string
	token string
	http  *http.Client
}

func NewClient(url, token string) *Client {
	return &Client{
		url:   url,
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Flush(ctx context.Context, r Report) {
	raw, err := json.Marshal(r)
	if err != nil {
		slog.Warn("client error report not serializable", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(raw))
	if err != nil {
		slog.Warn("building log ingestion request failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("log ingestion unreachable", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("log ingestion rejected report", "status", resp.StatusCode, "report_id", r.ReportID)
	}
}
