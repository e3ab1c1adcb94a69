package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"salon-booking/internal/pkg/errs"
)

const linePushEndpoint = "https://api.line.me/v2/bot/message/push"

// LineChannel pushes a text message to the operator through the LINE
// Messaging API.
type LineChannel struct {
	token    string
	userID   string
	endpoint string
	client   *http.Client
}

func NewLineChannel(token, userID string, client *http.Client) *LineChannel {
	return &LineChannel{
		token:    token,
		userID:   userID,
		endpoint: linePushEndpoint,
		client:   client,
	}
}

// NewLineChannelWithEndpoint is used by tests to point at a local server.
func NewLineChannelWithEndpoint(token, userID, endpoint string, client *http.Client) *LineChannel {
	c := NewLineChannel(token, userID, client)
	c.endpoint = endpoint
	return c
}

func (c *LineChannel) Name() string {
	return "line"
}

type linePush struct {
	To       string        `json:"to"`
	Messages []lineMessage `json:"messages"`
}

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (c *LineChannel) Send(ctx context.Context, msg Message) error {
	payload := linePush{
		To:       c.userID,
		Messages: []lineMessage{{Type: "text", Text: msg.Subject + "\n" + msg.Body}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal push payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return errs.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("push API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
