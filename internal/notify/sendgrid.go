package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"salon-booking/internal/pkg/errs"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridMailer sends transactional mail through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewSendGridMailer(apiKey, from string, client *http.Client) *SendGridMailer {
	return &SendGridMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: sendGridEndpoint,
		client:   client,
	}
}

// NewSendGridMailerWithEndpoint is used by tests to point at a local server.
func NewSendGridMailerWithEndpoint(apiKey, from, endpoint string, client *http.Client) *SendGridMailer {
	m := NewSendGridMailer(apiKey, from, client)
	m.endpoint = endpoint
	return m
}

type sgPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	payload := sgPayload{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: to}}}},
		From:             sgAddress{Email: m.from},
		Subject:          subject,
		Content:          []sgContent{{Type: "text/plain", Value: body}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(data))
	if err != nil {
		return errs.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "mail request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("mail API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// mailChannel notifies the operator mailbox about new bookings.
type mailChannel struct {
	mailer *SendGridMailer
	to     string
}

func (c *mailChannel) Name() string {
	return "sendgrid"
}

func (c *mailChannel) Send(ctx context.Context, msg Message) error {
	return c.mailer.Send(ctx, c.to, msg.Subject, msg.Body)
}
