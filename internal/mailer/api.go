package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIMailer posts JSON to a transactional email provider's REST endpoint.
type APIMailer struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

func NewAPIMailer(endpoint, apiKey, from string) *APIMailer {
	return &APIMailer{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (m *APIMailer) send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: provider returned %d: %s", ErrDispatchFailed, resp.StatusCode, detail)
	}
	return nil
}

func (m *APIMailer) SendContactReply(ctx context.Context, to, subject, originalMessage, replyBody string) error {
	html, err := renderReply(subject, originalMessage, replyBody)
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Re: "+subject, html)
}

func (m *APIMailer) SendOTP(ctx context.Context, to, code string) error {
	html, err := renderOTP(code)
	if err != nil {
		return err
	}
	return m.send(ctx, to, "Your password reset code", html)
}
