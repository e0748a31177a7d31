// Package mailer dispatches transactional email: contact-form replies and
// password-reset OTP codes. Dispatch is fire-and-forget from the caller's
// point of view (no retries), but a failure must surface so callers never
// mark a contact as replied on a mail that was not accepted.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log"
)

var ErrDispatchFailed = errors.New("email dispatch failed")

type Mailer interface {
	SendContactReply(ctx context.Context, to, subject, originalMessage, replyBody string) error
	SendOTP(ctx context.Context, to, code string) error
}

var replyTemplate = template.Must(template.New("reply").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Re: {{.Subject}}</h2>
  <div style="padding: 12px; border-left: 3px solid #ccc; color: #666;">
    <p>{{.OriginalMessage}}</p>
  </div>
  <div style="margin-top: 16px;">
    <p>{{.ReplyBody}}</p>
  </div>
</body>
</html>`))

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Password Reset</h2>
  <p>Your verification code is:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{.Code}}</p>
  <p>The code expires in 10 minutes. If you did not request a reset, ignore this email.</p>
</body>
</html>`))

func renderReply(subject, originalMessage, replyBody string) (string, error) {
	var buf bytes.Buffer
	err := replyTemplate.Execute(&buf, map[string]string{
		"Subject":         subject,
		"OriginalMessage": originalMessage,
		"ReplyBody":       replyBody,
	})
	return buf.String(), err
}

func renderOTP(code string) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, map[string]string{"Code": code})
	return buf.String(), err
}

// ConsoleMailer logs instead of sending. Used in development when no
// provider key is configured.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer { return &ConsoleMailer{} }

func (m *ConsoleMailer) SendContactReply(_ context.Context, to, subject, _, replyBody string) error {
	log.Printf("[mail] reply to=%s subject=%q body=%q", to, subject, replyBody)
	return nil
}

func (m *ConsoleMailer) SendOTP(_ context.Context, to, code string) error {
	log.Printf("[mail] otp to=%s code=%s", to, code)
	return nil
}
