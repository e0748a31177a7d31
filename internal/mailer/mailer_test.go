package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReplyEscapesHTML(t *testing.T) {
	html, err := renderReply("Booking", "<script>alert(1)</script>", "Thanks!")
	require.NoError(t, err)
	assert.Contains(t, html, "Re: Booking")
	assert.Contains(t, html, "Thanks!")
	assert.NotContains(t, html, "<script>")
}

func TestAPIMailerSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	m := NewAPIMailer(srv.URL, "key-123", "noreply@example.com")
	require.NoError(t, m.SendOTP(context.Background(), "user@example.com", "123456"))

	assert.Equal(t, "noreply@example.com", got.From)
	assert.Equal(t, "user@example.com", got.To)
	assert.True(t, strings.Contains(got.HTML, "123456"))
}

func TestAPIMailerProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewAPIMailer(srv.URL, "bad", "noreply@example.com")
	err := m.SendContactReply(context.Background(), "user@example.com", "Hi", "orig", "reply")
	assert.ErrorIs(t, err, ErrDispatchFailed)
}
