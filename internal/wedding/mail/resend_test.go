package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResendSend(t *testing.T) {
	var got resendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	r := NewResend("re_test", "")
	r.Endpoint = srv.URL

	id, err := r.Send(context.Background(), Message{To: "alex@example.com", Subject: "Hi", HTML: "<p>Hi</p>"})
	require.NoError(t, err)
	require.Equal(t, "msg_123", id)

	require.Equal(t, DefaultFrom, got.From)
	require.Equal(t, []string{"alex@example.com"}, got.To)
	require.Equal(t, "Hi", got.Subject)
	require.Equal(t, "<p>Hi</p>", got.HTML)
}

func TestResendFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"provider error", http.StatusUnprocessableEntity, `{"name":"validation_error","message":"Invalid to field"}`, "failed to send email: Invalid to field (status 422)"},
		{"plain text error", http.StatusBadGateway, "upstream down", "failed to send email: upstream down (status 502)"},
		{"missing id", http.StatusOK, `{}`, "failed to send email: no message id returned"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			r := NewResend("re_test", "Us <us@example.com>")
			r.Endpoint = srv.URL

			_, err := r.Send(context.Background(), Message{To: "alex@example.com", Subject: "Hi", HTML: "x"})
			require.ErrorIs(t, err, ErrSendFailed)
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestResendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := NewResend("re_test", "")
	r.Endpoint = url

	_, err := r.Send(context.Background(), Message{To: "a@example.com"})
	require.ErrorIs(t, err, ErrSendFailed)
}

func TestLogMailer(t *testing.T) {
	id, err := LogMailer{}.Send(context.Background(), Message{To: "a@example.com", Subject: "s", HTML: "h"})
	require.NoError(t, err)
	require.Regexp(t, `^log-[0-9A-Z]{26}$`, id)
}
