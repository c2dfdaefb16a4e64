package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).Level(zerolog.Disabled)
}

// newMockMailer points a ResendMailer at a local mock of the Resend API.
func newMockMailer(t *testing.T, handler http.HandlerFunc) (*ResendMailer, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := resend.NewClient("test-api-key")
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return NewResendMailer(client, "no-reply@serenescheal.org", testLogger()), server
}

func TestResendMailer_Send(t *testing.T) {
	var gotBody map[string]interface{}

	mailer, _ := newMockMailer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/emails") {
			t.Errorf("expected POST /emails, got %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if auth := r.Header.Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
			t.Errorf("expected Bearer token in Authorization header, got %q", auth)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "mock-email-id"})
	})

	err := mailer.Send(context.Background(), Message{
		To:      "recipient@example.com",
		ReplyTo: "visitor@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi there</p>",
		Attachments: []Attachment{
			{Filename: "brochure.pdf", Content: []byte("%PDF-1.4")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "no-reply@serenescheal.org", gotBody["from"])
	assert.Equal(t, []interface{}{"recipient@example.com"}, gotBody["to"])
	assert.Equal(t, "visitor@example.com", gotBody["reply_to"])
	assert.Equal(t, "Hello", gotBody["subject"])
	assert.Contains(t, gotBody["html"], "Hi there")
	attachments, ok := gotBody["attachments"].([]interface{})
	require.True(t, ok, "attachments missing from request body")
	assert.Len(t, attachments, 1)
}

func TestResendMailer_SendError(t *testing.T) {
	mailer, _ := newMockMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	})

	err := mailer.Send(context.Background(), Message{
		To:      "recipient@example.com",
		Subject: "Hello",
		Text:    "body",
	})
	assert.Error(t, err)
}

func TestResendMailer_NilClient(t *testing.T) {
	mailer := NewResendMailer(nil, "no-reply@serenescheal.org", testLogger())
	err := mailer.Send(context.Background(), Message{To: "x@example.com"})
	assert.Error(t, err)
}
