package narrative

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnthropicTestServer(t *testing.T, status int, body string, gotKey *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotKey != nil {
			*gotKey = r.Header.Get("X-Api-Key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnthropic_Generate(t *testing.T) {
	var key string
	srv := newAnthropicTestServer(t, http.StatusOK, `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-3-5-haiku-latest",
  "content": [{"type": "text", "text": "The mace rings like a struck bell. "}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 10, "output_tokens": 8}
}`, &key)

	gen := NewAnthropic(&AnthropicConfig{APIKey: "ak-config", BaseURL: srv.URL})

	text, err := gen.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "The mace rings like a struck bell.", text)
	assert.Equal(t, "ak-config", key)
}

func TestAnthropic_NoText(t *testing.T) {
	srv := newAnthropicTestServer(t, http.StatusOK, `{
  "id": "msg_1", "type": "message", "role": "assistant", "model": "m",
  "content": [], "stop_reason": "end_turn", "usage": {"input_tokens": 1, "output_tokens": 0}
}`, nil)
	gen := NewAnthropic(&AnthropicConfig{APIKey: "ak", BaseURL: srv.URL})

	_, err := gen.Generate(context.Background(), testRequest())

	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, KindMalformedResponse, failure.Kind)
}

func TestAnthropic_Unauthorized(t *testing.T) {
	srv := newAnthropicTestServer(t, http.StatusUnauthorized, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, nil)
	gen := NewAnthropic(&AnthropicConfig{APIKey: "ak", BaseURL: srv.URL})

	_, err := gen.Generate(context.Background(), testRequest())

	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, KindUnauthorized, failure.Kind)
	assert.True(t, failure.InvalidatesCredential())
	assert.Equal(t, "Invalid Anthropic API key.", failure.Warning())
}

func TestAnthropic_MissingCredential(t *testing.T) {
	gen := NewAnthropic(&AnthropicConfig{})

	_, err := gen.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMissingCredential)
}
