package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catuhana/rive/auth"
	"github.com/catuhana/rive/rest"
)

func newTestClient(t *testing.T, a auth.Authentication, handler http.HandlerFunc) (*rest.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)

	cfg := rest.NewConfig()
	cfg.BaseURL = srv.URL
	cfg.Timeout = 2 * time.Second
	cfg.RetryCount = 0

	return rest.WithConfig(cfg, a), srv.Close
}

func TestDoSendsAuthHeaderForBotToken(t *testing.T) {
	var sawHeader string
	client, closeSrv := newTestClient(t, auth.BotToken("bot-token"), func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("x-bot-token")
		w.WriteHeader(http.StatusNoContent)
	})
	defer closeSrv()

	err := client.Do(context.Background(), http.MethodGet, "/users/@me", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "bot-token", sawHeader)
}

func TestDoSendsNoAuthHeaderForNone(t *testing.T) {
	var sawSession, sawBot string
	client, closeSrv := newTestClient(t, auth.None(), func(w http.ResponseWriter, r *http.Request) {
		sawSession = r.Header.Get("x-session-token")
		sawBot = r.Header.Get("x-bot-token")
		w.WriteHeader(http.StatusNoContent)
	})
	defer closeSrv()

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/", nil, nil))
	assert.Empty(t, sawSession)
	assert.Empty(t, sawBot)
}

func TestDoDecodesSuccessBodyIntoOut(t *testing.T) {
	client, closeSrv := newTestClient(t, auth.None(), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"alice"}`))
	})
	defer closeSrv()

	var out struct {
		Username string `json:"username"`
	}
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/users/@me", nil, &out))
	assert.Equal(t, "alice", out.Username)
}

func TestDoDecodesErrorBodyIntoAPIError(t *testing.T) {
	client, closeSrv := newTestClient(t, auth.None(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"UnknownChannel"}`))
	})
	defer closeSrv()

	err := client.Do(context.Background(), http.MethodGet, "/channels/x", nil, nil)
	require.Error(t, err)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, rest.ErrorUnknownChannel, apiErr.Type)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestDoEncodesRequestBodyAsJSON(t *testing.T) {
	var sawContentType string
	client, closeSrv := newTestClient(t, auth.None(), func(w http.ResponseWriter, r *http.Request) {
		sawContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	})
	defer closeSrv()

	body := struct {
		Content string `json:"content"`
	}{Content: "hi"}
	require.NoError(t, client.Do(context.Background(), http.MethodPost, "/channels/x/messages", body, nil))
	assert.Equal(t, "application/json", sawContentType)
}

func TestIsTypeMatchesErrorTaxonomy(t *testing.T) {
	client, closeSrv := newTestClient(t, auth.None(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"type":"MissingPermission","permission":"SendMessage"}`))
	})
	defer closeSrv()

	err := client.Do(context.Background(), http.MethodPost, "/channels/x/messages", nil, nil)
	require.Error(t, err)
	assert.True(t, rest.IsType(err, rest.ErrorMissingPermission))
	assert.False(t, rest.IsType(err, rest.ErrorUnknownChannel))
}
