package optout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func unsubscribeURL(email, secret string) string {
	return "/?email=" + url.QueryEscape(email) + "&verify=" + url.QueryEscape(Token(email, secret))
}

func TestHandler_Unsubscribe(t *testing.T) {
	t.Parallel()

	const secret = "s3cret"
	store := NewMemory()
	h := Handler(store, secret, nil)

	req := httptest.NewRequest(http.MethodGet, unsubscribeURL("jane@example.com", secret), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	unsub, err := store.IsUnsubscribed(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.True(t, unsub)
}

func TestHandler_BadToken(t *testing.T) {
	t.Parallel()

	store := NewMemory()
	h := Handler(store, "s3cret", nil)

	req := httptest.NewRequest(http.MethodGet, "/?email=jane%40example.com&verify=deadbeef", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	unsub, err := store.IsUnsubscribed(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.False(t, unsub)
}

func TestHandler_AlreadyUnsubscribed(t *testing.T) {
	t.Parallel()

	const secret = "s3cret"
	store := NewMemory()
	require.NoError(t, store.Add(context.Background(), "jane@example.com"))

	h := Handler(store, secret, nil)
	req := httptest.NewRequest(http.MethodGet, unsubscribeURL("jane@example.com", secret), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "already")
}
