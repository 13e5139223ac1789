package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendVerifier_Success(t *testing.T) {
	var gotAuth, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user_id":"42"}`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL + "/api")
	id, err := v.Verify(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, UserID("42"), id)
	require.Equal(t, "Bearer abc", gotAuth)
	require.Equal(t, "application/json", gotAccept)
	require.Equal(t, "/api/auth/verify", gotPath)
}

func TestBackendVerifier_NumericUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user_id":42}`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL)
	id, err := v.Verify(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, UserID("42"), id)
}

func TestBackendVerifier_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify", r.URL.Path)
		w.Write([]byte(`{"user_id":"u1"}`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL + "/")
	id, err := v.Verify(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, UserID("u1"), id)
}

func TestBackendVerifier_NonOKStatusIsSanitized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired at 2024-01-01 for user 42"}`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL)
	_, err := v.Verify(context.Background(), "abc")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	// The client-visible message must not carry upstream response content.
	require.Equal(t, MsgTokenInvalid, authErr.Error())
	require.NotContains(t, authErr.Error(), "expired at")
}

func TestBackendVerifier_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL)
	_, err := v.Verify(context.Background(), "abc")
	require.Error(t, err)
	require.Equal(t, MsgTokenInvalid, err.Error())
}

func TestBackendVerifier_MissingUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	v := NewBackendVerifier(srv.URL)
	_, err := v.Verify(context.Background(), "abc")
	require.Error(t, err)
	require.Equal(t, MsgTokenInvalid, err.Error())
}

func TestBackendVerifier_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewBackendVerifier(srv.URL)
	_, err := v.Verify(context.Background(), "abc")
	require.Error(t, err)
	require.Equal(t, MsgTokenInvalid, err.Error())
	// The transport-level cause stays reachable for server-side logging.
	require.Error(t, errors.Unwrap(err))
}

func TestBackendVerifier_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := NewBackendVerifier(srv.URL)
	_, err := v.Verify(ctx, "abc")
	require.Error(t, err)
	require.Equal(t, MsgTokenInvalid, err.Error())
}
