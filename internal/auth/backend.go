package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// verifyTimeout bounds a single verification round-trip. A connection's
// admission is suspended on this call, so a hung identity service must not
// hold handshakes open indefinitely.
const verifyTimeout = 5 * time.Second

// maxVerifyBody caps how much of the identity service response is read.
const maxVerifyBody = 1 << 20

// verifyResponse is the expected identity service response body. The user id
// may arrive as a JSON string or number.
type verifyResponse struct {
	UserID any `json:"user_id"`
}

// BackendVerifier verifies tokens against an external identity service via
// GET {baseURL}/auth/verify with the token as a bearer credential.
type BackendVerifier struct {
	baseURL string
	client  *http.Client
}

// NewBackendVerifier creates a verifier for the given backend base URL
// (without a trailing slash; paths are joined as baseURL + "/auth/verify").
func NewBackendVerifier(baseURL string) *BackendVerifier {
	return &BackendVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: verifyTimeout},
	}
}

// Verify performs one outbound verification call. On any failure (network
// error, timeout, non-200 status, malformed body) it returns an *AuthError
// whose message never includes upstream response content.
func (v *BackendVerifier) Verify(ctx context.Context, token string) (UserID, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/verify", nil)
	if err != nil {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("failed to build verify request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("verify request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused, but never parse or surface
		// the error body.
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxVerifyBody))
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("identity service returned status %d", resp.StatusCode))
	}

	var body verifyResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxVerifyBody))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("failed to decode verify response: %w", err))
	}

	userID, ok := NormalizeUserID(body.UserID)
	if !ok {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("verify response missing user_id"))
	}
	return userID, nil
}
