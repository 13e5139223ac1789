// Package auth resolves bearer tokens into verified user identities. The
// relay trusts the resulting UserID for the lifetime of one connection.
package auth

import "context"

// Client-visible failure messages. Upstream causes are logged server-side
// only; clients always see one of these two strings.
const (
	MsgTokenMissing = "Authentication error: Token missing"
	MsgTokenInvalid = "Authentication error: Invalid or expired token"
)

// TokenVerifier resolves a bearer token into a verified user id. Verification
// happens exactly once per new connection; results are never cached or
// retried.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (UserID, error)
}

// AuthError is the failure returned by token verification. Error() carries
// only the sanitized client-visible message; the upstream cause is reachable
// via Unwrap for server-side logging.
type AuthError struct {
	msg   string
	cause error
}

func newAuthError(msg string, cause error) *AuthError {
	return &AuthError{msg: msg, cause: cause}
}

// ErrTokenMissing is returned when no token is present in the handshake.
func ErrTokenMissing() *AuthError {
	return newAuthError(MsgTokenMissing, nil)
}

func (e *AuthError) Error() string {
	return e.msg
}

// Unwrap exposes the upstream cause, if any.
func (e *AuthError) Unwrap() error {
	return e.cause
}
