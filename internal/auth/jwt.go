package auth

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT payload accepted in local verification mode.
type TokenClaims struct {
	UserID string `json:"user"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies tokens locally with a key derived from the master
// secret. Used by self-hosted deployments that run without a separate
// identity service; the default deployment uses BackendVerifier instead.
type JWTVerifier struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
}

// NewJWTVerifier derives an Ed25519 keypair from the master secret.
func NewJWTVerifier(masterSecret string) (*JWTVerifier, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("master secret is required for jwt auth mode")
	}
	seed := sha256.Sum256([]byte(masterSecret))
	privateKey := ed25519.NewKeyFromSeed(seed[:])
	return &JWTVerifier{
		privateKey: privateKey,
		publicKey:  privateKey.Public().(ed25519.PublicKey),
	}, nil
}

// CreateToken mints a token for a user. Only used by provisioning tooling and
// tests; the relay itself never issues tokens.
func (v *JWTVerifier) CreateToken(userID UserID) (string, error) {
	claims := TokenClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "relay-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(v.privateKey)
}

// Verify parses and validates the token signature and returns the embedded
// user id.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("failed to parse token: %w", err))
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("invalid token"))
	}

	userID, ok := NormalizeUserID(claims.UserID)
	if !ok {
		return "", newAuthError(MsgTokenInvalid, fmt.Errorf("token has no user claim"))
	}
	return userID, nil
}
