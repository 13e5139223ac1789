package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waslchat/relay/internal/auth"
)

func TestJoin_OwnRoom(t *testing.T) {
	instr := Join(NewAuthContext(auth.UserID("42"), "sock-1"), "42")
	require.NotNil(t, instr)
	require.Equal(t, "42", instr.Room())
}

func TestJoin_NumericClaimMatchesStringIdentity(t *testing.T) {
	// Socket.IO clients send ids as JSON numbers; they decode as float64.
	instr := Join(NewAuthContext(auth.UserID("42"), "sock-1"), float64(42))
	require.NotNil(t, instr)
	require.Equal(t, "42", instr.Room())
}

func TestJoin_SpoofedIdentityDropped(t *testing.T) {
	instr := Join(NewAuthContext(auth.UserID("7"), "sock-1"), "42")
	require.Nil(t, instr)
}

func TestJoin_MalformedClaimDropped(t *testing.T) {
	for _, claim := range []any{nil, true, map[string]any{"userId": "42"}, ""} {
		instr := Join(NewAuthContext(auth.UserID("42"), "sock-1"), claim)
		require.Nil(t, instr, "claim %#v should be dropped", claim)
	}
}
