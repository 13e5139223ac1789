package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waslchat/relay/pkg/wire"
)

func TestExtractToken_AuthFieldWins(t *testing.T) {
	token, ok := ExtractToken(
		wire.SocketAuthPayload{Token: "from-auth"},
		map[string][]string{"token": {"from-query"}},
	)
	require.True(t, ok)
	require.Equal(t, "from-auth", token)
}

func TestExtractToken_QueryFallback(t *testing.T) {
	token, ok := ExtractToken(
		wire.SocketAuthPayload{},
		map[string][]string{"token": {"from-query"}},
	)
	require.True(t, ok)
	require.Equal(t, "from-query", token)
}

func TestExtractToken_Missing(t *testing.T) {
	_, ok := ExtractToken(wire.SocketAuthPayload{}, nil)
	require.False(t, ok)

	_, ok = ExtractToken(wire.SocketAuthPayload{}, map[string][]string{"token": {""}})
	require.False(t, ok)

	_, ok = ExtractToken(wire.SocketAuthPayload{}, map[string][]string{"other": {"x"}})
	require.False(t, ok)
}
