package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waslchat/relay/internal/auth"
)

func TestSendMessage_Delivers(t *testing.T) {
	payload := map[string]any{
		"senderId":   "7",
		"receiverId": "42",
		"message":    "hi",
		"clientTag":  "x1", // extra fields pass through untouched
	}

	instr := SendMessage(NewAuthContext(auth.UserID("7"), "sock-1"), payload)
	require.NotNil(t, instr)
	require.Equal(t, "42", instr.Room())
	// The payload is forwarded unmodified, by reference.
	require.Equal(t, payload, instr.Payload())
}

func TestSendMessage_NumericIDs(t *testing.T) {
	instr := SendMessage(NewAuthContext(auth.UserID("7"), "sock-1"), map[string]any{
		"senderId":   float64(7),
		"receiverId": float64(42),
		"message":    "hi",
	})
	require.NotNil(t, instr)
	require.Equal(t, "42", instr.Room())
}

func TestSendMessage_SpoofedSenderDropped(t *testing.T) {
	instr := SendMessage(NewAuthContext(auth.UserID("7"), "sock-1"), map[string]any{
		"senderId":   "42",
		"receiverId": "7",
		"message":    "hi",
	})
	require.Nil(t, instr)
}

func TestSendMessage_MissingFieldsDropped(t *testing.T) {
	authCtx := NewAuthContext(auth.UserID("7"), "sock-1")

	require.Nil(t, SendMessage(authCtx, nil))
	require.Nil(t, SendMessage(authCtx, map[string]any{"receiverId": "42"}))
	require.Nil(t, SendMessage(authCtx, map[string]any{"senderId": "7"}))
	require.Nil(t, SendMessage(authCtx, map[string]any{"senderId": "7", "receiverId": true}))
}
