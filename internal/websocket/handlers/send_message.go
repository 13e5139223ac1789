package handlers

import (
	"github.com/waslchat/relay/internal/auth"
	"github.com/waslchat/relay/internal/logger"
	"github.com/waslchat/relay/pkg/wire"
)

// SendMessage validates a send_message event against the socket's bound
// identity and resolves the destination room. The payload is returned as-is;
// the relay never rewrites message content. Spoofed or malformed events are
// dropped without an error back to the client.
func SendMessage(authCtx AuthContext, payload map[string]any) *DeliverInstruction {
	if payload == nil {
		logger.Warnf("Socket %s sent empty message payload", authCtx.SocketID())
		return nil
	}

	senderID, ok := auth.NormalizeUserID(payload[wire.FieldSenderID])
	if !ok {
		logger.Warnf("Socket %s sent message without sender id", authCtx.SocketID())
		return nil
	}

	if senderID != authCtx.UserID() {
		logger.Warnf("Socket %s tried to send message as %s but is verified as %s",
			authCtx.SocketID(), senderID, authCtx.UserID())
		return nil
	}

	receiverID, ok := auth.NormalizeUserID(payload[wire.FieldReceiverID])
	if !ok {
		logger.Warnf("Socket %s sent message without receiver id", authCtx.SocketID())
		return nil
	}

	return newDeliver(receiverID.String(), payload)
}
