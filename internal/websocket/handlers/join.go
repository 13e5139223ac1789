package handlers

import (
	"github.com/waslchat/relay/internal/auth"
	"github.com/waslchat/relay/internal/logger"
)

// Join validates a join event against the socket's bound identity. A socket
// may only ever join the room matching its own verified user id; anything
// else is dropped without an error back to the client.
func Join(authCtx AuthContext, claimed any) *JoinInstruction {
	claimedID, ok := auth.NormalizeUserID(claimed)
	if !ok {
		logger.Warnf("Socket %s sent join with malformed user id (%T)", authCtx.SocketID(), claimed)
		return nil
	}

	if claimedID != authCtx.UserID() {
		logger.Warnf("Socket %s tried to join room %s but is verified as %s",
			authCtx.SocketID(), claimedID, authCtx.UserID())
		return nil
	}

	return newJoin(authCtx.UserID().String())
}
