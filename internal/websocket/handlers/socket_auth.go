package handlers

import (
	"github.com/waslchat/relay/pkg/wire"
)

// ExtractToken pulls the bearer token from the Socket.IO handshake. The auth
// payload field wins over the `token` query parameter; both absent means the
// connection is refused without calling the verifier.
func ExtractToken(auth wire.SocketAuthPayload, query map[string][]string) (string, bool) {
	if auth.Token != "" {
		return auth.Token, true
	}
	if vals, ok := query["token"]; ok && len(vals) > 0 && vals[0] != "" {
		return vals[0], true
	}
	return "", false
}
