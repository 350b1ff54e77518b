package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// upgrader upgrades HTTP connections to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeStream parses a stream of JSON Requests sent over a WebSocket,
// answering each with a JSON Response, until the client goes away.
func (h *Handler) ServeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.opts.MaxBodyBytes)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(msg, &req); err != nil {
			resp = Response{Errors: []Error{{Message: "invalid JSON"}}}
		} else {
			resp = h.Parse(req)
		}
		if err := conn.WriteJSON(resp); err != nil {
			h.logger.Warn("websocket write", zap.Error(err))
			return
		}
	}
}
