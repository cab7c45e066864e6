package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Hub pushes match events to connected clients. Every client joins its own
// user room after connecting; mutual-match notifications are broadcast to
// the rooms of both parties.
type Hub struct {
	Server *socketio.Server
}

// NewHub initializes and returns the Socket.IO match-notification hub.
func NewHub() *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	// Clients join their own user room to receive match events.
	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room for user %s", c.ID(), userID)
		c.Join(userRoom(userID))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return &Hub{Server: server}
}

// NotifyMatch tells both parties that a mutual match formed. Safe to call
// on a nil hub.
func (h *Hub) NotifyMatch(userA, userB string) {
	if h == nil {
		return
	}
	payload := map[string]string{"userA": userA, "userB": userB}
	h.Server.BroadcastToRoom("/", userRoom(userA), "newMatch", payload)
	h.Server.BroadcastToRoom("/", userRoom(userB), "newMatch", payload)
	log.Printf("🎉 newMatch broadcast for %s and %s", userA, userB)
}

func userRoom(userID string) string {
	return "user:" + userID
}
