package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Room returns the socket.io room name for one participant. Clients join
// their own room after loading the status page and receive match and
// message events there.
func Room(participantID string) string {
	return "user:" + participantID
}

// NewServer initializes and returns a new Socket.IO server
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, participantID string) {
		if participantID == "" {
			log.Println("Invalid participant id in join request")
			return
		}
		log.Printf("Socket %s joined room for participant %s\n", s.ID(), participantID)
		s.Join(Room(participantID))
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return server
}
