package events

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Subscribers never send meaningful payloads; reads exist only to notice
// disconnects, so incoming frames are capped small.
const wsReadLimit = 512

var upgrader = websocket.Upgrader{
	ReadBufferSize:  256,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// one-way feed, events carry masked emails only
		return true
	},
}

// WSHandler subscribes the connection to the generation event feed. The
// server pushes events until the peer goes away; anything the client sends
// is drained and dropped.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[events] upgrade failed: %v", err)
			return
		}
		ws.SetReadLimit(wsReadLimit)

		hub.Add(ws)
		log.Printf("[events] subscriber connected (%d active)", hub.Stats().WSClients)

		_ = ws.WriteMessage(
			websocket.TextMessage,
			[]byte(`{"type":"welcome","feed":"generations"}`+"\n"),
		)

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Printf("[events] subscriber disconnected (%d active)", hub.Stats().WSClients)
	}
}

// MaskEmail hides the local part except its first character, so the event
// feed never leaks full addresses.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
