package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/seatwise/seating-app/hub" // folder berisi floorHub
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// FloorHandler -> endpoint WebSocket untuk dashboard lantai
func FloorHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	hub.RegisterClient(ws)

	// Baca pesan (jika perlu)
	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	// Unregister saat disconnect
	hub.UnregisterClient(ws)
}
