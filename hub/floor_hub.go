package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/seatwise/seating-app/models"
)

// Event types
const (
	EventTableCreate        = "table_create"
	EventTableUpdate        = "table_update"
	EventTableDelete        = "table_delete"
	EventAssignmentCreate   = "assignment_create"
	EventAssignmentUpdate   = "assignment_update"
	EventAssignmentComplete = "assignment_complete"
	EventAssignmentDelete   = "assignment_delete"
	EventReservationUpdate  = "reservation_update"
	EventReservationNoShow  = "reservation_no_show"
	EventWaitingListUpdate  = "waiting_list_update"
	EventDashboardUpdate    = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// FloorHub menampung semua client dashboard lantai (host stand, floor manager)
// dan menyiarkan perubahan status meja/assignment secara real-time.
type FloorHub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var floorHub = FloorHub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient menambahkan connection ke set.
func RegisterClient(conn *websocket.Conn) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	floorHub.clients[conn] = true
}

// UnregisterClient melepaskan connection.
func UnregisterClient(conn *websocket.Conn) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()
	delete(floorHub.clients, conn)
	conn.Close()
}

// BroadcastTableUpdate menyiarkan perubahan status meja.
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  table,
	})
}

// BroadcastTableAssignment menyiarkan lifecycle event assignment meja.
func BroadcastTableAssignment(event string, assignment models.TableAssignment) {
	broadcast(Message{
		Event: event,
		Data:  assignment,
	})
}

// BroadcastReservationAssignment menyiarkan lifecycle event assignment reservasi.
func BroadcastReservationAssignment(event string, assignment models.ReservationAssignment) {
	broadcast(Message{
		Event: event,
		Data:  assignment,
	})
}

// BroadcastReservationUpdate menyiarkan perubahan status reservasi.
func BroadcastReservationUpdate(event string, reservation models.Reservation) {
	broadcast(Message{
		Event: event,
		Data:  reservation,
	})
}

// BroadcastWaitingListUpdate menyiarkan perubahan waiting list.
func BroadcastWaitingListUpdate(entry models.WaitingList) {
	broadcast(Message{
		Event: EventWaitingListUpdate,
		Data:  entry,
	})
}

// BroadcastMessage menyiarkan pesan umum.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	floorHub.mutex.Lock()
	defer floorHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range floorHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
