package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// RegistrationEvent is pushed to connected admin dashboards whenever the
// webhook handler promotes a paid registration.
type RegistrationEvent struct {
	ProgramType   string `json:"program_type"`
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	AmountPesewas int64  `json:"amount_pesewas"`
}

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex

var Register = make(chan *websocket.Conn)
var Unregister = make(chan *websocket.Conn)
var Broadcast = make(chan RegistrationEvent, 16)

func RunHub() {
	for {
		select {
		case conn := <-Register:
			log.Println("Admin feed client connected")
			clientsMu.Lock()
			clients[conn] = true
			clientsMu.Unlock()
		case conn := <-Unregister:
			log.Println("Admin feed client disconnected")
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []*websocket.Conn
			for conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing event to admin feed client: %v", err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, conn := range dead {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// NotifyRegistration queues an event for the admin feed without blocking the
// webhook handler; the event is dropped if the hub is saturated.
func NotifyRegistration(event RegistrationEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Println("Admin feed channel full, dropping registration event")
	}
}
