package handler

import (
	"encoding/json"
	"log"
	"sync"

	"greenscreen_kiosk/model"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// OrderFeed keeps the operator dashboard in sync. Clients only listen;
// reads exist to surface disconnects.
func OrderFeed(c *websocket.Conn) {
	wsMu.Lock()
	wsClients[c] = true
	wsMu.Unlock()

	defer func() {
		wsMu.Lock()
		delete(wsClients, c)
		wsMu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastOrderEvent pushes an order change to every connected dashboard.
func BroadcastOrderEvent(event string, order *model.Order) {
	payload, err := json.Marshal(map[string]interface{}{
		"event": event,
		"order": order,
	})
	if err != nil {
		log.Printf("websocket: marshal %s: %v", event, err)
		return
	}

	wsMu.Lock()
	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
	wsMu.Unlock()
}
