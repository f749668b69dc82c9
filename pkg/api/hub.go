/*
 * Copyright 2026 Lancer Robotics.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

const (
	writeWait       = 5 * time.Second
	wsReadBufferLen = 1024
)

// Hub fans events out to connected websocket clients. It is also the
// concrete robot status notifier: registry transitions become push events.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn

	upgrader websocket.Upgrader
	logger   logger.Logger
}

// NewHub creates a hub. allowedOrigins follows the CORS config: empty or "*"
// accepts any origin.
func NewHub(allowedOrigins []string, log logger.Logger) *Hub {
	h := &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  log,
	}

	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  wsReadBufferLen,
		WriteBufferSize: wsReadBufferLen,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(allowedOrigins, r.Header.Get("Origin"))
		},
	}

	return h
}

func originAllowed(allowed []string, origin string) bool {
	if len(allowed) == 0 || origin == "" {
		return true
	}

	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}

	return false
}

// HandleWebSocket upgrades the request and tracks the client until it
// disconnects. Inbound messages are drained and discarded; the stream is
// push-only.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("Failed to upgrade to WebSocket")

		return
	}

	clientID := uuid.New().String()

	h.mu.Lock()
	h.clients[clientID] = conn
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.Info().
		Str("client_id", clientID).
		Str("remote_addr", r.RemoteAddr).
		Int("clients", clientCount).
		Msg("WebSocket client connected")

	defer h.dropClient(clientID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) dropClient(clientID string) {
	h.mu.Lock()
	conn, ok := h.clients[clientID]
	delete(h.clients, clientID)
	h.mu.Unlock()

	if !ok {
		return
	}

	_ = conn.Close()

	h.logger.Debug().Str("client_id", clientID).Msg("WebSocket client disconnected")
}

// Broadcast pushes one event envelope to every client. Clients that fail a
// write are dropped.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	payload, err := json.Marshal(models.NewEvent(eventType, data))
	if err != nil {
		h.logger.Error().Err(err).Str("event", eventType).Msg("Failed to encode event")
		return
	}

	h.mu.Lock()
	conns := make(map[string]*websocket.Conn, len(h.clients))
	for id, conn := range h.clients {
		conns[id] = conn
	}
	h.mu.Unlock()

	for id, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug().
				Err(err).
				Str("client_id", id).
				Msg("Dropping unresponsive WebSocket client")
			h.dropClient(id)
		}
	}

	h.logger.Debug().Str("event", eventType).Msg("Broadcast")
}

// ClientCount reports the number of subscribed clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.clients
	h.clients = make(map[string]*websocket.Conn)
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}

// RobotReceivingCommand implements the robot registry's status notifier.
func (h *Hub) RobotReceivingCommand(robotID string, receiving bool) {
	h.Broadcast(models.EventRobotReceivingCommand, map[string]interface{}{
		"id":        robotID,
		"receiving": receiving,
	})
}

// RobotDisconnected is registered as a robot disconnect callback so timeouts
// reach the dashboards.
func (h *Hub) RobotDisconnected(robotID string) {
	h.Broadcast(models.EventRobotDisconnected, map[string]interface{}{"id": robotID})
}
