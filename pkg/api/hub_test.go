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
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"no restriction", nil, "http://anywhere", true},
		{"wildcard", []string{"*"}, "http://anywhere", true},
		{"exact match", []string{"http://ops.local"}, "http://ops.local", true},
		{"mismatch", []string{"http://ops.local"}, "http://evil.example", false},
		{"no origin header", []string{"http://ops.local"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(tt.allowed, tt.origin))
		})
	}
}

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	if resp != nil {
		_ = resp.Body.Close()
	}

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub(nil, logger.NewTestLogger())

	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	hub.Broadcast(models.EventEmergencyStop, map[string]interface{}{"active": true})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event models.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, models.EventEmergencyStop, event.Type)
	assert.NotZero(t, event.Timestamp)
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	hub := NewHub(nil, logger.NewTestLogger())

	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())

	// The read loop notices the close and unregisters the client.
	waitForClients(t, hub, 0)

	// Broadcasting into an empty hub is safe.
	hub.Broadcast(models.EventTimerUpdate, nil)
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	require.Equal(t, want, hub.ClientCount())
}
