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
	"net/http"
	"time"

	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// NetworkStats is the wire form of /api/network/stats.
type NetworkStats struct {
	Timestamp         int64  `json:"timestamp"`
	BytesSent         uint64 `json:"bytesSent"`
	BytesRecv         uint64 `json:"bytesRecv"`
	PacketsSent       uint64 `json:"packetsSent"`
	PacketsRecv       uint64 `json:"packetsRecv"`
	ActiveConnections int    `json:"activeConnections"`
}

// handleNetworkStats reports aggregate interface counters plus the number of
// connected robots.
func (s *APIServer) handleNetworkStats(w http.ResponseWriter, r *http.Request) {
	stats := NetworkStats{
		Timestamp:         time.Now().UnixMilli(),
		ActiveConnections: len(s.robots.GetConnectedRobots()),
	}

	counters, err := gopsnet.IOCountersWithContext(r.Context(), false)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read interface counters")
	} else if len(counters) > 0 {
		stats.BytesSent = counters[0].BytesSent
		stats.BytesRecv = counters[0].BytesRecv
		stats.PacketsSent = counters[0].PacketsSent
		stats.PacketsRecv = counters[0].PacketsRecv
	}

	s.encodeJSONResponse(w, stats)
}
