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

package robot

import (
	"context"
	"strings"

	"github.com/lancerrobotics/watchtower/pkg/models"
)

const discoveryPrefix = "DISCOVER:"

// minDiscoveryFields is the colon-delimited field count of a valid ping:
// "DISCOVER:<robotId>:<ipAddress>".
const minDiscoveryFields = 3

// discoveryLoop polls the receiver for discovery datagrams every 500ms.
// Receive errors are logged at low severity and never terminate the loop.
func (r *Registry) discoveryLoop(ctx context.Context) error {
	if r.receiver == nil {
		<-r.done
		return nil
	}

	ticker := r.clock.Ticker(discoveryPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.done:
			return nil
		case <-ticker.Chan():
			msg, err := r.receiver.Receive(ctx)
			if err != nil {
				r.logger.Debug().Err(err).Msg("Discovery listening error")
				continue
			}

			if msg != "" {
				r.HandleDiscoveryPing(msg)
			}
		}
	}
}

// HandleDiscoveryPing processes one raw discovery datagram. Malformed
// messages are discarded silently. Pings for connected robots are treated as
// heartbeats; connection status is sticky and a connected robot never
// re-enters the discovered collection by pinging.
func (r *Registry) HandleDiscoveryPing(message string) {
	if !strings.HasPrefix(message, discoveryPrefix) {
		r.logger.Debug().Str("message", message).Msg("Ignoring non-discovery datagram")
		return
	}

	parts := strings.Split(message, ":")
	if len(parts) < minDiscoveryFields {
		r.logger.Debug().Str("message", message).Msg("Ignoring malformed discovery ping")
		return
	}

	robotID := parts[1]
	ipAddress := parts[2]
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if rb, ok := r.connected[robotID]; ok {
		rb.IPAddress = ipAddress
		rb.LastSeen = now

		return
	}

	rb, ok := r.discovered[robotID]
	if !ok {
		rb = &models.Robot{
			ID:        robotID,
			Name:      robotID,
			IPAddress: ipAddress,
			Status:    models.RobotStatusDiscovered,
			LastSeen:  now,
		}
		r.discovered[robotID] = rb

		r.logger.Info().Str("robot_id", robotID).Str("ip", ipAddress).Msg("Discovered new robot")

		return
	}

	rb.IPAddress = ipAddress
	rb.LastSeen = now
}
