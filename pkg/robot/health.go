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

import "context"

// sweepLoop evicts unresponsive robots every sweepInterval.
func (r *Registry) sweepLoop(ctx context.Context) {
	ticker := r.clock.Ticker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.Chan():
			r.checkTimeouts()
		}
	}
}

// checkTimeouts evaluates both collections in one locked pass. Connected
// robots past the timeout are removed and reported; discovered robots past
// the timeout vanish entirely rather than being demoted. Notifications and
// disconnect callbacks fire after the lock is released.
func (r *Registry) checkTimeouts() {
	now := r.clock.Now()

	var timedOut []string

	r.mu.Lock()

	for id, rb := range r.connected {
		sinceSeen := now.Sub(rb.LastSeen)
		if sinceSeen <= RobotTimeout {
			continue
		}

		r.logger.Warn().
			Str("robot_id", id).
			Dur("since_seen", sinceSeen).
			Str("paired_controller", rb.PairedControllerID).
			Msg("Robot timed out")

		delete(r.connected, id)
		timedOut = append(timedOut, id)
	}

	for id, rb := range r.discovered {
		sinceSeen := now.Sub(rb.LastSeen)
		if sinceSeen <= RobotTimeout {
			continue
		}

		r.logger.Info().
			Str("robot_id", id).
			Dur("since_seen", sinceSeen).
			Msg("Removing stale robot from discovered list")

		delete(r.discovered, id)
	}

	callbacks := make([]DisconnectCallback, len(r.disconnectCallbacks))
	copy(callbacks, r.disconnectCallbacks)

	r.mu.Unlock()

	for _, id := range timedOut {
		r.notifyReceiving(id, false)

		for _, cb := range callbacks {
			r.invokeDisconnectCallback(cb, id)
		}
	}
}

// invokeDisconnectCallback isolates one observer invocation: a panicking
// observer must not block the others or abort the sweep.
func (r *Registry) invokeDisconnectCallback(cb DisconnectCallback, robotID string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Interface("panic", rec).
				Str("robot_id", robotID).
				Msg("Disconnect callback panicked")
		}
	}()

	cb(robotID)
}
