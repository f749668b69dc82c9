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

package controller

import (
	"context"

	"github.com/lancerrobotics/watchtower/pkg/input"
)

// dispatchLoop polls controller input at ~60Hz and routes commands to paired
// robots.
func (r *Registry) dispatchLoop(ctx context.Context) error {
	ticker := r.clock.Ticker(dispatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.done:
			return nil
		case <-ticker.Chan():
			r.pollControllers(ctx)
		}
	}
}

// dispatchTarget is the state copied out of the registry lock for one cycle.
type dispatchTarget struct {
	controllerID string
	device       Device
	robotID      string
}

// pollControllers runs one dispatch cycle. For every present and enabled
// controller the raw frame is normalized and stored wholesale; if the
// controller is paired and emergency stop is inactive, movement frames
// become movement commands and idle frames become stop commands. While
// emergency stop is active nothing is issued at all.
func (r *Registry) pollControllers(ctx context.Context) {
	r.mu.Lock()

	stopped := r.estop
	targets := make([]dispatchTarget, 0, len(r.controllers))

	for id, tc := range r.controllers {
		if !tc.model.Enabled || tc.device == nil {
			continue
		}

		targets = append(targets, dispatchTarget{
			controllerID: id,
			device:       tc.device,
			robotID:      r.pairings[id],
		})
	}

	r.mu.Unlock()

	for _, target := range targets {
		frame, err := target.device.State()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("controller_id", target.controllerID).
				Msg("Error polling controller")

			continue
		}

		frameInput := input.Normalize(frame)

		r.mu.Lock()
		if tc, ok := r.controllers[target.controllerID]; ok {
			tc.model.CurrentInput = frameInput
		}
		r.mu.Unlock()

		if target.robotID == "" || stopped {
			// Emergency stop overrides every command path; unpaired
			// controllers have nowhere to dispatch.
			continue
		}

		if frameInput.HasMovement() {
			r.robots.SendMovementCommand(ctx, target.robotID,
				frameInput.LeftStickX, frameInput.LeftStickY,
				frameInput.RightStickX, frameInput.RightStickY)

			continue
		}

		r.robots.SendStopCommand(ctx, target.robotID)
	}
}
