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

// Package input normalizes raw game-controller frames into bounded command
// vectors.
package input

import (
	"math"

	"github.com/lancerrobotics/watchtower/pkg/models"
)

// StickDeadzone is the hard cutoff below which a stick axis reads as zero.
// Values at or above the cutoff pass through unscaled, so there is a
// discontinuity at the boundary.
const StickDeadzone = 0.10

// Axis indexes of the standard driver mapping (PlayStation layout).
const (
	axisLeftX = iota
	axisLeftY
	axisRightX
	axisRightY
	axisLeftTrigger
	axisRightTrigger
)

// triggerAxisCount is the raw axis count at which the trailing two axes are
// treated as analog triggers reported in [-1,1].
const triggerAxisCount = 6

// Hat is one d-pad position as reported by the driver.
type Hat struct {
	X int
	Y int
}

// RawFrame is a single unprocessed device poll: axis values in [-1,1],
// button states, and hat positions, in driver order.
type RawFrame struct {
	Axes    []float64
	Buttons []bool
	Hats    []Hat
}

// Normalize converts a raw frame into a bounded ControllerInput. The
// transform is stateless: each call depends only on the given frame.
func Normalize(frame RawFrame) *models.ControllerInput {
	out := &models.ControllerInput{}

	if len(frame.Axes) > axisLeftY {
		out.LeftStickX = applyDeadzone(frame.Axes[axisLeftX])
		out.LeftStickY = applyDeadzone(frame.Axes[axisLeftY])
	}

	if len(frame.Axes) > axisRightY {
		out.RightStickX = applyDeadzone(frame.Axes[axisRightX])
		out.RightStickY = applyDeadzone(frame.Axes[axisRightY])
	}

	if len(frame.Axes) >= triggerAxisCount {
		// DualSense/DS4 report triggers as [-1,1]; rest position is -1.
		out.LeftTrigger = clampTrigger((frame.Axes[axisLeftTrigger] + 1) / 2)
		out.RightTrigger = clampTrigger((frame.Axes[axisRightTrigger] + 1) / 2)
	}

	for i, pressed := range frame.Buttons {
		if i >= models.MaxButtons {
			break
		}

		out.SetButton(i, pressed)
	}

	if len(frame.Hats) > 0 {
		hat := frame.Hats[0]
		out.DPad = float64(hat.X + hat.Y*2)
	}

	return out
}

func applyDeadzone(value float64) float64 {
	if math.Abs(value) < StickDeadzone {
		return 0
	}

	return value
}

func clampTrigger(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
