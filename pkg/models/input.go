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

package models

import "math"

// MaxButtons is the number of button flags carried per frame. Extra buttons
// reported by the driver are ignored.
const MaxButtons = 16

// MovementThreshold is the post-deadzone magnitude above which a stick axis
// counts as movement. Independent of the input deadzone.
const MovementThreshold = 0.05

// ControllerInput is one normalized input frame. Stick axes are in [-1,1]
// after deadzone, triggers in [0,1]. Frames are replaced wholesale each poll
// cycle and never persisted.
type ControllerInput struct {
	LeftStickX   float64          `json:"leftStickX"`
	LeftStickY   float64          `json:"leftStickY"`
	RightStickX  float64          `json:"rightStickX"`
	RightStickY  float64          `json:"rightStickY"`
	LeftTrigger  float64          `json:"leftTrigger"`
	RightTrigger float64          `json:"rightTrigger"`
	DPad         float64          `json:"dpad"`
	Buttons      [MaxButtons]bool `json:"buttons"`
}

// HasMovement reports whether any stick axis exceeds the movement threshold.
func (in *ControllerInput) HasMovement() bool {
	return math.Abs(in.LeftStickX) > MovementThreshold ||
		math.Abs(in.LeftStickY) > MovementThreshold ||
		math.Abs(in.RightStickX) > MovementThreshold ||
		math.Abs(in.RightStickY) > MovementThreshold
}

// IsStopCommand reports whether the frame is effectively a stop (no movement).
func (in *ControllerInput) IsStopCommand() bool {
	return !in.HasMovement()
}

// SetButton sets a button flag; out-of-range indexes are ignored.
func (in *ControllerInput) SetButton(index int, pressed bool) {
	if index >= 0 && index < MaxButtons {
		in.Buttons[index] = pressed
	}
}

// Button reads a button flag; out-of-range indexes read false.
func (in *ControllerInput) Button(index int) bool {
	if index >= 0 && index < MaxButtons {
		return in.Buttons[index]
	}

	return false
}
