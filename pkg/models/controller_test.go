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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyControllerType(t *testing.T) {
	tests := []struct {
		name string
		want ControllerType
	}{
		{"Sony DualSense Wireless Controller", ControllerTypePlayStation},
		{"DUALSHOCK 4", ControllerTypePlayStation},
		{"PS5 Controller", ControllerTypePlayStation},
		{"Xbox Wireless Controller", ControllerTypeXbox},
		{"Nintendo Switch Pro Controller", ControllerTypeNintendo},
		{"8BitDo SN30 Pro", ControllerTypeGeneric},
		{"", ControllerTypeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyControllerType(tt.name))
		})
	}
}

func TestControllerIDIsStable(t *testing.T) {
	id := ControllerID("DualSense Wireless Controller", 7)

	assert.Equal(t, "DualSense_Wireless_Controller_7", id)
	assert.Equal(t, id, ControllerID("DualSense Wireless Controller", 7))

	// Different instances of the same model stay distinct.
	assert.NotEqual(t, id, ControllerID("DualSense Wireless Controller", 8))
}

func TestGameControllerCloneIsDeep(t *testing.T) {
	pad := NewGameController("pad1", ControllerTypeXbox, "Xbox Wireless Controller")
	pad.CurrentInput = &ControllerInput{LeftStickX: 0.5}

	clone := pad.Clone()
	require.NotSame(t, pad, clone)
	require.NotSame(t, pad.CurrentInput, clone.CurrentInput)

	clone.CurrentInput.LeftStickX = -1
	assert.InDelta(t, 0.5, pad.CurrentInput.LeftStickX, 1e-9)
}

func TestHasMovementThreshold(t *testing.T) {
	assert.False(t, (&ControllerInput{LeftStickX: 0.05}).HasMovement())
	assert.True(t, (&ControllerInput{LeftStickX: 0.051}).HasMovement())
	assert.True(t, (&ControllerInput{RightStickY: -0.2}).HasMovement())

	// Triggers and buttons alone do not count as movement.
	assert.False(t, (&ControllerInput{LeftTrigger: 1, RightTrigger: 1}).HasMovement())
}

func TestSetButtonBounds(t *testing.T) {
	var in ControllerInput

	in.SetButton(0, true)
	in.SetButton(MaxButtons-1, true)
	in.SetButton(MaxButtons, true)
	in.SetButton(-1, true)

	assert.True(t, in.Button(0))
	assert.True(t, in.Button(MaxButtons-1))
	assert.False(t, in.Button(MaxButtons))
	assert.False(t, in.Button(-1))
}
