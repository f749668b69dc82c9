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

// Package network implements the UDP boundary shared with the robot
// firmware: discovery datagrams in, control frames and status text out.
package network

import (
	"fmt"

	"github.com/lancerrobotics/watchtower/pkg/models"
)

// controlFrameSize is fixed by the firmware: six axis bytes followed by two
// button bitmask bytes. The firmware dispatches on datagram length, so every
// control frame must be exactly this size.
const controlFrameSize = 8

const (
	frameLeftX = iota
	frameLeftY
	frameRightX
	frameRightY
	frameLeftTrigger
	frameRightTrigger
	frameButtonsLow
	frameButtonsHigh
)

// axisCenter encodes a stick at rest. The firmware treats 127 as neutral.
const axisCenter = 0x7f

// axisToByte maps a stick value in [-1, 1] to the firmware's 0..255 range.
// Out-of-range values are clamped so a miscalibrated axis can never wrap.
func axisToByte(v float64) byte {
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}

	scaled := (v + 1) * 127.5
	if scaled > 255 {
		scaled = 255
	}

	return byte(scaled)
}

// EncodeCommand renders a registry command as a control frame. Stop commands
// are a centered frame with no buttons, so a robot that receives one coasts
// to neutral rather than holding its last input.
func EncodeCommand(cmd models.Command) ([]byte, error) {
	frame := make([]byte, controlFrameSize)
	frame[frameLeftX] = axisCenter
	frame[frameLeftY] = axisCenter
	frame[frameRightX] = axisCenter
	frame[frameRightY] = axisCenter

	switch c := cmd.(type) {
	case *models.StopCommand:
		return frame, nil
	case *models.MovementCommand:
		frame[frameLeftX] = axisToByte(c.LeftX)
		frame[frameLeftY] = axisToByte(c.LeftY)
		frame[frameRightX] = axisToByte(c.RightX)
		frame[frameRightY] = axisToByte(c.RightY)

		return frame, nil
	default:
		return nil, fmt.Errorf("unsupported command type %q", cmd.Type())
	}
}

// EncodeGameStatus renders the text status datagram the firmware parses as
// "<robotId>:<status>".
func EncodeGameStatus(robotID string, state models.GameState) []byte {
	return []byte(fmt.Sprintf("%s:%s", robotID, state))
}

// EncodeEmergencyStop renders the fleet-wide broadcast datagram.
func EncodeEmergencyStop(active bool) []byte {
	if active {
		return []byte("ESTOP:1")
	}

	return []byte("ESTOP:0")
}
