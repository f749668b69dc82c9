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

// CommandType discriminates the command payloads handed to the transmitter.
type CommandType string

const (
	CommandTypeStop     CommandType = "stop"
	CommandTypeMovement CommandType = "movement"
)

// Command is an opaque payload produced by the core and handed to the
// transmission collaborator.
type Command interface {
	RobotID() string
	Type() CommandType
}

// StopCommand orders a robot to halt all motors.
type StopCommand struct {
	Robot string
}

func NewStopCommand(robotID string) *StopCommand {
	return &StopCommand{Robot: robotID}
}

func (c *StopCommand) RobotID() string { return c.Robot }
func (*StopCommand) Type() CommandType { return CommandTypeStop }

// MovementCommand carries the four stick axes for one drive update.
type MovementCommand struct {
	Robot  string
	LeftX  float64
	LeftY  float64
	RightX float64
	RightY float64
}

func NewMovementCommand(robotID string, leftX, leftY, rightX, rightY float64) *MovementCommand {
	return &MovementCommand{
		Robot:  robotID,
		LeftX:  leftX,
		LeftY:  leftY,
		RightX: rightX,
		RightY: rightY,
	}
}

func (c *MovementCommand) RobotID() string { return c.Robot }
func (*MovementCommand) Type() CommandType { return CommandTypeMovement }
