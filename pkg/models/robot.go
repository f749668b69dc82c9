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

// Package models defines the shared data model for the watchtower backend.
package models

import "time"

// RobotStatus describes where a robot sits in its lifecycle. A robot id is
// present in exactly one of the discovered/connected collections at a time.
type RobotStatus string

const (
	RobotStatusDiscovered RobotStatus = "discovered"
	RobotStatusConnected  RobotStatus = "connected"
)

// GameState is the fleet-wide operating mode.
type GameState string

const (
	GameStateStandby GameState = "standby"
	GameStateTeleop  GameState = "teleop"
)

// Robot represents a field robot known to the backend. Records are created on
// first discovery ping and refreshed on every subsequent ping.
type Robot struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	IPAddress          string      `json:"ipAddress"`
	Status             RobotStatus `json:"status"`
	LastSeen           time.Time   `json:"lastSeen"`
	PairedControllerID string      `json:"pairedControllerId,omitempty"`
}

// NewRobot creates a robot record first seen now.
func NewRobot(id, name, ipAddress string, status RobotStatus) *Robot {
	return &Robot{
		ID:        id,
		Name:      name,
		IPAddress: ipAddress,
		Status:    status,
		LastSeen:  time.Now(),
	}
}

// Clone returns a copy safe to hand out after the registry lock is released.
func (r *Robot) Clone() *Robot {
	clone := *r
	return &clone
}
