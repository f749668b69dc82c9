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

import "time"

// Event is the envelope pushed to websocket subscribers.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// NewEvent stamps an event with the current wall clock in milliseconds.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Push event types consumed by operator dashboards.
const (
	EventRobotConnected         = "robot_connected"
	EventRobotDisconnected      = "robot_disconnected"
	EventRobotReceivingCommand  = "robot_receiving_command"
	EventRobotEnabled           = "robot_enabled"
	EventRobotDisabled          = "robot_disabled"
	EventRobotsRefreshing       = "robots_refreshing"
	EventControllerPaired       = "controller_paired"
	EventControllerUnpaired     = "controller_unpaired"
	EventControllerEnabled      = "controller_enabled"
	EventControllerDisabled     = "controller_disabled"
	EventControllersRefreshing  = "controllers_refreshing"
	EventControllersUpdated     = "controllers_updated"
	EventEmergencyStop          = "emergency_stop"
	EventMatchStart             = "match_start"
	EventMatchStop              = "match_stop"
	EventMatchReset             = "match_reset"
	EventMatchEnd               = "match_end"
	EventMatchDurationChanged   = "match_duration_changed"
	EventTimerUpdate            = "timer_update"
)
