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

//go:generate mockgen -destination=mock_api.go -package=api github.com/lancerrobotics/watchtower/pkg/api RobotManager,ControllerManager,Broadcaster

package api

import (
	"context"

	"github.com/lancerrobotics/watchtower/pkg/models"
)

// RobotManager is the robot-registry surface the API layer consumes.
type RobotManager interface {
	GetConnectedRobots() []*models.Robot
	GetDiscoveredRobots() []*models.Robot
	GetRobot(id string) *models.Robot
	ConnectDiscovered(id string) (*models.Robot, error)
	RemoveRobot(id string)
	SendStopCommand(ctx context.Context, robotID string)
	StartTeleop(ctx context.Context)
	StopTeleop(ctx context.Context)
}

// ControllerManager is the controller-registry surface the API layer
// consumes.
type ControllerManager interface {
	GetConnectedControllers() []*models.GameController
	Count() int
	Pair(controllerID, robotID string) error
	Unpair(controllerID string)
	Enable(controllerID string) error
	Disable(controllerID string) error
	RefreshControllers(ctx context.Context)
	ActivateEmergencyStop(ctx context.Context)
	DeactivateEmergencyStop(ctx context.Context)
	EmergencyStopActive() bool
}

// Broadcaster pushes events to every subscribed operator dashboard.
type Broadcaster interface {
	Broadcast(eventType string, data interface{})
}
