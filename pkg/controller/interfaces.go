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

//go:generate mockgen -destination=mock_controller.go -package=controller github.com/lancerrobotics/watchtower/pkg/controller Device,DeviceBackend,RobotCoordinator

package controller

import (
	"context"

	"github.com/lancerrobotics/watchtower/pkg/input"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

// Device is one attached game controller as exposed by the driver binding.
type Device interface {
	// Name is the device name reported by the driver.
	Name() string
	// InstanceID is the driver's stable instance number for this device.
	InstanceID() int
	// State reads the current raw frame. Errors are per-device and must not
	// abort polling of other devices.
	State() (input.RawFrame, error)
	// Close releases the driver handle.
	Close() error
}

// DeviceBackend enumerates attached devices. A device that fails to
// initialize is omitted from the result rather than failing the scan.
type DeviceBackend interface {
	Enumerate(ctx context.Context) ([]Device, error)
}

// RobotCoordinator is the slice of the robot registry the controller side
// drives: pairing back-references, command dispatch, and the emergency-stop
// forward path. Calls are made with no controller-registry lock held.
type RobotCoordinator interface {
	GetRobot(id string) *models.Robot
	SetPairedController(robotID, controllerID string) bool
	SendMovementCommand(ctx context.Context, robotID string, leftX, leftY, rightX, rightY float64)
	SendStopCommand(ctx context.Context, robotID string)
	EmergencyStopAll(ctx context.Context)
	DeactivateEmergencyStop(ctx context.Context)
}
