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

//go:generate mockgen -destination=mock_robot.go -package=robot github.com/lancerrobotics/watchtower/pkg/robot Transmitter,StatusNotifier,DiscoveryReceiver

package robot

import (
	"context"

	"github.com/lancerrobotics/watchtower/pkg/models"
)

// Transmitter delivers command payloads and fleet-wide broadcasts to robots.
// The wire encoding is owned by the transmitter, not the registry.
type Transmitter interface {
	SendCommand(ctx context.Context, robot *models.Robot, cmd models.Command) error
	SendGameStatus(ctx context.Context, robot *models.Robot, state models.GameState) error
	BroadcastEmergencyStop(ctx context.Context, active bool) error
}

// StatusNotifier receives robot state transitions for push to operators.
// Implementations must not call back into the registry.
type StatusNotifier interface {
	RobotReceivingCommand(robotID string, receiving bool)
}

// DiscoveryReceiver yields raw discovery datagrams. An empty string means
// nothing was pending.
type DiscoveryReceiver interface {
	Receive(ctx context.Context) (string, error)
}

// DisconnectCallback is invoked, outside the registry lock, when a connected
// robot times out.
type DisconnectCallback func(robotID string)
