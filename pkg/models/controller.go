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
	"fmt"
	"strings"
)

// ControllerType classifies a game controller by vendor family.
type ControllerType string

const (
	ControllerTypePlayStation ControllerType = "PlayStation"
	ControllerTypeXbox        ControllerType = "Xbox"
	ControllerTypeNintendo    ControllerType = "Nintendo"
	ControllerTypeGeneric     ControllerType = "Generic"
)

// ClassifyControllerType identifies the controller family from the device
// name reported by the driver, case-insensitive.
func ClassifyControllerType(deviceName string) ControllerType {
	name := strings.ToLower(deviceName)

	switch {
	case strings.Contains(name, "playstation"),
		strings.Contains(name, "ps4"),
		strings.Contains(name, "ps5"),
		strings.Contains(name, "dualsense"),
		strings.Contains(name, "dualshock"):
		return ControllerTypePlayStation
	case strings.Contains(name, "xbox"):
		return ControllerTypeXbox
	case strings.Contains(name, "nintendo"), strings.Contains(name, "switch"):
		return ControllerTypeNintendo
	default:
		return ControllerTypeGeneric
	}
}

// ControllerID derives a stable identity from the device name and the
// backend's instance id, so re-enumeration matches the same physical device.
func ControllerID(deviceName string, instanceID int) string {
	name := strings.NewReplacer(" ", "_", "-", "_").Replace(deviceName)
	return fmt.Sprintf("%s_%d", name, instanceID)
}

// GameController represents an attached game controller.
type GameController struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          ControllerType   `json:"type"`
	Connected     bool             `json:"connected"`
	Enabled       bool             `json:"enabled"`
	PairedRobotID string           `json:"pairedRobotId,omitempty"`
	CurrentInput  *ControllerInput `json:"-"`
}

// NewGameController creates a controller record, enabled by default.
func NewGameController(id string, controllerType ControllerType, name string) *GameController {
	return &GameController{
		ID:           id,
		Name:         name,
		Type:         controllerType,
		Connected:    true,
		Enabled:      true,
		CurrentInput: &ControllerInput{},
	}
}

// Clone returns a copy safe to hand out after the registry lock is released.
func (c *GameController) Clone() *GameController {
	clone := *c
	if c.CurrentInput != nil {
		input := *c.CurrentInput
		clone.CurrentInput = &input
	}

	return &clone
}
