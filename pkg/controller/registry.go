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

// Package controller tracks attached game controllers: debounced presence,
// controller-robot pairing, enable flags, and the input dispatch loop.
package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

const (
	scanInterval     = 2 * time.Second
	dispatchInterval = 16 * time.Millisecond
)

// ErrControllerNotFound is returned when an operation references an unknown
// controller.
var ErrControllerNotFound = errors.New("controller not found")

// trackedController couples the controller record with its driver handle and
// presence state.
type trackedController struct {
	model    *models.GameController
	device   Device
	presence presence
}

// Registry owns the attached-controller map under one lock. Locked sections
// never call into the robot registry or read device state.
type Registry struct {
	mu          sync.Mutex
	controllers map[string]*trackedController
	pairings    map[string]string
	estop       bool

	robots  RobotCoordinator
	backend DeviceBackend
	clock   Clock
	logger  logger.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewRegistry creates a controller registry. clock may be nil for the real
// clock.
func NewRegistry(robots RobotCoordinator, backend DeviceBackend, clock Clock, log logger.Logger) *Registry {
	if clock == nil {
		clock = realClock{}
	}

	return &Registry{
		controllers: make(map[string]*trackedController),
		pairings:    make(map[string]string),
		robots:      robots,
		backend:     backend,
		clock:       clock,
		logger:      log,
		done:        make(chan struct{}),
	}
}

// Name implements lifecycle.Service.
func (*Registry) Name() string { return "controller-registry" }

// Start runs the detection scan and the dispatch loop until the context is
// canceled or Stop is called.
func (r *Registry) Start(ctx context.Context) error {
	r.logger.Info().Msg("Starting controller registry")

	r.detectControllers(ctx)

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		r.detectionLoop(ctx)
	}()

	return r.dispatchLoop(ctx)
}

// Stop shuts the loops down and releases all driver handles.
func (r *Registry) Stop(_ context.Context) error {
	r.closeOnce.Do(func() {
		close(r.done)
	})

	r.wg.Wait()

	r.mu.Lock()
	devices := make([]Device, 0, len(r.controllers))

	for _, tc := range r.controllers {
		if tc.device != nil {
			devices = append(devices, tc.device)
		}
	}
	r.mu.Unlock()

	for _, dev := range devices {
		if err := dev.Close(); err != nil {
			r.logger.Debug().Err(err).Msg("Error closing device")
		}
	}

	r.logger.Info().Msg("Controller registry shutdown complete")

	return nil
}

// detectionLoop re-enumerates attached devices every scanInterval.
func (r *Registry) detectionLoop(ctx context.Context) {
	ticker := r.clock.Ticker(scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.Chan():
			r.detectControllers(ctx)
		}
	}
}

// detectControllers runs one enumeration scan: new devices are registered
// enabled by default, tracked devices refresh their presence, and devices
// missing for missedScanThreshold consecutive scans are removed with their
// pairing cleared on both sides.
func (r *Registry) detectControllers(ctx context.Context) {
	devices, err := r.backend.Enumerate(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error detecting controllers")
		return
	}

	observed := make(map[string]Device, len(devices))
	for _, dev := range devices {
		observed[models.ControllerID(dev.Name(), dev.InstanceID())] = dev
	}

	var (
		removedDevices []Device
		staleRobots    []string
	)

	r.mu.Lock()

	for id, dev := range observed {
		if tc, ok := r.controllers[id]; ok {
			tc.presence.observe()
			tc.device = dev

			continue
		}

		controllerType := models.ClassifyControllerType(dev.Name())
		r.controllers[id] = &trackedController{
			model:  models.NewGameController(id, controllerType, dev.Name()),
			device: dev,
		}

		r.logger.Info().
			Str("controller_id", id).
			Str("name", dev.Name()).
			Str("type", string(controllerType)).
			Msg("Detected new controller")
	}

	for id, tc := range r.controllers {
		if _, ok := observed[id]; ok {
			continue
		}

		if !tc.presence.miss() {
			// Debounce: keep the controller to absorb transient
			// enumeration flakiness.
			continue
		}

		if robotID, paired := r.pairings[id]; paired {
			delete(r.pairings, id)
			staleRobots = append(staleRobots, robotID)
		}

		delete(r.controllers, id)

		if tc.device != nil {
			removedDevices = append(removedDevices, tc.device)
		}

		r.logger.Info().Str("controller_id", id).Msg("Controller disconnected")
	}

	r.mu.Unlock()

	for _, robotID := range staleRobots {
		r.robots.SetPairedController(robotID, "")
	}

	for _, dev := range removedDevices {
		if err := dev.Close(); err != nil {
			r.logger.Debug().Err(err).Msg("Error closing removed device")
		}
	}
}

// RefreshControllers triggers one detection scan outside the periodic
// schedule.
func (r *Registry) RefreshControllers(ctx context.Context) {
	r.logger.Info().Msg("Manual controller refresh requested")
	r.detectControllers(ctx)
}

// GetConnectedControllers returns copies of all tracked controllers.
func (r *Registry) GetConnectedControllers() []*models.GameController {
	r.mu.Lock()
	defer r.mu.Unlock()

	controllers := make([]*models.GameController, 0, len(r.controllers))
	for _, tc := range r.controllers {
		controllers = append(controllers, tc.model.Clone())
	}

	return controllers
}

// Count returns the number of tracked controllers.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.controllers)
}

// Pair links the controller to the robot, last-writer-wins. The previous
// robot's back-reference is deliberately left untouched when re-pairing.
func (r *Registry) Pair(controllerID, robotID string) error {
	r.mu.Lock()

	tc, ok := r.controllers[controllerID]
	if !ok {
		r.mu.Unlock()
		r.logger.Warn().Str("controller_id", controllerID).Msg("Cannot pair - controller not found")

		return ErrControllerNotFound
	}

	tc.model.PairedRobotID = robotID
	r.pairings[controllerID] = robotID
	r.mu.Unlock()

	r.robots.SetPairedController(robotID, controllerID)

	r.logger.Info().
		Str("controller_id", controllerID).
		Str("robot_id", robotID).
		Msg("Paired controller with robot")

	return nil
}

// Unpair clears the pairing on both sides. Unknown or unpaired controllers
// are a no-op.
func (r *Registry) Unpair(controllerID string) {
	r.mu.Lock()

	robotID, ok := r.pairings[controllerID]
	if !ok {
		r.mu.Unlock()
		return
	}

	delete(r.pairings, controllerID)

	if tc, tracked := r.controllers[controllerID]; tracked {
		tc.model.PairedRobotID = ""
	}
	r.mu.Unlock()

	r.robots.SetPairedController(robotID, "")

	r.logger.Info().Str("controller_id", controllerID).Msg("Unpaired controller")
}

// PairedRobotID returns the forward pairing for the controller, or "".
func (r *Registry) PairedRobotID(controllerID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pairings[controllerID]
}

// Enable allows the controller to dispatch commands. Detection and presence
// are unaffected by the flag.
func (r *Registry) Enable(controllerID string) error {
	return r.setEnabled(controllerID, true)
}

// Disable gates the controller out of dispatch.
func (r *Registry) Disable(controllerID string) error {
	return r.setEnabled(controllerID, false)
}

func (r *Registry) setEnabled(controllerID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tc, ok := r.controllers[controllerID]
	if !ok {
		r.logger.Warn().Str("controller_id", controllerID).Msg("Controller not found")
		return ErrControllerNotFound
	}

	tc.model.Enabled = enabled
	r.logger.Info().Str("controller_id", controllerID).Bool("enabled", enabled).Msg("Controller enable flag changed")

	return nil
}

// IsEnabled reports the controller's enable flag; unknown ids read false.
func (r *Registry) IsEnabled(controllerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tc, ok := r.controllers[controllerID]

	return ok && tc.model.Enabled
}

// EmergencyStopActive reports the controller-side emergency-stop mirror.
func (r *Registry) EmergencyStopActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.estop
}

// ActivateEmergencyStop is the authoritative emergency-stop entry point: it
// raises the local mirror, then forwards to the robot registry so both
// mirrors agree.
func (r *Registry) ActivateEmergencyStop(ctx context.Context) {
	r.mu.Lock()
	r.estop = true
	r.mu.Unlock()

	r.robots.EmergencyStopAll(ctx)
	r.logger.Warn().Msg("Emergency stop activated")
}

// DeactivateEmergencyStop clears both mirrors.
func (r *Registry) DeactivateEmergencyStop(ctx context.Context) {
	r.mu.Lock()
	r.estop = false
	r.mu.Unlock()

	r.robots.DeactivateEmergencyStop(ctx)
	r.logger.Info().Msg("Emergency stop deactivated")
}
