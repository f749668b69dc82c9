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

// Package robot tracks discovered and connected field robots: discovery ping
// handling, health timeouts, teleop gating, and the emergency-stop override.
package robot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

const (
	// RobotTimeout marks a robot disconnected after this long without a ping.
	RobotTimeout = 60 * time.Second

	sweepInterval         = 2 * time.Second
	discoveryPollInterval = 500 * time.Millisecond
)

// ErrRobotNotFound is returned when an operation references an unknown robot.
var ErrRobotNotFound = errors.New("robot not found")

// Registry owns the two disjoint robot collections. One lock guards both
// maps; locked sections never transmit or invoke observers.
type Registry struct {
	mu         sync.Mutex
	connected  map[string]*models.Robot
	discovered map[string]*models.Robot
	gameState  models.GameState
	estop      bool

	notifier            StatusNotifier
	disconnectCallbacks []DisconnectCallback

	transmitter Transmitter
	receiver    DiscoveryReceiver
	clock       Clock
	logger      logger.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewRegistry creates a robot registry. clock may be nil for the real clock;
// receiver may be nil when discovery datagrams are fed in directly.
func NewRegistry(transmitter Transmitter, receiver DiscoveryReceiver, clock Clock, log logger.Logger) *Registry {
	if clock == nil {
		clock = realClock{}
	}

	return &Registry{
		connected:   make(map[string]*models.Robot),
		discovered:  make(map[string]*models.Robot),
		gameState:   models.GameStateStandby,
		transmitter: transmitter,
		receiver:    receiver,
		clock:       clock,
		logger:      log,
		done:        make(chan struct{}),
	}
}

// SetStatusNotifier attaches the host-layer notifier. May be called after
// construction but before Start.
func (r *Registry) SetStatusNotifier(n StatusNotifier) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifier = n
}

// RegisterDisconnectCallback registers an observer invoked, outside the
// registry lock, when a connected robot times out.
func (r *Registry) RegisterDisconnectCallback(cb DisconnectCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.disconnectCallbacks = append(r.disconnectCallbacks, cb)
}

// Name implements lifecycle.Service.
func (*Registry) Name() string { return "robot-registry" }

// Start runs the discovery receive loop and the health sweep until the
// context is canceled or Stop is called.
func (r *Registry) Start(ctx context.Context) error {
	r.logger.Info().
		Dur("timeout", RobotTimeout).
		Msg("Starting robot registry")

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		r.sweepLoop(ctx)
	}()

	return r.discoveryLoop(ctx)
}

// Stop shuts the loops down and sends a final stop command to every
// connected robot.
func (r *Registry) Stop(ctx context.Context) error {
	r.closeOnce.Do(func() {
		close(r.done)
	})

	r.wg.Wait()

	for _, rb := range r.GetConnectedRobots() {
		if err := r.transmitter.SendCommand(ctx, rb, models.NewStopCommand(rb.ID)); err != nil {
			r.logger.Error().Err(err).Str("robot_id", rb.ID).Msg("Error sending shutdown stop command")
		}
	}

	r.logger.Info().Msg("Robot registry shutdown complete")

	return nil
}

// GetConnectedRobots returns copies of all connected robots.
func (r *Registry) GetConnectedRobots() []*models.Robot {
	r.mu.Lock()
	defer r.mu.Unlock()

	robots := make([]*models.Robot, 0, len(r.connected))
	for _, rb := range r.connected {
		robots = append(robots, rb.Clone())
	}

	return robots
}

// GetDiscoveredRobots returns copies of all discovered robots.
func (r *Registry) GetDiscoveredRobots() []*models.Robot {
	r.mu.Lock()
	defer r.mu.Unlock()

	robots := make([]*models.Robot, 0, len(r.discovered))
	for _, rb := range r.discovered {
		robots = append(robots, rb.Clone())
	}

	return robots
}

// GetRobot returns a copy of the robot with the given id from either
// collection, or nil if unknown.
func (r *Registry) GetRobot(id string) *models.Robot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rb := r.lookupLocked(id); rb != nil {
		return rb.Clone()
	}

	return nil
}

func (r *Registry) lookupLocked(id string) *models.Robot {
	if rb, ok := r.connected[id]; ok {
		return rb
	}

	if rb, ok := r.discovered[id]; ok {
		return rb
	}

	return nil
}

// ConnectDiscovered promotes a discovered robot to the connected collection.
// Identity, address and pairing are preserved; LastSeen is refreshed so the
// robot gets a full health window from the moment of connect.
func (r *Registry) ConnectDiscovered(id string) (*models.Robot, error) {
	r.mu.Lock()

	rb, ok := r.discovered[id]
	if !ok {
		r.mu.Unlock()
		r.logger.Warn().Str("robot_id", id).Msg("Cannot connect - robot not in discovered list")

		return nil, ErrRobotNotFound
	}

	delete(r.discovered, id)

	rb.Status = models.RobotStatusConnected
	rb.LastSeen = r.clock.Now()
	r.connected[id] = rb

	clone := rb.Clone()
	r.mu.Unlock()

	r.logger.Info().Str("robot_id", id).Str("ip", clone.IPAddress).Msg("Robot connected")

	return clone, nil
}

// RemoveRobot deletes the robot from both collections.
func (r *Registry) RemoveRobot(id string) {
	r.mu.Lock()
	_, wasConnected := r.connected[id]
	delete(r.connected, id)
	delete(r.discovered, id)
	r.mu.Unlock()

	if wasConnected {
		r.logger.Info().Str("robot_id", id).Msg("Robot removed")
	}
}

// SetPairedController updates the robot-side pairing back-reference. An
// empty controllerID clears it. Returns false for unknown robots.
func (r *Registry) SetPairedController(robotID, controllerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rb := r.lookupLocked(robotID)
	if rb == nil {
		return false
	}

	rb.PairedControllerID = controllerID

	return true
}

// SendStopCommand builds a stop command for the robot and hands it to the
// transmitter, then reports the robot as not receiving.
func (r *Registry) SendStopCommand(ctx context.Context, robotID string) {
	rb := r.GetRobot(robotID)
	if rb == nil {
		r.logger.Warn().Str("robot_id", robotID).Msg("Robot not found")
		return
	}

	if err := r.transmitter.SendCommand(ctx, rb, models.NewStopCommand(robotID)); err != nil {
		r.logger.Error().Err(err).Str("robot_id", robotID).Msg("Error sending stop command")
	}

	r.notifyReceiving(robotID, false)
}

// SendMovementCommand forwards a drive update to the robot. Dropped while
// emergency stop is active.
func (r *Registry) SendMovementCommand(ctx context.Context, robotID string, leftX, leftY, rightX, rightY float64) {
	r.mu.Lock()
	stopped := r.estop
	rb := r.lookupLocked(robotID)

	if rb != nil {
		rb = rb.Clone()
	}
	r.mu.Unlock()

	if stopped {
		r.logger.Debug().Str("robot_id", robotID).Msg("Movement dropped - emergency stop active")
		return
	}

	if rb == nil {
		r.logger.Warn().Str("robot_id", robotID).Msg("Robot not found")
		return
	}

	cmd := models.NewMovementCommand(robotID, leftX, leftY, rightX, rightY)
	if err := r.transmitter.SendCommand(ctx, rb, cmd); err != nil {
		r.logger.Error().Err(err).Str("robot_id", robotID).Msg("Error sending movement command")
		return
	}

	r.notifyReceiving(robotID, true)
}

// GameState returns the current fleet mode.
func (r *Registry) GameState() models.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.gameState
}

// StartTeleop enables teleop mode and announces it to every connected robot.
func (r *Registry) StartTeleop(ctx context.Context) {
	r.mu.Lock()
	r.gameState = models.GameStateTeleop
	robots := r.snapshotConnectedLocked()
	r.mu.Unlock()

	r.logger.Info().Msg("Teleop mode started")

	for _, rb := range robots {
		if err := r.transmitter.SendGameStatus(ctx, rb, models.GameStateTeleop); err != nil {
			r.logger.Error().Err(err).Str("robot_id", rb.ID).Msg("Error sending game status")
		}
	}
}

// StopTeleop returns the fleet to standby: every connected robot gets a
// standby status, a stop command, and a receiving=false notification.
func (r *Registry) StopTeleop(ctx context.Context) {
	r.mu.Lock()
	r.gameState = models.GameStateStandby
	robots := r.snapshotConnectedLocked()
	r.mu.Unlock()

	r.logger.Info().Msg("Teleop mode stopped")

	for _, rb := range robots {
		if err := r.transmitter.SendGameStatus(ctx, rb, models.GameStateStandby); err != nil {
			r.logger.Error().Err(err).Str("robot_id", rb.ID).Msg("Error sending game status")
		}

		if err := r.transmitter.SendCommand(ctx, rb, models.NewStopCommand(rb.ID)); err != nil {
			r.logger.Error().Err(err).Str("robot_id", rb.ID).Msg("Error sending stop command")
		}

		r.notifyReceiving(rb.ID, false)
	}
}

// EmergencyStopActive reports the robot-side emergency-stop mirror.
func (r *Registry) EmergencyStopActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.estop
}

// EmergencyStopAll raises the emergency-stop flag, requests a fleet-wide
// stop broadcast, and marks every connected robot as not receiving.
func (r *Registry) EmergencyStopAll(ctx context.Context) {
	r.mu.Lock()
	r.estop = true
	robots := r.snapshotConnectedLocked()
	r.mu.Unlock()

	r.logger.Warn().Msg("Emergency stop activated for all robots")

	if err := r.transmitter.BroadcastEmergencyStop(ctx, true); err != nil {
		r.logger.Error().Err(err).Msg("Error broadcasting emergency stop")
	}

	for _, rb := range robots {
		r.notifyReceiving(rb.ID, false)
	}
}

// DeactivateEmergencyStop clears the flag and broadcasts resume. Robots are
// not marked receiving again; that happens only when a controller actively
// resumes sending movement.
func (r *Registry) DeactivateEmergencyStop(ctx context.Context) {
	r.mu.Lock()
	r.estop = false
	r.mu.Unlock()

	r.logger.Info().Msg("Emergency stop deactivated")

	if err := r.transmitter.BroadcastEmergencyStop(ctx, false); err != nil {
		r.logger.Error().Err(err).Msg("Error broadcasting emergency stop release")
	}
}

func (r *Registry) snapshotConnectedLocked() []*models.Robot {
	robots := make([]*models.Robot, 0, len(r.connected))
	for _, rb := range r.connected {
		robots = append(robots, rb.Clone())
	}

	return robots
}

func (r *Registry) notifyReceiving(robotID string, receiving bool) {
	r.mu.Lock()
	n := r.notifier
	r.mu.Unlock()

	if n != nil {
		n.RobotReceivingCommand(robotID, receiving)
	}
}
