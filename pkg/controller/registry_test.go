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

package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/input"
	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
	"github.com/lancerrobotics/watchtower/pkg/robot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubDevice is a scriptable driver handle.
type stubDevice struct {
	mu       sync.Mutex
	name     string
	instance int
	frame    input.RawFrame
	err      error
	reads    int
	closed   bool
}

func (d *stubDevice) Name() string    { return d.name }
func (d *stubDevice) InstanceID() int { return d.instance }

func (d *stubDevice) State() (input.RawFrame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reads++

	return d.frame, d.err
}

func (d *stubDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true

	return nil
}

func (d *stubDevice) setFrame(frame input.RawFrame) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.frame = frame
}

// stubBackend serves a mutable device list.
type stubBackend struct {
	mu      sync.Mutex
	devices []Device
	err     error
}

func (b *stubBackend) Enumerate(_ context.Context) ([]Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return nil, b.err
	}

	out := make([]Device, len(b.devices))
	copy(out, b.devices)

	return out, nil
}

func (b *stubBackend) set(devices ...Device) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.devices = devices
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Ticker(_ time.Duration) Ticker {
	return &fakeTicker{ch: make(chan time.Time)}
}

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) Chan() <-chan time.Time { return t.ch }
func (*fakeTicker) Stop()                    {}

func newTestRegistry(t *testing.T) (*Registry, *MockRobotCoordinator, *stubBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	robots := NewMockRobotCoordinator(ctrl)
	backend := &stubBackend{}

	return NewRegistry(robots, backend, &fakeClock{now: time.Now()}, logger.NewTestLogger()), robots, backend
}

func TestDetectRegistersNewController(t *testing.T) {
	reg, _, backend := newTestRegistry(t)

	backend.set(&stubDevice{name: "DualSense Wireless Controller", instance: 7})
	reg.detectControllers(context.Background())

	controllers := reg.GetConnectedControllers()
	require.Len(t, controllers, 1)

	pad := controllers[0]
	assert.Equal(t, models.ControllerID("DualSense Wireless Controller", 7), pad.ID)
	assert.Equal(t, models.ControllerTypePlayStation, pad.Type)
	assert.True(t, pad.Enabled, "controllers register enabled by default")
	assert.True(t, pad.Connected)
}

func TestDetectKeepsIdentityAcrossScans(t *testing.T) {
	reg, _, backend := newTestRegistry(t)

	dev := &stubDevice{name: "Xbox Wireless Controller", instance: 2}
	backend.set(dev)

	reg.detectControllers(context.Background())
	reg.detectControllers(context.Background())

	assert.Equal(t, 1, reg.Count())
}

func TestDetectEnumerationErrorKeepsState(t *testing.T) {
	reg, _, backend := newTestRegistry(t)

	backend.set(&stubDevice{name: "Generic Pad", instance: 1})
	reg.detectControllers(context.Background())
	require.Equal(t, 1, reg.Count())

	backend.mu.Lock()
	backend.err = errors.New("driver unavailable")
	backend.mu.Unlock()

	// A failed scan is logged and skipped; it does not count as a miss.
	reg.detectControllers(context.Background())
	assert.Equal(t, 1, reg.Count())
}

func TestDebounceRemovesAfterThreeMisses(t *testing.T) {
	reg, robots, backend := newTestRegistry(t)

	dev := &stubDevice{name: "DualShock 4", instance: 3}
	padID := models.ControllerID("DualShock 4", 3)

	backend.set(dev)
	reg.detectControllers(context.Background())

	robots.EXPECT().SetPairedController("bot1", padID).Return(true)
	require.NoError(t, reg.Pair(padID, "bot1"))

	backend.set()

	// Two consecutive misses: still present, pairing intact.
	reg.detectControllers(context.Background())
	reg.detectControllers(context.Background())
	assert.Equal(t, 1, reg.Count())
	assert.Equal(t, "bot1", reg.PairedRobotID(padID))

	// Third miss crosses the threshold: removed, pairing cleared on the
	// robot side too.
	robots.EXPECT().SetPairedController("bot1", "").Return(true)
	reg.detectControllers(context.Background())

	assert.Zero(t, reg.Count())
	assert.Empty(t, reg.PairedRobotID(padID))
	assert.True(t, dev.closed)
}

func TestDebounceReobservationResetsMisses(t *testing.T) {
	reg, _, backend := newTestRegistry(t)

	dev := &stubDevice{name: "Switch Pro Controller", instance: 5}
	backend.set(dev)
	reg.detectControllers(context.Background())

	backend.set()
	reg.detectControllers(context.Background())
	reg.detectControllers(context.Background())

	// Reappearing resets the miss count; two more misses must not remove.
	backend.set(dev)
	reg.detectControllers(context.Background())

	backend.set()
	reg.detectControllers(context.Background())
	reg.detectControllers(context.Background())

	assert.Equal(t, 1, reg.Count())
}

func TestPairUnknownController(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	err := reg.Pair("ghost", "bot1")
	assert.ErrorIs(t, err, ErrControllerNotFound)
}

func TestEnableDisable(t *testing.T) {
	reg, _, backend := newTestRegistry(t)

	backend.set(&stubDevice{name: "Generic Pad", instance: 1})
	reg.detectControllers(context.Background())

	padID := models.ControllerID("Generic Pad", 1)
	require.True(t, reg.IsEnabled(padID))

	require.NoError(t, reg.Disable(padID))
	assert.False(t, reg.IsEnabled(padID))

	require.NoError(t, reg.Enable(padID))
	assert.True(t, reg.IsEnabled(padID))

	assert.ErrorIs(t, reg.Enable("ghost"), ErrControllerNotFound)
}

func TestEmergencyStopForwardsToRobots(t *testing.T) {
	reg, robots, _ := newTestRegistry(t)

	robots.EXPECT().EmergencyStopAll(gomock.Any())
	reg.ActivateEmergencyStop(context.Background())
	assert.True(t, reg.EmergencyStopActive())

	robots.EXPECT().DeactivateEmergencyStop(gomock.Any())
	reg.DeactivateEmergencyStop(context.Background())
	assert.False(t, reg.EmergencyStopActive())
}

// newPairedFixture wires a controller registry to a real robot registry so
// both sides of the pairing relation can be inspected.
func newPairedFixture(t *testing.T) (*Registry, *robot.Registry, *stubBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tx := robot.NewMockTransmitter(ctrl)
	tx.EXPECT().SendCommand(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tx.EXPECT().SendGameStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tx.EXPECT().BroadcastEmergencyStop(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	robots := robot.NewRegistry(tx, nil, nil, logger.NewTestLogger())
	backend := &stubBackend{}
	reg := NewRegistry(robots, backend, &fakeClock{now: time.Now()}, logger.NewTestLogger())

	return reg, robots, backend
}

func TestPairingConsistency(t *testing.T) {
	reg, robots, backend := newPairedFixture(t)

	robots.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")
	backend.set(&stubDevice{name: "DualSense", instance: 1})
	reg.detectControllers(context.Background())

	padID := models.ControllerID("DualSense", 1)
	require.NoError(t, reg.Pair(padID, "bot1"))

	// Both sides must agree.
	assert.Equal(t, "bot1", reg.PairedRobotID(padID))
	assert.Equal(t, padID, robots.GetRobot("bot1").PairedControllerID)

	reg.Unpair(padID)

	assert.Empty(t, reg.PairedRobotID(padID))
	assert.Empty(t, robots.GetRobot("bot1").PairedControllerID)
}

func TestPairOverwriteLeavesStaleBackRef(t *testing.T) {
	reg, robots, backend := newPairedFixture(t)

	robots.HandleDiscoveryPing("DISCOVER:botA:10.0.0.1")
	robots.HandleDiscoveryPing("DISCOVER:botB:10.0.0.2")
	backend.set(&stubDevice{name: "DualSense", instance: 1})
	reg.detectControllers(context.Background())

	padID := models.ControllerID("DualSense", 1)
	require.NoError(t, reg.Pair(padID, "botA"))
	require.NoError(t, reg.Pair(padID, "botB"))

	// Last-writer-wins on the forward map; botA's back-reference is
	// intentionally left stale.
	assert.Equal(t, "botB", reg.PairedRobotID(padID))
	assert.Equal(t, padID, robots.GetRobot("botB").PairedControllerID)
	assert.Equal(t, padID, robots.GetRobot("botA").PairedControllerID)
}

func TestControllerRemovalClearsPairingBothSides(t *testing.T) {
	reg, robots, backend := newPairedFixture(t)

	robots.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")
	backend.set(&stubDevice{name: "DualSense", instance: 1})
	reg.detectControllers(context.Background())

	padID := models.ControllerID("DualSense", 1)
	require.NoError(t, reg.Pair(padID, "bot1"))

	backend.set()
	for i := 0; i < missedScanThreshold; i++ {
		reg.detectControllers(context.Background())
	}

	assert.Zero(t, reg.Count())
	assert.Empty(t, robots.GetRobot("bot1").PairedControllerID)
}
