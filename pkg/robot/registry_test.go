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

package robot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeClock is a settable clock for driving timeouts without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func (c *fakeClock) Ticker(_ time.Duration) Ticker {
	return &fakeTicker{ch: make(chan time.Time)}
}

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) Chan() <-chan time.Time { return t.ch }
func (*fakeTicker) Stop()                    {}

func newTestRegistry(t *testing.T) (*Registry, *MockTransmitter, *fakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tx := NewMockTransmitter(ctrl)
	clock := newFakeClock()

	return NewRegistry(tx, nil, clock, logger.NewTestLogger()), tx, clock
}

func TestHandleDiscoveryPingCreatesDiscovered(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")

	discovered := reg.GetDiscoveredRobots()
	require.Len(t, discovered, 1)
	assert.Equal(t, "bot1", discovered[0].ID)
	assert.Equal(t, "192.168.1.5", discovered[0].IPAddress)
	assert.Equal(t, models.RobotStatusDiscovered, discovered[0].Status)
	assert.Empty(t, reg.GetConnectedRobots())
}

func TestHandleDiscoveryPingRefreshesExisting(t *testing.T) {
	reg, _, clock := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	clock.Advance(10 * time.Second)
	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.9")

	discovered := reg.GetDiscoveredRobots()
	require.Len(t, discovered, 1)
	assert.Equal(t, "192.168.1.9", discovered[0].IPAddress)
	assert.Equal(t, clock.Now(), discovered[0].LastSeen)
}

func TestHandleDiscoveryPingMalformed(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	for _, msg := range []string{
		"DISCOVER:bot1",
		"HELLO:bot1:192.168.1.5",
		"discover:bot1:192.168.1.5",
		"garbage",
		"",
	} {
		reg.HandleDiscoveryPing(msg)
	}

	assert.Empty(t, reg.GetDiscoveredRobots())
	assert.Empty(t, reg.GetConnectedRobots())
}

func TestHandleDiscoveryPingHeartbeatForConnected(t *testing.T) {
	reg, _, clock := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.7")

	// Connection status is sticky: the ping refreshes the connected record
	// and must not resurrect a discovered entry.
	assert.Empty(t, reg.GetDiscoveredRobots())

	connected := reg.GetConnectedRobots()
	require.Len(t, connected, 1)
	assert.Equal(t, "192.168.1.7", connected[0].IPAddress)
	assert.Equal(t, clock.Now(), connected[0].LastSeen)
}

func TestConnectDiscoveredPromotes(t *testing.T) {
	reg, _, clock := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	clock.Advance(5 * time.Second)

	rb, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	assert.Equal(t, models.RobotStatusConnected, rb.Status)
	assert.Equal(t, "192.168.1.5", rb.IPAddress)
	assert.Equal(t, clock.Now(), rb.LastSeen, "connect refreshes the health window")

	// The id must live in exactly one collection.
	assert.Empty(t, reg.GetDiscoveredRobots())
	assert.Len(t, reg.GetConnectedRobots(), 1)
}

func TestConnectDiscoveredUnknown(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	_, err := reg.ConnectDiscovered("ghost")
	assert.ErrorIs(t, err, ErrRobotNotFound)
}

func TestRemoveRobot(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	reg.RemoveRobot("bot1")

	assert.Nil(t, reg.GetRobot("bot1"))
	assert.Empty(t, reg.GetConnectedRobots())
}

func TestSendStopCommand(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")

	var sent models.Command

	tx.EXPECT().
		SendCommand(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Robot, cmd models.Command) error {
			sent = cmd
			return nil
		})

	ctrl := gomock.NewController(t)
	notifier := NewMockStatusNotifier(ctrl)
	notifier.EXPECT().RobotReceivingCommand("bot1", false)
	reg.SetStatusNotifier(notifier)

	reg.SendStopCommand(context.Background(), "bot1")

	require.NotNil(t, sent)
	assert.Equal(t, models.CommandTypeStop, sent.Type())
	assert.Equal(t, "bot1", sent.RobotID())
}

func TestSendStopCommandUnknownRobot(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	// No transmitter expectations: an unknown id is a warning no-op.
	reg.SendStopCommand(context.Background(), "ghost")
}

func TestSendMovementCommand(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	var sent models.Command

	tx.EXPECT().
		SendCommand(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Robot, cmd models.Command) error {
			sent = cmd
			return nil
		})

	reg.SendMovementCommand(context.Background(), "bot1", 0.5, 0, 0, 0)

	move, ok := sent.(*models.MovementCommand)
	require.True(t, ok)
	assert.InDelta(t, 0.5, move.LeftX, 1e-9)
	assert.Zero(t, move.LeftY)
}

func TestSendMovementCommandDroppedDuringEmergencyStop(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:192.168.1.5")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	tx.EXPECT().BroadcastEmergencyStop(gomock.Any(), true).Return(nil)
	reg.EmergencyStopAll(context.Background())

	// No SendCommand expectation: movement must be dropped entirely.
	reg.SendMovementCommand(context.Background(), "bot1", 1, 1, 1, 1)
}

func TestStopTeleopBroadcastsStandbyAndStops(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	for _, msg := range []string{"DISCOVER:bot1:10.0.0.1", "DISCOVER:bot2:10.0.0.2"} {
		reg.HandleDiscoveryPing(msg)
	}

	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)
	_, err = reg.ConnectDiscovered("bot2")
	require.NoError(t, err)

	tx.EXPECT().SendGameStatus(gomock.Any(), gomock.Any(), models.GameStateStandby).Return(nil).Times(2)
	tx.EXPECT().
		SendCommand(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(&models.StopCommand{})).
		Return(nil).
		Times(2)

	ctrl := gomock.NewController(t)
	notifier := NewMockStatusNotifier(ctrl)
	notifier.EXPECT().RobotReceivingCommand(gomock.Any(), false).Times(2)
	reg.SetStatusNotifier(notifier)

	reg.StopTeleop(context.Background())
	assert.Equal(t, models.GameStateStandby, reg.GameState())
}

func TestStartTeleop(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	tx.EXPECT().SendGameStatus(gomock.Any(), gomock.Any(), models.GameStateTeleop).Return(nil)

	reg.StartTeleop(context.Background())
	assert.Equal(t, models.GameStateTeleop, reg.GameState())
}

func TestEmergencyStopAll(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	tx.EXPECT().BroadcastEmergencyStop(gomock.Any(), true).Return(nil)

	ctrl := gomock.NewController(t)
	notifier := NewMockStatusNotifier(ctrl)
	notifier.EXPECT().RobotReceivingCommand("bot1", false)
	reg.SetStatusNotifier(notifier)

	reg.EmergencyStopAll(context.Background())
	assert.True(t, reg.EmergencyStopActive())
}

func TestDeactivateEmergencyStopDoesNotMarkReceiving(t *testing.T) {
	reg, tx, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")
	_, err := reg.ConnectDiscovered("bot1")
	require.NoError(t, err)

	tx.EXPECT().BroadcastEmergencyStop(gomock.Any(), true).Return(nil)
	tx.EXPECT().BroadcastEmergencyStop(gomock.Any(), false).Return(nil)

	reg.EmergencyStopAll(context.Background())

	// Attach a strict notifier only for the deactivation: robots become
	// receiving again only when a controller resumes movement, so no
	// notification may fire here.
	ctrl := gomock.NewController(t)
	reg.SetStatusNotifier(NewMockStatusNotifier(ctrl))

	reg.DeactivateEmergencyStop(context.Background())
	assert.False(t, reg.EmergencyStopActive())
}

func TestSetPairedController(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")

	require.True(t, reg.SetPairedController("bot1", "pad1"))
	assert.Equal(t, "pad1", reg.GetRobot("bot1").PairedControllerID)

	require.True(t, reg.SetPairedController("bot1", ""))
	assert.Empty(t, reg.GetRobot("bot1").PairedControllerID)

	assert.False(t, reg.SetPairedController("ghost", "pad1"))
}

func TestGetRobotReturnsCopy(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.HandleDiscoveryPing("DISCOVER:bot1:10.0.0.1")

	rb := reg.GetRobot("bot1")
	rb.IPAddress = "tampered"

	assert.Equal(t, "10.0.0.1", reg.GetRobot("bot1").IPAddress)
}
