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

package api

import (
	"context"
	"sync"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

const (
	timerBroadcastInterval   = 1 * time.Second
	controllerMonitorPeriod  = 2 * time.Second
	millisecondsPerSecond    = 1000
	defaultMatchDurationSecs = 120
)

// MatchTimer runs timed teleop matches. Starting a match puts the fleet into
// teleop; expiry stops teleop and raises emergency stop so no robot keeps
// driving past the buzzer.
type MatchTimer struct {
	mu         sync.Mutex
	durationMs int64
	startedAt  time.Time
	running    bool

	lastControllerCount int

	robots      RobotManager
	controllers ControllerManager
	broadcaster Broadcaster
	clock       Clock
	logger      logger.Logger

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// TimerSnapshot is the wire form of the timer state.
type TimerSnapshot struct {
	Running              bool  `json:"running"`
	TimeRemainingMs      int64 `json:"timeRemainingMs"`
	DurationMs           int64 `json:"durationMs"`
	TimeRemainingSeconds int64 `json:"timeRemainingSeconds"`
}

// NewMatchTimer creates a match timer. durationSeconds <= 0 selects the
// default match length; clock may be nil for the real clock.
func NewMatchTimer(
	robots RobotManager,
	controllers ControllerManager,
	broadcaster Broadcaster,
	durationSeconds int,
	clock Clock,
	log logger.Logger,
) *MatchTimer {
	if durationSeconds <= 0 {
		durationSeconds = defaultMatchDurationSecs
	}

	if clock == nil {
		clock = realClock{}
	}

	return &MatchTimer{
		durationMs:  int64(durationSeconds) * millisecondsPerSecond,
		robots:      robots,
		controllers: controllers,
		broadcaster: broadcaster,
		clock:       clock,
		logger:      log,
		done:        make(chan struct{}),
	}
}

// Name implements lifecycle.Service.
func (*MatchTimer) Name() string { return "match-timer" }

// Start runs the timer broadcast loop and the controller-count monitor until
// the context is canceled or Stop is called.
func (m *MatchTimer) Start(ctx context.Context) error {
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		m.monitorControllers(ctx)
	}()

	ticker := m.clock.Ticker(timerBroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case <-ticker.Chan():
			m.tick(ctx)
		}
	}
}

// Stop shuts the loops down.
func (m *MatchTimer) Stop(_ context.Context) error {
	m.closeOnce.Do(func() {
		close(m.done)
	})

	m.wg.Wait()

	return nil
}

// StartMatch begins a match if one is not already running.
func (m *MatchTimer) StartMatch(ctx context.Context) {
	m.mu.Lock()

	if m.running {
		m.mu.Unlock()
		return
	}

	m.running = true
	m.startedAt = m.clock.Now()
	durationMs := m.durationMs
	m.mu.Unlock()

	m.robots.StartTeleop(ctx)

	m.logger.Info().Int64("duration_s", durationMs/millisecondsPerSecond).Msg("Match started")

	m.broadcaster.Broadcast(models.EventMatchStart, map[string]interface{}{
		"durationMs": durationMs,
		"timestamp":  m.clock.Now().UnixMilli(),
	})
}

// StopMatch halts a running match and returns the fleet to standby.
func (m *MatchTimer) StopMatch(ctx context.Context) {
	m.mu.Lock()

	if !m.running {
		m.mu.Unlock()
		return
	}

	m.running = false
	m.mu.Unlock()

	m.robots.StopTeleop(ctx)

	m.logger.Info().Msg("Match stopped")
	m.broadcaster.Broadcast(models.EventMatchStop, map[string]interface{}{
		"timestamp": m.clock.Now().UnixMilli(),
	})
}

// ResetMatch stops the match and clears the start time unconditionally.
func (m *MatchTimer) ResetMatch(ctx context.Context) {
	m.mu.Lock()
	m.running = false
	m.startedAt = time.Time{}
	m.mu.Unlock()

	m.robots.StopTeleop(ctx)

	m.logger.Info().Msg("Match reset")
	m.broadcaster.Broadcast(models.EventMatchReset, map[string]interface{}{
		"timestamp": m.clock.Now().UnixMilli(),
	})
}

// SetDuration changes the match length. A running match keeps its original
// start time.
func (m *MatchTimer) SetDuration(seconds int) int64 {
	m.mu.Lock()
	m.durationMs = int64(seconds) * millisecondsPerSecond

	if !m.running {
		m.startedAt = time.Time{}
	}

	durationMs := m.durationMs
	m.mu.Unlock()

	m.logger.Info().Int("duration_s", seconds).Msg("Match duration changed")

	m.broadcaster.Broadcast(models.EventMatchDurationChanged, map[string]interface{}{
		"durationMs": durationMs,
	})
	m.broadcaster.Broadcast(models.EventTimerUpdate, m.Snapshot())

	return durationMs
}

// Snapshot reports the current timer state.
func (m *MatchTimer) Snapshot() TimerSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked()
}

func (m *MatchTimer) snapshotLocked() TimerSnapshot {
	remaining := m.durationMs
	if m.running {
		elapsed := m.clock.Now().Sub(m.startedAt).Milliseconds()

		remaining = m.durationMs - elapsed
		if remaining < 0 {
			remaining = 0
		}
	}

	return TimerSnapshot{
		Running:              m.running,
		TimeRemainingMs:      remaining,
		DurationMs:           m.durationMs,
		TimeRemainingSeconds: remaining / millisecondsPerSecond,
	}
}

// tick broadcasts the countdown once per second while a match runs. When the
// clock hits zero the match ends, teleop stops, and emergency stop engages.
func (m *MatchTimer) tick(ctx context.Context) {
	m.mu.Lock()

	if !m.running {
		m.mu.Unlock()
		return
	}

	snap := m.snapshotLocked()

	expired := snap.TimeRemainingMs == 0
	if expired {
		m.running = false
		snap.Running = false
	}
	m.mu.Unlock()

	if expired {
		m.robots.StopTeleop(ctx)
		m.controllers.ActivateEmergencyStop(ctx)

		m.logger.Warn().Msg("Match ended - time expired - emergency stop activated")

		m.broadcaster.Broadcast(models.EventMatchEnd, map[string]interface{}{
			"timestamp": m.clock.Now().UnixMilli(),
		})
		m.broadcaster.Broadcast(models.EventEmergencyStop, map[string]interface{}{
			"active": true,
		})
	}

	m.broadcaster.Broadcast(models.EventTimerUpdate, snap)
}

// monitorControllers broadcasts controllers_updated whenever the attached
// controller count changes.
func (m *MatchTimer) monitorControllers(ctx context.Context) {
	ticker := m.clock.Ticker(controllerMonitorPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.Chan():
			m.checkControllerCount()
		}
	}
}

func (m *MatchTimer) checkControllerCount() {
	count := m.controllers.Count()

	m.mu.Lock()
	changed := count != m.lastControllerCount
	m.lastControllerCount = count
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Debug().Int("count", count).Msg("Controller count changed")

	m.broadcaster.Broadcast(models.EventControllersUpdated, map[string]interface{}{
		"count":     count,
		"timestamp": m.clock.Now().UnixMilli(),
	})
}
