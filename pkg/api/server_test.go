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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serverFixture struct {
	server      *APIServer
	robots      *MockRobotManager
	controllers *MockControllerManager
	timer       *MatchTimer
	broadcaster *MockBroadcaster
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	robots := NewMockRobotManager(ctrl)
	controllers := NewMockControllerManager(ctrl)
	broadcaster := NewMockBroadcaster(ctrl)

	clock := &fakeClock{now: time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)}
	timer := NewMatchTimer(robots, controllers, broadcaster, 120, clock, logger.NewTestLogger())

	server := NewAPIServer(":0", models.CORSConfig{}, logger.NewTestLogger(),
		WithRobotManager(robots),
		WithControllerManager(controllers),
		WithMatchTimer(timer),
	)

	return &serverFixture{
		server:      server,
		robots:      robots,
		controllers: controllers,
		timer:       timer,
		broadcaster: broadcaster,
	}
}

func (f *serverFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	return rec
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp["status"])
	assert.NotZero(t, resp["timestamp"])
}

func TestGetRobotsMergesWithoutDuplicates(t *testing.T) {
	f := newServerFixture(t)

	connected := models.NewRobot("bot1", "bot1", "10.0.0.1", models.RobotStatusConnected)
	duplicate := models.NewRobot("bot1", "bot1", "10.0.0.1", models.RobotStatusDiscovered)
	discovered := models.NewRobot("bot2", "bot2", "10.0.0.2", models.RobotStatusDiscovered)

	f.robots.EXPECT().GetConnectedRobots().Return([]*models.Robot{connected})
	f.robots.EXPECT().GetDiscoveredRobots().Return([]*models.Robot{duplicate, discovered})

	rec := f.do(t, http.MethodGet, "/api/robots", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var robots []*models.Robot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &robots))
	require.Len(t, robots, 2)
	assert.Equal(t, "bot1", robots[0].ID)
	assert.Equal(t, models.RobotStatusConnected, robots[0].Status)
	assert.Equal(t, "bot2", robots[1].ID)
}

func TestGetRobotNotFound(t *testing.T) {
	f := newServerFixture(t)

	f.robots.EXPECT().GetRobot("ghost").Return(nil)

	rec := f.do(t, http.MethodGet, "/api/robots/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConnectRobot(t *testing.T) {
	f := newServerFixture(t)

	bot := models.NewRobot("bot1", "bot1", "10.0.0.1", models.RobotStatusConnected)
	f.robots.EXPECT().ConnectDiscovered("bot1").Return(bot, nil)

	rec := f.do(t, http.MethodPost, "/api/robots/bot1/connect", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Robot)
	assert.Equal(t, "bot1", resp.Robot.ID)
}

func TestDisconnectRobotStopsFirst(t *testing.T) {
	f := newServerFixture(t)

	bot := models.NewRobot("bot1", "bot1", "10.0.0.1", models.RobotStatusConnected)
	f.robots.EXPECT().GetRobot("bot1").Return(bot)

	gomock.InOrder(
		f.robots.EXPECT().SendStopCommand(gomock.Any(), "bot1"),
		f.robots.EXPECT().RemoveRobot("bot1"),
	)

	rec := f.do(t, http.MethodPost, "/api/robots/bot1/disconnect", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPairController(t *testing.T) {
	f := newServerFixture(t)

	f.controllers.EXPECT().Pair("pad1", "bot1").Return(nil)

	rec := f.do(t, http.MethodPost, "/api/controllers/pad1/pair/bot1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPairUnknownControllerIs404(t *testing.T) {
	f := newServerFixture(t)

	f.controllers.EXPECT().Pair("ghost", "bot1").Return(assert.AnError)

	rec := f.do(t, http.MethodPost, "/api/controllers/ghost/pair/bot1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmergencyStopEndpoints(t *testing.T) {
	f := newServerFixture(t)

	f.controllers.EXPECT().ActivateEmergencyStop(gomock.Any())
	rec := f.do(t, http.MethodPost, "/api/emergency-stop", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	f.controllers.EXPECT().DeactivateEmergencyStop(gomock.Any())
	rec = f.do(t, http.MethodPost, "/api/emergency-stop/deactivate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMatchTimer(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/match/timer", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap TimerSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.False(t, snap.Running)
	assert.Equal(t, int64(120000), snap.DurationMs)
}

func TestStartMatchEndpoint(t *testing.T) {
	f := newServerFixture(t)

	f.robots.EXPECT().StartTeleop(gomock.Any())
	f.broadcaster.EXPECT().Broadcast(models.EventMatchStart, gomock.Any())

	rec := f.do(t, http.MethodPost, "/api/match/start", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.timer.Snapshot().Running)
}

func TestSetMatchDuration(t *testing.T) {
	f := newServerFixture(t)

	f.broadcaster.EXPECT().Broadcast(models.EventMatchDurationChanged, gomock.Any())
	f.broadcaster.EXPECT().Broadcast(models.EventTimerUpdate, gomock.Any())

	rec := f.do(t, http.MethodPost, "/api/match/duration", "90")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(90000), resp["durationMs"])
}

func TestSetMatchDurationRejectsGarbage(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/match/duration", "soon")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/match/duration", "-5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodOptions, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
