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

// Package api provides the HTTP control surface and websocket push channel
// for operator dashboards.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	shutdownGrace = 5 * time.Second
)

// APIServer exposes the fleet over REST and websocket.
type APIServer struct {
	listenAddr string
	router     *mux.Router
	corsConfig models.CORSConfig

	robots      RobotManager
	controllers ControllerManager
	match       *MatchTimer
	hub         *Hub

	httpServer *http.Server
	logger     logger.Logger
}

// NewAPIServer creates an API server with the given configuration.
func NewAPIServer(listenAddr string, corsConfig models.CORSConfig, log logger.Logger, options ...func(*APIServer)) *APIServer {
	s := &APIServer{
		listenAddr: listenAddr,
		router:     mux.NewRouter(),
		corsConfig: corsConfig,
		logger:     log,
	}

	for _, o := range options {
		o(s)
	}

	s.setupRoutes()

	return s
}

// WithRobotManager wires the robot registry into the server.
func WithRobotManager(r RobotManager) func(*APIServer) {
	return func(server *APIServer) {
		server.robots = r
	}
}

// WithControllerManager wires the controller registry into the server.
func WithControllerManager(c ControllerManager) func(*APIServer) {
	return func(server *APIServer) {
		server.controllers = c
	}
}

// WithMatchTimer wires the match timer into the server.
func WithMatchTimer(m *MatchTimer) func(*APIServer) {
	return func(server *APIServer) {
		server.match = m
	}
}

// WithHub wires the websocket hub into the server.
func WithHub(h *Hub) func(*APIServer) {
	return func(server *APIServer) {
		server.hub = h
	}
}

// Router exposes the route table, primarily for tests.
func (s *APIServer) Router() http.Handler { return s.router }

// Name implements lifecycle.Service.
func (*APIServer) Name() string { return "api-server" }

// Start serves HTTP until the context is canceled.
func (s *APIServer) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	s.logger.Info().Str("addr", s.listenAddr).Msg("Starting API server")

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}

// Stop drains in-flight requests and closes websocket clients.
func (s *APIServer) Stop(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}

	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *APIServer) setupRoutes() {
	s.router.Use(s.corsMiddleware)

	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)

	s.router.HandleFunc("/api/robots", s.handleGetRobots).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/robots/refresh", s.handleRefreshRobots).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/robots/{id}", s.handleGetRobot).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/robots/{id}/connect", s.handleConnectRobot).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/robots/{id}/disconnect", s.handleDisconnectRobot).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/robots/{id}/enable", s.handleEnableRobot).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/robots/{id}/disable", s.handleDisableRobot).Methods(http.MethodPost, http.MethodOptions)

	s.router.HandleFunc("/api/controllers", s.handleGetControllers).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/controllers/refresh", s.handleRefreshControllers).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/controllers/{id}/pair/{robotId}", s.handlePairController).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/controllers/{id}/unpair", s.handleUnpairController).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/controllers/{id}/enable", s.handleEnableController).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/controllers/{id}/disable", s.handleDisableController).Methods(http.MethodPost, http.MethodOptions)

	s.router.HandleFunc("/api/emergency-stop", s.handleEmergencyStop).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/emergency-stop/deactivate", s.handleDeactivateEmergencyStop).Methods(http.MethodPost, http.MethodOptions)

	s.router.HandleFunc("/api/network/stats", s.handleNetworkStats).Methods(http.MethodGet, http.MethodOptions)

	s.router.HandleFunc("/api/match/timer", s.handleGetMatchTimer).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/match/start", s.handleStartMatch).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/match/stop", s.handleStopMatch).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/match/reset", s.handleResetMatch).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/match/duration", s.handleSetMatchDuration).Methods(http.MethodPost, http.MethodOptions)

	if s.hub != nil {
		s.router.HandleFunc("/api/ws", s.hub.HandleWebSocket)
	}
}

func (s *APIServer) corsMiddleware(next http.Handler) http.Handler {
	origins := "*"
	if len(s.corsConfig.AllowedOrigins) > 0 {
		origins = strings.Join(s.corsConfig.AllowedOrigins, ", ")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if s.corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Robot   *models.Robot `json:"robot,omitempty"`
}

func (s *APIServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.encodeJSONResponse(w, map[string]interface{}{
		"status":    "online",
		"timestamp": time.Now().UnixMilli(),
	})
}

// handleGetRobots merges connected and discovered robots, connected first;
// a robot never appears twice.
func (s *APIServer) handleGetRobots(w http.ResponseWriter, _ *http.Request) {
	connected := s.robots.GetConnectedRobots()

	seen := make(map[string]struct{}, len(connected))
	robots := make([]*models.Robot, 0, len(connected))

	for _, r := range connected {
		robots = append(robots, r)
		seen[r.ID] = struct{}{}
	}

	for _, r := range s.robots.GetDiscoveredRobots() {
		if _, ok := seen[r.ID]; !ok {
			robots = append(robots, r)
		}
	}

	s.encodeJSONResponse(w, robots)
}

func (s *APIServer) handleGetRobot(w http.ResponseWriter, r *http.Request) {
	robot := s.robots.GetRobot(mux.Vars(r)["id"])
	if robot == nil {
		writeError(w, "Robot not found", http.StatusNotFound)
		return
	}

	s.encodeJSONResponse(w, robot)
}

func (s *APIServer) handleConnectRobot(w http.ResponseWriter, r *http.Request) {
	robot, err := s.robots.ConnectDiscovered(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Robot not found", http.StatusNotFound)
		return
	}

	s.broadcast(models.EventRobotConnected, robot)

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Robot connected", Robot: robot})
}

func (s *APIServer) handleDisconnectRobot(w http.ResponseWriter, r *http.Request) {
	robotID := mux.Vars(r)["id"]

	if s.robots.GetRobot(robotID) == nil {
		writeError(w, "Robot not found", http.StatusNotFound)
		return
	}

	s.robots.SendStopCommand(r.Context(), robotID)
	s.robots.RemoveRobot(robotID)

	s.broadcast(models.EventRobotDisconnected, map[string]interface{}{"id": robotID})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Robot disconnected"})
}

func (s *APIServer) handleEnableRobot(w http.ResponseWriter, r *http.Request) {
	s.broadcast(models.EventRobotEnabled, map[string]interface{}{"id": mux.Vars(r)["id"]})
	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Robot enabled"})
}

// handleDisableRobot stops the robot before announcing it disabled so a
// disabled robot is never left moving.
func (s *APIServer) handleDisableRobot(w http.ResponseWriter, r *http.Request) {
	robotID := mux.Vars(r)["id"]

	if s.robots.GetRobot(robotID) != nil {
		s.robots.SendStopCommand(r.Context(), robotID)
	}

	s.broadcast(models.EventRobotDisabled, map[string]interface{}{"id": robotID})
	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Robot disabled"})
}

// handleRefreshRobots announces a refresh. Discovery is passive, so the scan
// itself is just the robots continuing to ping.
func (s *APIServer) handleRefreshRobots(w http.ResponseWriter, _ *http.Request) {
	s.broadcast(models.EventRobotsRefreshing, map[string]interface{}{
		"timestamp": time.Now().UnixMilli(),
	})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Scanning for robots"})
}

func (s *APIServer) handleGetControllers(w http.ResponseWriter, _ *http.Request) {
	s.encodeJSONResponse(w, s.controllers.GetConnectedControllers())
}

func (s *APIServer) handlePairController(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	controllerID, robotID := vars["id"], vars["robotId"]

	if err := s.controllers.Pair(controllerID, robotID); err != nil {
		writeError(w, "Controller not found", http.StatusNotFound)
		return
	}

	s.broadcast(models.EventControllerPaired, map[string]interface{}{
		"controllerId": controllerID,
		"robotId":      robotID,
	})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Controller paired with robot"})
}

func (s *APIServer) handleUnpairController(w http.ResponseWriter, r *http.Request) {
	controllerID := mux.Vars(r)["id"]

	s.controllers.Unpair(controllerID)

	s.broadcast(models.EventControllerUnpaired, map[string]interface{}{"controllerId": controllerID})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Controller unpaired"})
}

func (s *APIServer) handleEnableController(w http.ResponseWriter, r *http.Request) {
	controllerID := mux.Vars(r)["id"]

	if err := s.controllers.Enable(controllerID); err != nil {
		writeError(w, "Controller not found", http.StatusNotFound)
		return
	}

	s.broadcast(models.EventControllerEnabled, map[string]interface{}{"controllerId": controllerID})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Controller enabled"})
}

func (s *APIServer) handleDisableController(w http.ResponseWriter, r *http.Request) {
	controllerID := mux.Vars(r)["id"]

	if err := s.controllers.Disable(controllerID); err != nil {
		writeError(w, "Controller not found", http.StatusNotFound)
		return
	}

	s.broadcast(models.EventControllerDisabled, map[string]interface{}{"controllerId": controllerID})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Controller disabled"})
}

func (s *APIServer) handleRefreshControllers(w http.ResponseWriter, r *http.Request) {
	s.controllers.RefreshControllers(r.Context())

	s.broadcast(models.EventControllersRefreshing, map[string]interface{}{
		"timestamp": time.Now().UnixMilli(),
	})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Scanning for controllers"})
}

func (s *APIServer) handleEmergencyStop(w http.ResponseWriter, r *http.Request) {
	s.controllers.ActivateEmergencyStop(r.Context())

	s.broadcast(models.EventEmergencyStop, map[string]interface{}{"active": true})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Emergency stop activated"})
}

func (s *APIServer) handleDeactivateEmergencyStop(w http.ResponseWriter, r *http.Request) {
	s.controllers.DeactivateEmergencyStop(r.Context())

	s.broadcast(models.EventEmergencyStop, map[string]interface{}{"active": false})

	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Emergency stop deactivated"})
}

func (s *APIServer) handleGetMatchTimer(w http.ResponseWriter, _ *http.Request) {
	s.encodeJSONResponse(w, s.match.Snapshot())
}

func (s *APIServer) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	s.match.StartMatch(r.Context())
	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Match started"})
}

func (s *APIServer) handleStopMatch(w http.ResponseWriter, r *http.Request) {
	s.match.StopMatch(r.Context())
	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Match stopped"})
}

func (s *APIServer) handleResetMatch(w http.ResponseWriter, r *http.Request) {
	s.match.ResetMatch(r.Context())
	s.encodeJSONResponse(w, statusResponse{Success: true, Message: "Match reset"})
}

// handleSetMatchDuration accepts the new duration in seconds as a bare text
// body, matching the dashboard client.
func (s *APIServer) handleSetMatchDuration(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Invalid duration format", http.StatusBadRequest)
		return
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(string(body)))
	if err != nil || seconds <= 0 {
		writeError(w, "Invalid duration format", http.StatusBadRequest)
		return
	}

	durationMs := s.match.SetDuration(seconds)

	s.encodeJSONResponse(w, map[string]interface{}{
		"success":    true,
		"durationMs": durationMs,
	})
}

func (s *APIServer) broadcast(eventType string, data interface{}) {
	if s.hub == nil {
		return
	}

	s.hub.Broadcast(eventType, data)
}

func (s *APIServer) encodeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
