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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lancerrobotics/watchtower/pkg/api"
	"github.com/lancerrobotics/watchtower/pkg/config"
	"github.com/lancerrobotics/watchtower/pkg/controller"
	"github.com/lancerrobotics/watchtower/pkg/lifecycle"
	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"
	"github.com/lancerrobotics/watchtower/pkg/network"
	"github.com/lancerrobotics/watchtower/pkg/robot"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/watchtower/watchtower.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()

	var cfg models.WatchtowerConfig

	if _, err := os.Stat(*configPath); err == nil {
		if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		// No config file: run on defaults.
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = &logger.Config{
			Level:  "info",
			Output: "stdout",
		}
	}

	mainLog, err := lifecycle.CreateComponentLogger("watchtowerd", logConfig)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	netLog, err := lifecycle.CreateComponentLogger("network", logConfig)
	if err != nil {
		return err
	}

	robotLog, err := lifecycle.CreateComponentLogger("robot", logConfig)
	if err != nil {
		return err
	}

	ctrlLog, err := lifecycle.CreateComponentLogger("controller", logConfig)
	if err != nil {
		return err
	}

	apiLog, err := lifecycle.CreateComponentLogger("api", logConfig)
	if err != nil {
		return err
	}

	mainLog.Info().
		Str("listen_addr", cfg.ListenAddr).
		Int("discovery_port", cfg.DiscoveryPort).
		Int("command_port", cfg.CommandPort).
		Msg("Starting watchtower")

	transmitter, err := network.NewUDPTransmitter(cfg.CommandPort, cfg.BroadcastAddr, netLog)
	if err != nil {
		return fmt.Errorf("failed to create transmitter: %w", err)
	}
	defer func() { _ = transmitter.Close() }()

	listener, err := network.NewDiscoveryListener(cfg.DiscoveryPort, netLog)
	if err != nil {
		return fmt.Errorf("failed to create discovery listener: %w", err)
	}
	defer func() { _ = listener.Close() }()

	robots := robot.NewRegistry(transmitter, listener, nil, robotLog)

	backend := controller.NewJoystickBackend(ctrlLog)
	controllers := controller.NewRegistry(robots, backend, nil, ctrlLog)

	hub := api.NewHub(cfg.CORS.AllowedOrigins, apiLog)
	robots.SetStatusNotifier(hub)
	robots.RegisterDisconnectCallback(hub.RobotDisconnected)

	match := api.NewMatchTimer(robots, controllers, hub, cfg.MatchDurationSeconds, nil, apiLog)

	server := api.NewAPIServer(cfg.ListenAddr, cfg.CORS, apiLog,
		api.WithRobotManager(robots),
		api.WithControllerManager(controllers),
		api.WithMatchTimer(match),
		api.WithHub(hub),
	)

	return lifecycle.Run(ctx, mainLog, robots, controllers, match, server)
}
