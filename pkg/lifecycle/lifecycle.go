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

// Package lifecycle supervises long-running services of the watchtower daemon.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Service defines the interface for services that can be started and stopped.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Name() string
}

// Run starts every service in its own goroutine and blocks until the context
// is canceled, a SIGINT/SIGTERM arrives, or a service fails. All services are
// then stopped with a bounded wait.
func Run(ctx context.Context, log logger.Logger, services ...Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, len(services))

	for _, svc := range services {
		svc := svc

		log.Info().Str("service", svc.Name()).Msg("Starting service")

		go func() {
			if err := svc.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Str("service", svc.Name()).Msg("Service exited with error")
				errCh <- err
			}
		}()
	}

	var runErr error

	select {
	case <-ctx.Done():
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case runErr = <-errCh:
	}

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer stopCancel()

	for _, svc := range services {
		if err := svc.Stop(stopCtx); err != nil {
			log.Error().Err(err).Str("service", svc.Name()).Msg("Error stopping service")
		}
	}

	return runErr
}
