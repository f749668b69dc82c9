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

package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/lancerrobotics/watchtower/pkg/logger"
)

const (
	// receiveTimeout bounds one Receive call so the registry's poll loop
	// never blocks past its period.
	receiveTimeout = 400 * time.Millisecond

	maxDatagramSize = 256
)

// DiscoveryListener receives robot discovery pings on the well-known port.
// It implements the robot registry's DiscoveryReceiver.
type DiscoveryListener struct {
	conn   *net.UDPConn
	buf    []byte
	logger logger.Logger
}

// NewDiscoveryListener binds the discovery port.
func NewDiscoveryListener(port int, log logger.Logger) (*DiscoveryListener, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("failed to bind discovery port %d: %w", port, err)
	}

	log.Info().Int("port", port).Msg("Discovery listener bound")

	return &DiscoveryListener{
		conn:   conn,
		buf:    make([]byte, maxDatagramSize),
		logger: log,
	}, nil
}

// Receive returns the next pending discovery datagram, or "" when nothing
// arrived within the poll window.
func (l *DiscoveryListener) Receive(ctx context.Context) (string, error) {
	deadline := time.Now().Add(receiveTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := l.conn.SetReadDeadline(deadline); err != nil {
		return "", err
	}

	n, addr, err := l.conn.ReadFromUDP(l.buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return "", nil
		}

		return "", err
	}

	l.logger.Debug().
		Str("remote", addr.String()).
		Int("bytes", n).
		Msg("Discovery datagram received")

	return string(l.buf[:n]), nil
}

// Close releases the listening socket.
func (l *DiscoveryListener) Close() error {
	return l.conn.Close()
}
