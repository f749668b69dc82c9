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
	"strconv"
	"sync"
	"syscall"

	"github.com/lancerrobotics/watchtower/pkg/logger"
	"github.com/lancerrobotics/watchtower/pkg/models"

	"golang.org/x/sys/unix"
)

var errRobotNoAddress = errors.New("robot has no ip address")

// UDPTransmitter sends control frames, game-status text, and emergency-stop
// broadcasts to robots over a single unconnected UDP socket.
type UDPTransmitter struct {
	commandPort   int
	broadcastAddr *net.UDPAddr

	mu     sync.Mutex
	conn   *net.UDPConn
	logger logger.Logger
}

// NewUDPTransmitter opens the shared send socket. The socket carries
// SO_BROADCAST so emergency-stop datagrams can reach the subnet broadcast
// address.
func NewUDPTransmitter(commandPort int, broadcastAddr string, log logger.Logger) (*UDPTransmitter, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var sockErr error

			err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
			})
			if err != nil {
				return err
			}

			return sockErr
		},
	}

	pc, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("failed to open transmit socket: %w", err)
	}

	bcast, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(broadcastAddr, strconv.Itoa(commandPort)))
	if err != nil {
		_ = pc.Close()
		return nil, fmt.Errorf("invalid broadcast address %q: %w", broadcastAddr, err)
	}

	return &UDPTransmitter{
		commandPort:   commandPort,
		broadcastAddr: bcast,
		conn:          pc.(*net.UDPConn),
		logger:        log,
	}, nil
}

// SendCommand encodes and delivers one control frame to the robot's command
// port.
func (t *UDPTransmitter) SendCommand(_ context.Context, robot *models.Robot, cmd models.Command) error {
	payload, err := EncodeCommand(cmd)
	if err != nil {
		return err
	}

	return t.sendTo(robot, payload)
}

// SendGameStatus delivers the "<robotId>:<status>" text datagram.
func (t *UDPTransmitter) SendGameStatus(_ context.Context, robot *models.Robot, state models.GameState) error {
	return t.sendTo(robot, EncodeGameStatus(robot.ID, state))
}

// BroadcastEmergencyStop sends the fleet-wide datagram to the broadcast
// address so robots hear it even if their registry entry is stale.
func (t *UDPTransmitter) BroadcastEmergencyStop(_ context.Context, active bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return net.ErrClosed
	}

	if _, err := t.conn.WriteToUDP(EncodeEmergencyStop(active), t.broadcastAddr); err != nil {
		return fmt.Errorf("emergency stop broadcast failed: %w", err)
	}

	return nil
}

// Close releases the send socket.
func (t *UDPTransmitter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}

	err := t.conn.Close()
	t.conn = nil

	return err
}

func (t *UDPTransmitter) sendTo(robot *models.Robot, payload []byte) error {
	if robot.IPAddress == "" {
		return fmt.Errorf("%w: %s", errRobotNoAddress, robot.ID)
	}

	addr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(robot.IPAddress, strconv.Itoa(t.commandPort)))
	if err != nil {
		return fmt.Errorf("invalid robot address %q: %w", robot.IPAddress, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return net.ErrClosed
	}

	if _, err := t.conn.WriteToUDP(payload, addr); err != nil {
		return fmt.Errorf("send to %s failed: %w", robot.ID, err)
	}

	return nil
}
