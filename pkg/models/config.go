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

package models

import "github.com/lancerrobotics/watchtower/pkg/logger"

// CORSConfig controls cross-origin access to the REST API.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// WatchtowerConfig is the daemon configuration document.
type WatchtowerConfig struct {
	// ListenAddr is the REST/websocket bind address.
	ListenAddr string `json:"listen_addr"`
	// DiscoveryPort is the UDP port robots send discovery pings to.
	DiscoveryPort int `json:"discovery_port"`
	// CommandPort is the UDP port robots listen for control frames on.
	CommandPort int `json:"command_port"`
	// BroadcastAddr is the subnet broadcast address for fleet-wide datagrams.
	BroadcastAddr string `json:"broadcast_addr"`
	// MatchDurationSeconds seeds the match timer; operators can change it.
	MatchDurationSeconds int `json:"match_duration_seconds"`

	CORS    CORSConfig     `json:"cors"`
	Logging *logger.Config `json:"logging,omitempty"`
}

const (
	defaultListenAddr    = ":8080"
	defaultDiscoveryPort = 12345
	defaultCommandPort   = 12346
	defaultBroadcastAddr = "255.255.255.255"
	defaultMatchSeconds  = 120
)

// Validate applies defaults for unset fields.
func (c *WatchtowerConfig) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.DiscoveryPort == 0 {
		c.DiscoveryPort = defaultDiscoveryPort
	}

	if c.CommandPort == 0 {
		c.CommandPort = defaultCommandPort
	}

	if c.BroadcastAddr == "" {
		c.BroadcastAddr = defaultBroadcastAddr
	}

	if c.MatchDurationSeconds <= 0 {
		c.MatchDurationSeconds = defaultMatchSeconds
	}

	return nil
}
