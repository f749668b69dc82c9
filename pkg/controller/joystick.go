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
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/lancerrobotics/watchtower/pkg/input"
	"github.com/lancerrobotics/watchtower/pkg/logger"
)

const (
	devInputDir    = "/dev/input"
	jsDevicePrefix = "js"

	// js_event layout: u32 time, s16 value, u8 type, u8 number.
	jsEventSize = 8

	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80

	// Axis values span the full signed 16-bit range.
	jsAxisMax = 32767.0

	jsNameBufLen = 128
)

// Linux joystick ioctls: _IOC(read, 'j', nr, size).
const (
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgName    = 0x80006a13 | (jsNameBufLen << 16)
)

// joystickDevice wraps one /dev/input/jsN file. The descriptor is opened
// nonblocking; State drains pending events into the held frame.
type joystickDevice struct {
	mu       sync.Mutex
	fd       int
	path     string
	name     string
	instance int
	frame    input.RawFrame
	closed   bool
}

func (d *joystickDevice) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closed
}

func openJoystick(path string, instance int) (*joystickDevice, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	dev := &joystickDevice{
		fd:       fd,
		path:     path,
		instance: instance,
	}

	dev.name = joystickName(fd, path)

	axes := ioctlByte(fd, jsiocgAxes)
	buttons := ioctlByte(fd, jsiocgButtons)

	dev.frame = input.RawFrame{
		Axes:    make([]float64, axes),
		Buttons: make([]bool, buttons),
	}

	return dev, nil
}

func joystickName(fd int, path string) string {
	buf := make([]byte, jsNameBufLen)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(jsiocgName), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return filepath.Base(path)
	}

	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		return string(buf[:i])
	}

	return string(buf)
}

func ioctlByte(fd int, req uint) int {
	buf := make([]byte, 1)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return 0
	}

	return int(buf[0])
}

func (d *joystickDevice) Name() string    { return d.name }
func (d *joystickDevice) InstanceID() int { return d.instance }

// State drains pending joystick events and returns the resulting frame.
func (d *joystickDevice) State() (input.RawFrame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return input.RawFrame{}, os.ErrClosed
	}

	buf := make([]byte, jsEventSize)

	for {
		n, err := unix.Read(d.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				break
			}

			return input.RawFrame{}, fmt.Errorf("read %s: %w", d.path, err)
		}

		if n < jsEventSize {
			break
		}

		d.applyEvent(buf)
	}

	return d.copyFrameLocked(), nil
}

func (d *joystickDevice) applyEvent(raw []byte) {
	value := int16(binary.LittleEndian.Uint16(raw[4:6]))
	eventType := raw[6] &^ jsEventInit
	number := int(raw[7])

	switch eventType {
	case jsEventAxis:
		if number < len(d.frame.Axes) {
			d.frame.Axes[number] = float64(value) / jsAxisMax
		}
	case jsEventButton:
		if number < len(d.frame.Buttons) {
			d.frame.Buttons[number] = value != 0
		}
	}
}

func (d *joystickDevice) copyFrameLocked() input.RawFrame {
	frame := input.RawFrame{
		Axes:    make([]float64, len(d.frame.Axes)),
		Buttons: make([]bool, len(d.frame.Buttons)),
	}

	copy(frame.Axes, d.frame.Axes)
	copy(frame.Buttons, d.frame.Buttons)

	return frame
}

func (d *joystickDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true

	return unix.Close(d.fd)
}

// JoystickBackend enumerates Linux joystick devices under /dev/input. Open
// handles are cached per path so repeated scans observe the same Device.
type JoystickBackend struct {
	mu      sync.Mutex
	devices map[string]*joystickDevice
	dir     string
	logger  logger.Logger
}

// NewJoystickBackend creates a backend scanning the default device
// directory.
func NewJoystickBackend(log logger.Logger) *JoystickBackend {
	return &JoystickBackend{
		devices: make(map[string]*joystickDevice),
		dir:     devInputDir,
		logger:  log,
	}
}

// Enumerate lists the currently attached joysticks. Unplugged devices drop
// out of the result; the registry's debounce decides when they are gone.
func (b *JoystickBackend) Enumerate(_ context.Context) ([]Device, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", b.dir, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	present := make(map[string]struct{})
	devices := make([]Device, 0, len(b.devices))

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, jsDevicePrefix) {
			continue
		}

		instance, err := strconv.Atoi(strings.TrimPrefix(name, jsDevicePrefix))
		if err != nil {
			continue
		}

		path := filepath.Join(b.dir, name)
		present[path] = struct{}{}

		if dev, ok := b.devices[path]; ok && !dev.isClosed() {
			devices = append(devices, dev)
			continue
		}

		dev, err := openJoystick(path, instance)
		if err != nil {
			b.logger.Debug().Err(err).Str("path", path).Msg("Failed to open joystick")
			continue
		}

		b.devices[path] = dev
		devices = append(devices, dev)
	}

	// Forget cached handles whose device node vanished or that the
	// registry closed.
	for path, dev := range b.devices {
		if _, ok := present[path]; !ok || dev.isClosed() {
			delete(b.devices, path)
		}
	}

	return devices, nil
}
