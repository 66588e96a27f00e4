// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package io reads GPIO inputs and the sysfs power supply and network state.
package io

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Edge
const (
	NONE    = iota // Default
	RISING  = iota
	FALLING = iota
	BOTH    = iota
)

const (
	baseDir      = "/sys/class/gpio/"
	exportFile   = baseDir + "export"
	unexportFile = baseDir + "unexport"
	valueFile    = "/value"
)

// Gpio represents one GPIO input pin.
type Gpio struct {
	number int
	value  *os.File
	buf    []byte
	edge   int
	pollfd []unix.PollFd
}

// Pin opens a GPIO pin as an input.
func Pin(gpio int) (*Gpio, error) {
	g := new(Gpio)
	g.number = gpio
	g.buf = make([]byte, 1)

	val := fmt.Sprintf("%sgpio%d%s", baseDir, gpio, valueFile)
	err := export(val, exportFile, gpio)
	if err != nil {
		return nil, err
	}
	err = writeFile(fmt.Sprintf("%sgpio%d/direction", baseDir, gpio), "in")
	if err != nil {
		unexport(unexportFile, gpio)
		return nil, err
	}
	err = g.Edge(NONE)
	if err != nil {
		unexport(unexportFile, gpio)
		return nil, err
	}
	g.value, err = os.OpenFile(val, os.O_RDWR, 0600)
	if err != nil {
		unexport(unexportFile, gpio)
		return nil, err
	}
	g.pollfd = []unix.PollFd{{Fd: int32(g.value.Fd()), Events: unix.POLLPRI | unix.POLLERR}}
	return g, nil
}

// Edge sets the edge detection on the GPIO pin.
func (g *Gpio) Edge(e int) error {
	var s string
	switch e {
	case NONE:
		s = "none"
	case RISING:
		s = "rising"
	case FALLING:
		s = "falling"
	case BOTH:
		s = "both"
	default:
		return fmt.Errorf("gpio%d: unknown edge", g.number)
	}
	err := writeFile(fmt.Sprintf("%sgpio%d/edge", baseDir, g.number), s)
	if err == nil {
		g.edge = e
	}
	return err
}

// Get returns the current value of the GPIO pin. If edge detection
// is enabled, Get waits for an edge before reading the value.
func (g *Gpio) Get() (int, error) {
	if g.edge != NONE {
		// Wait for edge using poll.
		g.pollfd[0].Revents = 0
		_, err := unix.Poll(g.pollfd, -1)
		if err != nil {
			return 0, err
		}
		// With no timeout, poll should always return an event.
	}
	_, err := g.value.ReadAt(g.buf, 0)
	if err != nil {
		return 0, err
	}
	return parseValue(g.number, g.buf[0])
}

func parseValue(n int, b byte) (int, error) {
	switch b {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, fmt.Errorf("gpio%d: unknown value %q", n, b)
}

// Close the GPIO pin and unexport it.
func (g *Gpio) Close() {
	g.value.Close()
	unexport(unexportFile, g.number)
}
