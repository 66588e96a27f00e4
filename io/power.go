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

// Battery and network link state from sysfs.

package io

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Battery reads the charge state of a power supply, e.g
// /sys/class/power_supply/BAT0.
type Battery struct {
	Dir string
}

// BatteryState is the charge level (0-100) and charger state.
type BatteryState struct {
	Level   int
	Plugged bool
}

// NewBattery checks that the power supply directory holds a battery.
func NewBattery(dir string) (*Battery, error) {
	if err := readable(filepath.Join(dir, "capacity")); err != nil {
		return nil, err
	}
	return &Battery{Dir: dir}, nil
}

// Peek reads the current battery state.
// The charger is considered plugged in while charging or when full.
func (b *Battery) Peek() (BatteryState, error) {
	var st BatteryState
	c, err := readFile(filepath.Join(b.Dir, "capacity"))
	if err != nil {
		return st, err
	}
	st.Level, err = strconv.Atoi(c)
	if err != nil {
		return st, fmt.Errorf("%s: capacity: %v", b.Dir, err)
	}
	if st.Level < 0 || st.Level > 100 {
		return st, fmt.Errorf("%s: capacity %d out of range", b.Dir, st.Level)
	}
	s, err := readFile(filepath.Join(b.Dir, "status"))
	if err == nil {
		st.Plugged = s == "Charging" || s == "Full"
	}
	return st, nil
}

// Watch polls the battery and calls f when its state changes.
func (b *Battery) Watch(ctx context.Context, interval time.Duration, f func(BatteryState)) {
	poll(ctx, "battery", interval, b.Peek, f)
}

// Link reads the operational state of a network interface.
type Link struct {
	Iface string
	file  string
}

// NewLink returns the Link for a network interface.
func NewLink(iface string) (*Link, error) {
	return newLink(iface, filepath.Join("/sys/class/net", iface, "operstate"))
}

func newLink(iface, file string) (*Link, error) {
	if err := readable(file); err != nil {
		return nil, err
	}
	return &Link{Iface: iface, file: file}, nil
}

// Peek returns true if the link is up.
func (l *Link) Peek() (bool, error) {
	s, err := readFile(l.file)
	if err != nil {
		return false, err
	}
	return s == "up", nil
}

// Watch polls the link and calls f when its state changes.
func (l *Link) Watch(ctx context.Context, interval time.Duration, f func(bool)) {
	poll(ctx, l.Iface, interval, l.Peek, f)
}
