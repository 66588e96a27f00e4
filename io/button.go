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

// Push button on a GPIO input.

package io

import (
	"time"
)

const debounce = 50 * time.Millisecond

// Button is a push button wired between a GPIO input (with pull-up)
// and ground, so a press is a falling edge.
type Button struct {
	pin  *Gpio
	last time.Time
}

// NewButton opens the GPIO for the button.
func NewButton(gpio int) (*Button, error) {
	p, err := Pin(gpio)
	if err != nil {
		return nil, err
	}
	if err := p.Edge(FALLING); err != nil {
		p.Close()
		return nil, err
	}
	return &Button{pin: p}, nil
}

// Wait blocks until the button is pressed. Contact bounce within
// the debounce period of the previous press is discarded.
func (b *Button) Wait() error {
	for {
		v, err := b.pin.Get()
		if err != nil {
			return err
		}
		now := time.Now()
		if v != 0 || now.Sub(b.last) < debounce {
			continue
		}
		b.last = now
		return nil
	}
}

// Close releases the GPIO.
func (b *Button) Close() {
	b.pin.Close()
}
