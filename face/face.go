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

// Watch face controller.

package face

import (
	"log"
	"time"
)

// Surface identifies a drawing surface of the face, in paint order.
type Surface int

const (
	Background Surface = iota
	DateText
	SunsetText
	BatteryIcon
	LinkIcon
	HourHand
	MinuteHand
	Center
	surfaceCount
)

var surfaceNames = [...]string{"background", "date", "sunset", "battery", "link", "hour", "minute", "center"}

func (s Surface) String() string {
	if s < 0 || s >= surfaceCount {
		return "unknown"
	}
	return surfaceNames[s]
}

// Clock supplies the local wall-clock time.
type Clock interface {
	Now() time.Time
}

// Display is the interface to request repainting of a surface.
// The repaint itself happens later, at the host's discretion.
type Display interface {
	MarkDirty(Surface)
}

// Timers arms one-shot timers. The callback must be delivered on the
// same goroutine as all other face events. The returned func cancels
// the timer; calling it after the timer has fired does nothing.
type Timers interface {
	After(time.Duration, func()) func()
}

// Face connects the animation state machine and the status records
// to the display and timers. All methods must be called from a
// single goroutine (the event loop).
type Face struct {
	clock   Clock
	display Display
	timers  Timers
	step    time.Duration
	anim    *Animator
	cancel  func() // Cancels the armed step timer
	status  Status
	date    *Date
	sunset  *Sunset
	Stale   int // Number of stale step timer firings
}

// New creates a Face with the initial status, and marks all surfaces
// for painting. The hands stay at 12 until the first tick.
func New(fc *FaceConfig, clock Clock, display Display, timers Timers, st Status) (*Face, error) {
	d, err := NewDate(fc.Locale)
	if err != nil {
		return nil, err
	}
	f := &Face{
		clock:   clock,
		display: display,
		timers:  timers,
		step:    fc.Step,
		anim:    NewAnimator(),
		date:    d,
		sunset:  NewSunset(),
	}
	f.status = st
	f.status.Level = clampLevel(st.Level)
	f.date.Update(clock.Now())
	for s := Background; s < surfaceCount; s++ {
		display.MarkDirty(s)
	}
	return f, nil
}

// OnTick handles the periodic minute tick.
func (f *Face) OnTick(t time.Time) {
	f.apply(f.anim.OnTick(t))
}

// onStep handles a firing of the step timer armed with token.
func (f *Face) onStep(token int) {
	if token != f.anim.Armed() {
		f.Stale++
		return
	}
	f.apply(f.anim.OnStep(token, f.clock.Now()))
}

func (f *Face) apply(u Update) {
	if u.Cancel && f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if u.Date {
		log.Printf("date: %s", f.date.Update(f.clock.Now()))
		f.display.MarkDirty(DateText)
	}
	if u.Hour {
		f.display.MarkDirty(HourHand)
	}
	if u.Minute {
		f.display.MarkDirty(MinuteHand)
	}
	if u.Arm {
		if f.cancel != nil {
			f.cancel()
		}
		token := u.Token
		f.cancel = f.timers.After(f.step, func() { f.onStep(token) })
	}
}

// Replay restarts the sweep animation if it has completed.
// A tick is injected so that the sweep starts at once.
func (f *Face) Replay() bool {
	u, ok := f.anim.Replay()
	if !ok {
		return false
	}
	f.apply(u)
	f.OnTick(f.clock.Now())
	return true
}

// OnBattery handles a change of battery state.
func (f *Face) OnBattery(level int, plugged bool) {
	f.status.Level = clampLevel(level)
	f.status.Plugged = plugged
	f.display.MarkDirty(BatteryIcon)
}

// OnLink handles a change of the wireless link state.
func (f *Face) OnLink(connected bool) {
	f.status.Connected = connected
	f.display.MarkDirty(LinkIcon)
}

// OnMessage handles an inbound message from the companion.
func (f *Face) OnMessage(m Message) {
	if err := f.sunset.Receive(m); err != nil {
		log.Printf("sunset: %v", err)
	}
	f.display.MarkDirty(SunsetText)
}

// Phase returns the animation phase.
func (f *Face) Phase() Phase {
	return f.anim.Phase()
}

// HourAngle returns the angle to draw the hour hand at.
func (f *Face) HourAngle() int {
	return f.anim.HourAngle(f.clock.Now())
}

// MinuteAngle returns the angle to draw the minute hand at.
func (f *Face) MinuteAngle() int {
	return f.anim.MinuteAngle(f.clock.Now())
}

// DateText returns the date text.
func (f *Face) DateText() string {
	return f.date.String()
}

// SunsetText returns the sunset text.
func (f *Face) SunsetText() string {
	return f.sunset.String()
}

// Status returns the current status snapshot.
func (f *Face) Status() Status {
	return f.status
}

// BatteryGlyph returns how the battery glyph is to be drawn.
func (f *Face) BatteryGlyph() BatteryGlyph {
	return NewBatteryGlyph(f.status.Level, f.status.Plugged)
}

// LinkGlyph returns how the link glyph is to be drawn.
func (f *Face) LinkGlyph() LinkGlyph {
	return NewLinkGlyph(f.status.Connected)
}
