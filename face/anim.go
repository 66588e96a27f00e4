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

// Start-up sweep animation and redraw decisions.

package face

import (
	"time"
)

// Phase is the stage of the start-up sweep animation.
type Phase int

const (
	Idle Phase = iota
	Start
	AnimatingHours
	AnimatingMinutes
	Done
)

var phaseNames = [...]string{"idle", "start", "hours", "minutes", "done"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Update is the result of feeding an event to the Animator.
// It lists the surfaces to repaint and the timer actions to take,
// leaving the caller to perform them.
type Update struct {
	Hour   bool // Hour hand must be repainted
	Minute bool // Minute hand must be repainted
	Date   bool // Date must be recomputed
	Arm    bool // Arm the step timer with Token
	Token  int
	Cancel bool // Cancel any outstanding step timer
}

// Animator is the state machine that sweeps the hands from 12 o'clock
// up to the current time once at start-up, and then decides on each
// minute tick which hands need to be redrawn.
// Each step timer is armed with a new token; a step that arrives
// with any other token is stale and is ignored.
type Animator struct {
	phase     Phase
	hourAcc   int // Hour accumulator in degrees
	minuteAcc int // Minute accumulator in degrees
	armed     int // Token of the armed step timer, 0 if none
	lastToken int
}

// NewAnimator returns an Animator in the Idle phase.
func NewAnimator() *Animator {
	return new(Animator)
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Accumulators returns the hour and minute accumulators.
func (a *Animator) Accumulators() (int, int) {
	return a.hourAcc, a.minuteAcc
}

// Armed returns the token of the armed step timer, or 0.
func (a *Animator) Armed() int {
	return a.armed
}

// OnTick processes a periodic (minute) tick.
func (a *Animator) OnTick(t time.Time) Update {
	switch a.phase {
	case Idle:
		a.phase = Start
		return a.arm()
	case Done:
		var u Update
		hour, minute, sec := t.Clock()
		if sec%10 == 0 {
			u.Minute = true
		}
		if sec == 0 && minute%2 == 0 {
			u.Hour = true
		}
		if minute == 0 && hour == 0 {
			u.Date = true
		}
		return u
	}
	// The sweep is in progress and owns the hands.
	return Update{}
}

// OnStep processes a firing of the step timer armed with token.
func (a *Animator) OnStep(token int, t time.Time) Update {
	if a.armed == 0 || token != a.armed {
		return Update{}
	}
	switch a.phase {
	case Start:
		a.phase = AnimatingHours
		return a.stepHours(t)
	case AnimatingHours:
		return a.stepHours(t)
	case AnimatingMinutes:
		a.minuteAcc += StepAngle
		a.phase = Done
		a.armed = 0
		return Update{Minute: true, Cancel: true}
	}
	a.armed = 0
	return Update{Cancel: true}
}

// stepHours advances the hour accumulator towards the current hour angle.
// In the afternoon the accumulator starts at 360 so that the sweep
// carries on past 12 rather than restarting at 0.
func (a *Animator) stepHours(t time.Time) Update {
	target := HourAngle(t)
	if a.hourAcc == 0 && t.Hour() >= 12 {
		a.hourAcc = 360
	}
	a.hourAcc += StepAngle
	if a.hourAcc >= target {
		a.phase = AnimatingMinutes
	}
	u := a.arm()
	u.Hour = true
	return u
}

func (a *Animator) arm() Update {
	a.lastToken++
	a.armed = a.lastToken
	return Update{Arm: true, Token: a.armed}
}

// Replay rearms the sweep once it has completed, returning the
// animator to Idle so that the next tick starts it again.
// It does nothing while a sweep is running.
func (a *Animator) Replay() (Update, bool) {
	if a.phase != Done {
		return Update{}, false
	}
	a.phase = Idle
	a.hourAcc = 0
	a.minuteAcc = 0
	return Update{Hour: true, Minute: true, Cancel: true}, true
}

// HourAngle returns the angle the hour hand is drawn at.
// The live angle is withheld until the sweep reaches it.
func (a *Animator) HourAngle(t time.Time) int {
	switch a.phase {
	case Idle, Start:
		return 0
	case AnimatingHours:
		return a.hourAcc % 360
	}
	return HourAngle(t)
}

// MinuteAngle returns the angle the minute hand is drawn at.
func (a *Animator) MinuteAngle(t time.Time) int {
	if a.phase < AnimatingMinutes {
		return 0
	}
	return MinuteAngle(t)
}
