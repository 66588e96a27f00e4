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

// Package event is a single-threaded event loop. Callbacks posted from
// any goroutine are run one at a time, to completion, on the goroutine
// calling Run, so the state they share needs no locking.
package event

import (
	"context"
	"sync/atomic"
	"time"
)

const queueSize = 32 // Size of queue for posted callbacks

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System is the local wall clock.
var System Clock = systemClock{}

// Loop dispatches callbacks serially.
type Loop struct {
	clock      Clock
	c          chan func()
	done       chan struct{}
	idle       []func()
	dispatched int
}

// NewLoop creates a Loop using the clock for its periodic ticks.
func NewLoop(clock Clock) *Loop {
	l := new(Loop)
	l.clock = clock
	l.c = make(chan func(), queueSize)
	l.done = make(chan struct{})
	return l
}

// Now returns the time from the loop's clock.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Dispatched returns the number of callbacks run so far.
// It must only be called from a callback.
func (l *Loop) Dispatched() int {
	return l.dispatched
}

// OnIdle adds a function that is run after every callback, such as a
// display repaint. It must be called before Run.
func (l *Loop) OnIdle(f func()) {
	l.idle = append(l.idle, f)
}

// Post queues f to be run on the loop. It returns false if
// the loop has stopped.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.c <- f:
		return true
	case <-l.done:
		return false
	}
}

// Run dispatches callbacks until the context is cancelled.
// It must only be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-l.c:
			f()
			l.dispatched++
			for _, h := range l.idle {
				h()
			}
		}
	}
}

// After runs f on the loop once d has elapsed. The returned function
// cancels the timer; f is not run if it is called before f is
// dispatched, even if the timer has already expired.
func (l *Loop) After(d time.Duration, f func()) func() {
	var stopped atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !stopped.Load() {
				f()
			}
		})
	})
	return func() {
		stopped.Store(true)
		t.Stop()
	}
}

// EveryMinute runs f on the loop at the start of every minute,
// with the time of the tick.
func (l *Loop) EveryMinute(ctx context.Context, f func(time.Time)) {
	go l.every(ctx, time.Minute, f)
}

// Every runs f on the loop on each boundary of the interval, until
// the context is cancelled or the loop stops.
func (l *Loop) Every(ctx context.Context, interval time.Duration, f func(time.Time)) {
	go l.every(ctx, interval, f)
}

func (l *Loop) every(ctx context.Context, interval time.Duration, f func(time.Time)) {
	// Resynchronise to the boundary on every tick, so that ticks
	// do not drift and follow changes to the clock.
	timer := time.NewTimer(untilBoundary(l.clock.Now(), interval))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		t := l.clock.Now()
		if !l.Post(func() { f(t) }) {
			return
		}
		timer.Reset(untilBoundary(l.clock.Now(), interval))
	}
}

// untilBoundary returns the time until the next boundary of the interval
// e.g if the interval is 1 minute, the time until the next minute starts.
func untilBoundary(n time.Time, interval time.Duration) time.Duration {
	adj := time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
	return adj.Truncate(interval).Add(interval).Sub(adj)
}
