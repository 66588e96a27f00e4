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

// Simulator watch face program

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aamcrae/watchface/companion"
	"github.com/aamcrae/watchface/event"
	"github.com/aamcrae/watchface/face"
)

var port = flag.Int("port", 8080, "Web server port number")
var locale = flag.String("locale", "it", "Date locale")
var start = flag.String("time", "", "Starting time of day (15:04:05), default is now")
var lat = flag.Float64("lat", -33.87, "Latitude for sunset")
var lon = flag.Float64("lon", 151.21, "Longitude for sunset")
var drain = flag.Duration("drain", 10*time.Second, "Time for battery to drop 1%")
var flap = flag.Duration("flap", 45*time.Second, "Interval between link changes")

const checkInterval = 5 * time.Second

// simClock runs at the real rate, offset from the wall clock.
type simClock struct {
	offset time.Duration
}

func (c *simClock) Now() time.Time {
	return time.Now().Add(c.offset)
}

// simPower is a battery that drains to empty and then charges to full.
type simPower struct {
	level    int
	charging bool
}

func (p *simPower) next() (int, bool) {
	switch {
	case p.charging && p.level >= 100:
		p.charging = false
	case !p.charging && p.level <= 0:
		p.charging = true
	}
	if p.charging {
		p.level += 5
	} else {
		p.level--
	}
	if p.level > 100 {
		p.level = 100
	}
	return p.level, p.charging
}

func main() {
	flag.Parse()
	clk := new(simClock)
	if *start != "" {
		st, err := time.ParseInLocation("15:04:05", *start, time.Local)
		if err != nil {
			log.Fatalf("%s: %v", *start, err)
		}
		now := time.Now()
		want := time.Date(now.Year(), now.Month(), now.Day(), st.Hour(), st.Minute(), st.Second(), 0, time.Local)
		clk.offset = want.Sub(now)
	}
	fc := face.DefaultConfig()
	fc.Locale = *locale
	fc.Port = *port
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := event.NewLoop(clk)
	screen, err := face.NewScreen(fc)
	if err != nil {
		log.Fatalf("Screen: %v", err)
	}
	power := &simPower{level: 100}
	f, err := face.New(fc, loop, screen, loop, face.Status{Level: power.level, Connected: true})
	if err != nil {
		log.Fatalf("Face: %v", err)
	}
	screen.SetView(f)
	loop.OnIdle(func() { screen.Repaint() })
	loop.EveryMinute(ctx, f.OnTick)
	loop.Every(ctx, *drain, func(time.Time) {
		level, charging := power.next()
		f.OnBattery(level, charging)
	})
	connected := true
	loop.Every(ctx, *flap, func(time.Time) {
		connected = !connected
		f.OnLink(connected)
	})
	l, err := face.Listen(*port)
	if err != nil {
		log.Fatalf("Port %d: %v", *port, err)
	}
	srv := face.NewServer(f, screen, loop)
	go func() {
		log.Fatal(srv.Serve(l))
	}()
	// The companion talks to the simulated watch through its web server.
	client := companion.NewClient(fmt.Sprintf("http://localhost:%d", *port))
	cc := &companion.CompanionConfig{Lat: *lat, Lon: *lon, Interval: time.Hour}
	go companion.Run(ctx, cc, clk, func(m face.Message) error {
		return client.Send(ctx, m)
	})
	go check(ctx, loop, f)
	loop.Post(func() {})
	fmt.Printf("Simulator started at %s\n", clk.Now().Format("15:04:05"))
	if err := loop.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}

// check periodically compares the hands against the clock once
// the animation is complete.
func check(ctx context.Context, loop *event.Loop, f *face.Face) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		loop.Post(func() {
			now := loop.Now()
			var b strings.Builder
			fmt.Fprintf(&b, "%s %s [%s] [%s]", now.Format("15:04:05"), f.Phase(), f.DateText(), f.SunsetText())
			if f.Phase() == face.Done {
				if h, want := f.HourAngle(), face.HourAngle(now); h != want {
					fmt.Fprintf(&b, " - hour hand %d, expected %d", h, want)
				}
				if m, want := f.MinuteAngle(), face.MinuteAngle(now); m != want {
					fmt.Fprintf(&b, " - minute hand %d, expected %d", m, want)
				}
			}
			fmt.Println(b.String())
		})
	}
}
