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

// Snapshot utility, renders the face at a given time to a PNG file.

package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/aamcrae/config"
	"github.com/aamcrae/watchface/face"
)

var configFile = flag.String("config", "", "Configuration file")
var at = flag.String("time", "10:10:00", "Time of day to render (15:04:05)")
var date = flag.String("date", "", "Date to render (2006-01-02), default is today")
var output = flag.String("output", "face.png", "Output PNG file")
var battery = flag.Int("battery", 100, "Battery level")
var plugged = flag.Bool("plugged", false, "Battery is charging")
var link = flag.Bool("link", true, "Companion link is connected")
var sunset = flag.String("sunset", "", "Sunset time to display (15:04)")

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

// queue runs timer callbacks in order without waiting.
type queue struct {
	fns []func()
}

func (q *queue) After(d time.Duration, f func()) func() {
	q.fns = append(q.fns, f)
	return func() {}
}

func (q *queue) run() {
	for len(q.fns) > 0 {
		f := q.fns[0]
		q.fns = q.fns[1:]
		f()
	}
}

func main() {
	flag.Parse()
	fc := face.DefaultConfig()
	if *configFile != "" {
		conf, err := config.ParseFile(*configFile)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
		fc, err = face.Config(conf)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	day := time.Now()
	if *date != "" {
		d, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			log.Fatalf("%s: %v", *date, err)
		}
		day = d
	}
	tod, err := time.Parse("15:04:05", *at)
	if err != nil {
		log.Fatalf("%s: %v", *at, err)
	}
	now := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), tod.Second(), 0, time.Local)
	screen, err := face.NewScreen(fc)
	if err != nil {
		log.Fatalf("Screen: %v", err)
	}
	q := new(queue)
	f, err := face.New(fc, fixedClock(now), screen, q, face.Status{Level: *battery, Plugged: *plugged, Connected: *link})
	if err != nil {
		log.Fatalf("Face: %v", err)
	}
	screen.SetView(f)
	if *sunset != "" {
		f.OnMessage(face.Message{face.CodeSunsetSuccess: 1, face.CodeSunsetTime: *sunset})
	}
	// Drive the animation to completion.
	f.OnTick(now)
	q.run()
	screen.Repaint()
	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
	if err := png.Encode(out, screen.Frame()); err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("%s: %v", *output, err)
	}
	log.Printf("%s: %s, %s", *output, now.Format("15:04:05"), f.Phase())
}
