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

// Watch face program

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aamcrae/config"
	"github.com/aamcrae/watchface/companion"
	"github.com/aamcrae/watchface/event"
	"github.com/aamcrae/watchface/face"
	"github.com/aamcrae/watchface/io"
)

var configFile = flag.String("config", "", "Configuration file")
var port = flag.Int("port", 0, "Web server port number (overrides config)")
var statusPoll = flag.Duration("poll", 5*time.Second, "Battery and link poll interval")

var errStopped = errors.New("event loop stopped")

func main() {
	flag.Parse()
	fc := face.DefaultConfig()
	var cc *companion.CompanionConfig
	if *configFile != "" {
		conf, err := config.ParseFile(*configFile)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
		fc, err = face.Config(conf)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
		cc, err = companion.Config(conf)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	if *port != 0 {
		fc.Port = *port
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := event.NewLoop(event.System)
	screen, err := face.NewScreen(fc)
	if err != nil {
		log.Fatalf("Screen: %v", err)
	}
	// Status sources are optional; without them the glyphs show
	// a full battery and no link.
	st := face.Status{Level: 100}
	bat, err := io.NewBattery(fc.Battery)
	if err != nil {
		log.Printf("battery: %v", err)
	} else if b, err := bat.Peek(); err != nil {
		log.Printf("battery: %v", err)
	} else {
		st.Level, st.Plugged = b.Level, b.Plugged
	}
	link, err := io.NewLink(fc.Link)
	if err != nil {
		log.Printf("link: %v", err)
	} else if up, err := link.Peek(); err != nil {
		log.Printf("link: %v", err)
	} else {
		st.Connected = up
	}
	f, err := face.New(fc, loop, screen, loop, st)
	if err != nil {
		log.Fatalf("Face: %v", err)
	}
	screen.SetView(f)
	loop.OnIdle(func() { screen.Repaint() })

	loop.EveryMinute(ctx, f.OnTick)
	if bat != nil {
		go bat.Watch(ctx, *statusPoll, func(b io.BatteryState) {
			loop.Post(func() { f.OnBattery(b.Level, b.Plugged) })
		})
	}
	if link != nil {
		go link.Watch(ctx, *statusPoll, func(up bool) {
			loop.Post(func() { f.OnLink(up) })
		})
	}
	if fc.Button >= 0 {
		btn, err := io.NewButton(fc.Button)
		if err != nil {
			log.Fatalf("Button %d: %v", fc.Button, err)
		}
		defer btn.Close()
		go replay(btn, loop, f)
	}
	// The port must be open before the companion sends its first message.
	l, err := face.Listen(fc.Port)
	if err != nil {
		log.Fatalf("Port %d: %v", fc.Port, err)
	}
	srv := face.NewServer(f, screen, loop)
	go func() {
		log.Fatal(srv.Serve(l))
	}()
	if cc != nil {
		go companion.Run(ctx, cc, loop, deliverer(cc, loop, f))
	}
	// Paint the initial frame.
	loop.Post(func() {})
	log.Printf("Watch face started, locale %s", fc.Locale)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// deliverer returns the function the companion uses to send messages,
// either over HTTP or directly to the event loop.
func deliverer(cc *companion.CompanionConfig, loop *event.Loop, f *face.Face) func(face.Message) error {
	if cc.URL != "" {
		c := companion.NewClient(cc.URL)
		return func(m face.Message) error {
			return c.Send(context.Background(), m)
		}
	}
	return func(m face.Message) error {
		if !loop.Post(func() { f.OnMessage(m) }) {
			return errStopped
		}
		return nil
	}
}

// replay restarts the sweep animation each time the button is pressed.
func replay(btn *io.Button, loop *event.Loop, f *face.Face) {
	for {
		if err := btn.Wait(); err != nil {
			log.Printf("button: %v", err)
			return
		}
		loop.Post(func() {
			if !f.Replay() {
				log.Printf("replay: animation in progress")
			}
		})
	}
}
