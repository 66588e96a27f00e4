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

package face

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aamcrae/config"
)

const section = "face"

// FaceConfig holds the configuration of the watch face, read from
// the [face] section of a configuration file.
type FaceConfig struct {
	Locale     string        // Date locale
	Step       time.Duration // Sweep animation step interval
	Invert     bool          // Invert the display
	Background string        // Optional background image file
	Port       int           // HTTP port
	Battery    string        // sysfs power supply directory
	Link       string        // Network interface providing the link state
	Button     int           // GPIO of the replay button, -1 if none
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *FaceConfig {
	return &FaceConfig{
		Locale:  "it",
		Step:    50 * time.Millisecond,
		Port:    8080,
		Battery: "/sys/class/power_supply/BAT0",
		Link:    "wlan0",
		Button:  -1,
	}
}

// Config reads and validates the face config from a config file section.
// Keys that are absent keep their default values.
// Sample config:
//
//	[face]
//	# date locale (it, en)
//	locale=it
//	# sweep animation step
//	step=50ms
//	# white on black becomes black on white
//	invert=false
//	# background image (144x168)
//	background=face.png
//	# HTTP port for /face.png and /message
//	port=8080
//	battery=/sys/class/power_supply/BAT0
//	# interface for the link glyph
//	link=wlan0
//	# GPIO for the replay button
//	button=17
func Config(conf *config.Config) (*FaceConfig, error) {
	fc := DefaultConfig()
	s := conf.GetSection(section)
	if s == nil {
		return fc, nil
	}
	err := getArg(s, "locale", func(v string) error {
		if _, ok := locales[v]; !ok {
			return fmt.Errorf("%s: must be one of %v", v, Locales())
		}
		fc.Locale = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = getArg(s, "step", func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		if d <= 0 {
			return fmt.Errorf("%s: must be positive", v)
		}
		fc.Step = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = getArg(s, "invert", func(v string) (err error) {
		fc.Invert, err = strconv.ParseBool(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := getArg(s, "background", setString(&fc.Background)); err != nil {
		return nil, err
	}
	if err := getArg(s, "port", setInt(&fc.Port, 1, 65535)); err != nil {
		return nil, err
	}
	if err := getArg(s, "battery", setString(&fc.Battery)); err != nil {
		return nil, err
	}
	if err := getArg(s, "link", setString(&fc.Link)); err != nil {
		return nil, err
	}
	if err := getArg(s, "button", setInt(&fc.Button, -1, 1023)); err != nil {
		return nil, err
	}
	return fc, nil
}

// getArg calls f with the single argument of the key, if the key is present.
func getArg(s *config.Section, key string, f func(string) error) error {
	if !s.Has(key) {
		return nil
	}
	v, err := s.GetArg(key)
	if err != nil {
		return err
	}
	if err := f(strings.TrimSpace(v)); err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	return nil
}

func setString(p *string) func(string) error {
	return func(v string) error {
		if v == "" {
			return fmt.Errorf("empty value")
		}
		*p = v
		return nil
	}
}

// setInt parses the whole argument as an integer in the range [min, max].
func setInt(p *int, min, max int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if n < min || n > max {
			return fmt.Errorf("%d: out of range %d-%d", n, min, max)
		}
		*p = n
		return nil
	}
}
