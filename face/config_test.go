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
	"testing"
	"time"

	"github.com/aamcrae/config"
)

func parseConfig(t *testing.T, s string) *config.Config {
	t.Helper()
	conf, err := config.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", s, err)
	}
	return conf
}

func TestConfigDefaults(t *testing.T) {
	for _, s := range []string{"", "[other]\nport=9000\n", "[face]\n"} {
		fc, err := Config(parseConfig(t, s))
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if *fc != *DefaultConfig() {
			t.Errorf("%q: got %+v, want %+v", s, *fc, *DefaultConfig())
		}
	}
}

func TestConfig(t *testing.T) {
	conf := parseConfig(t, `[face]
# date locale (it, en)
locale=en
# sweep animation step
step=20ms
invert=true
background=face.png
port=9090
battery=/sys/class/power_supply/BAT1
link=eth0
button=17
`)
	fc, err := Config(conf)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	want := FaceConfig{
		Locale:     "en",
		Step:       20 * time.Millisecond,
		Invert:     true,
		Background: "face.png",
		Port:       9090,
		Battery:    "/sys/class/power_supply/BAT1",
		Link:       "eth0",
		Button:     17,
	}
	if *fc != want {
		t.Errorf("got %+v, want %+v", *fc, want)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, s := range []string{
		"locale=fr",
		"locale=en,it",
		"locale=",
		"step=50ms   # sweep animation step",
		"step=-1s",
		"step=0s",
		"invert=maybe",
		"port=80x",
		"port=0",
		"port=70000",
		"button=-2",
		"button=4,5",
		"background=",
	} {
		if fc, err := Config(parseConfig(t, "[face]\n"+s+"\n")); err == nil {
			t.Errorf("%q: accepted as %+v", s, *fc)
		}
	}
}
