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

package companion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aamcrae/config"
)

// CompanionConfig is read from the [companion] section of the config file.
type CompanionConfig struct {
	Lat, Lon float64
	Interval time.Duration // How often to send the sunset time
	URL      string        // Watch URL; if empty, messages are delivered in-process
}

// Config reads the companion config. If there is no [companion]
// section, nil is returned and the companion is not run.
// Sample config:
//
//	[companion]
//	# latitude, longitude
//	location=45.46,9.19
//	interval=1h
//	url=http://watch:8080
func Config(conf *config.Config) (*CompanionConfig, error) {
	s := conf.GetSection("companion")
	if s == nil {
		return nil, nil
	}
	cc := &CompanionConfig{Interval: time.Hour}
	e := s.Get("location")
	if len(e) != 1 || len(e[0].Tokens) != 2 {
		return nil, fmt.Errorf("location: must be latitude,longitude")
	}
	var err error
	if cc.Lat, err = parseDegrees(e[0].Tokens[0], 90); err != nil {
		return nil, fmt.Errorf("location: latitude: %v", err)
	}
	if cc.Lon, err = parseDegrees(e[0].Tokens[1], 180); err != nil {
		return nil, fmt.Errorf("location: longitude: %v", err)
	}
	if s.Has("interval") {
		v, err := s.GetArg("interval")
		if err != nil {
			return nil, err
		}
		cc.Interval, err = time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("interval: %v", err)
		}
		if cc.Interval <= 0 {
			return nil, fmt.Errorf("interval: %s: must be positive", v)
		}
	}
	if s.Has("url") {
		v, err := s.GetArg("url")
		if err != nil {
			return nil, err
		}
		cc.URL = strings.TrimSpace(v)
	}
	return cc, nil
}

func parseDegrees(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%g: out of range", v)
	}
	return v, nil
}
