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
	"errors"
	"testing"
	"time"
)

func TestSunset(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		lat, lon float64
		want     string // Expected local time of sunset, to within 10 minutes
	}{
		{"London", time.Date(2021, time.June, 21, 12, 0, 0, 0, time.UTC), 51.51, -0.13, "20:21"},
		{"Milan", time.Date(2021, time.December, 21, 12, 0, 0, 0, time.FixedZone("CET", 3600)), 45.46, 9.19, "16:42"},
		{"Sydney", time.Date(2021, time.June, 21, 12, 0, 0, 0, time.FixedZone("AEST", 10*3600)), -33.87, 151.21, "16:53"},
		{"Los Angeles", time.Date(2021, time.June, 21, 12, 0, 0, 0, time.FixedZone("PDT", -7*3600)), 34.05, -118.24, "20:08"},
	}
	for _, tc := range tests {
		s, err := Sunset(tc.day, tc.lat, tc.lon)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if s.YearDay() != tc.day.YearDay() || s.Location() != tc.day.Location() {
			t.Errorf("%s: got %s, want on %s", tc.name, s, tc.day.Format("2006-01-02 MST"))
		}
		w, _ := time.Parse("15:04", tc.want)
		want := time.Date(tc.day.Year(), tc.day.Month(), tc.day.Day(), w.Hour(), w.Minute(), 0, 0, tc.day.Location())
		if d := s.Sub(want); d > 10*time.Minute || d < -10*time.Minute {
			t.Errorf("%s: got %s, want %s", tc.name, s.Format("15:04"), tc.want)
		}
	}
}

func TestNoSunset(t *testing.T) {
	for _, day := range []time.Time{
		time.Date(2021, time.June, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2021, time.December, 21, 12, 0, 0, 0, time.UTC),
	} {
		if _, err := Sunset(day, 69.65, 18.96); !errors.Is(err, ErrNoSunset) {
			t.Errorf("%s: got %v, want %v", day.Format("2006-01-02"), err, ErrNoSunset)
		}
	}
}
