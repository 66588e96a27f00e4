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

// Package companion is the phone-side application of the watch face.
// It works out the time of sunset and sends it to the watch.
package companion

import (
	"errors"
	"math"
	"time"
)

// ErrNoSunset is returned when the sun does not set on the day,
// i.e polar day or polar night.
var ErrNoSunset = errors.New("no sunset on this day")

// Official zenith for sunrise/sunset, including refraction.
const zenith = 90.833

// Sunset returns the time of sunset on the day (in the day's location)
// at the latitude and longitude, using the NOAA approximation.
// The result is accurate to a minute or two.
func Sunset(day time.Time, lat, lon float64) (time.Time, error) {
	loc := day.Location()
	n := float64(day.YearDay())
	lngHour := lon / 15.0
	t := n + (18.0-lngHour)/24.0
	m := 0.9856*t - 3.289
	l := normalize(m+1.916*math.Sin(deg2rad(m))+0.020*math.Sin(2*deg2rad(m))+282.634, 360)
	ra := normalize(rad2deg(math.Atan(0.91764*math.Tan(deg2rad(l)))), 360)
	// Right ascension must be in the same quadrant as the true longitude.
	lQuadrant := math.Floor(l/90.0) * 90.0
	raQuadrant := math.Floor(ra/90.0) * 90.0
	ra = (ra + (lQuadrant - raQuadrant)) / 15.0
	sinDec := 0.39782 * math.Sin(deg2rad(l))
	cosDec := math.Cos(math.Asin(sinDec))
	cosH := (math.Cos(deg2rad(zenith)) - sinDec*math.Sin(deg2rad(lat))) / (cosDec * math.Cos(deg2rad(lat)))
	if cosH > 1 || cosH < -1 {
		return time.Time{}, ErrNoSunset
	}
	h := rad2deg(math.Acos(cosH)) / 15.0
	localT := h + ra - 0.06571*t - 6.622
	ut := normalize(localT-lngHour, 24)
	utc := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(ut * float64(time.Hour)))
	// UT wraps around midnight, so the result may land on the
	// neighbouring local day.
	s := utc.In(loc)
	y, mo, d := day.Date()
	want := time.Date(y, mo, d, 0, 0, 0, 0, loc)
	switch got := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc); {
	case got.Before(want):
		s = s.Add(24 * time.Hour)
	case got.After(want):
		s = s.Add(-24 * time.Hour)
	}
	return s, nil
}

func deg2rad(v float64) float64 { return v * math.Pi / 180.0 }
func rad2deg(v float64) float64 { return v * 180.0 / math.Pi }

func normalize(v, max float64) float64 {
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
