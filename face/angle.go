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

// Hand angles derived from the wall clock.

package face

import (
	"time"
)

// StepAngle is the number of degrees a hand advances on each animation step.
const StepAngle = 6

// MinuteAngle returns the minute hand angle in degrees for the time.
// The hand moves in 6 discrete steps per minute, one every 10 seconds.
func MinuteAngle(t time.Time) int {
	_, minute, sec := t.Clock()
	return minute*6 + sec/10
}

// HourAngle returns the hour hand angle in degrees for the time,
// advancing half a degree each minute.
func HourAngle(t time.Time) int {
	hour, minute, _ := t.Clock()
	return (hour%12)*30 + minute/2
}
