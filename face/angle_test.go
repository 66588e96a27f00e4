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
)

func at(hour, minute, sec int) time.Time {
	return time.Date(2021, time.March, 15, hour, minute, sec, 0, time.Local)
}

func TestAngles(t *testing.T) {
	tests := []struct {
		t            time.Time
		hour, minute int
	}{
		{at(0, 0, 0), 0, 0},
		{at(0, 0, 9), 0, 0},
		{at(0, 0, 10), 0, 1},
		{at(0, 0, 59), 0, 5},
		{at(3, 0, 0), 90, 0},
		{at(10, 10, 30), 305, 63},
		{at(12, 0, 0), 0, 0},
		{at(13, 0, 0), 30, 0},
		{at(23, 59, 59), 359, 359},
	}
	for _, tc := range tests {
		if got := HourAngle(tc.t); got != tc.hour {
			t.Errorf("HourAngle(%s) got %d, want %d", tc.t.Format("15:04:05"), got, tc.hour)
		}
		if got := MinuteAngle(tc.t); got != tc.minute {
			t.Errorf("MinuteAngle(%s) got %d, want %d", tc.t.Format("15:04:05"), got, tc.minute)
		}
	}
}
