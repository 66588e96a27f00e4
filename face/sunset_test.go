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
	"errors"
	"testing"
)

func TestSunset(t *testing.T) {
	tests := []struct {
		name  string
		m     Message
		want  string
		valid bool
		err   error
	}{
		{"success", Message{CodeSunsetSuccess: 1, CodeSunsetTime: "20:41"}, "20:41", true, nil},
		{"bool", Message{CodeSunsetSuccess: true, CodeSunsetTime: "07:02"}, "07:02", true, nil},
		{"truncated", Message{CodeSunsetSuccess: 1, CodeSunsetTime: "20:41:59"}, "20:41", true, nil},
		{"failed", Message{CodeSunsetSuccess: 0, CodeSunsetTime: "20:41"}, "ERR", false, ErrSunsetFailed},
		{"no success", Message{CodeSunsetTime: "20:41"}, "ERR", false, ErrMissingField},
		{"no time", Message{CodeSunsetSuccess: 1}, "ERR", false, ErrMissingField},
	}
	for _, tc := range tests {
		s := NewSunset()
		err := s.Receive(tc.m)
		if tc.err == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.err != nil && !errors.Is(err, tc.err) {
			t.Errorf("%s: error got %v, want %v", tc.name, err, tc.err)
		}
		if got := s.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if s.Valid() != tc.valid {
			t.Errorf("%s: valid got %v, want %v", tc.name, s.Valid(), tc.valid)
		}
	}
}

func TestSunsetBadType(t *testing.T) {
	s := NewSunset()
	if err := s.Receive(Message{CodeSunsetSuccess: "yes", CodeSunsetTime: "20:41"}); err == nil {
		t.Errorf("string success field accepted")
	}
	if err := s.Receive(Message{CodeSunsetSuccess: 1, CodeSunsetTime: 2041}); err == nil {
		t.Errorf("integer time field accepted")
	}
	if got := s.String(); got != sunsetError {
		t.Errorf("got %q, want %q", got, sunsetError)
	}
}

func TestSunsetPlaceholder(t *testing.T) {
	s := NewSunset()
	if got := s.String(); got != "--:--" || s.Valid() {
		t.Errorf("got %q valid %v, want %q invalid", got, s.Valid(), "--:--")
	}
	s.Receive(Message{CodeSunsetSuccess: 1, CodeSunsetTime: "19:30"})
	s.Receive(Message{CodeSunsetSuccess: 0})
	if got := s.String(); got != "ERR" {
		t.Errorf("after failure got %q, want %q", got, "ERR")
	}
}
