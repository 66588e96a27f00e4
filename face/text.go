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
	"unicode/utf8"
)

// Text is a string with a fixed capacity in characters.
// Longer values are truncated on a character boundary.
type Text struct {
	max int
	s   string
}

// NewText creates a Text holding at most max characters.
func NewText(max int, initial string) *Text {
	t := &Text{max: max}
	t.Set(initial)
	return t
}

// Set stores s, returning true if it had to be truncated.
func (t *Text) Set(s string) bool {
	var cut bool
	t.s, cut = truncate(s, t.max)
	return cut
}

func (t *Text) String() string {
	return t.s
}

// Cap returns the capacity in characters.
func (t *Text) Cap() int {
	return t.max
}

func truncate(s string, max int) (string, bool) {
	if max <= 0 {
		return "", s != ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s, false
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i], true
		}
		n++
	}
	return s, false
}
