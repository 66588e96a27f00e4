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

// Sunset time received from the companion application.

package face

import (
	"errors"
	"fmt"
)

// Message field codes shared with the companion application.
const (
	CodeSunsetSuccess = 0 // Non-zero if the sunset time was found
	CodeSunsetTime    = 1 // Sunset time as HH:MM
)

const (
	sunsetCapacity    = len("88:88")
	sunsetPlaceholder = "--:--"
	sunsetError       = "ERR"
)

var (
	ErrSunsetFailed = errors.New("companion reported failure")
	ErrMissingField = errors.New("missing field")
)

// Message is an inbound message from the companion, keyed by field code.
type Message map[int]interface{}

// Sunset caches the last sunset time received.
type Sunset struct {
	text  *Text
	valid bool
}

// NewSunset returns a Sunset holding the placeholder text.
func NewSunset() *Sunset {
	return &Sunset{text: NewText(sunsetCapacity, sunsetPlaceholder)}
}

// Receive updates the sunset from a message. Any failure, including
// a missing or malformed field, leaves the error sentinel in place
// and is returned.
func (s *Sunset) Receive(m Message) error {
	err := s.receive(m)
	if err != nil {
		s.text.Set(sunsetError)
		s.valid = false
	}
	return err
}

func (s *Sunset) receive(m Message) error {
	ok, err := m.Bool(CodeSunsetSuccess)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSunsetFailed
	}
	v, err := m.Text(CodeSunsetTime)
	if err != nil {
		return err
	}
	s.text.Set(v)
	s.valid = true
	return nil
}

func (s *Sunset) String() string {
	return s.text.String()
}

// Valid returns true if the text holds a received sunset time.
func (s *Sunset) Valid() bool {
	return s.valid
}

// Bool returns the field as a boolean. Integers are true if non-zero.
func (m Message) Bool(code int) (bool, error) {
	v, ok := m[code]
	if !ok {
		return false, fmt.Errorf("field %d: %w", code, ErrMissingField)
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		return b != 0, nil
	case int32:
		return b != 0, nil
	case int64:
		return b != 0, nil
	case uint64:
		return b != 0, nil
	}
	return false, fmt.Errorf("field %d: unexpected type %T", code, v)
}

// Text returns the field as a string.
func (m Message) Text(code int) (string, error) {
	v, ok := m[code]
	if !ok {
		return "", fmt.Errorf("field %d: %w", code, ErrMissingField)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %d: unexpected type %T", code, v)
	}
	return s, nil
}
