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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aamcrae/watchface/face"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func TestNewMessage(t *testing.T) {
	summer := time.Date(2021, time.June, 21, 12, 0, 0, 0, time.UTC)
	m := NewMessage(summer, 51.51, -0.13)
	if ok, err := m.Bool(face.CodeSunsetSuccess); err != nil || !ok {
		t.Errorf("London success got %v, %v", ok, err)
	}
	if s, err := m.Text(face.CodeSunsetTime); err != nil || len(s) != 5 || s[2] != ':' {
		t.Errorf("London time got %q, %v", s, err)
	}
	m = NewMessage(summer, 69.65, 18.96)
	if ok, err := m.Bool(face.CodeSunsetSuccess); err != nil || ok {
		t.Errorf("Tromso success got %v, %v", ok, err)
	}
	if _, ok := m[face.CodeSunsetTime]; ok {
		t.Errorf("Tromso message has a time")
	}
	s := face.NewSunset()
	s.Receive(m)
	if s.String() != "ERR" {
		t.Errorf("Tromso sunset got %q, want %q", s.String(), "ERR")
	}
}

func TestClient(t *testing.T) {
	recv := make(chan face.Message, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/message" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m, err := face.DecodeMessage(b)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		recv <- m
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()
	c := NewClient(ts.URL)
	if err := c.Send(context.Background(), face.Message{face.CodeSunsetSuccess: 1, face.CodeSunsetTime: "20:41"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got := <-recv
	s := face.NewSunset()
	if err := s.Receive(got); err != nil || s.String() != "20:41" {
		t.Errorf("received %v gave %q, %v", got, s.String(), err)
	}
}

func TestClientError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stopped", http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	if err := NewClient(ts.URL).Send(context.Background(), face.Message{face.CodeSunsetSuccess: 0}); err == nil {
		t.Errorf("Send succeeded with a %d response", http.StatusServiceUnavailable)
	}
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cc := &CompanionConfig{Lat: 51.51, Lon: -0.13, Interval: 10 * time.Millisecond}
	c := make(chan face.Message, 10)
	done := make(chan struct{})
	go func() {
		Run(ctx, cc, fixedClock(time.Date(2021, time.June, 21, 12, 0, 0, 0, time.UTC)), func(m face.Message) error {
			select {
			case c <- m:
			default:
			}
			return nil
		})
		close(done)
	}()
	for i := 0; i < 2; i++ {
		select {
		case m := <-c:
			if ok, _ := m.Bool(face.CodeSunsetSuccess); !ok {
				t.Errorf("message %d got %v", i, m)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("message %d not sent", i)
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Errorf("Run did not return after cancel")
	}
}
