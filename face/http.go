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

// HTTP server for the watch face.

package face

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"

	"gopkg.in/yaml.v3"
)

const maxMessageSize = 1024

// Poster runs functions on the event loop that owns the face.
// Post returns false if the loop is no longer running.
type Poster interface {
	Post(func()) bool
}

// Counter is implemented by loops that count the callbacks they run.
type Counter interface {
	Dispatched() int
}

// Server provides the HTTP interface to the face:
//
//	GET  /face.png  the current display frame
//	GET  /status    face state as YAML
//	POST /message   inbound companion message as YAML (or JSON)
//	POST /replay    replay the sweep animation
type Server struct {
	face   *Face
	screen *Screen
	loop   Poster
}

// NewServer creates a Server. All access to the face is made through the loop.
func NewServer(f *Face, s *Screen, loop Poster) *Server {
	return &Server{face: f, screen: s, loop: loop}
}

// Handler returns the HTTP handler for the server.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/face.png", srv.frame)
	mux.HandleFunc("/status", srv.status)
	mux.HandleFunc("/message", srv.message)
	mux.HandleFunc("/replay", srv.replay)
	return mux
}

// Listen opens the HTTP port. Connections made once it returns are
// queued until Serve is called.
func Listen(port int) (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf(":%d", port))
}

// Serve handles requests on the listener.
func (srv *Server) Serve(l net.Listener) error {
	log.Printf("Starting server on %s", l.Addr())
	server := &http.Server{Handler: srv.Handler()}
	return server.Serve(l)
}

func (srv *Server) frame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, srv.screen.Frame()); err != nil {
		log.Printf("Error writing image: %v", err)
	}
}

type statusReport struct {
	Phase     string `yaml:"phase"`
	Hour      int    `yaml:"hour_angle"`
	Minute    int    `yaml:"minute_angle"`
	Date      string `yaml:"date"`
	Sunset    string `yaml:"sunset"`
	Battery   int    `yaml:"battery"`
	Plugged   bool   `yaml:"plugged"`
	Connected bool   `yaml:"connected"`
	Frames    int    `yaml:"frames"`
	Stale     int    `yaml:"stale_timers"`
	Events    int    `yaml:"events"`

	Repaints map[string]int `yaml:"repaints"`
}

func (srv *Server) status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c := make(chan statusReport, 1)
	ok := srv.loop.Post(func() {
		st := srv.face.Status()
		rep := statusReport{
			Phase:     srv.face.Phase().String(),
			Hour:      srv.face.HourAngle(),
			Minute:    srv.face.MinuteAngle(),
			Date:      srv.face.DateText(),
			Sunset:    srv.face.SunsetText(),
			Battery:   st.Level,
			Plugged:   st.Plugged,
			Connected: st.Connected,
			Frames:    srv.screen.Frames,
			Stale:     srv.face.Stale,
			Repaints:  make(map[string]int),
		}
		if lc, ok := srv.loop.(Counter); ok {
			rep.Events = lc.Dispatched()
		}
		for surf, n := range srv.screen.Repaints {
			rep.Repaints[Surface(surf).String()] = n
		}
		c <- rep
	})
	if !ok {
		http.Error(w, "stopped", http.StatusServiceUnavailable)
		return
	}
	var rep statusReport
	select {
	case rep = <-c:
	case <-r.Context().Done():
		return
	}
	b, err := yaml.Marshal(rep)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(b)
}

func (srv *Server) message(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m, err := DecodeMessage(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !srv.loop.Post(func() { srv.face.OnMessage(m) }) {
		http.Error(w, "stopped", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (srv *Server) replay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	c := make(chan bool, 1)
	if !srv.loop.Post(func() { c <- srv.face.Replay() }) {
		http.Error(w, "stopped", http.StatusServiceUnavailable)
		return
	}
	select {
	case ok := <-c:
		if !ok {
			http.Error(w, "animation in progress", http.StatusConflict)
			return
		}
	case <-r.Context().Done():
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// DecodeMessage decodes a YAML mapping of field codes to values.
// JSON objects are accepted too, with the codes as quoted keys.
func DecodeMessage(b []byte) (Message, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("message: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("message: not a mapping")
	}
	n := doc.Content[0]
	m := make(Message)
	for i := 0; i+1 < len(n.Content); i += 2 {
		code, err := strconv.Atoi(n.Content[i].Value)
		if err != nil {
			return nil, fmt.Errorf("message: key %q: %v", n.Content[i].Value, err)
		}
		var v interface{}
		if err := n.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("message: field %d: %v", code, err)
		}
		m[code] = v
	}
	return m, nil
}

// EncodeMessage encodes a message as YAML.
func EncodeMessage(m Message) ([]byte, error) {
	return yaml.Marshal(map[int]interface{}(m))
}
