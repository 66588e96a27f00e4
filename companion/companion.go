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
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aamcrae/watchface/face"
)

// NewMessage builds the sunset message for the day of now.
// If there is no sunset, the message reports failure.
func NewMessage(now time.Time, lat, lon float64) face.Message {
	s, err := Sunset(now, lat, lon)
	if err != nil {
		return face.Message{face.CodeSunsetSuccess: 0}
	}
	return face.Message{
		face.CodeSunsetSuccess: 1,
		face.CodeSunsetTime:    s.Format("15:04"),
	}
}

// Client sends messages to the watch over HTTP.
type Client struct {
	URL  string // Base URL of the watch e.g http://localhost:8080
	HTTP *http.Client
}

// NewClient creates a client for the watch at the URL.
func NewClient(url string) *Client {
	return &Client{URL: url, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

// Send posts the message to the watch.
func (c *Client) Send(ctx context.Context, m face.Message) error {
	b, err := face.EncodeMessage(m)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/message", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/yaml")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%s: %s", c.URL, resp.Status)
	}
	return nil
}

// Clock supplies the local time.
type Clock interface {
	Now() time.Time
}

// Run sends the sunset message at once and then every interval
// until the context is cancelled.
func Run(ctx context.Context, cc *CompanionConfig, clock Clock, deliver func(face.Message) error) {
	send := func() {
		m := NewMessage(clock.Now(), cc.Lat, cc.Lon)
		if err := deliver(m); err != nil {
			log.Printf("companion: %v", err)
		}
	}
	send()
	ticker := time.NewTicker(cc.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			send()
		}
	}
}
