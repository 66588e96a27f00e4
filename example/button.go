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

// Program to demonstrate reading the replay button

package main

import (
	"flag"
	"log"

	"github.com/aamcrae/watchface/io"
)

var gpio = flag.Int("gpio", 4, "GPIO pin for the button")

func main() {
	flag.Parse()
	b, err := io.NewButton(*gpio)
	if err != nil {
		log.Fatalf("Button %d: %v", *gpio, err)
	}
	defer b.Close()
	for i := 1; ; i++ {
		if err := b.Wait(); err != nil {
			log.Fatalf("Button %d: Wait: %v", *gpio, err)
		}
		log.Printf("button %d pressed (%d)\n", *gpio, i)
	}
}
