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

// Battery and link status glyphs.

package face

const (
	batteryBarWidth = 11 // Width in pixels of a full battery bar
)

// Status is a snapshot of the battery and link state.
type Status struct {
	Level     int  // Battery charge, 0-100
	Plugged   bool // Charger connected
	Connected bool // Wireless link up
}

// BatteryGlyph describes how the battery glyph is drawn.
// When charging, the charge icon replaces the outline and bar.
type BatteryGlyph struct {
	Charging bool
	Level    int
	Bar      int // Filled bar width in pixels
}

// NewBatteryGlyph computes the glyph for a charge level and plug state.
// The bar width is truncated, not rounded.
func NewBatteryGlyph(level int, plugged bool) BatteryGlyph {
	level = clampLevel(level)
	if plugged {
		return BatteryGlyph{Charging: true, Level: level}
	}
	return BatteryGlyph{Level: level, Bar: int(float64(level) / 100.0 * batteryBarWidth)}
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// CompOp is the compositing mode used to draw a glyph.
type CompOp int

const (
	CompAssign CompOp = iota // Draw the glyph
	CompClear                // Blank the glyph's region
)

func (c CompOp) String() string {
	if c == CompClear {
		return "clear"
	}
	return "assign"
}

// LinkGlyph describes how the wireless link glyph is drawn.
type LinkGlyph struct {
	Mode CompOp
}

// NewLinkGlyph returns the glyph for the link state. A lost link still
// draws, but with the clear mode so the previous glyph is erased.
func NewLinkGlyph(connected bool) LinkGlyph {
	if connected {
		return LinkGlyph{Mode: CompAssign}
	}
	return LinkGlyph{Mode: CompClear}
}
