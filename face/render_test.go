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
	"image"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type testView struct {
	hour, minute int
	date, sunset string
	battery      BatteryGlyph
	link         LinkGlyph
}

func (v *testView) HourAngle() int             { return v.hour }
func (v *testView) MinuteAngle() int           { return v.minute }
func (v *testView) DateText() string           { return v.date }
func (v *testView) SunsetText() string         { return v.sunset }
func (v *testView) BatteryGlyph() BatteryGlyph { return v.battery }
func (v *testView) LinkGlyph() LinkGlyph       { return v.link }

// Hands pointing at 3 and 9 o'clock stay clear of the glyphs and text.
func newTestView() *testView {
	return &testView{hour: 90, minute: 270, link: NewLinkGlyph(true), battery: NewBatteryGlyph(100, false)}
}

func newTestScreen(t *testing.T, v View) *Screen {
	t.Helper()
	s, err := NewScreen(DefaultConfig())
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	s.SetView(v)
	return s
}

func lit(f *image1bit.VerticalLSB, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if f.BitAt(x, y) == image1bit.On {
				n++
			}
		}
	}
	return n
}

func TestRepaintDirty(t *testing.T) {
	s := newTestScreen(t, newTestView())
	if s.Repaint() {
		t.Errorf("repaint with nothing dirty painted a frame")
	}
	s.MarkDirty(MinuteHand)
	s.MarkDirty(LinkIcon)
	if !s.Dirty(MinuteHand) {
		t.Errorf("minute hand not dirty")
	}
	if !s.Repaint() {
		t.Fatalf("repaint did not paint a frame")
	}
	if s.Dirty(MinuteHand) || s.Dirty(LinkIcon) {
		t.Errorf("surfaces still dirty after repaint")
	}
	if s.Frames != 1 || s.Repaints[MinuteHand] != 1 || s.Repaints[LinkIcon] != 1 || s.Repaints[HourHand] != 0 {
		t.Errorf("got %d frames, repaints %v", s.Frames, s.Repaints)
	}
}

func TestRepaintNoView(t *testing.T) {
	s, err := NewScreen(DefaultConfig())
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	s.MarkDirty(Background)
	if s.Repaint() {
		t.Errorf("repaint without a view painted a frame")
	}
}

func TestLinkCleared(t *testing.T) {
	v := newTestView()
	s := newTestScreen(t, v)
	s.MarkDirty(LinkIcon)
	s.Repaint()
	if n := lit(s.Frame(), linkRect); n == 0 {
		t.Errorf("connected link glyph not drawn")
	}
	v.link = NewLinkGlyph(false)
	s.MarkDirty(LinkIcon)
	s.Repaint()
	if n := lit(s.Frame(), linkRect); n != 0 {
		t.Errorf("disconnected link region has %d pixels set, want 0", n)
	}
}

func TestBatteryBar(t *testing.T) {
	v := newTestView()
	s := newTestScreen(t, v)
	inside := image.Pt(batteryRect.Min.X+12, batteryRect.Min.Y+5)
	s.MarkDirty(BatteryIcon)
	s.Repaint()
	if s.Frame().BitAt(inside.X, inside.Y) != image1bit.On {
		t.Errorf("full battery bar not drawn at %v", inside)
	}
	v.battery = NewBatteryGlyph(0, false)
	s.MarkDirty(BatteryIcon)
	s.Repaint()
	if s.Frame().BitAt(inside.X, inside.Y) != image1bit.Off {
		t.Errorf("empty battery bar drawn at %v", inside)
	}
}

func TestTextDrawn(t *testing.T) {
	v := newTestView()
	s := newTestScreen(t, v)
	s.MarkDirty(DateText)
	s.Repaint()
	if n := lit(s.Frame(), dateRect); n != 0 {
		t.Errorf("empty date has %d pixels set", n)
	}
	v.date = "lun 15 mar"
	v.sunset = "20:41"
	s.MarkDirty(DateText)
	s.MarkDirty(SunsetText)
	s.Repaint()
	if n := lit(s.Frame(), dateRect); n == 0 {
		t.Errorf("date not drawn")
	}
	if n := lit(s.Frame(), sunsetRect); n == 0 {
		t.Errorf("sunset not drawn")
	}
}

func TestInvert(t *testing.T) {
	fc := DefaultConfig()
	fc.Invert = true
	s, err := NewScreen(fc)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	s.SetView(newTestView())
	s.MarkDirty(Background)
	s.Repaint()
	if s.Frame().BitAt(0, 0) != image1bit.On {
		t.Errorf("inverted background not set")
	}
}

func TestFrameCopy(t *testing.T) {
	s := newTestScreen(t, newTestView())
	s.MarkDirty(Background)
	s.Repaint()
	f := s.Frame()
	f.SetBit(0, 0, image1bit.On)
	if s.Frame().BitAt(0, 0) != image1bit.Off {
		t.Errorf("frame copy shares pixels with the screen")
	}
}
