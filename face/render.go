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

// Rendering of the watch face.

package face

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Display size in pixels.
const (
	Width  = 144
	Height = 168
)

const (
	midX = Width / 2
	midY = Height / 2
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
)

// Glyph and text locations.
var (
	dateRect    = image.Rect(27, 98, 27+90, 98+21)
	sunsetRect  = image.Rect(27, 118, 27+90, 118+17)
	batteryRect = image.Rect(50, 56, 50+24, 56+12)
	linkRect    = image.Rect(83, 56, 83+9, 56+12)
)

// Hand outlines, pointing to 12 o'clock, relative to the centre.
var (
	minuteHandPath = []gg.Point{{X: -4, Y: 15}, {X: 4, Y: 15}, {X: 4, Y: -70}, {X: -4, Y: -70}}
	hourHandPath   = []gg.Point{{X: -4, Y: 15}, {X: 4, Y: 15}, {X: 4, Y: -50}, {X: -4, Y: -50}}
)

// View is the face state that the screen paints.
type View interface {
	HourAngle() int
	MinuteAngle() int
	DateText() string
	SunsetText() string
	BatteryGlyph() BatteryGlyph
	LinkGlyph() LinkGlyph
}

// Screen is the display of the watch. Surfaces are marked dirty by the
// face, and the frame is repainted when the host calls Repaint, which
// must be from the same goroutine as the face events.
// The latest monochrome frame can be read from any goroutine.
type Screen struct {
	view       View
	dc         *gg.Context
	background image.Image
	invert     bool
	dirty      [surfaceCount]bool
	Repaints   [surfaceCount]int // Number of repaints of each surface
	Frames     int               // Number of frames painted
	mu         sync.Mutex        // Guards frame
	frame      *image1bit.VerticalLSB
}

// NewScreen creates a Screen, loading the background image if configured.
func NewScreen(fc *FaceConfig) (*Screen, error) {
	s := new(Screen)
	s.dc = gg.NewContext(Width, Height)
	s.invert = fc.Invert
	s.frame = image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))
	if fc.Background != "" {
		inf, err := os.Open(fc.Background)
		if err != nil {
			return nil, err
		}
		defer inf.Close()
		s.background, _, err = image.Decode(inf)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fc.Background, err)
		}
	}
	return s, nil
}

// SetView sets the state that is painted.
func (s *Screen) SetView(v View) {
	s.view = v
}

// MarkDirty requests that the surface is repainted.
func (s *Screen) MarkDirty(surf Surface) {
	if surf >= 0 && surf < surfaceCount {
		s.dirty[surf] = true
	}
}

// Dirty returns true if the surface is waiting to be repainted.
func (s *Screen) Dirty(surf Surface) bool {
	return s.dirty[surf]
}

// Repaint paints the frame if any surface is dirty, returning true
// if a frame was painted. Surfaces are composited onto a single
// frame, so all of them are painted in order.
func (s *Screen) Repaint() bool {
	if s.view == nil {
		return false
	}
	var dirty bool
	for i, d := range s.dirty {
		if d {
			s.Repaints[i]++
			s.dirty[i] = false
			dirty = true
		}
	}
	if !dirty {
		return false
	}
	s.paint()
	s.Frames++
	return true
}

func (s *Screen) paint() {
	dc := s.dc
	s.drawBackground()
	s.drawText(dateRect, s.view.DateText())
	s.drawText(sunsetRect, s.view.SunsetText())
	s.drawBattery(s.view.BatteryGlyph())
	s.drawLink(s.view.LinkGlyph())
	drawHand(dc, hourHandPath, s.view.HourAngle())
	drawHand(dc, minuteHandPath, s.view.MinuteAngle())
	dc.SetColor(black)
	dc.DrawCircle(midX, midY, 4)
	dc.Fill()
	dc.SetColor(white)
	dc.DrawCircle(midX, midY, 3)
	dc.Fill()

	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.frame, s.frame.Bounds(), dc.Image(), image.Point{}, draw.Src)
	if s.invert {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if s.frame.BitAt(x, y) == image1bit.On {
					s.frame.SetBit(x, y, image1bit.Off)
				} else {
					s.frame.SetBit(x, y, image1bit.On)
				}
			}
		}
	}
}

// Frame returns a copy of the last painted monochrome frame.
func (s *Screen) Frame() *image1bit.VerticalLSB {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := image1bit.NewVerticalLSB(s.frame.Bounds())
	copy(f.Pix, s.frame.Pix)
	return f
}

func (s *Screen) drawBackground() {
	dc := s.dc
	dc.SetColor(black)
	dc.Clear()
	if s.background != nil {
		dc.DrawImage(s.background, 0, 0)
		return
	}
	// Hour marks, heavier at the quarters.
	dc.SetColor(white)
	for i := 0; i < 12; i++ {
		r := gg.Radians(float64(i * 30))
		inner, width := 62.0, 1.0
		if i%3 == 0 {
			inner, width = 56.0, 3.0
		}
		dc.SetLineWidth(width)
		dc.DrawLine(midX+inner*math.Sin(r), midY-inner*math.Cos(r), midX+68*math.Sin(r), midY-68*math.Cos(r))
		dc.Stroke()
	}
}

// drawText writes the text centred in the rectangle.
func (s *Screen) drawText(r image.Rectangle, text string) {
	img, ok := s.dc.Image().(*image.RGBA)
	if !ok || text == "" {
		return
	}
	font := &proggy.TinySZ8pt7b
	_, w := tinyfont.LineWidth(font, text)
	x := r.Min.X + (r.Dx()-int(w))/2
	y := r.Min.Y + r.Dy()/2 + 4
	tinyfont.WriteLine(&rgbaDisplay{img: img, clip: r}, font, int16(x), int16(y), text, white)
}

func (s *Screen) drawBattery(g BatteryGlyph) {
	dc := s.dc
	x, y := float64(batteryRect.Min.X), float64(batteryRect.Min.Y)
	dc.SetColor(white)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x+5.5, y+2.5, 16, 7)
	dc.Stroke()
	dc.DrawRectangle(x+22, y+4, 2, 4)
	dc.Fill()
	if g.Charging {
		// Lightning bolt beside the outline.
		dc.MoveTo(x+3, y)
		dc.LineTo(x, y+6)
		dc.LineTo(x+2, y+6)
		dc.LineTo(x+1, y+12)
		dc.LineTo(x+4, y+5)
		dc.LineTo(x+2, y+5)
		dc.ClosePath()
		dc.Fill()
		return
	}
	if g.Bar > 0 {
		dc.DrawRectangle(x+7, y+4, float64(g.Bar), 4)
		dc.Fill()
	}
}

func (s *Screen) drawLink(g LinkGlyph) {
	dc := s.dc
	x, y := float64(linkRect.Min.X), float64(linkRect.Min.Y)
	if g.Mode == CompClear {
		dc.SetColor(black)
		dc.DrawRectangle(x, y, float64(linkRect.Dx()), float64(linkRect.Dy()))
		dc.Fill()
		return
	}
	dc.SetColor(white)
	dc.SetLineWidth(1)
	dc.MoveTo(x+1.5, y+3.5)
	dc.LineTo(x+7.5, y+8.5)
	dc.LineTo(x+4.5, y+11.5)
	dc.LineTo(x+4.5, y+0.5)
	dc.LineTo(x+7.5, y+3.5)
	dc.LineTo(x+1.5, y+8.5)
	dc.Stroke()
}

// drawHand draws a filled hand outline rotated to the angle in degrees.
func drawHand(dc *gg.Context, path []gg.Point, angle int) {
	dc.Push()
	defer dc.Pop()
	dc.Translate(midX, midY)
	dc.Rotate(gg.Radians(float64(angle)))
	for i, p := range path {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
	dc.SetColor(white)
	dc.FillPreserve()
	dc.SetColor(black)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// rgbaDisplay lets tinyfont draw onto the frame, clipped to a rectangle.
type rgbaDisplay struct {
	img  *image.RGBA
	clip image.Rectangle
}

var _ drivers.Displayer = (*rgbaDisplay)(nil)

func (d *rgbaDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	if image.Pt(int(x), int(y)).In(d.clip) {
		d.img.SetRGBA(int(x), int(y), c)
	}
}

func (d *rgbaDisplay) Display() error {
	return nil
}
