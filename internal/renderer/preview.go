package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/ivlev/cinematool/internal/cinema"
)

var (
	BackgroundColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	PathColor       = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	KeyframeColor   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	StartColor      = color.RGBA{R: 60, G: 200, B: 90, A: 255}
)

const (
	previewMargin = 8
	samplesPerKey = 32
	lineWidth     = 2.0
	markerSize    = 5.0
)

// viewport projects the path's X/Z plane (top-down) onto the image.
type viewport struct {
	min, size [2]float64
	w, h      int
}

func newViewport(p *cinema.CameraPath, w, h int) viewport {
	v := viewport{w: w, h: h}
	for i, axis := range [2]int{0, 2} {
		v.min[i] = p.Min[axis]
		if p.Relative {
			v.min[i] += p.Position[axis]
		}
		v.size[i] = p.Range[axis]
		if v.size[i] == 0 {
			v.size[i] = 1
		}
	}
	return v
}

func (v viewport) toPixel(pos [3]float64) (float32, float32) {
	spanX := float64(v.w - 1 - 2*previewMargin)
	spanY := float64(v.h - 1 - 2*previewMargin)
	x := previewMargin + (pos[0]-v.min[0])/v.size[0]*spanX
	y := previewMargin + (pos[2]-v.min[1])/v.size[1]*spanY
	return float32(x), float32(y)
}

// RenderPreview rasterizes a top-down view of the path: the sampled curve,
// a marker per keyframe and a distinct marker on the first keyframe.
func RenderPreview(p *cinema.CameraPath, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)
	if w <= 2*previewMargin || h <= 2*previewMargin {
		return img
	}
	vp := newViewport(p, w, h)

	keys := len(p.Keyframes)
	if keys > 1 {
		r := vector.NewRasterizer(w, h)
		r.DrawOp = draw.Over
		steps := (keys - 1) * samplesPerKey
		if p.Closed {
			steps += samplesPerKey
		}
		px, py := vp.toPixel(SamplePath(p, 0).Position)
		for s := 1; s <= steps; s++ {
			qx, qy := vp.toPixel(SamplePath(p, float64(s)/float64(steps)).Position)
			segment(r, px, py, qx, qy, lineWidth)
			px, py = qx, qy
		}
		r.Draw(img, img.Bounds(), image.NewUniform(PathColor), image.Point{})
	}

	markers := vector.NewRasterizer(w, h)
	markers.DrawOp = draw.Over
	for i := 1; i < keys; i++ {
		x, y := vp.toPixel(WorldPosition(p, p.Keyframes[i]))
		square(markers, x, y, markerSize)
	}
	markers.Draw(img, img.Bounds(), image.NewUniform(KeyframeColor), image.Point{})

	start := vector.NewRasterizer(w, h)
	start.DrawOp = draw.Over
	first := cinema.Keyframe{}
	if keys > 0 {
		first = p.Keyframes[0]
	}
	x, y := vp.toPixel(WorldPosition(p, first))
	square(start, x, y, markerSize)
	start.Draw(img, img.Bounds(), image.NewUniform(StartColor), image.Point{})

	return img
}

// segment adds a quad of the given width around a-b. All quads share one
// winding so overlaps do not cancel.
func segment(r *vector.Rasterizer, ax, ay, bx, by, width float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

func square(r *vector.Rasterizer, x, y, size float32) {
	h := size / 2
	r.MoveTo(x-h, y-h)
	r.LineTo(x+h, y-h)
	r.LineTo(x+h, y+h)
	r.LineTo(x-h, y+h)
	r.ClosePath()
}

// SavePNG writes img as a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
