package renderer

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/cinematool/internal/cinema"
)

func testPath(raw ...int) *cinema.CameraPath {
	p := &cinema.CameraPath{
		Min:   [3]float64{-10, 0, -10},
		Range: [3]float64{20, 5, 20},
	}
	for _, v := range raw {
		p.Keyframes = append(p.Keyframes, cinema.Keyframe{
			Position:    [3]int{v, v, v},
			Orientation: [4]int{0, 0, 0, cinema.KeyframeScale},
		})
	}
	return p
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  int
		want float64
	}{
		{0, 0},
		{32766, 1},
		{-32766, -1},
		{16383, 0.5},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestWorldPosition(t *testing.T) {
	p := testPath()
	k := cinema.Keyframe{Position: [3]int{16383, 0, -16383}}

	if got, want := WorldPosition(p, k), [3]float64{0, 0, -20}; got != want {
		t.Errorf("absolute: got %v, want %v", got, want)
	}

	p.Relative = true
	p.Position = [3]float64{1, 2, 3}
	if got, want := WorldPosition(p, k), [3]float64{1, 2, -17}; got != want {
		t.Errorf("relative: got %v, want %v", got, want)
	}
}

func TestSamplePath(t *testing.T) {
	p := testPath(0, 32766)

	tests := []struct {
		name   string
		smooth bool
		t      float64
		wantX  float64
	}{
		{"start", false, 0, -10},
		{"before start", false, -1, -10},
		{"middle", false, 0.5, 0},
		{"quarter linear", false, 0.25, -5},
		{"quarter eased", true, 0.25, -8.75},
		{"middle eased", true, 0.5, 0},
		{"end", false, 1, 10},
		{"after end", true, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Smooth = tt.smooth
			state := SamplePath(p, tt.t)
			if math.Abs(state.Position[0]-tt.wantX) > 1e-9 {
				t.Errorf("x at %.2f: got %v, want %v", tt.t, state.Position[0], tt.wantX)
			}
			if state.Orientation != [4]float64{0, 0, 0, 1} {
				t.Errorf("orientation: got %v", state.Orientation)
			}
		})
	}
}

func TestSampleClosedPath(t *testing.T) {
	p := testPath(0, 16383, 32766)
	p.Closed = true

	end := SamplePath(p, 1)
	if end.Position != WorldPosition(p, p.Keyframes[0]) {
		t.Errorf("closed path should end at its first keyframe, got %v", end.Position)
	}

	// the original slice is not extended
	if len(p.Keyframes) != 3 {
		t.Errorf("keyframes modified: %d", len(p.Keyframes))
	}
}

func TestSampleEmptyPath(t *testing.T) {
	state := SamplePath(&cinema.CameraPath{Min: [3]float64{1, 2, 3}}, 0.5)
	if state.Position != [3]float64{1, 2, 3} {
		t.Errorf("got %v", state.Position)
	}
	if state.Orientation != [4]float64{0, 0, 0, 1} {
		t.Errorf("zero quaternion should fall back to identity, got %v", state.Orientation)
	}
}

func TestNlerp(t *testing.T) {
	identity := [4]float64{0, 0, 0, 1}
	halfTurn := [4]float64{0, 0, 1, 0}

	q := nlerp(identity, halfTurn, 0.5)
	want := math.Sqrt(0.5)
	if math.Abs(q[2]-want) > 1e-9 || math.Abs(q[3]-want) > 1e-9 {
		t.Errorf("got %v", q)
	}

	// -q is the same rotation; interpolation takes the short arc
	q = nlerp(identity, [4]float64{0, 0, 0, -1}, 0.5)
	if q != identity {
		t.Errorf("got %v", q)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.0625}, {0.75, 0.9375}} {
		if got := easeInOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("easeInOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderPreview(t *testing.T) {
	p := testPath(0, 32766)
	img := RenderPreview(p, 64, 64)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds %v", b)
	}
	if got := img.RGBAAt(0, 63); got != BackgroundColor {
		t.Errorf("corner: got %v, want background", got)
	}

	// first keyframe maps to the top-left margin, the last to the bottom-right
	if c := img.RGBAAt(8, 8); c.G < 150 || c.R > 120 {
		t.Errorf("start marker: got %v", c)
	}
	if c := img.RGBAAt(55, 55); c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("keyframe marker: got %v", c)
	}
	if c := img.RGBAAt(31, 31); c.R < 200 || c.B > 100 {
		t.Errorf("path: got %v", c)
	}
}

func TestRenderPreviewTiny(t *testing.T) {
	img := RenderPreview(testPath(0, 100), 10, 10)
	if img.RGBAAt(5, 5) != BackgroundColor {
		t.Error("tiny preview should only hold the background")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.png")
	if err := SavePNG(RenderPreview(testPath(0, 32766), 32, 32), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("size %dx%d", cfg.Width, cfg.Height)
	}
}
