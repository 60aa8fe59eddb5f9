package camera

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsField(t *testing.T) {
	cam := New(1280, 720, 200, 200)

	if cam.X != 100 || cam.Y != 100 {
		t.Errorf("expected camera at (100, 100), got (%f, %f)", cam.X, cam.Y)
	}
	// Height is the tighter dimension: 720 / 200
	if !approx(cam.Zoom, 3.6) {
		t.Errorf("expected zoom 3.6, got %f", cam.Zoom)
	}

	// Field corners land inside the viewport
	for _, p := range [][2]float32{{0, 0}, {200, 200}} {
		sx, sy := cam.WorldToScreen(p[0], p[1])
		if sx < 0 || sx > 1280 || sy < 0 || sy > 720 {
			t.Errorf("corner %v maps off screen to (%f, %f)", p, sx, sy)
		}
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 200, 200)

	sx, sy := cam.WorldToScreen(100, 100)
	if !approx(sx, 640) || !approx(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 200, 200)
	cam.SetZoom(7)
	cam.Pan(50, -20)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !approx(sx, tc.sx) || !approx(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanClampsToField(t *testing.T) {
	tests := []struct {
		name         string
		dx, dy       float32
		wantX, wantY float32
	}{
		{"inside", 36, -36, 110, 90},
		{"past right", 10000, 0, 200, 100},
		{"past top left", -10000, -10000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(1280, 720, 200, 200)
			cam.Pan(tt.dx, tt.dy)
			if !approx(cam.X, tt.wantX) || !approx(cam.Y, tt.wantY) {
				t.Errorf("Pan(%v, %v) -> (%f, %f), want (%f, %f)", tt.dx, tt.dy, cam.X, cam.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 200, 200)

	cam.SetZoom(1000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to max %f, got %f", cam.MaxZoom, cam.Zoom)
	}

	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to min %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(1280, 720, 200, 200)

	wx, wy := cam.ScreenToWorld(900, 500)
	cam.ZoomAt(900, 500, 2)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approx(sx, 900) || !approx(sy, 500) {
		t.Errorf("point under cursor moved to (%f, %f)", sx, sy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 200, 200)
	cam.SetZoom(14.4) // 720 px shows 50 field units vertically

	tests := []struct {
		x, y, r float32
		want    bool
	}{
		{100, 100, 0, true},
		{100, 124, 0, true},
		{100, 130, 0, false},
		{100, 130, 6, true},
	}
	for _, tt := range tests {
		if got := cam.IsVisible(tt.x, tt.y, tt.r); got != tt.want {
			t.Errorf("IsVisible(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.r, got, tt.want)
		}
	}
}

func TestResizeRefits(t *testing.T) {
	cam := New(1280, 720, 200, 200)
	cam.Resize(400, 400)
	if !approx(cam.FitZoom, 2) {
		t.Errorf("FitZoom = %f, want 2", cam.FitZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f outside [%f, %f]", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 200, 200)
	cam.Pan(300, 300)
	cam.ZoomBy(3)
	cam.Reset()

	if cam.X != 100 || cam.Y != 100 || cam.Zoom != cam.FitZoom {
		t.Errorf("Reset left camera at (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}
