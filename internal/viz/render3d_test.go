package viz

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/orbit"
)

func flatCamera() *Camera {
	c := NewCamera()
	c.RotX = 0
	return c
}

func TestProjectCentersTarget(t *testing.T) {
	cam := flatCamera()
	cam.Target = orbit.Vec3{X: 5, Y: -3, Z: 1}
	x, y, _, ok := cam.Project(cam.Target, 160, 96)
	if !ok || x != 80 || y != 48 {
		t.Errorf("Project(target) = %d,%d,%v, want 80,48,true", x, y, ok)
	}
}

func TestProjectScale(t *testing.T) {
	cam := flatCamera()
	x, y, _, ok := cam.Project(orbit.Vec3{X: ViewExtent}, 160, 96)
	// 96/2 dots span ViewExtent AU at zoom 1
	if !ok || x != 128 || y != 48 {
		t.Errorf("Project = %d,%d,%v, want 128,48,true", x, y, ok)
	}

	cam.SetZoom(4)
	if _, _, _, ok := cam.Project(orbit.Vec3{X: ViewExtent}, 160, 96); ok {
		t.Error("point should leave the canvas when zoomed in")
	}
	if got := cam.PixelsPerAU(160, 96); math.Abs(got-6) > 1e-12 {
		t.Errorf("PixelsPerAU = %v, want 6", got)
	}
}

func TestProjectRotation(t *testing.T) {
	cam := flatCamera()
	cam.RotateZ(math.Pi / 2)
	x, y, _, ok := cam.Project(orbit.Vec3{X: 16}, 160, 96)
	if !ok || absInt(x-80) > 1 || absInt(y-24) > 1 {
		t.Errorf("rotated Project = %d,%d,%v, want about 80,24", x, y, ok)
	}
}

func TestProjectRejectsInvalid(t *testing.T) {
	cam := flatCamera()
	if _, _, _, ok := cam.Project(orbit.Vec3{X: math.NaN()}, 160, 96); ok {
		t.Error("NaN point reported visible")
	}
}

func TestZoomClamped(t *testing.T) {
	cam := NewCamera()
	cam.SetZoom(0)
	if cam.Zoom != 1 {
		t.Errorf("SetZoom(0) = %v, want 1", cam.Zoom)
	}
	for i := 0; i < 200; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom != minZoom {
		t.Errorf("zoom = %v, want %v", cam.Zoom, minZoom)
	}
	cam.ResetView(2)
	if cam.Zoom != 2 || cam.RotY != 0 {
		t.Errorf("ResetView left zoom %v roty %v", cam.Zoom, cam.RotY)
	}
}

func TestRenderScene(t *testing.T) {
	c := NewCanvas(80, 24)
	cam := flatCamera()
	s := NewScene()
	s.AddSegment(orbit.Origin, orbit.Vec3{X: 16}, "#ffffff")
	s.AddPoint(orbit.Vec3{Y: 8}, "")
	Render(c, s, cam)

	sw, sh := c.Dots()
	if !c.IsSet(sw/2, sh/2) || !c.IsSet(sw/2+10, sh/2) {
		t.Error("segment not drawn along the x axis")
	}
	px, py, _, _ := cam.Project(orbit.Vec3{Y: 8}, sw, sh)
	if !c.IsSet(px, py) {
		t.Error("point not drawn")
	}

	// nil arguments are ignored
	Render(nil, s, cam)
	Render(c, nil, cam)
}

func TestAddPathCloses(t *testing.T) {
	s := NewScene()
	pts := []orbit.Vec3{{X: 1}, {Y: 1}, {X: -1}}
	s.AddPath(pts, orbit.Vec3{Z: 2}, true, "")
	if len(s.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(s.Segments))
	}
	if s.Segments[2].End != (orbit.Vec3{X: 1, Z: 2}) {
		t.Errorf("closing segment ends at %v", s.Segments[2].End)
	}
	s.Clear()
	s.AddPath(pts, orbit.Origin, false, "")
	if len(s.Segments) != 2 {
		t.Errorf("open path segments = %d, want 2", len(s.Segments))
	}
}
