package viz

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/orbit"
)

// ViewExtent is the half-width in AU shown at zoom 1.
const ViewExtent = 32.0

const (
	minZoom = 0.01
	maxZoom = 1e6
)

// Camera projects heliocentric AU coordinates onto the canvas. It looks at
// Target from above the ecliptic, tilted by RotX.
type Camera struct {
	Target           orbit.Vec3
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{RotX: -0.35, Zoom: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.SetZoom(c.Zoom * 1.25) }
func (c *Camera) ZoomOut()          { c.SetZoom(c.Zoom / 1.25) }

func (c *Camera) SetZoom(z float64) {
	if !(z > 0) {
		z = 1
	}
	c.Zoom = math.Min(maxZoom, math.Max(minZoom, z))
}

// ResetView restores the default tilt and zoom.
func (c *Camera) ResetView(zoom float64) {
	c.RotX, c.RotY, c.RotZ = -0.35, 0, 0
	c.SetZoom(zoom)
}

// RotatePoint rotates p about the camera axes.
func (c *Camera) RotatePoint(p orbit.Vec3) orbit.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// PixelsPerAU is the projection scale for a sw x sh dot canvas.
func (c *Camera) PixelsPerAU(sw, sh int) float64 {
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	return c.Zoom * minDim / 2 / ViewExtent
}

// Project maps a world position to dot coordinates. It returns x, y, the
// depth along the view axis and whether the point lands on the canvas.
func (c *Camera) Project(p orbit.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p.Sub(c.Target))
	scale := c.PixelsPerAU(sw, sh)
	fx := rot.X*scale + float64(sw)/2
	fy := -rot.Y*scale + float64(sh)/2
	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > 1e9 || math.Abs(fy) > 1e9 {
		return 0, 0, 0, false
	}
	sx, sy := int(math.Floor(fx)), int(math.Floor(fy))
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// Segment is a line between two world points. A zero-length segment is a
// single dot.
type Segment struct {
	Start, End orbit.Vec3
	Color      string
}

// Scene collects segments for one frame.
type Scene struct{ Segments []Segment }

func NewScene() *Scene { return &Scene{Segments: make([]Segment, 0, 256)} }

func (s *Scene) AddSegment(a, b orbit.Vec3, color string) {
	s.Segments = append(s.Segments, Segment{a, b, color})
}

func (s *Scene) AddPoint(p orbit.Vec3, color string) { s.AddSegment(p, p, color) }

// AddPath joins consecutive points, closing the loop when closed is set.
func (s *Scene) AddPath(pts []orbit.Vec3, offset orbit.Vec3, closed bool, color string) {
	for i := 1; i < len(pts); i++ {
		s.AddSegment(pts[i-1].Add(offset), pts[i].Add(offset), color)
	}
	if closed && len(pts) > 2 {
		s.AddSegment(pts[len(pts)-1].Add(offset), pts[0].Add(offset), color)
	}
}

func (s *Scene) Clear() { s.Segments = s.Segments[:0] }

type projectedSegment struct {
	x1, y1, x2, y2 int
	depth          float64
	color          string
}

// Render draws the scene far to near.
func Render(c *Canvas, s *Scene, cam *Camera) {
	if c == nil || s == nil || cam == nil {
		return
	}
	sw, sh := c.Dots()
	proj := make([]projectedSegment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		x1, y1, d1, v1 := cam.Project(seg.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(seg.End, sw, sh)
		if !v1 && !v2 {
			continue
		}
		// segments that leave the canvas by a wide margin are clipped away
		if absInt(x1-x2)+absInt(y1-y2) > 4*(sw+sh) {
			continue
		}
		proj = append(proj, projectedSegment{x1, y1, x2, y2, (d1 + d2) / 2, seg.Color})
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, p := range proj {
		if p.x1 == p.x2 && p.y1 == p.y2 {
			c.Paint(p.x1, p.y1, p.color)
		} else {
			c.DrawLine(p.x1, p.y1, p.x2, p.y2, p.color)
		}
	}
}

// AxesScene draws the ecliptic x and y axes and the z axis, length l AU
// from the target.
func AxesScene(target orbit.Vec3, l float64, color string) *Scene {
	s := NewScene()
	s.AddSegment(target, target.Add(orbit.Vec3{X: l}), color)
	s.AddSegment(target, target.Add(orbit.Vec3{Y: l}), color)
	s.AddSegment(target, target.Add(orbit.Vec3{Z: l}), color)
	return s
}
