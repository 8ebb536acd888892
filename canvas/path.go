package canvas

import (
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

const circleSegments = 8

// circlePath returns a closed circle built from quadratic segments. The
// stroker cannot follow cubic segments, so arcs never use them.
func circlePath(cx, cy, radius float64) raster.Path {
	step := 2 * math.Pi / circleSegments
	ctrl := radius / math.Cos(step/2)

	start := point(cx+radius, cy)
	var p raster.Path
	p.Start(start)
	for i := 1; i <= circleSegments; i++ {
		mid := (float64(i) - 0.5) * step
		c := point(cx+ctrl*math.Cos(mid), cy+ctrl*math.Sin(mid))
		end := start
		if i < circleSegments {
			a := float64(i) * step
			end = point(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		}
		p.Add2(c, end)
	}
	return p
}

// pathBuilder collects contours into a raster.Path, dropping degenerate
// segments and closing every contour back to its start.
type pathBuilder struct {
	path  raster.Path
	start fixed.Point26_6
	cur   fixed.Point26_6
	open  bool
}

func (b *pathBuilder) moveTo(p fixed.Point26_6) {
	b.close()
	b.path.Start(p)
	b.start, b.cur, b.open = p, p, true
}

func (b *pathBuilder) lineTo(p fixed.Point26_6) {
	if !b.open || p == b.cur {
		return
	}
	b.path.Add1(p)
	b.cur = p
}

func (b *pathBuilder) quadTo(c, p fixed.Point26_6) {
	if !b.open {
		return
	}
	if c == b.cur && p == b.cur {
		return
	}
	b.path.Add2(c, p)
	b.cur = p
}

// cubeTo splits the cubic in half and approximates each half with one
// quadratic whose control point is the average of the two tangent estimates.
func (b *pathBuilder) cubeTo(c1, c2, p fixed.Point26_6) {
	if !b.open {
		return
	}
	p0 := b.cur
	// de Casteljau at t = 0.5
	m01 := midpoint(p0, c1)
	m12 := midpoint(c1, c2)
	m23 := midpoint(c2, p)
	l2 := midpoint(m01, m12)
	r1 := midpoint(m12, m23)
	mid := midpoint(l2, r1)

	b.quadTo(cubicControl(p0, m01, l2, mid), mid)
	b.quadTo(cubicControl(mid, r1, m23, p), p)
}

func (b *pathBuilder) close() {
	if b.open && b.cur != b.start {
		b.path.Add1(b.start)
	}
	b.open = false
}

func (b *pathBuilder) finish() raster.Path {
	b.close()
	return b.path
}

func midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// cubicControl is (3*(c1+c2) - p0 - p3) / 4.
func cubicControl(p0, c1, c2, p3 fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{
		X: (3*(c1.X+c2.X) - p0.X - p3.X) / 4,
		Y: (3*(c1.Y+c2.Y) - p0.Y - p3.Y) / 4,
	}
}
