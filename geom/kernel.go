package geom

import "math"

// TangentPoints computes the outer tangent line between circles a and b,
// returning the tangent point on a and the tangent point on b whose
// direction of travel (a's point to b's point) matches the requested
// winding around a. Winding is interpreted from a's perspective: CW means
// the tangent line passes a keeping a on the traveler's right.
//
// Returns ErrDegenerate if the centers coincide, and ErrNoTangent if one
// circle lies inside the other (distance between centers is less than
// |a.Radius - b.Radius|, i.e. one circle would have to be "entered" to
// find an outer tangent).
func TangentPoints(a, b Circle, dir Winding) (pa, pb Point, err error) {
	d := a.Center.DistanceTo(b.Center)
	if d < Epsilon {
		return Point{}, Point{}, ErrDegenerate
	}
	// Outer tangent exists as long as the circles don't overlap each
	// other's radius difference; equal radii is the parallel-line case.
	if d < math.Abs(a.Radius-b.Radius)-Epsilon {
		return Point{}, Point{}, ErrNoTangent
	}

	axis := b.Center.Sub(a.Center).Unit()
	perp := axis.Rotate90()

	// For an outer tangent, the tangent line is offset from the center
	// axis by an angle theta where sin(theta) = (ra-rb)/d.
	sinT := (a.Radius - b.Radius) / d
	sinT = math.Max(-1, math.Min(1, sinT))
	cosT := math.Sqrt(math.Max(0, 1-sinT*sinT))

	var sign float64 = 1
	if dir == CCW {
		sign = -1
	}

	// Tangent direction unit vector, rotated from axis by +/-theta.
	tx := axis.X*cosT - sign*perp.X*sinT
	ty := axis.Y*cosT - sign*perp.Y*sinT
	tangentDir := Point{tx, ty}
	normalDir := tangentDir.Rotate90().Scale(sign)

	pa = a.Center.Add(normalDir.Scale(a.Radius))
	pb = b.Center.Add(normalDir.Scale(b.Radius))
	return pa, pb, nil
}

// BuildArc constructs the Arc of a bend wrapping core with the given
// radius, tangentially connecting start and end, traveled in direction
// dir. start and end must already lie at distance radius from core
// (callers obtain them from TangentPoints); BuildArc does not re-validate
// that beyond a cheap sanity check, matching the rest of geom's contract
// of operating on already-validated inputs.
func BuildArc(core Point, radius float64, start, end Point, dir Winding) (Arc, error) {
	if radius <= Epsilon {
		return Arc{}, ErrDegenerate
	}
	return Arc{Core: core, Radius: radius, Start: start, End: end, Dir: dir}, nil
}

// angle returns the angle of p around the arc's core, in [0, 2pi).
func (a Arc) angle(p Point) float64 {
	v := p.Sub(a.Core)
	t := math.Atan2(v.Y, v.X)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

// sweep returns the angular sweep of the arc, in [0, 2pi), measured in the
// arc's own direction.
func (a Arc) sweep() float64 {
	s, e := a.angle(a.Start), a.angle(a.End)
	if a.Dir == CCW {
		d := e - s
		if d < 0 {
			d += 2 * math.Pi
		}
		return d
	}
	d := s - e
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Length returns the arc length.
func (a Arc) Length() float64 { return a.Radius * a.sweep() }

// Midpoint returns the point at the middle of the arc's sweep.
func (a Arc) Midpoint() Point {
	s := a.angle(a.Start)
	half := a.sweep() / 2
	var t float64
	if a.Dir == CCW {
		t = s + half
	} else {
		t = s - half
	}
	return a.Core.Add(Point{math.Cos(t), math.Sin(t)}.Scale(a.Radius))
}

// pointSegmentDistance returns the minimum distance from p to segment s.
func pointSegmentDistance(p Point, s Segment) float64 {
	v := s.Vector()
	len2 := v.Dot(v)
	if len2 < Epsilon*Epsilon {
		return p.DistanceTo(s.A)
	}
	t := p.Sub(s.A).Dot(v) / len2
	t = math.Max(0, math.Min(1, t))
	proj := s.A.Add(v.Scale(t))
	return p.DistanceTo(proj)
}

// segmentSegmentDistance returns the minimum distance between two segments.
func segmentSegmentDistance(s1, s2 Segment) float64 {
	if segmentsIntersect(s1, s2) {
		return 0
	}
	d := pointSegmentDistance(s1.A, s2)
	d = math.Min(d, pointSegmentDistance(s1.B, s2))
	d = math.Min(d, pointSegmentDistance(s2.A, s1))
	d = math.Min(d, pointSegmentDistance(s2.B, s1))
	return d
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(p, q, r Point) bool {
	return math.Min(p.X, r.X)-Epsilon <= q.X && q.X <= math.Max(p.X, r.X)+Epsilon &&
		math.Min(p.Y, r.Y)-Epsilon <= q.Y && q.Y <= math.Max(p.Y, r.Y)+Epsilon
}

// segmentsIntersect reports whether two straight segments cross or touch.
func segmentsIntersect(s1, s2 Segment) bool {
	d1 := cross(s2.A, s2.B, s1.A)
	d2 := cross(s2.A, s2.B, s1.B)
	d3 := cross(s1.A, s1.B, s2.A)
	d4 := cross(s1.A, s1.B, s2.B)

	if ((d1 > Epsilon && d2 < -Epsilon) || (d1 < -Epsilon && d2 > Epsilon)) &&
		((d3 > Epsilon && d4 < -Epsilon) || (d3 < -Epsilon && d4 > Epsilon)) {
		return true
	}
	if math.Abs(d1) <= Epsilon && onSegment(s2.A, s1.A, s2.B) {
		return true
	}
	if math.Abs(d2) <= Epsilon && onSegment(s2.A, s1.B, s2.B) {
		return true
	}
	if math.Abs(d3) <= Epsilon && onSegment(s1.A, s2.A, s1.B) {
		return true
	}
	if math.Abs(d4) <= Epsilon && onSegment(s1.A, s2.B, s1.B) {
		return true
	}
	return false
}

// MinDistance returns the minimum distance between two shapes. Supported
// shape pairs are (Circle,Circle), (Circle,Segment), (Segment,Segment);
// any other combination returns ErrDegenerate since the layout engine never
// needs more than these three primitive kinds.
func MinDistance(x, y interface{}) (float64, error) {
	switch a := x.(type) {
	case Circle:
		switch b := y.(type) {
		case Circle:
			d := a.Center.DistanceTo(b.Center) - a.Radius - b.Radius
			return math.Max(0, d), nil
		case Segment:
			d := pointSegmentDistance(a.Center, b) - a.Radius
			return math.Max(0, d), nil
		}
	case Segment:
		switch b := y.(type) {
		case Circle:
			d := pointSegmentDistance(b.Center, a) - b.Radius
			return math.Max(0, d), nil
		case Segment:
			return segmentSegmentDistance(a, b), nil
		}
	}
	return 0, ErrDegenerate
}

// Intersects reports whether two shapes overlap (distance <= 0, within
// Epsilon). Same supported shape pairs as MinDistance.
func Intersects(x, y interface{}) (bool, error) {
	d, err := MinDistance(x, y)
	if err != nil {
		return false, err
	}
	return d <= Epsilon, nil
}

// Inflate returns the axis-aligned bounding rectangle of shape, dilated by
// eps in every direction. Supported shapes are Circle, Segment, and Arc.
func Inflate(shape interface{}, eps float64) (Rect, error) {
	switch s := shape.(type) {
	case Circle:
		r := s.Radius + eps
		return Rect{s.Center.X - r, s.Center.Y - r, s.Center.X + r, s.Center.Y + r}, nil
	case Segment:
		r := Rect{
			MinX: math.Min(s.A.X, s.B.X) - eps,
			MinY: math.Min(s.A.Y, s.B.Y) - eps,
			MaxX: math.Max(s.A.X, s.B.X) + eps,
			MaxY: math.Max(s.A.Y, s.B.Y) + eps,
		}
		return r, nil
	case Arc:
		// Conservative bound: the bounding box of the core circle at the
		// arc's radius, inflated. Cheap and always a valid superset of
		// the true arc bounding box, sufficient for spatial-index AABBs.
		c := Circle{Center: s.Core, Radius: s.Radius}
		return Inflate(c, eps)
	}
	return Rect{}, ErrDegenerate
}
