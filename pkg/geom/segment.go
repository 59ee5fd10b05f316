package geom

// ClosestOnSegment projects p onto the segment a→b, clamping the parameter to [0, 1].
// ok is false for a zero-length segment; the returned point is then a.
func ClosestOnSegment(p, a, b Vec2) (closest Vec2, t float64, ok bool) {
	d := b.Sub(a)
	lenSq := d.LenSq()
	if lenSq == 0 {
		return a, 0, false
	}
	t = Clamp(p.Sub(a).Dot(d)/lenSq, 0, 1)
	return a.Add(d.Scale(t)), t, true
}

// SegmentHitsCircle reports whether the segment a→b passes strictly within radius of center.
// Zero-length segments never hit.
func SegmentHitsCircle(a, b, center Vec2, radius float64) bool {
	closest, _, ok := ClosestOnSegment(center, a, b)
	if !ok {
		return false
	}
	return center.Sub(closest).LenSq() < radius*radius
}

// CirclesOverlap reports strict overlap of two discs.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// RayParam returns the parameter of p along the unit ray origin+dir*t and the
// perpendicular distance from p to the infinite line.
func RayParam(origin, dir, p Vec2) (t, perp float64) {
	rel := p.Sub(origin)
	t = rel.Dot(dir)
	foot := origin.Add(dir.Scale(t))
	return t, p.Dist(foot)
}
