package geom

import (
	"math"
	"testing"
)

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{W: 2, X: 0, Y: 0, Z: 0}.Normalize()
	norm := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("expected unit norm, got %f", norm)
	}
}

func TestFromAxisAngleIdentity(t *testing.T) {
	q := FromAxisAngle(Vector{X: 1}, 0)
	if math.Abs(q.W-1) > 1e-9 || math.Abs(q.X) > 1e-9 {
		t.Errorf("zero rotation should be identity, got %+v", q)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	q := FromAxisAngle(Vector{Z: 1}, math.Pi/2)
	v := Vector{X: 1}
	rotated := q.Rotate(v)
	if math.Abs(rotated.X) > 1e-6 || math.Abs(rotated.Y-1) > 1e-6 {
		t.Errorf("expected 90deg rotation about Z to map (1,0,0)->(0,1,0), got %+v", rotated)
	}
	back := q.Conjugate().Rotate(rotated)
	if back.Sub(v).Length() > 1e-6 {
		t.Errorf("conjugate rotation did not invert: got %+v", back)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	q1 := Identity()
	q2 := FromAxisAngle(Vector{Y: 1}, math.Pi/2)
	if s := q1.Slerp(q2, 0); s.W != q1.W || s.X != q1.X {
		t.Errorf("slerp at t=0 should equal q1, got %+v", s)
	}
	s := q1.Slerp(q2, 1)
	if math.Abs(s.W-q2.W) > 1e-6 {
		t.Errorf("slerp at t=1 should equal q2, got %+v", s)
	}
}

func TestDist2MatchesDist(t *testing.T) {
	a := Coord{0, 0, 0}
	b := Coord{3, 4, 0}
	if math.Abs(math.Sqrt(a.Dist2(b))-a.Dist(b)) > 1e-9 {
		t.Errorf("dist2 should match dist squared")
	}
	if a.Dist(b) != 5.0 {
		t.Errorf("expected 3-4-5 triangle distance 5, got %f", a.Dist(b))
	}
}

func TestAngleOrthogonal(t *testing.T) {
	a := Vector{X: 1}
	b := Vector{Y: 1}
	got := Angle(a, b)
	if math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("expected pi/2, got %f", got)
	}
}
