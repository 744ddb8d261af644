package math

import (
	"math"
	"testing"
)

func approxEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() {
		t.Error("IsIdentity() = false for Identity()")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestRotateZ(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	got := m.TransformPoint(Vec3{1, 0, 0})

	want := Vec3{0, 1, 0}
	if !approxEqual(got, want, 1e-9) {
		t.Errorf("RotateZ(90deg) * X: got %v, want %v", got, want)
	}
}

func TestFromTRS(t *testing.T) {
	tests := []struct {
		name string
		t    Vec3
		r    Vec3
		s    Vec3
		in   Vec3
		want Vec3
	}{
		{"identity", Vec3{}, Vec3{}, Vec3{1, 1, 1}, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"translate", Vec3{100, 0, -5}, Vec3{}, Vec3{1, 1, 1}, Vec3{1, 2, 3}, Vec3{101, 2, -2}},
		{"scale then translate", Vec3{1, 1, 1}, Vec3{}, Vec3{2, 2, 2}, Vec3{1, 2, 3}, Vec3{3, 5, 7}},
		{"rotate z 90", Vec3{}, Vec3{0, 0, 90}, Vec3{1, 1, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"rotate x 90", Vec3{}, Vec3{90, 0, 0}, Vec3{1, 1, 1}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTRS(tt.t, tt.r, tt.s).TransformPoint(tt.in)
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTransformPoints(t *testing.T) {
	in := []Vec3{{0, 0, 0}, {1, 1, 1}}
	out := Translate(1, 0, 0).TransformPoints(in)

	if len(out) != 2 {
		t.Fatalf("expected 2 points, got %d", len(out))
	}
	if out[1] != (Vec3{2, 1, 1}) {
		t.Errorf("expected (2,1,1), got %v", out[1])
	}
	if in[1] != (Vec3{1, 1, 1}) {
		t.Error("TransformPoints modified its input")
	}
}
