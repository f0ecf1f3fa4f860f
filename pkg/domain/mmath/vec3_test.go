// 指示: miu200521358
package mmath

import "testing"

func TestVec3ProjectionSplitsIntoAxisAndLateral(t *testing.T) {
	up := NewVec3(0, 1, 1).Normalized()
	v := NewVec3(2, 3, -1)

	projected := v.ProjectedOn(up)
	rejected := v.RejectedFrom(up)
	if got := projected.Added(rejected); !got.NearEquals(v, 1e-12) {
		t.Fatalf("projection parts should sum to input: got=%v want=%v", got, v)
	}
	if dot := rejected.Dot(up); dot > 1e-12 || dot < -1e-12 {
		t.Fatalf("rejected part should be orthogonal to axis: dot=%f", dot)
	}
}

func TestVec3WorldUpProjectionIsExact(t *testing.T) {
	v := NewVec3(0.3, 1.7, -4.1)
	if got := v.ProjectedOn(UNIT_Y_VEC3); got != NewVec3(0, 1.7, 0) {
		t.Fatalf("world up projection mismatch: got=%v", got)
	}
	if got := v.RejectedFrom(UNIT_Y_VEC3); got != NewVec3(0.3, 0, -4.1) {
		t.Fatalf("world up rejection mismatch: got=%v", got)
	}
}

func TestVec3NormalizedZeroStaysZero(t *testing.T) {
	if got := ZERO_VEC3.Normalized(); !got.IsZero() || !got.IsFinite() {
		t.Fatalf("zero normalize should stay zero: got=%v", got)
	}
}

func TestLerpUnclampedAndClamp01(t *testing.T) {
	if got := LerpUnclamped(1, 3, 0.25); got != 1.5 {
		t.Fatalf("lerp mismatch: got=%f", got)
	}
	if got := LerpUnclamped(1, 3, 2); got != 5 {
		t.Fatalf("lerp should extrapolate: got=%f", got)
	}
	for input, want := range map[float64]float64{-0.5: 0, 0.4: 0.4, 1.5: 1} {
		if got := Clamp01(input); got != want {
			t.Fatalf("clamp mismatch: input=%f got=%f want=%f", input, got, want)
		}
	}
}
