// 指示: miu200521358
package model

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
)

func TestNewBoneGroupClampsWeight(t *testing.T) {
	cases := map[float64]float64{
		-0.5: 0,
		0.25: 0.25,
		1.75: 1,
	}
	for input, want := range cases {
		group := NewBoneGroup([]string{"首"}, input, mmath.ZERO_VEC3)
		if group.Weight() != want {
			t.Fatalf("weight clamp mismatch: input=%f got=%f want=%f", input, group.Weight(), want)
		}
	}
	if got := NewBoneGroup(nil, math.NaN(), mmath.ZERO_VEC3).Weight(); got != 0 {
		t.Fatalf("NaN weight should clamp to 0: got=%f", got)
	}
}

func TestNewBoneGroupCopiesBoneNames(t *testing.T) {
	names := []string{"上半身", "首", "頭"}
	group := NewBoneGroup(names, 1, mmath.ZERO_VEC3)
	names[0] = "変更"

	got := group.BoneNames()
	if got[0] != "上半身" {
		t.Fatalf("bone names should be copied: got=%v", got)
	}
	got[1] = "変更"
	if group.BoneNames()[1] != "首" {
		t.Fatalf("returned names should not alias group state: got=%v", group.BoneNames())
	}
}

func TestBoneGroupOffsetRotationUsesEulerDegrees(t *testing.T) {
	group := NewBoneGroup([]string{"頭"}, 1, mmath.NewVec3(0, 90, 0))
	got := group.OffsetRotation().MulVec3(mmath.UNIT_Z_VEC3)
	if !got.NearEquals(mmath.UNIT_X_VEC3, 1e-9) {
		t.Fatalf("offset rotation mismatch: got=%v", got)
	}
}
