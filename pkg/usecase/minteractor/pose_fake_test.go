// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

type fakeIkGoal struct {
	position       mmath.Vec3
	rotation       mmath.Quaternion
	positionWeight float64
	rotationWeight float64
	bottomHeight   float64
}

// fakePose はテスト用のポーズ。書き込み操作を calls へ記録する。
type fakePose struct {
	bones             map[string]mmath.Quaternion
	goals             map[model.IkGoal]*fakeIkGoal
	body              mmath.Vec3
	characterRotation mmath.Quaternion
	calls             []string
}

func newFakePose() *fakePose {
	return &fakePose{
		bones: map[string]mmath.Quaternion{},
		goals: map[model.IkGoal]*fakeIkGoal{
			model.IkGoalLeftFoot:  {rotation: mmath.NewQuaternion()},
			model.IkGoalRightFoot: {rotation: mmath.NewQuaternion()},
		},
		characterRotation: mmath.NewQuaternion(),
	}
}

// newStandingPose は体 (0,1,0)、両足IKが地面高さ0、足裏高さ0.1の立ち姿勢を返す。
func newStandingPose() *fakePose {
	pose := newFakePose()
	pose.body = mmath.NewVec3(0, 1, 0)
	pose.goals[model.IkGoalLeftFoot].position = mmath.NewVec3(-0.1, 0, 0)
	pose.goals[model.IkGoalLeftFoot].bottomHeight = 0.1
	pose.goals[model.IkGoalRightFoot].position = mmath.NewVec3(0.1, 0, 0)
	pose.goals[model.IkGoalRightFoot].bottomHeight = 0.1
	return pose
}

func (p *fakePose) BoneRotation(name string) (mmath.Quaternion, bool) {
	rotation, ok := p.bones[name]
	return rotation, ok
}

func (p *fakePose) SetBoneRotation(name string, rotation mmath.Quaternion) {
	p.calls = append(p.calls, "SetBoneRotation")
	if _, ok := p.bones[name]; ok {
		p.bones[name] = rotation
	}
}

func (p *fakePose) IkPosition(goal model.IkGoal) mmath.Vec3 {
	return p.goals[goal].position
}

func (p *fakePose) SetIkPosition(goal model.IkGoal, position mmath.Vec3) {
	p.calls = append(p.calls, "SetIkPosition")
	p.goals[goal].position = position
}

func (p *fakePose) IkRotation(goal model.IkGoal) mmath.Quaternion {
	return p.goals[goal].rotation
}

func (p *fakePose) SetIkRotation(goal model.IkGoal, rotation mmath.Quaternion) {
	p.calls = append(p.calls, "SetIkRotation")
	p.goals[goal].rotation = rotation
}

func (p *fakePose) SetIkPositionWeight(goal model.IkGoal, weight float64) {
	p.calls = append(p.calls, "SetIkPositionWeight")
	p.goals[goal].positionWeight = weight
}

func (p *fakePose) SetIkRotationWeight(goal model.IkGoal, weight float64) {
	p.calls = append(p.calls, "SetIkRotationWeight")
	p.goals[goal].rotationWeight = weight
}

func (p *fakePose) BodyPosition() mmath.Vec3 {
	return p.body
}

func (p *fakePose) SetBodyPosition(position mmath.Vec3) {
	p.calls = append(p.calls, "SetBodyPosition")
	p.body = position
}

func (p *fakePose) FeetBottomHeight(goal model.IkGoal) float64 {
	return p.goals[goal].bottomHeight
}

func (p *fakePose) CharacterRotation() mmath.Quaternion {
	return p.characterRotation
}

// fakeSurface は x 範囲で区切った片面平面。
type fakeSurface struct {
	point   mmath.Vec3
	normal  mmath.Vec3
	minX    float64
	maxX    float64
	layer   int
	trigger bool
}

// fakeScene はテスト用の衝突判定。トリガー方針は collide のみトリガーと衝突する。
type fakeScene struct {
	surfaces []fakeSurface
	queries  []model.TriggerPolicy
}

func newFlatGround(height float64) *fakeScene {
	return &fakeScene{surfaces: []fakeSurface{{
		point:  mmath.NewVec3(0, height, 0),
		normal: mmath.UNIT_Y_VEC3,
		minX:   -100,
		maxX:   100,
	}}}
}

func (s *fakeScene) Raycast(
	origin, direction mmath.Vec3,
	maxDistance float64,
	mask model.LayerMask,
	policy model.TriggerPolicy,
) (model.RaycastHit, bool) {
	s.queries = append(s.queries, policy)
	var closest model.RaycastHit
	found := false
	for _, surface := range s.surfaces {
		if !mask.Contains(surface.layer) {
			continue
		}
		if surface.trigger && policy != model.TriggerCollide {
			continue
		}
		denominator := direction.Dot(surface.normal)
		if denominator >= 0 {
			continue
		}
		distance := surface.point.Subed(origin).Dot(surface.normal) / denominator
		if distance < 0 || distance > maxDistance {
			continue
		}
		point := origin.Added(direction.MuledScalar(distance))
		if point.X < surface.minX || point.X > surface.maxX {
			continue
		}
		if !found || distance < closest.Distance {
			closest = model.RaycastHit{Point: point, Normal: surface.normal, Distance: distance}
			found = true
		}
	}
	return closest, found
}
