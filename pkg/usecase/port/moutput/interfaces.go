// 指示: miu200521358
package moutput

import (
	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

// IBonePose はボーン回転の読み書き契約を表す。
type IBonePose interface {
	// BoneRotation はボーンのワールド回転を返す。存在しない場合は false。
	BoneRotation(name string) (mmath.Quaternion, bool)
	// SetBoneRotation はボーンのワールド回転を設定する。
	SetBoneRotation(name string, rotation mmath.Quaternion)
}

// IIkPose はIK目標と体位置の読み書き契約を表す。
type IIkPose interface {
	IkPosition(goal model.IkGoal) mmath.Vec3
	SetIkPosition(goal model.IkGoal, position mmath.Vec3)
	IkRotation(goal model.IkGoal) mmath.Quaternion
	SetIkRotation(goal model.IkGoal, rotation mmath.Quaternion)
	SetIkPositionWeight(goal model.IkGoal, weight float64)
	SetIkRotationWeight(goal model.IkGoal, weight float64)
	BodyPosition() mmath.Vec3
	SetBodyPosition(position mmath.Vec3)
	// FeetBottomHeight はIK位置から足裏までの高さを返す。
	FeetBottomHeight(goal model.IkGoal) float64
	// CharacterRotation はキャラクター全体の回転を返す。
	CharacterRotation() mmath.Quaternion
}

// IPoseProvider はポスト姿勢処理で使うポーズ全体の契約を表す。
type IPoseProvider interface {
	IBonePose
	IIkPose
}

// ICollisionQuery は接地判定用レイキャストの契約を表す。
type ICollisionQuery interface {
	// Raycast は最も近い衝突を返す。衝突しない場合は false。
	Raycast(origin, direction mmath.Vec3, maxDistance float64, mask model.LayerMask, policy model.TriggerPolicy) (model.RaycastHit, bool)
}
