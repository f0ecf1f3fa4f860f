// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

// contactPolicy は接地モードごとの差分を表す。
type contactPolicy struct {
	useCharacterUp bool
	leftTrigger    model.TriggerPolicy
	rightTrigger   model.TriggerPolicy
	heightDistance func(up, a, b mmath.Vec3) float64
}

// contactPolicies は接地モードの方針表。
// complex では左足のレイだけがトリガーと衝突する。
var contactPolicies = map[model.ContactMode]contactPolicy{
	model.ContactModeSimple: {
		useCharacterUp: false,
		leftTrigger:    model.TriggerIgnore,
		rightTrigger:   model.TriggerIgnore,
		heightDistance: scalarHeightDistance,
	},
	model.ContactModeComplex: {
		useCharacterUp: true,
		leftTrigger:    model.TriggerCollide,
		rightTrigger:   model.TriggerIgnore,
		heightDistance: projectedHeightDistance,
	},
}

// upAxis は接地に使う上方向を返す。
func (p contactPolicy) upAxis(characterRotation mmath.Quaternion) mmath.Vec3 {
	if !p.useCharacterUp {
		return mmath.UNIT_Y_VEC3
	}
	return characterRotation.MulVec3(mmath.UNIT_Y_VEC3).Normalized()
}

// triggerPolicy は足ごとのトリガー方針を返す。設定で上書きされていればそちらを使う。
func (p contactPolicy) triggerPolicy(goal model.IkGoal, settings model.FootSettings) model.TriggerPolicy {
	switch goal {
	case model.IkGoalLeftFoot:
		if settings.LeftTriggerPolicy != model.TriggerPolicyDefault {
			return settings.LeftTriggerPolicy
		}
		return p.leftTrigger
	default:
		if settings.RightTriggerPolicy != model.TriggerPolicyDefault {
			return settings.RightTriggerPolicy
		}
		return p.rightTrigger
	}
}

// scalarHeightDistance は上方向の高さ差の絶対値を返す。
func scalarHeightDistance(up, a, b mmath.Vec3) float64 {
	return math.Abs(up.Dot(a) - up.Dot(b))
}

// projectedHeightDistance は上方向へ射影した2点間の距離を返す。
func projectedHeightDistance(up, a, b mmath.Vec3) float64 {
	return a.ProjectedOn(up).Distance(b.ProjectedOn(up))
}
