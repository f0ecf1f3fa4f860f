// 指示: miu200521358
package minteractor

import (
	"reflect"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/usecase/port/moutput"
)

// AimSolverDeps は注視ソルバーの依存を表す。
type AimSolverDeps struct {
	Groups []model.BoneGroup
	Logger *zerolog.Logger
}

// AimSolver はボーン群をリグ基準で注視点へ向ける。
type AimSolver struct {
	groups   []model.BoneGroup
	logger   zerolog.Logger
	disabled bool
}

// AimResult は1tick分の注視補正結果を表す。
type AimResult struct {
	// NoOp はウェイト合計が0でポーズを変更しなかったことを表す。
	NoOp        bool
	MaxBlend    float64
	TotalWeight float64
	// BlendFactors はボーン群ごとに適用した補間係数。
	BlendFactors []float64
	RotatedBones int
	SkippedBones int
	MissingBones []string
	Warnings     []string
}

// NewAimSolver は注視ソルバーを生成する。
func NewAimSolver(deps AimSolverDeps) *AimSolver {
	groups := make([]model.BoneGroup, len(deps.Groups))
	copy(groups, deps.Groups)
	return &AimSolver{
		groups: groups,
		logger: resolveLogger(deps.Logger),
	}
}

// Enabled はソルバーが有効か返す。
func (s *AimSolver) Enabled() bool {
	return !s.disabled
}

// Groups は設定済みボーン群を返す。
func (s *AimSolver) Groups() []model.BoneGroup {
	groups := make([]model.BoneGroup, len(s.groups))
	copy(groups, s.groups)
	return groups
}

// Solve は各ボーンを注視点方向へ回転させ、ポーズへ書き戻す。
func (s *AimSolver) Solve(pose moutput.IBonePose, rig model.RigFrame, target mmath.Vec3) (*AimResult, error) {
	if s.disabled {
		return nil, model.ErrSolverDisabled
	}
	if isNilPort(pose) {
		s.disabled = true
		s.logger.Warn().Msg("注視ソルバー無効化: ポーズ提供元が未設定です")
		return nil, model.ErrPoseNotBound
	}

	factors, maxBlend, totalWeight := aimBlendFactors(s.groups)
	result := &AimResult{
		MaxBlend:     maxBlend,
		TotalWeight:  totalWeight,
		BlendFactors: factors,
	}
	if totalWeight == 0 {
		result.NoOp = true
		result.Warnings = append(result.Warnings, model.IkWarningZeroTotalWeight)
		s.logger.Debug().Int("groups", len(s.groups)).Msg("注視補正スキップ: ウェイト合計が0です")
		return result, nil
	}

	// リグ空間での注視方向。全ボーン共通。
	localDirection := rig.Rotation.Inverted().MulVec3(target.Subed(rig.Position))
	if localDirection.IsZero() {
		for _, group := range s.groups {
			result.SkippedBones += len(group.BoneNames())
		}
		result.Warnings = append(result.Warnings, model.IkWarningDegenerateDirection)
		s.logger.Debug().Str("target", target.String()).Msg("注視補正スキップ: リグと注視点が一致しています")
		return result, nil
	}

	for i, group := range s.groups {
		factor := factors[i]
		aimSpace := rig.Rotation.Muled(group.OffsetRotation()).Inverted()
		for _, boneName := range group.BoneNames() {
			rotation, exists := pose.BoneRotation(boneName)
			if !exists {
				result.MissingBones = append(result.MissingBones, boneName)
				s.logger.Debug().Str("bone", boneName).Msg("注視補正スキップ: ボーンが見つかりません")
				continue
			}
			if factor == 0 {
				continue
			}

			delta, ok := aimDeltaRotation(rotation, aimSpace, localDirection)
			if !ok {
				result.SkippedBones++
				continue
			}
			goal := rotation.Muled(delta)
			pose.SetBoneRotation(boneName, rotation.Slerp(goal, factor))
			result.RotatedBones++
		}
	}
	if len(result.MissingBones) > 0 {
		result.Warnings = append(result.Warnings, model.IkWarningBoneMissing)
	}

	return result, nil
}

// aimBlendFactors はボーン群ごとの補間係数 (weight/totalWeight)*maxBlend を返す。
func aimBlendFactors(groups []model.BoneGroup) ([]float64, float64, float64) {
	factors := make([]float64, len(groups))
	if len(groups) == 0 {
		return factors, 0, 0
	}

	weights := make([]float64, len(groups))
	for i, group := range groups {
		weights[i] = group.Weight()
	}
	maxBlend := floats.Max(weights)
	totalWeight := floats.Sum(weights)
	if totalWeight == 0 {
		return factors, maxBlend, totalWeight
	}
	for i, weight := range weights {
		factors[i] = (weight / totalWeight) * maxBlend
	}
	return factors, maxBlend, totalWeight
}

// aimDeltaRotation はボーン前方を注視方向へ合わせる差分回転を返す。
// aimSpace はリグ回転とオフセット回転を除去する逆回転。
func aimDeltaRotation(
	rotation mmath.Quaternion,
	aimSpace mmath.Quaternion,
	localDirection mmath.Vec3,
) (mmath.Quaternion, bool) {
	direction := rotation.MulVec3(localDirection).Normalized()
	if direction.IsZero() || !direction.IsFinite() {
		return mmath.NewQuaternion(), false
	}

	forward := rotation.MulVec3(mmath.UNIT_Z_VEC3)
	return mmath.NewQuaternionFromTo(aimSpace.MulVec3(forward), aimSpace.MulVec3(direction)), true
}

// resolveLogger は未指定時に出力しないロガーを返す。
func resolveLogger(logger *zerolog.Logger) zerolog.Logger {
	if logger == nil {
		return zerolog.Nop()
	}
	return *logger
}

// isNilPort はポートが未設定か判定する。nil ポインタを包んだインターフェースも未設定とみなす。
func isNilPort(port any) bool {
	if port == nil {
		return true
	}
	value := reflect.ValueOf(port)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	}
	return false
}
