// 指示: miu200521358
package minteractor

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/usecase/port/moutput"
)

const (
	// footSmoothingRate は沈み込み量を追従させる速さ(1秒あたり)。
	footSmoothingRate = 5.0
)

// FootPlacementSolverDeps は足接地ソルバーの依存を表す。
type FootPlacementSolverDeps struct {
	Settings model.FootSettings
	Logger   *zerolog.Logger
}

// FootPlacementSolver はレイキャストで足と体の高さを地面へ合わせる。
type FootPlacementSolver struct {
	settings        model.FootSettings
	logger          zerolog.Logger
	lastLowestDelta float64
	leftHit         model.RaycastHit
	rightHit        model.RaycastHit
	disabled        bool
}

// FootPlacement は片足の接地結果を表す。
type FootPlacement struct {
	Goal           model.IkGoal
	SoleOffset     float64
	Hit            model.RaycastHit
	OriginPosition mmath.Vec3
	OriginRotation mmath.Quaternion
	TargetPosition mmath.Vec3
	Position       mmath.Vec3
	Rotation       mmath.Quaternion
	OriginDelta    float64
	TargetDelta    float64
	Lowering       float64
}

// FootResult は1tick分の足接地結果を表す。
type FootResult struct {
	ContactMode model.ContactMode
	// Skipped は接地モードがnoneで何もしなかったことを表す。
	Skipped bool
	// Airborne は両足とも接地面がなかったことを表す。
	Airborne        bool
	Up              mmath.Vec3
	OriginBody      mmath.Vec3
	BodyPosition    mmath.Vec3
	LowestDelta     float64
	LastLowestDelta float64
	Left            FootPlacement
	Right           FootPlacement
	Warnings        []string
}

// NewFootPlacementSolver は足接地ソルバーを生成する。設定が不正な場合はエラーを返す。
func NewFootPlacementSolver(deps FootPlacementSolverDeps) (*FootPlacementSolver, error) {
	if err := deps.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("足接地ソルバー設定の検証に失敗しました: %w", err)
	}
	return &FootPlacementSolver{
		settings: deps.Settings,
		logger:   resolveLogger(deps.Logger),
	}, nil
}

// Enabled はソルバーが有効か返す。
func (s *FootPlacementSolver) Enabled() bool {
	return !s.disabled
}

// Settings は現在の設定を返す。
func (s *FootPlacementSolver) Settings() model.FootSettings {
	return s.settings
}

// ContactMode は現在の接地モードを返す。
func (s *FootPlacementSolver) ContactMode() model.ContactMode {
	return s.settings.ContactMode
}

// SetContactMode は接地モードを切り替える。
func (s *FootPlacementSolver) SetContactMode(mode model.ContactMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownContactMode, string(mode))
	}
	s.settings.ContactMode = mode
	return nil
}

// LastLowestDelta は平滑化済みの体沈み込み量を返す。
func (s *FootPlacementSolver) LastLowestDelta() float64 {
	return s.lastLowestDelta
}

// LastHits は直近の左右レイキャスト結果を返す。
func (s *FootPlacementSolver) LastHits() (model.RaycastHit, model.RaycastHit) {
	return s.leftHit, s.rightHit
}

// Solve は両足のIK目標と体位置を接地面に合わせてポーズへ書き戻す。
// dt は前tickからの経過秒数。
func (s *FootPlacementSolver) Solve(pose moutput.IIkPose, scene moutput.ICollisionQuery, dt float64) (*FootResult, error) {
	if s.disabled {
		return nil, model.ErrSolverDisabled
	}

	if isNilPort(pose) {
		s.disabled = true
		s.logger.Warn().Msg("足接地ソルバー無効化: ポーズ提供元が未設定です")
		return nil, model.ErrPoseNotBound
	}

	mode := s.settings.ContactMode
	if mode == model.ContactModeNone {
		return &FootResult{
			ContactMode:     mode,
			Skipped:         true,
			LastLowestDelta: s.lastLowestDelta,
			Warnings:        []string{model.IkWarningContactModeNone},
		}, nil
	}
	policy, exists := contactPolicies[mode]
	if !exists {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownContactMode, string(mode))
	}
	if isNilPort(scene) {
		s.disabled = true
		s.logger.Warn().Msg("足接地ソルバー無効化: 衝突判定クエリが未設定です")
		return nil, model.ErrCollisionNotBound
	}

	// 毎tick、IKでアニメーション姿勢を完全に上書きする。
	for _, goal := range model.FOOT_IK_GOALS {
		pose.SetIkPositionWeight(goal, 1)
		pose.SetIkRotationWeight(goal, 1)
	}

	characterRotation := pose.CharacterRotation()
	up := policy.upAxis(characterRotation)
	leftSole := s.soleOffset(pose, model.IkGoalLeftFoot)
	rightSole := s.soleOffset(pose, model.IkGoalRightFoot)
	originBody := pose.BodyPosition().Added(up.MuledScalar(math.Min(leftSole, rightSole)))

	left := s.probeFoot(pose, scene, model.IkGoalLeftFoot, leftSole, up, policy.triggerPolicy(model.IkGoalLeftFoot, s.settings))
	right := s.probeFoot(pose, scene, model.IkGoalRightFoot, rightSole, up, policy.triggerPolicy(model.IkGoalRightFoot, s.settings))
	s.leftHit = left.Hit
	s.rightHit = right.Hit

	result := &FootResult{
		ContactMode: mode,
		Up:          up,
		OriginBody:  originBody,
	}

	if left.Hit.Distance+right.Hit.Distance == 0 {
		// 接地なし: 沈み込み量を0へ減衰させ、体と両足へ一様に適用する。
		s.lastLowestDelta = mmath.LerpUnclamped(s.lastLowestDelta, 0, footSmoothingRate*dt)
		drop := up.MuledScalar(s.lastLowestDelta)

		result.Airborne = true
		result.BodyPosition = originBody.Subed(drop)
		pose.SetBodyPosition(result.BodyPosition)
		for _, foot := range []*FootPlacement{&left, &right} {
			foot.Position = foot.OriginPosition.Subed(drop)
			foot.Lowering = s.lastLowestDelta
			pose.SetIkPosition(foot.Goal, foot.Position)
		}
		result.LastLowestDelta = s.lastLowestDelta
		result.Left, result.Right = left, right
		result.Warnings = append(result.Warnings, model.IkWarningNoGroundContact)
		s.logger.Debug().Float64("lastLowestDelta", s.lastLowestDelta).Msg("足接地: 両足とも接地面がありません")
		return result, nil
	}

	distance := func(a, b mmath.Vec3) float64 {
		return policy.heightDistance(up, a, b)
	}

	// 体から遠い方の足の目標高さへ体を下げる。
	lowestHeight := right.TargetPosition
	if distance(originBody, left.TargetPosition) > distance(originBody, right.TargetPosition) {
		lowestHeight = left.TargetPosition
	}
	leftDelta := distance(lowestHeight, left.OriginPosition)
	rightDelta := distance(lowestHeight, right.OriginPosition)
	result.LowestDelta = math.Min(leftDelta, rightDelta)

	s.lastLowestDelta = mmath.LerpUnclamped(s.lastLowestDelta, result.LowestDelta, footSmoothingRate*dt)
	body := originBody.Subed(up.MuledScalar(s.lastLowestDelta))
	pose.SetBodyPosition(body)
	result.BodyPosition = body
	result.LastLowestDelta = s.lastLowestDelta

	inverseCharacterRotation := characterRotation.Inverted()
	for _, foot := range []*FootPlacement{&left, &right} {
		foot.OriginDelta = distance(originBody, foot.OriginPosition)
		foot.TargetDelta = distance(body, foot.TargetPosition)
		foot.Lowering = math.Min(foot.OriginDelta, foot.TargetDelta)
		if !foot.Hit.HasContact() {
			// 接地していない足は接地側の面へ引き寄せない。
			foot.Lowering = math.Max(foot.OriginDelta, foot.TargetDelta)
		}

		lateral := foot.OriginPosition.Subed(originBody).RejectedFrom(up)
		foot.Position = body.Subed(up.MuledScalar(foot.Lowering)).Added(lateral)
		pose.SetIkPosition(foot.Goal, foot.Position)

		if foot.Hit.HasContact() {
			localNormal := inverseCharacterRotation.MulVec3(foot.Hit.Normal)
			// 接地面の法線はキャラクター空間、基準の上方向はワールド空間で取る。
			delta := mmath.NewQuaternionFromTo(up, localNormal)
			foot.Rotation = foot.OriginRotation.Muled(delta)
			pose.SetIkRotation(foot.Goal, foot.Rotation)
		}
	}
	result.Left, result.Right = left, right

	return result, nil
}

// soleOffset はIK位置から足裏までの高さを返す。
func (s *FootPlacementSolver) soleOffset(pose moutput.IIkPose, goal model.IkGoal) float64 {
	if s.settings.UseAnimatorBottomHeight {
		return pose.FeetBottomHeight(goal)
	}
	return s.settings.BottomHeight
}

// probeFoot は片足の接地レイを飛ばし、目標位置を求める。
func (s *FootPlacementSolver) probeFoot(
	pose moutput.IIkPose,
	scene moutput.ICollisionQuery,
	goal model.IkGoal,
	sole float64,
	up mmath.Vec3,
	trigger model.TriggerPolicy,
) FootPlacement {
	origin := pose.IkPosition(goal).Added(up.MuledScalar(sole))
	rotation := pose.IkRotation(goal)
	foot := FootPlacement{
		Goal:           goal,
		SoleOffset:     sole,
		OriginPosition: origin,
		OriginRotation: rotation,
		TargetPosition: origin,
		Position:       origin,
		Rotation:       rotation,
	}

	rayOrigin := origin.Added(up.MuledScalar(s.settings.StepHeight))
	maxDistance := sole + s.settings.StepHeight + s.settings.MaxAvatarOffset
	hit, ok := scene.Raycast(rayOrigin, up.Negated(), maxDistance, s.settings.CollisionMask, trigger)
	if !ok {
		return foot
	}
	foot.Hit = hit
	foot.TargetPosition = hit.Point.Added(up.MuledScalar(sole))
	return foot
}
