// 指示: miu200521358
package minteractor

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/usecase/port/moutput"
)

// IkRigUsecaseDeps はIKリグユースケースの依存を表す。
type IkRigUsecaseDeps struct {
	AimSolver  *AimSolver
	FootSolver *FootPlacementSolver
	Logger     *zerolog.Logger
}

// IkRigUsecase はアニメーション評価後・描画前に呼ばれるIK補正をまとめたユースケースを表す。
// ポーズを読み書きしてよいのは ApplyPostPose の呼び出し中のみ。
type IkRigUsecase struct {
	aimSolver  *AimSolver
	footSolver *FootPlacementSolver
	logger     zerolog.Logger
	tick       int
}

// PostPoseRequest は1tick分のポスト姿勢処理要求を表す。
type PostPoseRequest struct {
	Pose      moutput.IPoseProvider
	Scene     moutput.ICollisionQuery
	Rig       model.RigFrame
	Target    mmath.Vec3
	DeltaTime float64
}

// PostPoseResult は1tick分のポスト姿勢処理結果を表す。
type PostPoseResult struct {
	Tick int
	Foot *FootResult
	Aim  *AimResult
}

// NewIkRigUsecase はIKリグユースケースを生成する。
func NewIkRigUsecase(deps IkRigUsecaseDeps) *IkRigUsecase {
	return &IkRigUsecase{
		aimSolver:  deps.AimSolver,
		footSolver: deps.FootSolver,
		logger:     resolveLogger(deps.Logger),
	}
}

// AimSolver は注視ソルバーを返す。
func (uc *IkRigUsecase) AimSolver() *AimSolver {
	return uc.aimSolver
}

// FootSolver は足接地ソルバーを返す。
func (uc *IkRigUsecase) FootSolver() *FootPlacementSolver {
	return uc.footSolver
}

// ApplyPostPose は足接地、注視の順にIK補正を適用する。
// 足接地はIKパス、注視はその後の最終姿勢確定前に相当する。
// ポーズ未設定の場合は各ソルバーが自身を無効化してエラーを返す。
func (uc *IkRigUsecase) ApplyPostPose(request PostPoseRequest) (*PostPoseResult, error) {
	uc.tick++
	result := &PostPoseResult{Tick: uc.tick}

	if uc.footSolver != nil && uc.footSolver.Enabled() {
		footResult, err := uc.footSolver.Solve(request.Pose, request.Scene, request.DeltaTime)
		if err != nil {
			return nil, fmt.Errorf("足接地処理に失敗しました: %w", err)
		}
		result.Foot = footResult
	}

	if uc.aimSolver != nil && uc.aimSolver.Enabled() {
		aimResult, err := uc.aimSolver.Solve(request.Pose, request.Rig, request.Target)
		if err != nil {
			return nil, fmt.Errorf("注視処理に失敗しました: %w", err)
		}
		result.Aim = aimResult
	}

	uc.logger.Trace().
		Int("tick", uc.tick).
		Float64("dt", request.DeltaTime).
		Msg("ポスト姿勢IK適用")
	return result, nil
}
