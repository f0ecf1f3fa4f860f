// 指示: miu200521358
// Package simulation はシーン設定からポーズと衝突シーンを組み立て、ポスト姿勢IKをtick実行する。
package simulation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/infra/collision"
	"github.com/miu200521358/mu_smartik/pkg/infra/skeleton"
	"github.com/miu200521358/mu_smartik/pkg/usecase/minteractor"
)

// BuildSkeleton はキャラクター設定からアニメーション評価後のスケルトンを構築する。
func BuildSkeleton(character io_config.CharacterConfig) (*skeleton.Skeleton, error) {
	s := skeleton.NewSkeleton()

	characterRotation, err := io_config.ParseEulerRotation("character.rotation", character.Rotation)
	if err != nil {
		return nil, err
	}
	s.SetCharacterRotation(characterRotation)

	body, err := io_config.ParseVec3("character.body_position", character.BodyPosition, mmath.ZERO_VEC3)
	if err != nil {
		return nil, err
	}
	s.SetBodyPosition(body)

	feet := map[model.IkGoal]io_config.FootPoseConfig{
		model.IkGoalLeftFoot:  character.LeftFoot,
		model.IkGoalRightFoot: character.RightFoot,
	}
	keys := map[model.IkGoal]string{
		model.IkGoalLeftFoot:  "character.left_foot",
		model.IkGoalRightFoot: "character.right_foot",
	}
	for _, goal := range model.FOOT_IK_GOALS {
		foot := feet[goal]
		position, err := io_config.ParseVec3(keys[goal]+".position", foot.Position, mmath.ZERO_VEC3)
		if err != nil {
			return nil, err
		}
		rotation, err := io_config.ParseEulerRotation(keys[goal]+".rotation", foot.Rotation)
		if err != nil {
			return nil, err
		}
		s.SetIkGoal(goal, position, rotation, foot.BottomHeight)
	}

	for i, bone := range character.Bones {
		position, err := io_config.ParseVec3(fmt.Sprintf("character.bones[%d].position", i), bone.Position, mmath.ZERO_VEC3)
		if err != nil {
			return nil, err
		}
		rotation, err := io_config.ParseEulerRotation(fmt.Sprintf("character.bones[%d].rotation", i), bone.Rotation)
		if err != nil {
			return nil, err
		}
		if err := s.AddBone(bone.Name, position, rotation); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// BuildScene はコライダー設定から衝突シーンを構築する。
func BuildScene(config io_config.SceneConfig) (*collision.Scene, error) {
	scene := collision.NewScene()
	scene.QueriesHitTriggers = config.QueriesHitTriggers

	for i, collider := range config.Colliders {
		shape, err := buildShape(i, collider)
		if err != nil {
			return nil, err
		}
		name := collider.Name
		if name == "" {
			name = fmt.Sprintf("%s%03d", collider.Type, i)
		}
		if err := scene.Add(collision.Collider{
			Name:      name,
			Layer:     collider.Layer,
			IsTrigger: collider.Trigger,
			Shape:     shape,
		}); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

// buildShape はコライダー設定から形状を生成する。
func buildShape(index int, collider io_config.ColliderConfig) (collision.Shape, error) {
	vec := func(key string, values []float64) (mmath.Vec3, error) {
		return io_config.ParseVec3(fmt.Sprintf("colliders[%d].%s", index, key), values, mmath.ZERO_VEC3)
	}

	switch collider.Type {
	case io_config.ColliderTypePlane:
		point, err := vec("point", collider.Point)
		if err != nil {
			return nil, err
		}
		normal, err := vec("normal", collider.Normal)
		if err != nil {
			return nil, err
		}
		if normal.IsZero() {
			return nil, fmt.Errorf("colliders[%d].normal がゼロベクトルです", index)
		}
		return collision.Plane{Point: point, Normal: normal.Normalized()}, nil
	case io_config.ColliderTypeBox:
		minPos, err := vec("min", collider.Min)
		if err != nil {
			return nil, err
		}
		maxPos, err := vec("max", collider.Max)
		if err != nil {
			return nil, err
		}
		if minPos.X > maxPos.X || minPos.Y > maxPos.Y || minPos.Z > maxPos.Z {
			return nil, fmt.Errorf("colliders[%d] の min が max を超えています", index)
		}
		return collision.Box{Min: minPos, Max: maxPos}, nil
	case io_config.ColliderTypeTriangle:
		a, err := vec("a", collider.A)
		if err != nil {
			return nil, err
		}
		b, err := vec("b", collider.B)
		if err != nil {
			return nil, err
		}
		c, err := vec("c", collider.C)
		if err != nil {
			return nil, err
		}
		return collision.Triangle{A: a, B: b, C: c}, nil
	default:
		return nil, fmt.Errorf("colliders[%d].type が不正です: %q", index, string(collider.Type))
	}
}

// BuildIkRig はリグ設定から注視ソルバーと足接地ソルバーを組み立てる。
func BuildIkRig(rig io_config.RigConfig, logger *zerolog.Logger) (*minteractor.IkRigUsecase, error) {
	groups, err := rig.ToBoneGroups()
	if err != nil {
		return nil, err
	}
	settings, err := rig.ToFootSettings()
	if err != nil {
		return nil, err
	}
	footSolver, err := minteractor.NewFootPlacementSolver(minteractor.FootPlacementSolverDeps{
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return minteractor.NewIkRigUsecase(minteractor.IkRigUsecaseDeps{
		AimSolver:  minteractor.NewAimSolver(minteractor.AimSolverDeps{Groups: groups, Logger: logger}),
		FootSolver: footSolver,
		Logger:     logger,
	}), nil
}

// BuildLook は注視リグ姿勢と注視点を返す。
func BuildLook(look io_config.LookConfig) (model.RigFrame, mmath.Vec3, error) {
	position, err := io_config.ParseVec3("look.rig_position", look.RigPosition, mmath.ZERO_VEC3)
	if err != nil {
		return model.RigFrame{}, mmath.Vec3{}, err
	}
	rotation, err := io_config.ParseEulerRotation("look.rig_rotation", look.RigRotation)
	if err != nil {
		return model.RigFrame{}, mmath.Vec3{}, err
	}
	target, err := io_config.ParseVec3("look.target", look.Target, position.Added(mmath.UNIT_Z_VEC3))
	if err != nil {
		return model.RigFrame{}, mmath.Vec3{}, err
	}
	return model.NewRigFrame(position, rotation), target, nil
}
