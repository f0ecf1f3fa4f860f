// 指示: miu200521358
// Package skeleton はポーズ提供元のメモリ上実装を提供する。
package skeleton

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

// Bone はボーンのワールド姿勢を表す。
type Bone struct {
	Name     string
	Position mmath.Vec3
	Rotation mmath.Quaternion
}

// IkGoalState はIK目標の姿勢とウェイトを表す。
type IkGoalState struct {
	Position       mmath.Vec3
	Rotation       mmath.Quaternion
	PositionWeight float64
	RotationWeight float64
	// BottomHeight はIK位置から足裏までの高さ。
	BottomHeight float64
}

// Snapshot はスケルトン状態の複製を表す。
type Snapshot struct {
	Bones             []Bone
	IkGoals           map[model.IkGoal]IkGoalState
	BodyPosition      mmath.Vec3
	CharacterRotation mmath.Quaternion
}

// Skeleton はボーン、足IK目標、体位置を保持するポーズ。
type Skeleton struct {
	bones             []Bone
	boneIndexes       map[string]int
	ikGoals           map[model.IkGoal]IkGoalState
	bodyPosition      mmath.Vec3
	characterRotation mmath.Quaternion
}

// NewSkeleton は空のスケルトンを生成する。
func NewSkeleton() *Skeleton {
	ikGoals := map[model.IkGoal]IkGoalState{}
	for _, goal := range model.FOOT_IK_GOALS {
		ikGoals[goal] = IkGoalState{Rotation: mmath.NewQuaternion()}
	}
	return &Skeleton{
		boneIndexes:       map[string]int{},
		ikGoals:           ikGoals,
		characterRotation: mmath.NewQuaternion(),
	}
}

// AddBone はボーンを追加する。同名ボーンは上書きする。
func (s *Skeleton) AddBone(name string, position mmath.Vec3, rotation mmath.Quaternion) error {
	if name == "" {
		return fmt.Errorf("ボーン名が未指定です")
	}
	bone := Bone{Name: name, Position: position, Rotation: rotation}
	if index, exists := s.boneIndexes[name]; exists {
		s.bones[index] = bone
		return nil
	}
	s.boneIndexes[name] = len(s.bones)
	s.bones = append(s.bones, bone)
	return nil
}

// Bone はボーンを返す。
func (s *Skeleton) Bone(name string) (Bone, bool) {
	index, exists := s.boneIndexes[name]
	if !exists {
		return Bone{}, false
	}
	return s.bones[index], true
}

// BoneNames は追加順のボーン名一覧を返す。
func (s *Skeleton) BoneNames() []string {
	names := make([]string, 0, len(s.bones))
	for _, bone := range s.bones {
		names = append(names, bone.Name)
	}
	return names
}

// BoneRotation はボーンのワールド回転を返す。
func (s *Skeleton) BoneRotation(name string) (mmath.Quaternion, bool) {
	bone, exists := s.Bone(name)
	if !exists {
		return mmath.Quaternion{}, false
	}
	return bone.Rotation, true
}

// SetBoneRotation はボーンのワールド回転を設定する。存在しないボーンは無視する。
func (s *Skeleton) SetBoneRotation(name string, rotation mmath.Quaternion) {
	if index, exists := s.boneIndexes[name]; exists {
		s.bones[index].Rotation = rotation
	}
}

// SetIkGoal はIK目標の姿勢と足裏高さを設定する。
func (s *Skeleton) SetIkGoal(goal model.IkGoal, position mmath.Vec3, rotation mmath.Quaternion, bottomHeight float64) {
	state := s.ikGoals[goal]
	state.Position = position
	state.Rotation = rotation
	state.BottomHeight = bottomHeight
	s.ikGoals[goal] = state
}

// IkGoal はIK目標の状態を返す。
func (s *Skeleton) IkGoal(goal model.IkGoal) IkGoalState {
	return s.ikGoals[goal]
}

// IkPosition はIK目標位置を返す。
func (s *Skeleton) IkPosition(goal model.IkGoal) mmath.Vec3 {
	return s.ikGoals[goal].Position
}

// SetIkPosition はIK目標位置を設定する。
func (s *Skeleton) SetIkPosition(goal model.IkGoal, position mmath.Vec3) {
	state := s.ikGoals[goal]
	state.Position = position
	s.ikGoals[goal] = state
}

// IkRotation はIK目標回転を返す。
func (s *Skeleton) IkRotation(goal model.IkGoal) mmath.Quaternion {
	return s.ikGoals[goal].Rotation
}

// SetIkRotation はIK目標回転を設定する。
func (s *Skeleton) SetIkRotation(goal model.IkGoal, rotation mmath.Quaternion) {
	state := s.ikGoals[goal]
	state.Rotation = rotation
	s.ikGoals[goal] = state
}

// SetIkPositionWeight はIK位置ウェイトを設定する。
func (s *Skeleton) SetIkPositionWeight(goal model.IkGoal, weight float64) {
	state := s.ikGoals[goal]
	state.PositionWeight = mmath.Clamp01(weight)
	s.ikGoals[goal] = state
}

// SetIkRotationWeight はIK回転ウェイトを設定する。
func (s *Skeleton) SetIkRotationWeight(goal model.IkGoal, weight float64) {
	state := s.ikGoals[goal]
	state.RotationWeight = mmath.Clamp01(weight)
	s.ikGoals[goal] = state
}

// FeetBottomHeight はIK位置から足裏までの高さを返す。
func (s *Skeleton) FeetBottomHeight(goal model.IkGoal) float64 {
	return s.ikGoals[goal].BottomHeight
}

// BodyPosition は体の基準位置を返す。
func (s *Skeleton) BodyPosition() mmath.Vec3 {
	return s.bodyPosition
}

// SetBodyPosition は体の基準位置を設定する。
func (s *Skeleton) SetBodyPosition(position mmath.Vec3) {
	s.bodyPosition = position
}

// CharacterRotation はキャラクター全体の回転を返す。
func (s *Skeleton) CharacterRotation() mmath.Quaternion {
	return s.characterRotation
}

// SetCharacterRotation はキャラクター全体の回転を設定する。
func (s *Skeleton) SetCharacterRotation(rotation mmath.Quaternion) {
	s.characterRotation = rotation
}

// Snapshot は現在の状態を複製して返す。
func (s *Skeleton) Snapshot() (*Snapshot, error) {
	source := Snapshot{
		Bones:             s.bones,
		IkGoals:           s.ikGoals,
		BodyPosition:      s.bodyPosition,
		CharacterRotation: s.characterRotation,
	}
	var snapshot Snapshot
	if err := deepcopy.Copy(&snapshot, &source); err != nil {
		return nil, fmt.Errorf("スケルトン状態の複製に失敗しました: %w", err)
	}
	return &snapshot, nil
}

// Restore は複製済みの状態へ戻す。アニメーション評価結果の再適用に使う。
func (s *Skeleton) Restore(snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("復元元のスケルトン状態が未指定です")
	}
	var restored Snapshot
	if err := deepcopy.Copy(&restored, snapshot); err != nil {
		return fmt.Errorf("スケルトン状態の復元に失敗しました: %w", err)
	}

	s.bones = restored.Bones
	s.boneIndexes = make(map[string]int, len(restored.Bones))
	for i, bone := range restored.Bones {
		s.boneIndexes[bone.Name] = i
	}
	s.ikGoals = map[model.IkGoal]IkGoalState{}
	for _, goal := range model.FOOT_IK_GOALS {
		state, exists := restored.IkGoals[goal]
		if !exists {
			state = IkGoalState{Rotation: mmath.NewQuaternion()}
		}
		s.ikGoals[goal] = state
	}
	s.bodyPosition = restored.BodyPosition
	s.characterRotation = restored.CharacterRotation
	return nil
}
