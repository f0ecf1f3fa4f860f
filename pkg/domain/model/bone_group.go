// 指示: miu200521358
package model

import "github.com/miu200521358/mu_smartik/pkg/domain/mmath"

// BoneGroup は同じウェイトと回転オフセットを共有するボーン群を表す。
type BoneGroup struct {
	boneNames      []string
	weight         float64
	rotationOffset mmath.Vec3
}

// NewBoneGroup はボーン群を生成する。ウェイトは[0,1]に収める。
func NewBoneGroup(boneNames []string, weight float64, rotationOffset mmath.Vec3) BoneGroup {
	names := make([]string, len(boneNames))
	copy(names, boneNames)
	return BoneGroup{
		boneNames:      names,
		weight:         mmath.Clamp01(weight),
		rotationOffset: rotationOffset,
	}
}

// BoneNames は処理順のボーン名一覧を返す。
func (g BoneGroup) BoneNames() []string {
	names := make([]string, len(g.boneNames))
	copy(names, g.boneNames)
	return names
}

// Weight はブレンドウェイトを返す。
func (g BoneGroup) Weight() float64 {
	return g.weight
}

// RotationOffset は回転オフセット(オイラー角、度)を返す。
func (g BoneGroup) RotationOffset() mmath.Vec3 {
	return g.rotationOffset
}

// OffsetRotation は回転オフセットのクォータニオンを返す。
func (g BoneGroup) OffsetRotation() mmath.Quaternion {
	return mmath.NewQuaternionFromEulerDegrees(g.rotationOffset)
}
