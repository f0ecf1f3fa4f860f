// 指示: miu200521358
package model

import "github.com/miu200521358/mu_smartik/pkg/domain/mmath"

// RigFrame は注視方向計算の基準となる頭部リグの姿勢を表す。
type RigFrame struct {
	Position mmath.Vec3
	Rotation mmath.Quaternion
}

// NewRigFrame はリグ姿勢を生成する。
func NewRigFrame(position mmath.Vec3, rotation mmath.Quaternion) RigFrame {
	return RigFrame{Position: position, Rotation: rotation}
}
