// 指示: miu200521358
package model

import (
	"fmt"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
)

// LayerMask は衝突判定対象レイヤーのビットマスク。
type LayerMask uint32

// AllLayers は全レイヤーを対象とするマスク。
const AllLayers LayerMask = ^LayerMask(0)

// NewLayerMask はレイヤー番号一覧からマスクを生成する。
func NewLayerMask(layers ...int) (LayerMask, error) {
	var mask LayerMask
	for _, layer := range layers {
		if layer < 0 || layer >= 32 {
			return 0, fmt.Errorf("レイヤー番号が範囲外です: %d", layer)
		}
		mask |= 1 << uint(layer)
	}
	return mask, nil
}

// Contains はレイヤーがマスクに含まれるか判定する。
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= 32 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// TriggerPolicy はトリガーコライダーとの衝突可否を表す。
type TriggerPolicy string

const (
	// TriggerPolicyDefault は接地モード既定のポリシーを使う。
	TriggerPolicyDefault TriggerPolicy = ""
	// TriggerUseGlobal は衝突シーン側の既定に従う。
	TriggerUseGlobal TriggerPolicy = "use_global"
	// TriggerIgnore はトリガーを無視する。
	TriggerIgnore TriggerPolicy = "ignore"
	// TriggerCollide はトリガーとも衝突する。
	TriggerCollide TriggerPolicy = "collide"
)

// Valid は既知のポリシーか判定する。
func (p TriggerPolicy) Valid() bool {
	switch p {
	case TriggerPolicyDefault, TriggerUseGlobal, TriggerIgnore, TriggerCollide:
		return true
	default:
		return false
	}
}

// RaycastHit はレイキャストの衝突結果を表す。
// 法線と距離がゼロの値は「接触なし」を表す。
type RaycastHit struct {
	Point    mmath.Vec3
	Normal   mmath.Vec3
	Distance float64
}

// HasContact は接地面の法線を持つか判定する。
func (h RaycastHit) HasContact() bool {
	return !h.Normal.IsZero()
}
