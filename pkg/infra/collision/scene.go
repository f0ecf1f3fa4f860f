// 指示: miu200521358
// Package collision は接地判定用の簡易衝突シーンを提供する。
package collision

import (
	"fmt"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

// Collider はシーン内の衝突形状を表す。
type Collider struct {
	Name      string
	Layer     int
	IsTrigger bool
	Shape     Shape
}

// Scene はコライダー群に対するレイキャストを提供する。
type Scene struct {
	colliders []Collider
	// QueriesHitTriggers は TriggerUseGlobal 指定時にトリガーと衝突するか。
	QueriesHitTriggers bool
}

// NewScene は空のシーンを生成する。
func NewScene() *Scene {
	return &Scene{QueriesHitTriggers: true}
}

// Add はコライダーを追加する。
func (s *Scene) Add(collider Collider) error {
	if collider.Shape == nil {
		return fmt.Errorf("コライダー形状が未指定です: %s", collider.Name)
	}
	if collider.Layer < 0 || collider.Layer >= 32 {
		return fmt.Errorf("コライダーのレイヤー番号が範囲外です: %s layer=%d", collider.Name, collider.Layer)
	}
	s.colliders = append(s.colliders, collider)
	return nil
}

// Colliders は登録済みコライダー数を返す。
func (s *Scene) Colliders() int {
	return len(s.colliders)
}

// Raycast はマスクとトリガー方針で絞り込んだコライダーのうち最も近い衝突を返す。
// 同距離の場合は先に追加したコライダーを優先する。
func (s *Scene) Raycast(
	origin, direction mmath.Vec3,
	maxDistance float64,
	mask model.LayerMask,
	policy model.TriggerPolicy,
) (model.RaycastHit, bool) {
	direction = direction.Normalized()
	if direction.IsZero() || maxDistance < 0 {
		return model.RaycastHit{}, false
	}
	ray := Ray{Origin: origin, Direction: direction}
	hitTriggers := s.hitsTriggers(policy)

	var closest model.RaycastHit
	found := false
	for _, collider := range s.colliders {
		if !mask.Contains(collider.Layer) {
			continue
		}
		if collider.IsTrigger && !hitTriggers {
			continue
		}
		hit, ok := collider.Shape.Intersect(ray, maxDistance)
		if !ok {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}
	return closest, found
}

// hitsTriggers はトリガーと衝突するか判定する。
func (s *Scene) hitsTriggers(policy model.TriggerPolicy) bool {
	switch policy {
	case model.TriggerCollide:
		return true
	case model.TriggerIgnore:
		return false
	default:
		return s.QueriesHitTriggers
	}
}
