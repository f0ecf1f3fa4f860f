// 指示: miu200521358
package collision

import (
	"math"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

const (
	intersectEpsilon = 1e-12
)

// Ray はレイの始点と単位方向を表す。
type Ray struct {
	Origin    mmath.Vec3
	Direction mmath.Vec3
}

// PointAt は始点から distance 進んだ位置を返す。
func (r Ray) PointAt(distance float64) mmath.Vec3 {
	return r.Origin.Added(r.Direction.MuledScalar(distance))
}

// Shape はレイとの交差判定ができる形状を表す。
type Shape interface {
	// Intersect は maxDistance 以内の交差を返す。
	Intersect(ray Ray, maxDistance float64) (model.RaycastHit, bool)
}

// Plane は片面の無限平面。法線側からのレイのみ衝突する。
type Plane struct {
	Point  mmath.Vec3
	Normal mmath.Vec3
}

// Intersect は平面との交差を返す。
func (p Plane) Intersect(ray Ray, maxDistance float64) (model.RaycastHit, bool) {
	normal := p.Normal.Normalized()
	if normal.IsZero() {
		return model.RaycastHit{}, false
	}
	denominator := ray.Direction.Dot(normal)
	if denominator > -intersectEpsilon {
		return model.RaycastHit{}, false
	}
	distance := p.Point.Subed(ray.Origin).Dot(normal) / denominator
	if distance < 0 || distance > maxDistance {
		return model.RaycastHit{}, false
	}
	return model.RaycastHit{Point: ray.PointAt(distance), Normal: normal, Distance: distance}, true
}

// Box は軸平行な直方体。内部から始まるレイは衝突しない。
type Box struct {
	Min mmath.Vec3
	Max mmath.Vec3
}

// Intersect はスラブ法で直方体との交差を返す。
func (b Box) Intersect(ray Ray, maxDistance float64) (model.RaycastHit, bool) {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	boxMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	boxMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	near := math.Inf(-1)
	far := math.Inf(1)
	nearAxis := -1
	nearSign := 0.0
	for axis := 0; axis < 3; axis++ {
		if math.Abs(direction[axis]) < intersectEpsilon {
			if origin[axis] < boxMin[axis] || origin[axis] > boxMax[axis] {
				return model.RaycastHit{}, false
			}
			continue
		}
		t1 := (boxMin[axis] - origin[axis]) / direction[axis]
		t2 := (boxMax[axis] - origin[axis]) / direction[axis]
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > near {
			near = t1
			nearAxis = axis
			nearSign = sign
		}
		far = math.Min(far, t2)
		if near > far {
			return model.RaycastHit{}, false
		}
	}
	if nearAxis < 0 || near < 0 || near > maxDistance {
		return model.RaycastHit{}, false
	}

	var normal [3]float64
	normal[nearAxis] = nearSign
	return model.RaycastHit{
		Point:    ray.PointAt(near),
		Normal:   mmath.NewVec3(normal[0], normal[1], normal[2]),
		Distance: near,
	}, true
}

// Triangle は片面の三角形。A→B→C が右手系で表側となる。
type Triangle struct {
	A mmath.Vec3
	B mmath.Vec3
	C mmath.Vec3
}

// Intersect は Möller–Trumbore 法で三角形との交差を返す。
func (tr Triangle) Intersect(ray Ray, maxDistance float64) (model.RaycastHit, bool) {
	edge1 := tr.B.Subed(tr.A)
	edge2 := tr.C.Subed(tr.A)
	normal := edge1.Cross(edge2).Normalized()
	if normal.IsZero() || ray.Direction.Dot(normal) > -intersectEpsilon {
		return model.RaycastHit{}, false
	}

	p := ray.Direction.Cross(edge2)
	determinant := edge1.Dot(p)
	if math.Abs(determinant) < intersectEpsilon {
		return model.RaycastHit{}, false
	}
	inverse := 1 / determinant
	s := ray.Origin.Subed(tr.A)
	u := s.Dot(p) * inverse
	if u < 0 || u > 1 {
		return model.RaycastHit{}, false
	}
	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * inverse
	if v < 0 || u+v > 1 {
		return model.RaycastHit{}, false
	}
	distance := edge2.Dot(q) * inverse
	if distance < 0 || distance > maxDistance {
		return model.RaycastHit{}, false
	}
	return model.RaycastHit{Point: ray.PointAt(distance), Normal: normal, Distance: distance}, true
}
