// 指示: miu200521358
package mmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	quaternionEpsilon = 1e-12
)

// Quaternion は回転を表す単位クォータニオン。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位回転を生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionByValues は成分を指定してクォータニオンを生成する。
func NewQuaternionByValues(x, y, z, w float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// NewQuaternionFromAxisAngle は軸と角度(ラジアン)から回転を生成する。
func NewQuaternionFromAxisAngle(axis Vec3, radian float64) Quaternion {
	if axis.IsZero() {
		return NewQuaternion()
	}
	return Quaternion{Quat: mgl64.QuatRotate(radian, axis.Normalized().toMgl())}
}

// NewQuaternionFromEulerDegrees はオイラー角(度)から回転を生成する。
// Z軸、X軸、Y軸の順にワールド軸回りで回す。
func NewQuaternionFromEulerDegrees(euler Vec3) Quaternion {
	qx := mgl64.QuatRotate(DegToRad(euler.X), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(DegToRad(euler.Y), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(DegToRad(euler.Z), mgl64.Vec3{0, 0, 1})
	return Quaternion{Quat: qy.Mul(qx).Mul(qz)}
}

// NewQuaternionFromTo は from を to へ向ける最短回転を生成する。
// どちらかがゼロベクトルの場合は単位回転を返す。
// 逆向きの場合は from に直交する軸回りの180度回転を返す。
func NewQuaternionFromTo(from, to Vec3) Quaternion {
	if from.IsZero() || to.IsZero() {
		return NewQuaternion()
	}
	f := from.Normalized()
	t := to.Normalized()
	w := 1 + f.Dot(t)
	if w <= quaternionEpsilon {
		axis := f.Cross(UNIT_X_VEC3)
		if axis.Length() < 1e-6 {
			axis = f.Cross(UNIT_Y_VEC3)
		}
		return Quaternion{Quat: mgl64.Quat{W: 0, V: axis.Normalized().toMgl()}}
	}
	return Quaternion{Quat: mgl64.Quat{W: w, V: f.Cross(t).toMgl()}}.Normalized()
}

// Muled は q * other を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// Inverted は逆回転を返す。
func (q Quaternion) Inverted() Quaternion {
	if q.Quat.Len() < quaternionEpsilon {
		return NewQuaternion()
	}
	return Quaternion{Quat: q.Quat.Inverse()}
}

// Normalized は正規化したクォータニオンを返す。
func (q Quaternion) Normalized() Quaternion {
	if q.Quat.Len() < quaternionEpsilon {
		return NewQuaternion()
	}
	return Quaternion{Quat: q.Quat.Normalize()}
}

// MulVec3 はベクトルを回転させる。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	return vec3FromMgl(q.Quat.Rotate(v.toMgl()))
}

// Slerp は最短経路で球面線形補間する。
func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	to := other.Quat
	if q.Quat.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return Quaternion{Quat: mgl64.QuatSlerp(q.Quat, to, t)}
}

// NearEquals は同じ回転を表すか許容誤差内で判定する。q と -q は同一視する。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return math.Abs(math.Abs(q.Quat.Dot(other.Quat))-1) <= epsilon
}

// AngleTo は other との回転角度差(ラジアン)を返す。
func (q Quaternion) AngleTo(other Quaternion) float64 {
	dot := math.Min(math.Abs(q.Normalized().Quat.Dot(other.Normalized().Quat)), 1)
	return 2 * math.Acos(dot)
}

// IsFinite はNaNと無限大を含まないか判定する。
func (q Quaternion) IsFinite() bool {
	for _, c := range []float64{q.W, q.V[0], q.V[1], q.V[2]} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String は表示用文字列を返す。
func (q Quaternion) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f, w=%.5f]", q.V[0], q.V[1], q.V[2], q.W)
}
