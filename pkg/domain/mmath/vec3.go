// 指示: miu200521358
// Package mmath はIK計算で使うベクトルとクォータニオンを提供する。
package mmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

var (
	// ZERO_VEC3 はゼロベクトル。接触なしの番兵値にも使う。
	ZERO_VEC3 = Vec3{}
	// UNIT_X_VEC3 はX軸単位ベクトル。
	UNIT_X_VEC3 = Vec3{Vec: r3.Vec{X: 1}}
	// UNIT_Y_VEC3 はワールド上方向。
	UNIT_Y_VEC3 = Vec3{Vec: r3.Vec{Y: 1}}
	// UNIT_Z_VEC3 はボーン前方向。
	UNIT_Z_VEC3 = Vec3{Vec: r3.Vec{Z: 1}}
)

// NewVec3 は成分を指定してベクトルを生成する。
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍を返す。
func (v Vec3) MuledScalar(s float64) Vec3 {
	return Vec3{Vec: r3.Scale(s, v.Vec)}
}

// Negated は符号反転ベクトルを返す。
func (v Vec3) Negated() Vec3 {
	return v.MuledScalar(-1)
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Cross は外積を返す。
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{Vec: r3.Cross(v.Vec, other.Vec)}
}

// Length は長さを返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Distance は2点間の距離を返す。
func (v Vec3) Distance(other Vec3) float64 {
	return v.Subed(other).Length()
}

// IsZero は全成分が0か判定する。
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalized は正規化ベクトルを返す。ゼロベクトルはそのまま返す。
func (v Vec3) Normalized() Vec3 {
	if v.IsZero() {
		return v
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// ProjectedOn は軸方向への射影を返す。axis は単位ベクトルであること。
func (v Vec3) ProjectedOn(axis Vec3) Vec3 {
	return axis.MuledScalar(axis.Dot(v))
}

// RejectedFrom は軸方向成分を除いたベクトルを返す。axis は単位ベクトルであること。
func (v Vec3) RejectedFrom(axis Vec3) Vec3 {
	return v.Subed(v.ProjectedOn(axis))
}

// NearEquals は許容誤差内で一致するか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return math.Abs(v.X-other.X) <= epsilon &&
		math.Abs(v.Y-other.Y) <= epsilon &&
		math.Abs(v.Z-other.Z) <= epsilon
}

// IsFinite はNaNと無限大を含まないか判定する。
func (v Vec3) IsFinite() bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// String は表示用文字列を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.5f, y=%.5f, z=%.5f]", v.X, v.Y, v.Z)
}

func (v Vec3) toMgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func vec3FromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v[0], v[1], v[2])
}

// LerpUnclamped は補間係数を制限せずに線形補間する。
func LerpUnclamped(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 は値を[0,1]に収める。NaNは0とする。
func Clamp01(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// DegToRad は度をラジアンへ変換する。
func DegToRad(degree float64) float64 {
	return mgl64.DegToRad(degree)
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radian float64) float64 {
	return mgl64.RadToDeg(radian)
}
