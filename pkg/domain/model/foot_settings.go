// 指示: miu200521358
package model

import (
	"fmt"
	"math"
)

// ContactMode は足接地の解決モードを表す。
type ContactMode string

const (
	// ContactModeNone は足接地を行わない。
	ContactModeNone ContactMode = "none"
	// ContactModeSimple はワールド上方向で接地する。
	ContactModeSimple ContactMode = "simple"
	// ContactModeComplex はキャラクターの上方向で接地する。
	ContactModeComplex ContactMode = "complex"
)

const (
	// DefaultStepHeight は既定の段差許容高さ。
	DefaultStepHeight = 0.5
	// DefaultMaxAvatarOffset は既定の最大沈み込み量。
	DefaultMaxAvatarOffset = 0.5
	// DefaultBottomHeight は既定の足裏高さ。
	DefaultBottomHeight = 0.05
)

// Valid は既知のモードか判定する。
func (m ContactMode) Valid() bool {
	switch m {
	case ContactModeNone, ContactModeSimple, ContactModeComplex:
		return true
	default:
		return false
	}
}

// ParseContactMode は文字列を接地モードへ変換する。
func ParseContactMode(value string) (ContactMode, error) {
	mode := ContactMode(value)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownContactMode, value)
	}
	return mode, nil
}

// FootSettings は足接地ソルバーの設定を表す。
type FootSettings struct {
	ContactMode             ContactMode
	CollisionMask           LayerMask
	StepHeight              float64
	MaxAvatarOffset         float64
	UseAnimatorBottomHeight bool
	BottomHeight            float64
	// LeftTriggerPolicy と RightTriggerPolicy は空ならモード既定値を使う。
	LeftTriggerPolicy  TriggerPolicy
	RightTriggerPolicy TriggerPolicy
}

// NewFootSettings は既定値の設定を生成する。
func NewFootSettings() FootSettings {
	return FootSettings{
		ContactMode:             ContactModeSimple,
		CollisionMask:           AllLayers,
		StepHeight:              DefaultStepHeight,
		MaxAvatarOffset:         DefaultMaxAvatarOffset,
		UseAnimatorBottomHeight: true,
		BottomHeight:            DefaultBottomHeight,
	}
}

// Validate は設定値を検証する。
func (s FootSettings) Validate() error {
	if !s.ContactMode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownContactMode, string(s.ContactMode))
	}
	for name, value := range map[string]float64{
		"stepHeight":      s.StepHeight,
		"maxAvatarOffset": s.MaxAvatarOffset,
		"bottomHeight":    s.BottomHeight,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return fmt.Errorf("足接地設定が不正です: %s=%v", name, value)
		}
	}
	if !s.LeftTriggerPolicy.Valid() {
		return fmt.Errorf("左足トリガーポリシーが不正です: %q", string(s.LeftTriggerPolicy))
	}
	if !s.RightTriggerPolicy.Valid() {
		return fmt.Errorf("右足トリガーポリシーが不正です: %q", string(s.RightTriggerPolicy))
	}
	return nil
}
