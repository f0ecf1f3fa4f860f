// 指示: miu200521358
// Package io_config はIKリグとシミュレーションシーンのYAML設定を読み書きする。
package io_config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

// RigConfig はIKリグ設定を表す。
type RigConfig struct {
	Aim  AimConfig  `yaml:"aim"`
	Foot FootConfig `yaml:"foot"`
}

// AimConfig は注視ソルバー設定を表す。
type AimConfig struct {
	Groups []BoneGroupConfig `yaml:"groups"`
}

// BoneGroupConfig はボーン群設定を表す。
type BoneGroupConfig struct {
	Bones  []string `yaml:"bones"`
	Weight float64  `yaml:"weight"`
	// RotationOffset はオイラー角(度)。省略時は0。
	RotationOffset []float64 `yaml:"rotation_offset,omitempty"`
}

// FootConfig は足接地ソルバー設定を表す。
type FootConfig struct {
	ContactMode string `yaml:"contact_mode"`
	// CollisionLayers は接地対象のレイヤー番号。空なら全レイヤー。
	CollisionLayers         []int   `yaml:"collision_layers,omitempty"`
	StepHeight              float64 `yaml:"step_height"`
	MaxAvatarOffset         float64 `yaml:"max_avatar_offset"`
	UseAnimatorBottomHeight bool    `yaml:"use_animator_bottom_height"`
	BottomHeight            float64 `yaml:"bottom_height"`
	LeftTriggerPolicy       string  `yaml:"left_trigger_policy,omitempty"`
	RightTriggerPolicy      string  `yaml:"right_trigger_policy,omitempty"`
}

// DefaultRigConfig は既定のIKリグ設定を返す。
func DefaultRigConfig() RigConfig {
	settings := model.NewFootSettings()
	return RigConfig{
		Aim: AimConfig{Groups: []BoneGroupConfig{
			{Bones: []string{"上半身", "上半身2"}, Weight: 0.3},
			{Bones: []string{"首"}, Weight: 0.6},
			{Bones: []string{"頭"}, Weight: 1},
		}},
		Foot: FootConfig{
			ContactMode:             string(settings.ContactMode),
			StepHeight:              settings.StepHeight,
			MaxAvatarOffset:         settings.MaxAvatarOffset,
			UseAnimatorBottomHeight: settings.UseAnimatorBottomHeight,
			BottomHeight:            settings.BottomHeight,
		},
	}
}

// LoadRigConfig はYAMLファイルからIKリグ設定を読み込む。未指定項目は既定値を使う。
func LoadRigConfig(path string) (*RigConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("リグ設定ファイルの読み込みに失敗しました: %w", err)
	}
	config := DefaultRigConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("リグ設定ファイルの解析に失敗しました: %w", err)
	}
	if _, err := config.ToFootSettings(); err != nil {
		return nil, err
	}
	if _, err := config.ToBoneGroups(); err != nil {
		return nil, err
	}
	return &config, nil
}

// MarshalRigConfig はIKリグ設定をYAMLへ変換する。
func MarshalRigConfig(config RigConfig) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("リグ設定のYAML変換に失敗しました: %w", err)
	}
	return data, nil
}

// ToBoneGroups は注視ボーン群へ変換する。ウェイトは[0,1]に収める。
func (c RigConfig) ToBoneGroups() ([]model.BoneGroup, error) {
	groups := make([]model.BoneGroup, 0, len(c.Aim.Groups))
	for i, group := range c.Aim.Groups {
		offset, err := ParseVec3(fmt.Sprintf("aim.groups[%d].rotation_offset", i), group.RotationOffset, mmath.ZERO_VEC3)
		if err != nil {
			return nil, err
		}
		groups = append(groups, model.NewBoneGroup(group.Bones, group.Weight, offset))
	}
	return groups, nil
}

// ToFootSettings は足接地設定へ変換し、検証する。
func (c RigConfig) ToFootSettings() (model.FootSettings, error) {
	mode, err := model.ParseContactMode(c.Foot.ContactMode)
	if err != nil {
		return model.FootSettings{}, fmt.Errorf("foot.contact_mode が不正です: %w", err)
	}
	mask := model.AllLayers
	if len(c.Foot.CollisionLayers) > 0 {
		mask, err = model.NewLayerMask(c.Foot.CollisionLayers...)
		if err != nil {
			return model.FootSettings{}, fmt.Errorf("foot.collision_layers が不正です: %w", err)
		}
	}

	settings := model.FootSettings{
		ContactMode:             mode,
		CollisionMask:           mask,
		StepHeight:              c.Foot.StepHeight,
		MaxAvatarOffset:         c.Foot.MaxAvatarOffset,
		UseAnimatorBottomHeight: c.Foot.UseAnimatorBottomHeight,
		BottomHeight:            c.Foot.BottomHeight,
		LeftTriggerPolicy:       model.TriggerPolicy(c.Foot.LeftTriggerPolicy),
		RightTriggerPolicy:      model.TriggerPolicy(c.Foot.RightTriggerPolicy),
	}
	if err := settings.Validate(); err != nil {
		return model.FootSettings{}, err
	}
	return settings, nil
}

// ParseVec3 は3要素の配列をベクトルへ変換する。空なら fallback を返す。
func ParseVec3(name string, values []float64, fallback mmath.Vec3) (mmath.Vec3, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	if len(values) != 3 {
		return mmath.Vec3{}, fmt.Errorf("%s は3要素で指定してください: %v", name, values)
	}
	vec := mmath.NewVec3(values[0], values[1], values[2])
	if !vec.IsFinite() {
		return mmath.Vec3{}, fmt.Errorf("%s に有限でない値が含まれています: %v", name, values)
	}
	return vec, nil
}

// ParseEulerRotation はオイラー角(度)の配列を回転へ変換する。空なら単位回転。
func ParseEulerRotation(name string, values []float64) (mmath.Quaternion, error) {
	euler, err := ParseVec3(name, values, mmath.ZERO_VEC3)
	if err != nil {
		return mmath.Quaternion{}, err
	}
	return mmath.NewQuaternionFromEulerDegrees(euler), nil
}
