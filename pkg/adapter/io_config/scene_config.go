// 指示: miu200521358
package io_config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
)

const (
	// DefaultTicks は既定のシミュレーションtick数。
	DefaultTicks = 60
	// DefaultDeltaTime は既定のtick間隔(秒)。
	DefaultDeltaTime = 1.0 / 60
)

// ColliderType はコライダー形状の種類。
type ColliderType string

const (
	ColliderTypePlane    ColliderType = "plane"
	ColliderTypeBox      ColliderType = "box"
	ColliderTypeTriangle ColliderType = "triangle"
)

// SceneConfig はシミュレーションシーン設定を表す。
type SceneConfig struct {
	Name               string           `yaml:"name"`
	Rig                RigConfig        `yaml:"rig"`
	Ticks              int              `yaml:"ticks"`
	DeltaTime          float64          `yaml:"dt"`
	QueriesHitTriggers bool             `yaml:"queries_hit_triggers"`
	Character          CharacterConfig  `yaml:"character"`
	Look               LookConfig       `yaml:"look"`
	Colliders          []ColliderConfig `yaml:"colliders"`
}

// CharacterConfig はアニメーション評価後のキャラクター姿勢を表す。
type CharacterConfig struct {
	// Rotation はキャラクター全体の回転(オイラー角、度)。
	Rotation     []float64      `yaml:"rotation,omitempty"`
	BodyPosition []float64      `yaml:"body_position"`
	LeftFoot     FootPoseConfig `yaml:"left_foot"`
	RightFoot    FootPoseConfig `yaml:"right_foot"`
	Bones        []BoneConfig   `yaml:"bones"`
}

// FootPoseConfig は足IK目標の姿勢を表す。
type FootPoseConfig struct {
	Position     []float64 `yaml:"position"`
	Rotation     []float64 `yaml:"rotation,omitempty"`
	BottomHeight float64   `yaml:"bottom_height"`
}

// BoneConfig はボーンのワールド姿勢を表す。
type BoneConfig struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position,omitempty"`
	Rotation []float64 `yaml:"rotation,omitempty"`
}

// LookConfig は注視リグと注視点を表す。
type LookConfig struct {
	RigPosition []float64 `yaml:"rig_position,omitempty"`
	RigRotation []float64 `yaml:"rig_rotation,omitempty"`
	Target      []float64 `yaml:"target"`
}

// ColliderConfig はコライダー設定を表す。形状ごとに使う項目が異なる。
type ColliderConfig struct {
	Name    string       `yaml:"name"`
	Type    ColliderType `yaml:"type"`
	Layer   int          `yaml:"layer"`
	Trigger bool         `yaml:"trigger"`
	// plane
	Point  []float64 `yaml:"point,omitempty"`
	Normal []float64 `yaml:"normal,omitempty"`
	// box
	Min []float64 `yaml:"min,omitempty"`
	Max []float64 `yaml:"max,omitempty"`
	// triangle
	A []float64 `yaml:"a,omitempty"`
	B []float64 `yaml:"b,omitempty"`
	C []float64 `yaml:"c,omitempty"`
}

// DefaultSceneConfig は既定値を埋めたシーン設定を返す。
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Rig:                DefaultRigConfig(),
		Ticks:              DefaultTicks,
		DeltaTime:          DefaultDeltaTime,
		QueriesHitTriggers: true,
	}
}

// LoadSceneConfig はYAMLファイルからシーン設定を読み込む。
// 名前が未指定の場合はファイル名を使う。
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("シーン設定ファイルの読み込みに失敗しました: %w", err)
	}
	config, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return config, nil
}

// ParseSceneConfig はYAMLからシーン設定を生成し、検証する。
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	config := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("シーン設定の解析に失敗しました: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate はシーン設定を検証する。
func (c SceneConfig) Validate() error {
	if c.Ticks <= 0 {
		return fmt.Errorf("ticks は1以上で指定してください: %d", c.Ticks)
	}
	if !(c.DeltaTime > 0) {
		return fmt.Errorf("dt は正の値で指定してください: %v", c.DeltaTime)
	}
	if _, err := c.Rig.ToFootSettings(); err != nil {
		return err
	}
	if _, err := c.Rig.ToBoneGroups(); err != nil {
		return err
	}

	vectors := []namedVector{
		{"character.rotation", c.Character.Rotation},
		{"character.body_position", c.Character.BodyPosition},
		{"character.left_foot.position", c.Character.LeftFoot.Position},
		{"character.left_foot.rotation", c.Character.LeftFoot.Rotation},
		{"character.right_foot.position", c.Character.RightFoot.Position},
		{"character.right_foot.rotation", c.Character.RightFoot.Rotation},
		{"look.rig_position", c.Look.RigPosition},
		{"look.rig_rotation", c.Look.RigRotation},
		{"look.target", c.Look.Target},
	}
	for i, bone := range c.Character.Bones {
		if bone.Name == "" {
			return fmt.Errorf("character.bones[%d].name が未指定です", i)
		}
		vectors = append(vectors,
			namedVector{fmt.Sprintf("character.bones[%d].position", i), bone.Position},
			namedVector{fmt.Sprintf("character.bones[%d].rotation", i), bone.Rotation},
		)
	}
	for _, vector := range vectors {
		if _, err := ParseVec3(vector.name, vector.values, mmath.ZERO_VEC3); err != nil {
			return err
		}
	}

	for i, collider := range c.Colliders {
		if err := collider.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// namedVector は検証対象の設定キーと値の組。
type namedVector struct {
	name   string
	values []float64
}

// validate は形状ごとの必須項目を検証する。
func (c ColliderConfig) validate(index int) error {
	var required []namedVector
	switch c.Type {
	case ColliderTypePlane:
		required = []namedVector{{"point", c.Point}, {"normal", c.Normal}}
	case ColliderTypeBox:
		required = []namedVector{{"min", c.Min}, {"max", c.Max}}
	case ColliderTypeTriangle:
		required = []namedVector{{"a", c.A}, {"b", c.B}, {"c", c.C}}
	default:
		return fmt.Errorf("colliders[%d].type が不正です: %q", index, string(c.Type))
	}
	if c.Layer < 0 || c.Layer >= 32 {
		return fmt.Errorf("colliders[%d].layer は0から31で指定してください: %d", index, c.Layer)
	}
	for _, vector := range required {
		if len(vector.values) != 3 {
			return fmt.Errorf("colliders[%d].%s は3要素で指定してください: %v", index, vector.name, vector.values)
		}
	}
	return nil
}
