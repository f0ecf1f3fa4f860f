// 指示: miu200521358
package io_config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_smartik/pkg/domain/mmath"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRigConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "rig.yaml", `
foot:
  contact_mode: complex
  collision_layers: [0, 3]
  left_trigger_policy: ignore
`)
	config, err := LoadRigConfig(path)
	require.NoError(t, err)

	settings, err := config.ToFootSettings()
	require.NoError(t, err)
	require.Equal(t, model.ContactModeComplex, settings.ContactMode)
	require.Equal(t, model.DefaultStepHeight, settings.StepHeight)
	require.Equal(t, model.DefaultMaxAvatarOffset, settings.MaxAvatarOffset)
	require.True(t, settings.UseAnimatorBottomHeight)
	require.True(t, settings.CollisionMask.Contains(3))
	require.False(t, settings.CollisionMask.Contains(1))
	require.Equal(t, model.TriggerIgnore, settings.LeftTriggerPolicy)
	require.Equal(t, model.TriggerPolicyDefault, settings.RightTriggerPolicy)

	require.Len(t, config.Aim.Groups, len(DefaultRigConfig().Aim.Groups))
}

func TestLoadRigConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"mode":    "foot:\n  contact_mode: hover\n",
		"layer":   "foot:\n  collision_layers: [32]\n",
		"step":    "foot:\n  step_height: -1\n",
		"trigger": "foot:\n  right_trigger_policy: sometimes\n",
		"offset":  "aim:\n  groups:\n    - bones: [頭]\n      weight: 1\n      rotation_offset: [1, 2]\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRigConfig(writeFile(t, "rig.yaml", content))
			require.Error(t, err)
		})
	}

	_, err := LoadRigConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestToFootSettingsWrapsUnknownMode(t *testing.T) {
	config := DefaultRigConfig()
	config.Foot.ContactMode = "hover"
	_, err := config.ToFootSettings()
	require.ErrorIs(t, err, model.ErrUnknownContactMode)
}

func TestToBoneGroupsClampsWeights(t *testing.T) {
	config := RigConfig{Aim: AimConfig{Groups: []BoneGroupConfig{
		{Bones: []string{"首"}, Weight: 1.5, RotationOffset: []float64{0, 10, 0}},
		{Bones: []string{"頭"}, Weight: -0.5},
	}}}
	groups, err := config.ToBoneGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, 1.0, groups[0].Weight())
	require.Equal(t, mmath.NewVec3(0, 10, 0), groups[0].RotationOffset())
	require.Equal(t, 0.0, groups[1].Weight())
	require.Equal(t, mmath.ZERO_VEC3, groups[1].RotationOffset())
}

func TestMarshalRigConfigRoundTrip(t *testing.T) {
	data, err := MarshalRigConfig(DefaultRigConfig())
	require.NoError(t, err)

	var decoded RigConfig
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, DefaultRigConfig(), decoded)
}

func TestLoadSceneConfigDefaultsNameAndTiming(t *testing.T) {
	path := writeFile(t, "flat_ground.yaml", `
character:
  body_position: [0, 1, 0]
colliders:
  - type: plane
    point: [0, 0, 0]
    normal: [0, 1, 0]
`)
	config, err := LoadSceneConfig(path)
	require.NoError(t, err)
	require.Equal(t, "flat_ground", config.Name)
	require.Equal(t, DefaultTicks, config.Ticks)
	require.Equal(t, DefaultDeltaTime, config.DeltaTime)
	require.True(t, config.QueriesHitTriggers)
	require.Equal(t, string(model.ContactModeSimple), config.Rig.Foot.ContactMode)
	require.Len(t, config.Colliders, 1)
	require.Equal(t, ColliderTypePlane, config.Colliders[0].Type)
}

func TestParseSceneConfigValidates(t *testing.T) {
	cases := map[string]string{
		"ticks":         "ticks: 0\n",
		"dt":            "dt: -0.1\n",
		"type":          "colliders:\n  - type: sphere\n",
		"plane normal":  "colliders:\n  - type: plane\n    point: [0, 0, 0]\n",
		"box vector":    "colliders:\n  - type: box\n    min: [0, 0]\n    max: [1, 1, 1]\n",
		"layer":         "colliders:\n  - type: plane\n    layer: 40\n    point: [0, 0, 0]\n    normal: [0, 1, 0]\n",
		"bone name":     "character:\n  bones:\n    - position: [0, 1, 0]\n",
		"body position": "character:\n  body_position: [0, 1]\n",
		"target":        "look:\n  target: [1, 2, 3, 4]\n",
		"rig mode":      "rig:\n  foot:\n    contact_mode: hover\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(content))
			require.Error(t, err)
		})
	}
}

func TestParseVec3(t *testing.T) {
	vec, err := ParseVec3("v", nil, mmath.UNIT_Y_VEC3)
	require.NoError(t, err)
	require.Equal(t, mmath.UNIT_Y_VEC3, vec)

	vec, err = ParseVec3("v", []float64{1, 2, 3}, mmath.ZERO_VEC3)
	require.NoError(t, err)
	require.Equal(t, mmath.NewVec3(1, 2, 3), vec)

	_, err = ParseVec3("v", []float64{1, 2}, mmath.ZERO_VEC3)
	require.ErrorContains(t, err, "v")

	rotation, err := ParseEulerRotation("r", []float64{0, 90, 0})
	require.NoError(t, err)
	require.True(t, rotation.MulVec3(mmath.UNIT_Z_VEC3).NearEquals(mmath.UNIT_X_VEC3, 1e-9))
}

func TestParseSceneConfigReportsFirstInvalidVector(t *testing.T) {
	content := `
character:
  body_position: [0, 1]
  left_foot:
    position: [0]
look:
  target: [1, 2, 3, 4]
colliders:
  - type: triangle
    a: [0, 0]
    b: [1]
    c: [0, 0, 1]
`
	for i := 0; i < 20; i++ {
		_, err := ParseSceneConfig([]byte(content))
		require.ErrorContains(t, err, "character.body_position")
	}

	colliderOnly := "colliders:\n  - type: triangle\n    a: [0, 0]\n    b: [1]\n    c: [0, 0, 1]\n"
	for i := 0; i < 20; i++ {
		_, err := ParseSceneConfig([]byte(colliderOnly))
		require.ErrorContains(t, err, "colliders[0].a ")
	}
}
