// 指示: miu200521358
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
)

const testSceneYaml = `
name: stairs
ticks: 4
dt: 0.2
character:
  body_position: [0, 1, 0]
  left_foot:
    position: [-0.1, 0.05, 0]
    bottom_height: 0.05
  right_foot:
    position: [0.1, 0.05, 0]
    bottom_height: 0.05
  bones:
    - name: 頭
      position: [0, 1.6, 0]
look:
  rig_position: [0, 1.6, 0]
  target: [1, 1.6, 0]
colliders:
  - name: ground
    type: plane
    point: [0, 0, 0]
    normal: [0, 1, 0]
  - name: step
    type: box
    min: [-0.5, 0, -0.5]
    max: [0, 0.1, 0.5]
`

func writeTestScene(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scene failed: %v", err)
	}
	return path
}

func TestParseOptionsSimulate(t *testing.T) {
	errBuf := bytes.NewBuffer(nil)
	opts, err := parseOptions(
		[]string{"simulate", "a.yaml", "b.yaml", "--ticks", "10", "--dt", "0.02", "--mode", "complex", "--no-progress", "--debug"},
		bytes.NewBuffer(nil),
		errBuf,
	)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.command != commandSimulate {
		t.Fatalf("command mismatch: %s", opts.command)
	}
	if len(opts.scenePaths) != 2 || opts.scenePaths[0] != "a.yaml" || opts.scenePaths[1] != "b.yaml" {
		t.Fatalf("scene paths mismatch: %v", opts.scenePaths)
	}
	if opts.ticks != 10 || opts.dt != 0.02 || opts.mode != "complex" {
		t.Fatalf("overrides mismatch: %+v", opts)
	}
	if !opts.noProgress || !opts.debug {
		t.Fatalf("flags mismatch: %+v", opts)
	}
}

func TestParseOptionsConfig(t *testing.T) {
	opts, err := parseOptions([]string{"config"}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if opts.command != commandConfig {
		t.Fatalf("command mismatch: %s", opts.command)
	}
}

func TestParseOptionsRejectsNegativeTicks(t *testing.T) {
	_, err := parseOptions([]string{"simulate", "a.yaml", "--ticks=-1"}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "--ticks") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunConfigPrintsDefaultRig(t *testing.T) {
	out := bytes.NewBuffer(nil)
	if err := run([]string{"config"}, out, bytes.NewBuffer(nil)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var config io_config.RigConfig
	if err := yaml.Unmarshal(out.Bytes(), &config); err != nil {
		t.Fatalf("output should be yaml: %v", err)
	}
	if config.Foot.ContactMode != "simple" {
		t.Fatalf("contact mode mismatch: %s", config.Foot.ContactMode)
	}
	if len(config.Aim.Groups) == 0 {
		t.Fatalf("default aim groups should be printed")
	}
}

func TestRunSimulatesScenes(t *testing.T) {
	tempDir := t.TempDir()
	scenePath := writeTestScene(t, tempDir, "stairs.yaml", testSceneYaml)

	out := bytes.NewBuffer(nil)
	errOut := bytes.NewBuffer(nil)
	if err := run([]string{"simulate", scenePath, "--no-progress"}, out, errOut); err != nil {
		t.Fatalf("run failed: %v\n%s", err, errOut.String())
	}

	text := out.String()
	for _, want := range []string{"scene=stairs", "ticks=4", "mode=simple", "左足IK", "右足IK", "頭"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output should contain %q:\n%s", want, text)
		}
	}
	if !strings.Contains(errOut.String(), "シミュレーション完了") {
		t.Fatalf("finish log missing:\n%s", errOut.String())
	}
}

func TestRunAppliesOverrides(t *testing.T) {
	tempDir := t.TempDir()
	scenePath := writeTestScene(t, tempDir, "stairs.yaml", testSceneYaml)
	rigPath := writeTestScene(t, tempDir, "rig.yaml", "foot:\n  contact_mode: none\n")

	out := bytes.NewBuffer(nil)
	err := run([]string{"simulate", scenePath, "--rig", rigPath, "--ticks", "2", "--no-progress"}, out, bytes.NewBuffer(nil))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "ticks=2") || !strings.Contains(out.String(), "mode=none") {
		t.Fatalf("overrides should apply:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "IkWarningContactModeNone") {
		t.Fatalf("none mode warning missing:\n%s", out.String())
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	tempDir := t.TempDir()
	scenePath := writeTestScene(t, tempDir, "stairs.yaml", testSceneYaml)

	err := run([]string{"simulate", scenePath, "--mode", "hover", "--no-progress"}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "--mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunReportsMissingScene(t *testing.T) {
	err := run(
		[]string{"simulate", filepath.Join(t.TempDir(), "missing.yaml"), "--no-progress"},
		bytes.NewBuffer(nil),
		bytes.NewBuffer(nil),
	)
	if err == nil {
		t.Fatalf("expected error")
	}
}
