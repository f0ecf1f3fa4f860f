// 指示: miu200521358
package model

import (
	"errors"
	"testing"
)

func TestNewFootSettingsDefaults(t *testing.T) {
	settings := NewFootSettings()
	if settings.ContactMode != ContactModeSimple {
		t.Fatalf("default mode mismatch: %s", settings.ContactMode)
	}
	if settings.CollisionMask != AllLayers {
		t.Fatalf("default mask mismatch: %d", settings.CollisionMask)
	}
	if settings.StepHeight != 0.5 || settings.MaxAvatarOffset != 0.5 || settings.BottomHeight != 0.05 {
		t.Fatalf("default heights mismatch: %+v", settings)
	}
	if !settings.UseAnimatorBottomHeight {
		t.Fatalf("animator bottom height should be used by default")
	}
	if err := settings.Validate(); err != nil {
		t.Fatalf("default settings should be valid: %v", err)
	}
}

func TestFootSettingsValidateRejectsUnknownMode(t *testing.T) {
	settings := NewFootSettings()
	settings.ContactMode = ContactMode("hover")
	err := settings.Validate()
	if !errors.Is(err, ErrUnknownContactMode) {
		t.Fatalf("unknown mode should be rejected: %v", err)
	}
}

func TestFootSettingsValidateRejectsNegativeHeights(t *testing.T) {
	settings := NewFootSettings()
	settings.StepHeight = -1
	if err := settings.Validate(); err == nil {
		t.Fatalf("negative step height should be rejected")
	}
}

func TestParseContactMode(t *testing.T) {
	for _, value := range []string{"none", "simple", "complex"} {
		mode, err := ParseContactMode(value)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if string(mode) != value {
			t.Fatalf("mode mismatch: %s != %s", mode, value)
		}
	}
	if _, err := ParseContactMode("Simple"); !errors.Is(err, ErrUnknownContactMode) {
		t.Fatalf("case mismatch should be rejected: %v", err)
	}
}

func TestLayerMask(t *testing.T) {
	mask, err := NewLayerMask(0, 3)
	if err != nil {
		t.Fatalf("mask failed: %v", err)
	}
	if !mask.Contains(0) || !mask.Contains(3) || mask.Contains(1) {
		t.Fatalf("mask contents mismatch: %b", mask)
	}
	if mask.Contains(-1) || mask.Contains(32) {
		t.Fatalf("out of range layers should not match")
	}
	if _, err := NewLayerMask(32); err == nil {
		t.Fatalf("layer 32 should be rejected")
	}
	if !AllLayers.Contains(31) {
		t.Fatalf("all layers should contain layer 31")
	}
}

func TestRaycastHitSentinel(t *testing.T) {
	if (RaycastHit{}).HasContact() {
		t.Fatalf("zero hit should not have contact")
	}
}
