package assets

import (
	"image/color"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/embedded"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#3c8cff", color.RGBA{R: 0x3c, G: 0x8c, B: 0xff, A: 0xff}, false},
		{"#000000", color.RGBA{A: 0xff}, false},
		{"3c8cff", color.RGBA{}, true},
		{"#3c8c", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseResourceConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		errContains string
	}{
		{
			name:        "重复ID",
			yaml:        "sprites:\n  - {id: A, color: '#ffffff', glyph: a}\n  - {id: A, color: '#ffffff', glyph: b}\n",
			errContains: "duplicate",
		},
		{
			name:        "非法颜色",
			yaml:        "sprites:\n  - {id: A, color: red, glyph: a}\n",
			errContains: "invalid color",
		},
		{
			name:        "多字符",
			yaml:        "sprites:\n  - {id: A, color: '#ffffff', glyph: ab}\n",
			errContains: "glyph",
		},
		{
			name:        "未知波形",
			yaml:        "sounds:\n  - {id: S, wave: organ, frequency: 440, durationMs: 10}\n",
			errContains: "unknown wave",
		},
		{
			name:        "包络超长",
			yaml:        "sounds:\n  - {id: S, wave: sine, frequency: 440, durationMs: 10, attackMs: 8, releaseMs: 8}\n",
			errContains: "attack+release",
		},
		{
			name:        "YAML语法错误",
			yaml:        "sprites: [",
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

// 仓库自带的资源配置必须覆盖核心发出的所有资源ID
func TestEmbeddedResourceConfigCoversCoreIDs(t *testing.T) {
	data, err := os.ReadFile("../../data/resources.yaml")
	if err != nil {
		t.Fatalf("failed to read repo resources: %v", err)
	}
	embedded.Init(fstest.MapFS{
		config.DefaultResourceConfigPath: &fstest.MapFile{Data: data},
	})

	cfg, err := LoadEmbeddedResourceConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedResourceConfig() error: %v", err)
	}

	for _, id := range []string{config.SpritePlayer, config.SpriteHazard, config.SpritePickup} {
		if _, ok := cfg.Sprite(id); !ok {
			t.Errorf("sprite %s missing", id)
		}
	}
	for _, id := range []string{config.SoundBounce1, config.SoundBounce2, config.SoundPickup, config.SoundExplosion} {
		if _, ok := cfg.Sound(id); !ok {
			t.Errorf("sound %s missing", id)
		}
	}
}
