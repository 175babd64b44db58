package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/stardodge/pkg/embedded"
)

func TestDefaultGameConfigValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.PlayerRadius() != 32 {
		t.Errorf("PlayerRadius() = %v, want 32", cfg.PlayerRadius())
	}
	if cfg.HazardRadius() != 32 {
		t.Errorf("HazardRadius() = %v, want 32", cfg.HazardRadius())
	}
	if cfg.PickupRadius() != 15 {
		t.Errorf("PickupRadius() = %v, want 15", cfg.PickupRadius())
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
arena:
  width: 1024
  height: 768
hazard:
  maxCount: 8
  startCount: 2
  spawnInterval: 3.5
pickup:
  maxCount: 5
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Arena.Width != 1024 || cfg.Arena.Height != 768 {
					t.Errorf("arena = %vx%v, want 1024x768", cfg.Arena.Width, cfg.Arena.Height)
				}
				if cfg.Hazard.MaxCount != 8 || cfg.Hazard.StartCount != 2 {
					t.Errorf("hazard counts = %d/%d, want 2/8", cfg.Hazard.StartCount, cfg.Hazard.MaxCount)
				}
				// 未写出的字段保留默认值
				if cfg.Player.Speed != 500 {
					t.Errorf("player speed = %v, want default 500", cfg.Player.Speed)
				}
				if cfg.Pickup.SpawnInterval != 1.0 {
					t.Errorf("pickup interval = %v, want default 1.0", cfg.Pickup.SpawnInterval)
				}
			},
		},
		{
			name: "zero hazard cap",
			yamlContent: `
hazard:
  maxCount: 0
  startCount: 0
`,
			wantErr:     true,
			errContains: "hazard.maxCount",
		},
		{
			name: "negative pickup cap",
			yamlContent: `
pickup:
  maxCount: -3
`,
			wantErr:     true,
			errContains: "pickup.maxCount",
		},
		{
			name: "negative interval",
			yamlContent: `
hazard:
  spawnInterval: -1
`,
			wantErr:     true,
			errContains: "hazard.spawnInterval",
		},
		{
			name: "start count above cap",
			yamlContent: `
hazard:
  startCount: 30
  maxCount: 20
`,
			wantErr:     true,
			errContains: "hazard.startCount",
		},
		{
			name: "inverted interaction range",
			yamlContent: `
hazard:
  interaction:
    enabled: true
    minSpeed: 500
    maxSpeed: 100
`,
			wantErr:     true,
			errContains: "interaction speed range",
		},
		{
			name: "NaN player size",
			yamlContent: `
player:
  size: .nan
`,
			wantErr:     true,
			errContains: "player.size must be a finite number",
		},
		{
			name: "infinite hazard speed",
			yamlContent: `
hazard:
  speed: .inf
`,
			wantErr:     true,
			errContains: "hazard.speed must be a finite number",
		},
		{
			name: "NaN spawn interval",
			yamlContent: `
hazard:
  spawnInterval: .nan
`,
			wantErr:     true,
			errContains: "hazard.spawnInterval must be a finite number",
		},
		{
			name: "negative infinite arena",
			yamlContent: `
arena:
  width: -.inf
`,
			wantErr:     true,
			errContains: "arena.width must be a finite number",
		},
		{
			name: "NaN interaction factor",
			yamlContent: `
hazard:
  interaction:
    speedFactor: .nan
`,
			wantErr:     true,
			errContains: "hazard.interaction.speedFactor must be a finite number",
		},
		{
			name:        "invalid yaml",
			yamlContent: "arena: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game_config.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmbeddedGameConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/game_config.yaml")
	if err != nil {
		t.Fatalf("failed to read repo config: %v", err)
	}
	embedded.Init(fstest.MapFS{
		DefaultGameConfigPath: &fstest.MapFile{Data: data},
	})

	cfg, err := LoadEmbeddedGameConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedGameConfig() error: %v", err)
	}

	// 仓库自带的配置与代码默认值一致
	def := DefaultGameConfig()
	if *cfg != *def {
		t.Errorf("embedded config differs from defaults:\n got  %+v\n want %+v", *cfg, *def)
	}
}

func TestValidateRejectsNonFiniteValues(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Player.Size = math.NaN()
	cfg.Hazard.Speed = math.Inf(1)
	cfg.Hazard.SpawnInterval = math.NaN()

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() should reject NaN/Inf fields")
	}
}
