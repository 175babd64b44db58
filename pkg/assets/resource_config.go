// Package assets 描述精灵和音效资源，并用 beep 合成音效
//
// 资源全部由 data/resources.yaml 描述：精灵是纯色圆形（附带终端字符），
// 音效是振荡器加包络合成的短音，不依赖任何外部素材文件。
// 该包不依赖 ebiten，图形前端和终端前端共用。
package assets

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ResourceConfig 资源配置文件结构
//
//	version: "1.0"
//	sprites:
//	  - id: SPRITE_PLAYER
//	    color: "#3c8cff"
//	    glyph: "@"
//	sounds:
//	  - id: SOUND_PICKUP
//	    wave: square
//	    frequency: 880
//	    durationMs: 120
type ResourceConfig struct {
	Version string           `yaml:"version"`
	Sprites []SpriteResource `yaml:"sprites"`
	Sounds  []SoundResource  `yaml:"sounds"`
}

// SpriteResource 精灵定义
type SpriteResource struct {
	ID      string `yaml:"id"`
	Color   string `yaml:"color"`             // #RRGGBB
	Outline string `yaml:"outline,omitempty"` // 描边颜色，可选
	Glyph   string `yaml:"glyph"`             // 终端前端使用的单个字符
}

// SoundResource 合成音效定义
type SoundResource struct {
	ID           string  `yaml:"id"`
	Wave         string  `yaml:"wave"`                   // sine | square | saw | noise
	Frequency    float64 `yaml:"frequency"`              // 起始频率 Hz
	EndFrequency float64 `yaml:"endFrequency,omitempty"` // 结束频率，0 表示不滑音
	DurationMs   int     `yaml:"durationMs"`
	AttackMs     int     `yaml:"attackMs,omitempty"`
	ReleaseMs    int     `yaml:"releaseMs,omitempty"`
	Volume       float64 `yaml:"volume,omitempty"` // 0 表示 1.0
}

// ParseResourceConfig 解析并验证资源配置
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config: %w", err)
	}
	return &cfg, nil
}

// LoadResourceConfig 从文件加载资源配置
func LoadResourceConfig(path string) (*ResourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config %s: %w", path, err)
	}
	return ParseResourceConfig(data)
}

// LoadEmbeddedResourceConfig 从嵌入资源加载默认资源配置
func LoadEmbeddedResourceConfig() (*ResourceConfig, error) {
	data, err := embedded.ReadFile(config.DefaultResourceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded resource config: %w", err)
	}
	return ParseResourceConfig(data)
}

// Validate 检查ID唯一、颜色和波形合法
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]bool)

	for _, s := range c.Sprites {
		if s.ID == "" {
			return fmt.Errorf("sprite with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate resource id %s", s.ID)
		}
		seen[s.ID] = true

		if _, err := ParseColor(s.Color); err != nil {
			return fmt.Errorf("sprite %s: %w", s.ID, err)
		}
		if s.Outline != "" {
			if _, err := ParseColor(s.Outline); err != nil {
				return fmt.Errorf("sprite %s outline: %w", s.ID, err)
			}
		}
		if len([]rune(s.Glyph)) != 1 {
			return fmt.Errorf("sprite %s: glyph must be a single character, got %q", s.ID, s.Glyph)
		}
	}

	for _, s := range c.Sounds {
		if s.ID == "" {
			return fmt.Errorf("sound with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate resource id %s", s.ID)
		}
		seen[s.ID] = true

		if _, ok := parseWave(s.Wave); !ok {
			return fmt.Errorf("sound %s: unknown wave %q", s.ID, s.Wave)
		}
		if s.DurationMs <= 0 {
			return fmt.Errorf("sound %s: durationMs must be > 0", s.ID)
		}
		if s.AttackMs < 0 || s.ReleaseMs < 0 || s.AttackMs+s.ReleaseMs > s.DurationMs {
			return fmt.Errorf("sound %s: attack+release exceeds duration", s.ID)
		}
		if s.Frequency < 0 || s.EndFrequency < 0 {
			return fmt.Errorf("sound %s: frequency must be >= 0", s.ID)
		}
		if s.Volume < 0 || s.Volume > 1 {
			return fmt.Errorf("sound %s: volume must be in [0, 1]", s.ID)
		}
	}

	return nil
}

// Sprite 按ID查找精灵定义
func (c *ResourceConfig) Sprite(id string) (SpriteResource, bool) {
	for _, s := range c.Sprites {
		if s.ID == id {
			return s, true
		}
	}
	return SpriteResource{}, false
}

// Sound 按ID查找音效定义
func (c *ResourceConfig) Sound(id string) (SoundResource, bool) {
	for _, s := range c.Sounds {
		if s.ID == id {
			return s, true
		}
	}
	return SoundResource{}, false
}

// ParseColor 解析 #RRGGBB 颜色
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || len(hex) == len(s) {
		return color.RGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
