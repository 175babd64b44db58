package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/stardodge/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameConfig 模拟参数配置
//
// 配置文件位置: data/game_config.yaml（嵌入），可通过 -config 参数覆盖。
// 文件中缺失的字段保留 DefaultGameConfig 的值。
type GameConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Player PlayerConfig `yaml:"player"`
	Hazard HazardConfig `yaml:"hazard"`
	Pickup PickupConfig `yaml:"pickup"`
}

// ArenaConfig 竞技场兜底尺寸（前端无法提供窗口尺寸时使用）
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // 像素/秒
	Size  float64 `yaml:"size"`  // 直径（像素）
	Label string  `yaml:"label"` // 高分榜上的名字
}

// HazardConfig 危险物参数
type HazardConfig struct {
	Speed         float64           `yaml:"speed"`         // 默认速度（像素/秒）
	Size          float64           `yaml:"size"`          // 直径（像素）
	StartCount    int               `yaml:"startCount"`    // 进入游戏时的初始数量
	MaxCount      int               `yaml:"maxCount"`      // 数量上限
	SpawnInterval float64           `yaml:"spawnInterval"` // 生成间隔（秒）
	Interaction   InteractionConfig `yaml:"interaction"`
}

// InteractionConfig 危险物之间的碰撞规则（默认关闭）
//
// 开启后：两个危险物重叠时都反向，随机一个加速 SpeedFactor，另一个减速 SpeedFactor，
// 速度限制在 [MinSpeed, MaxSpeed]。
type InteractionConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MinSpeed    float64 `yaml:"minSpeed"`
	MaxSpeed    float64 `yaml:"maxSpeed"`
	SpeedFactor float64 `yaml:"speedFactor"`
}

// PickupConfig 拾取物参数
type PickupConfig struct {
	Size          float64 `yaml:"size"`
	MaxCount      int     `yaml:"maxCount"` // 数量上限，同时也是进入游戏时的初始数量
	SpawnInterval float64 `yaml:"spawnInterval"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Arena: ArenaConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Player: PlayerConfig{
			Speed: 500,
			Size:  64,
			Label: "Player",
		},
		Hazard: HazardConfig{
			Speed:         200,
			Size:          64,
			StartCount:    4,
			MaxCount:      20,
			SpawnInterval: 5.0,
			Interaction: InteractionConfig{
				Enabled:     false,
				MinSpeed:    100,
				MaxSpeed:    400,
				SpeedFactor: 0.1,
			},
		},
		Pickup: PickupConfig{
			Size:          30,
			MaxCount:      10,
			SpawnInterval: 1.0,
		},
	}
}

// PlayerRadius 玩家碰撞半径
func (c *GameConfig) PlayerRadius() float64 { return c.Player.Size / 2 }

// HazardRadius 危险物碰撞半径
func (c *GameConfig) HazardRadius() float64 { return c.Hazard.Size / 2 }

// PickupRadius 拾取物碰撞半径
func (c *GameConfig) PickupRadius() float64 { return c.Pickup.Size / 2 }

// ParseGameConfig 解析 YAML 数据并验证
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从文件系统加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 验证通过的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// LoadEmbeddedGameConfig 从嵌入资源加载默认配置
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(DefaultGameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 配置错误在模拟开始前报告，运行期间不会再出现：
//   - 尺寸必须为正，速度不能为负
//   - 数量上限必须为正，初始数量在 [0, 上限] 内
//   - 生成间隔不能为负
//   - 交互速度范围 Min <= Max
//   - 所有浮点字段必须是有限值（NaN 与任何值比较都为 false，会绕过下面的范围检查）
func (c *GameConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %.1fx%.1f", c.Arena.Width, c.Arena.Height)
	}

	if c.Player.Size <= 0 {
		return fmt.Errorf("player.size must be > 0, got %.1f", c.Player.Size)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player.speed must be >= 0, got %.1f", c.Player.Speed)
	}

	if c.Hazard.Size <= 0 {
		return fmt.Errorf("hazard.size must be > 0, got %.1f", c.Hazard.Size)
	}
	if c.Hazard.Speed < 0 {
		return fmt.Errorf("hazard.speed must be >= 0, got %.1f", c.Hazard.Speed)
	}
	if c.Hazard.MaxCount <= 0 {
		return fmt.Errorf("hazard.maxCount must be > 0, got %d", c.Hazard.MaxCount)
	}
	if c.Hazard.StartCount < 0 || c.Hazard.StartCount > c.Hazard.MaxCount {
		return fmt.Errorf("hazard.startCount must be in [0, %d], got %d", c.Hazard.MaxCount, c.Hazard.StartCount)
	}
	if c.Hazard.SpawnInterval < 0 {
		return fmt.Errorf("hazard.spawnInterval must be >= 0, got %.2f", c.Hazard.SpawnInterval)
	}

	ic := c.Hazard.Interaction
	if ic.MinSpeed < 0 || ic.MinSpeed > ic.MaxSpeed {
		return fmt.Errorf("hazard.interaction speed range invalid: min(%.1f) max(%.1f)", ic.MinSpeed, ic.MaxSpeed)
	}
	if ic.SpeedFactor < 0 || ic.SpeedFactor >= 1 {
		return fmt.Errorf("hazard.interaction.speedFactor must be in [0, 1), got %.2f", ic.SpeedFactor)
	}

	if c.Pickup.Size <= 0 {
		return fmt.Errorf("pickup.size must be > 0, got %.1f", c.Pickup.Size)
	}
	if c.Pickup.MaxCount <= 0 {
		return fmt.Errorf("pickup.maxCount must be > 0, got %d", c.Pickup.MaxCount)
	}
	if c.Pickup.SpawnInterval < 0 {
		return fmt.Errorf("pickup.spawnInterval must be >= 0, got %.2f", c.Pickup.SpawnInterval)
	}

	return nil
}

func (c *GameConfig) validateFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.speed", c.Player.Speed},
		{"player.size", c.Player.Size},
		{"hazard.speed", c.Hazard.Speed},
		{"hazard.size", c.Hazard.Size},
		{"hazard.spawnInterval", c.Hazard.SpawnInterval},
		{"hazard.interaction.minSpeed", c.Hazard.Interaction.MinSpeed},
		{"hazard.interaction.maxSpeed", c.Hazard.Interaction.MaxSpeed},
		{"hazard.interaction.speedFactor", c.Hazard.Interaction.SpeedFactor},
		{"pickup.size", c.Pickup.Size},
		{"pickup.spawnInterval", c.Pickup.SpawnInterval},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}
