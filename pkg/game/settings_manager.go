package game

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户设置（跨次启动保留）
type Settings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
	PlayerName   string  `yaml:"playerName"`   // 高分榜名字，空则使用配置中的默认值
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// 存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// SettingsManager 负责用户设置的加载和保存
//
// gdata 管理器为 nil 时进入降级模式：设置只保存在内存中。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败不是致命错误，使用默认设置继续
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 读取设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded

	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 把当前设置写入 gdata；降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Settings 当前设置
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// SetSoundVolume 设置音效音量（限制在 0.0 ~ 1.0）
// 只修改内存，需要调用 Save 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetPlayerName 设置高分榜名字（去除首尾空白）
func (sm *SettingsManager) SetPlayerName(name string) {
	sm.settings.PlayerName = strings.TrimSpace(name)
}

// SettingsOverrides 启动参数对设置的修改，零值字段表示不修改
type SettingsOverrides struct {
	PlayerName  string
	SoundVolume *float64
	Sound       string   // "on" | "off"，空表示不修改
}

// NewSettingsOverrides 由命令行参数构造设置修改；volume 为负数表示不修改音量
func NewSettingsOverrides(name string, volume float64, sound string) SettingsOverrides {
	o := SettingsOverrides{PlayerName: name, Sound: sound}
	if volume >= 0 {
		o.SoundVolume = &volume
	}
	return o
}

// Apply 通过各 Set 方法应用启动参数，返回是否有设置被修改
// 修改只在内存中，调用方负责在退出时 Save
func (sm *SettingsManager) Apply(o SettingsOverrides) (bool, error) {
	changed := false

	if name := strings.TrimSpace(o.PlayerName); name != "" {
		sm.SetPlayerName(name)
		changed = true
	}

	if o.SoundVolume != nil {
		sm.SetSoundVolume(*o.SoundVolume)
		changed = true
	}

	switch strings.ToLower(o.Sound) {
	case "":
	case "on":
		sm.SetSoundEnabled(true)
		changed = true
	case "off":
		sm.SetSoundEnabled(false)
		changed = true
	default:
		return changed, fmt.Errorf("invalid sound setting %q, want on or off", o.Sound)
	}

	if changed {
		log.Printf("[SettingsManager] Applied overrides: name=%q volume=%.2f sound=%t",
			sm.settings.PlayerName, sm.settings.SoundVolume, sm.settings.SoundEnabled)
	}
	return changed, nil
}

// PlayerLabel 返回高分榜名字，未设置时返回 fallback
func (sm *SettingsManager) PlayerLabel(fallback string) string {
	if sm.settings.PlayerName == "" {
		return fallback
	}
	return sm.settings.PlayerName
}

// EffectiveVolume 实际播放音量，关闭音效时为 0
func (sm *SettingsManager) EffectiveVolume() float64 {
	if !sm.settings.SoundEnabled {
		return 0
	}
	return sm.settings.SoundVolume
}

func clampVolume(volume float64) float64 {
	if math.IsNaN(volume) || volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
