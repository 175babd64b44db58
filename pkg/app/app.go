// Package app 把模拟核心包装成 ebiten.Game
//
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
// 调用 NewApp 前必须先调用 embedded.Init() 初始化嵌入资源。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/media"
	"github.com/decker502/stardodge/pkg/scenes"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 模拟参数文件，为空时使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子
	Seed int64
	// Play 跳过主菜单直接开始
	Play bool
	// Settings 命令行对用户设置的修改，退出时随设置一起保存
	Settings game.SettingsOverrides
}

// App 实现 ebiten.Game
type App struct {
	sim             *simulation.Simulation
	sceneManager    *scenes.SceneManager
	settingsManager *game.SettingsManager
	touchEnabled    bool

	arenaWidth  int
	arenaHeight int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	resourceConfig, err := assets.LoadEmbeddedResourceConfig()
	if err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 设置持久化失败时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: "stardodge"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	if _, err := settingsManager.Apply(cfg.Settings); err != nil {
		return nil, err
	}
	gameConfig.Player.Label = settingsManager.PlayerLabel(gameConfig.Player.Label)
	ebiten.SetFullscreen(settingsManager.Settings().Fullscreen)

	audioContext := audio.NewContext(48000)
	resourceManager := media.NewResourceManager(resourceConfig)
	if err := resourceManager.PreloadSprites(); err != nil {
		return nil, fmt.Errorf("精灵生成失败: %w", err)
	}
	audioManager := media.NewAudioManager(audioContext, resourceConfig, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	a := &App{
		settingsManager: settingsManager,
		touchEnabled:    utils.IsMobile(),
		arenaWidth:      int(gameConfig.Arena.Width),
		arenaHeight:     int(gameConfig.Arena.Height),
	}

	a.sim, err = simulation.New(gameConfig, simulation.Options{
		Seed:   cfg.Seed,
		Sink:   media.Sink{Audio: audioManager, Resources: resourceManager},
		Bounds: a,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Play {
		if err := a.sim.RequestPhaseTransition(game.PhaseGame); err != nil {
			return nil, err
		}
		log.Printf("[App] Play enabled, skipping main menu")
	}

	a.sceneManager = scenes.NewSceneManager(a.sim, func(phase game.AppPhase) scenes.Scene {
		switch phase {
		case game.PhaseGame:
			return scenes.NewArenaScene(a.sim, resourceManager)
		case game.PhaseGameOver:
			return scenes.NewGameOverScene(a.sim)
		default:
			return scenes.NewMainMenuScene(a.sim)
		}
	})

	return a, nil
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		cfg, err := config.LoadEmbeddedGameConfig()
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded game config from %s", path)
	return cfg, nil
}

// Update 每个 tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())

	// 不变量错误已在模拟内部记录，进程继续运行
	_ = a.sim.Step(deltaTime, a.readInput())
	a.sceneManager.Update(deltaTime)

	if a.sim.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

// readInput 键盘输入，移动端再合并触摸输入
func (a *App) readInput() utils.InputSnapshot {
	input := ReadKeyboard()
	if !a.touchEnabled {
		return input
	}
	var player *simulation.EntityView
	if players := a.sim.Entities(components.KindPlayer); len(players) > 0 {
		player = &players[0]
	}
	return mergeInput(input, ReadTouch(a.sim.Phase(), player))
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时 letterbox 填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口大小，竞技场随之变化
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.arenaWidth, a.arenaHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ArenaSize 实现 game.BoundsProvider
// 窗口最小化时尺寸为 0，此时报告不可用
func (a *App) ArenaSize() (float64, float64, bool) {
	if a.arenaWidth <= 0 || a.arenaHeight <= 0 {
		return 0, 0, false
	}
	return float64(a.arenaWidth), float64(a.arenaHeight), true
}

// Shutdown 保存设置，RunGame 返回后调用
func (a *App) Shutdown() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// IsTermination 判断 RunGame 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
