package main

import (
	"flag"
	"log"

	"github.com/decker502/stardodge/pkg/app"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/embedded"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "模拟参数文件（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	play       = flag.Bool("play", false, "跳过主菜单直接开始")
	name       = flag.String("name", "", "高分榜上的名字（保存到设置）")
	volume     = flag.Float64("volume", -1, "音效音量 0.0 ~ 1.0（保存到设置，负数表示不修改）")
	sound      = flag.String("sound", "", "音效开关 on|off（保存到设置）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       resolveSeed(*seed),
		Play:       *play,
		Settings:   game.NewSettingsOverrides(*name, *volume, *sound),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Star Dodge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !app.IsTermination(err) {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
