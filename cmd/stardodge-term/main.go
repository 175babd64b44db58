// stardodge-term 终端版前端
//
// 用 tcell 绘制字符画面，用 beep 播放合成音效。需要在仓库根目录运行（读取 data/ 下的配置），
// 或通过 -root 指定包含 data/ 目录的路径。
//
// 用法:
//
//	go run ./cmd/stardodge-term
//	go run ./cmd/stardodge-term -root /path/to/stardodge -log term.log
//	go run ./cmd/stardodge-term -name Nova -volume 0.5
//	go run ./cmd/stardodge-term -mute
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/embedded"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	root       = flag.String("root", ".", "包含 data/ 目录的路径")
	configPath = flag.String("config", "", "模拟参数文件（默认使用 data/game_config.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	logPath    = flag.String("log", "", "日志文件（终端被画面占用，默认不输出日志）")
	tps        = flag.Int("tps", 60, "每秒帧数")
	name       = flag.String("name", "", "高分榜上的名字（保存到设置）")
	volume     = flag.Float64("volume", -1, "音效音量 0.0 ~ 1.0（保存到设置，负数表示不修改）")
	sound      = flag.String("sound", "", "音效开关 on|off（保存到设置）")
	mute       = flag.Bool("mute", false, "关闭音效（等同 -sound off，保存到设置）")
)

func main() {
	flag.Parse()

	closeLog, err := setupLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log setup failed: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stardodge-term: %v\n", err)
		os.Exit(1)
	}
}

func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func run() error {
	embedded.Init(os.DirFS(*root))
	if !embedded.Exists(config.DefaultResourceConfigPath) {
		return fmt.Errorf("%s not found under %s (use -root to point at the repository)", config.DefaultResourceConfigPath, *root)
	}

	gameConfig, err := loadGameConfig(*configPath)
	if err != nil {
		return err
	}
	resources, err := assets.LoadEmbeddedResourceConfig()
	if err != nil {
		return fmt.Errorf("resource config: %w", err)
	}
	glyphs, err := buildGlyphs(resources)
	if err != nil {
		return err
	}

	// 与图形版共用设置存档
	gdataManager, err := gdata.Open(gdata.Config{AppName: "stardodge"})
	if err != nil {
		log.Printf("[Term] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	if _, err := settings.Apply(game.NewSettingsOverrides(*name, *volume, soundFlag(*sound, *mute))); err != nil {
		return err
	}
	defer func() {
		if err := settings.Save(); err != nil {
			log.Printf("[Term] Failed to save settings: %v", err)
		}
	}()
	gameConfig.Player.Label = settings.PlayerLabel(gameConfig.Player.Label)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	sink := newBeepSink(resources, settings)
	if settings.Settings().SoundEnabled {
		if err := sink.init(); err != nil {
			// 没有声音也能玩
			log.Printf("[Term] Audio initialization failed: %v", err)
		}
	}
	defer sink.close()

	sim, err := simulation.New(gameConfig, simulation.Options{
		Seed:   resolveSeed(*seed),
		Sink:   sink,
		Bounds: screenBounds{screen: screen},
	})
	if err != nil {
		return err
	}

	r := &renderer{screen: screen, glyphs: glyphs, label: gameConfig.Player.Label}
	loop(screen, sim, r, time.Second/time.Duration(*tps))
	return nil
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		log.Printf("[Term] Falling back to default game config: %v", err)
		return config.DefaultGameConfig(), nil
	}
	return cfg, nil
}

// soundFlag -mute 优先于 -sound
func soundFlag(sound string, mute bool) string {
	if mute {
		return "off"
	}
	return sound
}

func resolveSeed(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}

// pumpEvents 把 poll 得到的事件投递到 events，直到 poll 返回 nil 或 done 关闭
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// loop 主循环：事件协程只投递按键，所有模拟和绘制都在本协程
func loop(screen tcell.Screen, sim *simulation.Simulation, r *renderer, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, events, done)

	var keys keyState
	dt := frame.Seconds()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handle(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := sim.Step(dt, keys.snapshot(time.Now())); err != nil {
				log.Printf("[Term] Step error: %v", err)
			}
			if sim.ExitRequested() {
				return
			}
			r.draw(sim)
		}
	}
}
