// simulate 无界面运行模拟核心
//
// 用法:
//
//	go run ./cmd/simulate -rounds 5 -seed 42
//	go run ./cmd/simulate -validate -config data/game_config.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "模拟参数文件（默认使用内置默认值）")
	validate   = flag.Bool("validate", false, "只验证配置文件，不运行模拟")
	seed       = flag.Int64("seed", 1, "随机种子")
	rounds     = flag.Int("rounds", 3, "运行的局数")
	maxTicks   = flag.Int("ticks", 60*60*5, "每局最多运行的帧数")
	tps        = flag.Int("tps", 60, "每秒帧数")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *validate {
		fmt.Printf("config OK: arena %.0fx%.0f, hazards %d/%d, pickups %d\n",
			cfg.Arena.Width, cfg.Arena.Height, cfg.Hazard.StartCount, cfg.Hazard.MaxCount, cfg.Pickup.MaxCount)
		return
	}

	results, err := run(cfg, *seed, *rounds, *maxTicks, 1/float64(*tps))
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}

	for i, r := range results {
		status := "survived"
		if r.died {
			status = "died"
		}
		fmt.Printf("round %d: score %d, %s after %.1fs\n", i+1, r.score, status, r.seconds)
	}
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		if *validate {
			return nil, fmt.Errorf("-validate requires -config")
		}
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(path)
}

type roundResult struct {
	score   uint32
	died    bool
	seconds float64
}

// run 用自动驾驶依次运行多局
// 每局从 Game 阶段开始，玩家死亡或达到帧数上限时结束
func run(cfg *config.GameConfig, seed int64, rounds, maxTicks int, dt float64) ([]roundResult, error) {
	sim, err := simulation.New(cfg, simulation.Options{Seed: seed})
	if err != nil {
		return nil, err
	}
	pilot := NewPilot(sim, utils.NewRandom(seed+1))

	var results []roundResult
	for round := 0; round < rounds; round++ {
		if err := sim.Step(0, utils.InputSnapshot{Confirm: true}); err != nil {
			return results, err
		}

		start := sim.Ticks()
		for sim.Ticks()-start < uint64(maxTicks) && sim.Phase() == game.PhaseGame {
			if err := sim.Step(dt, pilot.Next()); err != nil {
				return results, err
			}
		}
		ticks := sim.Ticks() - start

		died := sim.Phase() == game.PhaseGameOver
		results = append(results, roundResult{
			score:   sim.CurrentScore(),
			died:    died,
			seconds: float64(ticks) * dt,
		})

		if !died {
			// 超时：回到主菜单再开始下一局
			if err := sim.Step(0, utils.InputSnapshot{Cancel: true}); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}
