// Package simulation 驱动一帧完整的模拟流程
//
// 每帧的调用顺序是固定的：
//
//	输入命令记录 → 计时器 → 移动 → 限位 → 碰撞 → 生成 → 游戏结束事件分发 → 阶段切换
//
// 计时器和四个模拟系统只在 Game 阶段且未暂停时运行。
// 所有状态由 Simulation 独占，单线程调用，不加锁。
package simulation

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/systems"
	"github.com/decker502/stardodge/pkg/utils"
)

// Options 外部协作者
// 为 nil 的字段使用默认实现
type Options struct {
	Random game.RandomSource   // 默认 utils.NewRandom(Seed)
	Sink   game.AssetSink      // 默认 game.NopAssetSink
	Bounds game.BoundsProvider // 默认使用配置中的竞技场尺寸
	Seed   int64
}

// EntityView 只读实体快照
type EntityView struct {
	ID       ecs.EntityID
	Kind     components.EntityKind
	Position utils.Vec2
	Radius   float64
}

// Simulation 模拟核心
type Simulation struct {
	config *config.GameConfig

	entityManager *ecs.EntityManager
	scoreBoard    *game.ScoreBoard
	eventBus      *game.EventBus
	stateMachine  *game.StateMachine

	random game.RandomSource
	sink   game.AssetSink
	bounds game.BoundsProvider

	movementSystem    *systems.MovementSystem
	confinementSystem *systems.ConfinementSystem
	spawnSystem       *systems.SpawnSystem
	collisionSystem   *systems.CollisionSystem

	arenaWidth  float64
	arenaHeight float64

	tick uint64
}

// New 创建模拟核心，初始阶段为 MainMenu
// 配置在这里验证，运行期间不会再出现配置错误
func New(cfg *config.GameConfig, opts Options) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	if opts.Random == nil {
		opts.Random = utils.NewRandom(opts.Seed)
	}
	if opts.Sink == nil {
		opts.Sink = game.NopAssetSink{}
	}
	if opts.Bounds == nil {
		opts.Bounds = game.FixedBounds{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	}

	em := ecs.NewEntityManager()
	sb := game.NewScoreBoard()
	bus := game.NewEventBus()

	s := &Simulation{
		config:        cfg,
		entityManager: em,
		scoreBoard:    sb,
		eventBus:      bus,
		stateMachine:  game.NewStateMachine(game.PhaseMainMenu),
		random:        opts.Random,
		sink:          opts.Sink,
		bounds:        opts.Bounds,

		movementSystem:    systems.NewMovementSystem(em, cfg.Player.Speed),
		confinementSystem: systems.NewConfinementSystem(em, opts.Random, opts.Sink),
		spawnSystem:       systems.NewSpawnSystem(em, cfg, opts.Random, opts.Sink),
		collisionSystem:   systems.NewCollisionSystem(em, sb, bus, opts.Random, opts.Sink, cfg.Hazard.Interaction),

		arenaWidth:  cfg.Arena.Width,
		arenaHeight: cfg.Arena.Height,
	}

	s.stateMachine.OnEnter(game.PhaseGame, s.enterGame)
	s.stateMachine.OnExit(game.PhaseGame, s.exitGame)

	bus.Subscribe(s.recordHighScore)
	bus.Subscribe(s.switchToGameOver)
	bus.Subscribe(s.reportGameOver)

	log.Printf("[Simulation] Created: arena %.0fx%.0f, phase %s", cfg.Arena.Width, cfg.Arena.Height, s.stateMachine.Phase())
	return s, nil
}

// Step 推进一帧
//
// 参数:
//   - deltaTime: 距上一帧的秒数（负数按 0 处理）
//   - input: 本帧输入快照
//
// 返回:
//   - error: 本帧出现的不变量错误（合并）。出错的系统本帧停止处理，其余流程照常完成
func (s *Simulation) Step(deltaTime float64, input utils.InputSnapshot) error {
	s.tick++
	if deltaTime < 0 {
		deltaTime = 0
	}

	s.applyInput(input)

	width, height, ok := s.bounds.ArenaSize()
	if ok {
		s.arenaWidth, s.arenaHeight = width, height
	}

	var errs []error

	if s.stateMachine.IsSimulating() {
		s.spawnSystem.Tick(deltaTime)
		s.movementSystem.Update(deltaTime, input.Direction())
		if ok {
			s.confinementSystem.Update(width, height)
		}
		if err := s.collisionSystem.Update(); err != nil {
			errs = append(errs, err)
		}
		if ok {
			if err := s.spawnSystem.Update(width, height); err != nil {
				errs = append(errs, fmt.Errorf("spawn: %w", err))
			}
		}
	}

	s.eventBus.Dispatch()

	if err := s.stateMachine.Apply(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		log.Printf("[Simulation] Tick %d: %v", s.tick, err)
		return err
	}
	return nil
}

// applyInput 把离散输入信号翻译成命令
// 当前阶段下不合法的请求（例如 Game 阶段再按确认）直接忽略
func (s *Simulation) applyInput(input utils.InputSnapshot) {
	if !input.HasCommand() {
		return
	}
	if input.Confirm {
		_ = s.stateMachine.RequestTransition(game.PhaseGame)
	}
	if input.Cancel {
		_ = s.stateMachine.RequestTransition(game.PhaseMainMenu)
	}
	if input.Pause {
		_ = s.stateMachine.RequestToggle()
	}
	if input.Exit {
		s.stateMachine.RequestExit()
	}
}

// enterGame 进入 Game 阶段：清零得分和计时器，投放初始实体和玩家
func (s *Simulation) enterGame() error {
	s.scoreBoard.Reset()
	s.spawnSystem.ResetTimers()

	width, height := s.arenaWidth, s.arenaHeight

	var errs []error
	for i := 0; i < s.config.Hazard.StartCount; i++ {
		if _, err := s.spawnSystem.SpawnHazard(width, height); err != nil {
			errs = append(errs, err)
			break
		}
	}
	for i := 0; i < s.config.Pickup.MaxCount; i++ {
		if _, err := s.spawnSystem.SpawnPickup(width, height); err != nil {
			errs = append(errs, err)
			break
		}
	}
	if _, err := s.spawnSystem.SpawnPlayer(width, height); err != nil {
		errs = append(errs, err)
	}

	log.Printf("[Simulation] Game started: %d hazards, %d pickups",
		s.entityManager.Count(components.KindHazard), s.entityManager.Count(components.KindPickup))
	return errors.Join(errs...)
}

// exitGame 离开 Game 阶段：一次性清空所有实体
func (s *Simulation) exitGame() error {
	n := s.entityManager.Clear()
	log.Printf("[Simulation] Game exited: cleared %d entities", n)
	return nil
}

func (s *Simulation) recordHighScore(e game.GameOverEvent) {
	s.scoreBoard.Record(s.config.Player.Label, e.Score)
}

func (s *Simulation) switchToGameOver(game.GameOverEvent) {
	if err := s.stateMachine.RequestTransition(game.PhaseGameOver); err != nil {
		log.Printf("[Simulation] Cannot enter GameOver: %v", err)
	}
}

func (s *Simulation) reportGameOver(e game.GameOverEvent) {
	log.Printf("[Simulation] Game over! Final score: %d", e.Score)
	for i, entry := range s.scoreBoard.HighScores() {
		log.Printf("[Simulation]   #%d %s: %d", i+1, entry.Label, entry.Score)
	}
}

// OnGameOver 注册额外的游戏结束监听者（界面、音效等）
func (s *Simulation) OnGameOver(l game.GameOverListener) {
	s.eventBus.Subscribe(l)
}

// Entities 返回指定类别实体的只读快照（按ID升序）
func (s *Simulation) Entities(kind components.EntityKind) []EntityView {
	ids := s.entityManager.GetEntitiesOfKind(kind)
	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		e, ok := s.entityManager.GetEntity(id)
		if !ok {
			continue
		}
		views = append(views, EntityView{
			ID:       e.ID,
			Kind:     e.Kind,
			Position: e.Position,
			Radius:   e.Radius,
		})
	}
	return views
}

// CurrentScore 当前得分
func (s *Simulation) CurrentScore() uint32 { return s.scoreBoard.Score() }

// HighScores 高分记录（按时间顺序）
func (s *Simulation) HighScores() []game.HighScoreEntry { return s.scoreBoard.HighScores() }

// BestScore 历史最高分，分数相同时取最早的记录
func (s *Simulation) BestScore() (game.HighScoreEntry, bool) { return s.scoreBoard.Best() }

// Phase 当前阶段
func (s *Simulation) Phase() game.AppPhase { return s.stateMachine.Phase() }

// RunState 当前运行状态
func (s *Simulation) RunState() game.RunState { return s.stateMachine.RunState() }

// RequestPhaseTransition 请求阶段切换，下一次 Step 末尾生效
func (s *Simulation) RequestPhaseTransition(target game.AppPhase) error {
	return s.stateMachine.RequestTransition(target)
}

// RequestRunStateToggle 请求暂停/继续
func (s *Simulation) RequestRunStateToggle() error {
	return s.stateMachine.RequestToggle()
}

// RequestExit 请求退出
func (s *Simulation) RequestExit() { s.stateMachine.RequestExit() }

// ExitRequested 是否已请求退出
func (s *Simulation) ExitRequested() bool { return s.stateMachine.ExitRequested() }

// Ticks 已执行的帧数
func (s *Simulation) Ticks() uint64 { return s.tick }
