package systems

import (
	"log"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/utils"
)

// SpawnSystem 管理危险物和拾取物的定时生成
//
// 两个计时器相互独立。计时器到期时：
//   - 数量未达上限：在竞技场内随机位置生成一个实体
//   - 数量已达上限：本次到期被丢弃
//
// 无论是否生成，到期标志都会被消费。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	random        game.RandomSource
	sink          game.AssetSink

	hazardTimer *components.TimerComponent
	pickupTimer *components.TimerComponent
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, random game.RandomSource, sink game.AssetSink) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized: hazard every %.1fs (max %d), pickup every %.1fs (max %d)",
		cfg.Hazard.SpawnInterval, cfg.Hazard.MaxCount, cfg.Pickup.SpawnInterval, cfg.Pickup.MaxCount)
	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		random:        random,
		sink:          sink,
		hazardTimer:   NewSpawnTimer(config.TimerHazardSpawn, cfg.Hazard.SpawnInterval),
		pickupTimer:   NewSpawnTimer(config.TimerPickupSpawn, cfg.Pickup.SpawnInterval),
	}
}

// HazardTimer 危险物计时器（只读访问用于界面和测试）
func (s *SpawnSystem) HazardTimer() *components.TimerComponent { return s.hazardTimer }

// PickupTimer 拾取物计时器
func (s *SpawnSystem) PickupTimer() *components.TimerComponent { return s.pickupTimer }

// Tick 推进两个计时器
func (s *SpawnSystem) Tick(deltaTime float64) {
	TickTimer(s.hazardTimer, deltaTime)
	TickTimer(s.pickupTimer, deltaTime)
}

// ResetTimers 清零两个计时器（进入 Game 阶段时调用）
func (s *SpawnSystem) ResetTimers() {
	ResetTimer(s.hazardTimer)
	ResetTimer(s.pickupTimer)
}

// Update 消费到期的计时器并按需生成实体
// 第一个不变量错误出现时本帧停止生成并返回该错误
func (s *SpawnSystem) Update(width, height float64) error {
	if ConsumeTimer(s.hazardTimer) {
		if s.entityManager.Count(components.KindHazard) < s.config.Hazard.MaxCount {
			if _, err := s.SpawnHazard(width, height); err != nil {
				return err
			}
		}
	}

	if ConsumeTimer(s.pickupTimer) {
		if s.entityManager.Count(components.KindPickup) < s.config.Pickup.MaxCount {
			if _, err := s.SpawnPickup(width, height); err != nil {
				return err
			}
		}
	}

	return nil
}

// SpawnHazard 在随机位置生成一个危险物，方向随机，速度为默认速度
// 不检查上限（初始投放和 Update 负责检查）
func (s *SpawnSystem) SpawnHazard(width, height float64) (ecs.EntityID, error) {
	radius := s.config.HazardRadius()
	pos := s.randomPosition(radius, width, height)
	id, err := s.entityManager.CreateMovingEntity(components.KindHazard, pos, s.random.UnitVector(), s.config.Hazard.Speed, radius)
	if err != nil {
		return 0, err
	}
	s.sink.RequestSprite(config.SpriteHazard)
	log.Printf("[SpawnSystem] Hazard %d spawned at (%.1f, %.1f)", id, pos.X, pos.Y)
	return id, nil
}

// SpawnPickup 在随机位置生成一个拾取物
func (s *SpawnSystem) SpawnPickup(width, height float64) (ecs.EntityID, error) {
	radius := s.config.PickupRadius()
	pos := s.randomPosition(radius, width, height)
	id, err := s.entityManager.CreateEntity(components.KindPickup, pos, radius)
	if err != nil {
		return 0, err
	}
	s.sink.RequestSprite(config.SpritePickup)
	log.Printf("[SpawnSystem] Pickup %d spawned at (%.1f, %.1f)", id, pos.X, pos.Y)
	return id, nil
}

// SpawnPlayer 在竞技场中心生成玩家
// 已有玩家时返回 ecs.ErrPlayerExists
func (s *SpawnSystem) SpawnPlayer(width, height float64) (ecs.EntityID, error) {
	pos := utils.Vec2{X: width / 2, Y: height / 2}
	id, err := s.entityManager.CreateEntity(components.KindPlayer, pos, s.config.PlayerRadius())
	if err != nil {
		return 0, err
	}
	s.sink.RequestSprite(config.SpritePlayer)
	log.Printf("[SpawnSystem] Player %d spawned at (%.1f, %.1f)", id, pos.X, pos.Y)
	return id, nil
}

// randomPosition 在 [radius, dim-radius] 内均匀取点
// 竞技场比实体还小时落在中线上
func (s *SpawnSystem) randomPosition(radius, width, height float64) utils.Vec2 {
	return utils.Vec2{
		X: randomCoord(s.random, radius, width),
		Y: randomCoord(s.random, radius, height),
	}
}

func randomCoord(random game.RandomSource, radius, dim float64) float64 {
	span := dim - 2*radius
	if span <= 0 {
		return dim / 2
	}
	return radius + random.InRange(span)
}
