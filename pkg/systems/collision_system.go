package systems

import (
	"fmt"
	"log"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/utils"
)

// CollisionSystem 检测玩家与危险物、拾取物之间的圆形碰撞
//
// 两个圆的中心距离严格小于半径之和才算碰撞，刚好相切不算。
// 处理顺序：
//  1. 危险物（按ID升序）：第一个碰到玩家的危险物使玩家死亡，发布 GameOverEvent，
//     播放爆炸音效，之后的危险物不再检查
//  2. 拾取物：玩家存活时，所有重叠的拾取物都被收集，每个 +1 分
//  3. 危险物之间的交互（配置开启时）
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	scoreBoard    *game.ScoreBoard
	eventBus      *game.EventBus
	random        game.RandomSource
	sink          game.AssetSink
	interaction   config.InteractionConfig
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, sb *game.ScoreBoard, bus *game.EventBus, random game.RandomSource, sink game.AssetSink, interaction config.InteractionConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		scoreBoard:    sb,
		eventBus:      bus,
		random:        random,
		sink:          sink,
		interaction:   interaction,
	}
}

// Overlaps 圆形碰撞判定（严格小于）
func Overlaps(a, b utils.Vec2, ra, rb float64) bool {
	return utils.Distance(a, b) < ra+rb
}

// Update 执行一帧碰撞检测
// 存在多个玩家时不做任何处理并返回 ecs.ErrMultiplePlayers
func (s *CollisionSystem) Update() error {
	player, err := s.entityManager.Player()
	if err != nil {
		return fmt.Errorf("collision: %w", err)
	}

	if player != nil {
		if !s.checkHazardHit(player) {
			s.collectPickups(player)
		}
	}

	if s.interaction.Enabled {
		s.resolveHazardPairs()
	}
	return nil
}

// checkHazardHit 返回玩家是否在本帧死亡
func (s *CollisionSystem) checkHazardHit(player *ecs.Entity) bool {
	for _, id := range s.entityManager.GetEntitiesOfKind(components.KindHazard) {
		hazard, ok := s.entityManager.GetEntity(id)
		if !ok {
			continue
		}
		if !Overlaps(player.Position, hazard.Position, player.Radius, hazard.Radius) {
			continue
		}

		score := s.scoreBoard.Score()
		s.entityManager.RemoveEntity(player.ID)
		s.sink.RequestPlay(config.SoundExplosion)
		s.eventBus.Publish(game.GameOverEvent{Score: score})
		log.Printf("[CollisionSystem] Player %d hit by hazard %d, final score %d", player.ID, id, score)
		return true
	}
	return false
}

func (s *CollisionSystem) collectPickups(player *ecs.Entity) {
	for _, id := range s.entityManager.GetEntitiesOfKind(components.KindPickup) {
		pickup, ok := s.entityManager.GetEntity(id)
		if !ok {
			continue
		}
		if !Overlaps(player.Position, pickup.Position, player.Radius, pickup.Radius) {
			continue
		}

		s.entityManager.RemoveEntity(id)
		s.scoreBoard.Add(1)
		s.sink.RequestPlay(config.SoundPickup)
		log.Printf("[CollisionSystem] Pickup %d collected, score %d", id, s.scoreBoard.Score())
	}
}

// resolveHazardPairs 危险物互撞：双方反向，随机一方加速、另一方减速
// 每对只处理一次（i < j）
func (s *CollisionSystem) resolveHazardPairs() {
	ids := s.entityManager.GetEntitiesOfKind(components.KindHazard)
	for i := 0; i < len(ids); i++ {
		a, ok := s.entityManager.GetEntity(ids[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			b, ok := s.entityManager.GetEntity(ids[j])
			if !ok {
				continue
			}
			if !Overlaps(a.Position, b.Position, a.Radius, b.Radius) {
				continue
			}

			a.Direction = a.Direction.Neg()
			b.Direction = b.Direction.Neg()

			faster, slower := a, b
			if s.random.InRange(1) >= 0.5 {
				faster, slower = b, a
			}
			ic := s.interaction
			faster.Speed = utils.Clamp(faster.Speed*(1+ic.SpeedFactor), ic.MinSpeed, ic.MaxSpeed)
			slower.Speed = utils.Clamp(slower.Speed*(1-ic.SpeedFactor), ic.MinSpeed, ic.MaxSpeed)

			s.sink.RequestPlay(config.SoundBounce1)
		}
	}
}
