package systems

import (
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/utils"
)

// MovementSystem 积分位置：position += direction * speed * deltaTime
//
// 玩家使用外部传入的移动意图（单位向量或零向量）和固定的 playerSpeed；
// 每个危险物使用自身存储的方向和速度。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	playerSpeed   float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, playerSpeed float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		playerSpeed:   playerSpeed,
	}
}

// Update 移动玩家和所有危险物
// 零意图不会产生位移；deltaTime 为负时按 0 处理
func (s *MovementSystem) Update(deltaTime float64, intent utils.Vec2) {
	if deltaTime <= 0 {
		return
	}

	if !intent.IsZero() {
		for _, id := range s.entityManager.GetEntitiesOfKind(components.KindPlayer) {
			if player, ok := s.entityManager.GetEntity(id); ok {
				player.Position = player.Position.Add(intent.Scale(s.playerSpeed * deltaTime))
			}
		}
	}

	for _, id := range s.entityManager.GetEntitiesOfKind(components.KindHazard) {
		hazard, ok := s.entityManager.GetEntity(id)
		if !ok {
			continue
		}
		hazard.Position = hazard.Position.Add(hazard.Direction.Scale(hazard.Speed * deltaTime))
	}
}
