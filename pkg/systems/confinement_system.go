package systems

import (
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/utils"
)

// ConfinementSystem 把玩家和危险物限制在竞技场内
//
// 每个实体的中心被限制在 [radius, dimension-radius]。
// 危险物在某个轴上被限位时，该轴方向分量取反（撞墙反弹）；玩家只是停在墙边。
// 必须在 MovementSystem 之后、CollisionSystem 之前运行。
type ConfinementSystem struct {
	entityManager *ecs.EntityManager
	random        game.RandomSource
	sink          game.AssetSink
}

// NewConfinementSystem 创建限位系统
func NewConfinementSystem(em *ecs.EntityManager, random game.RandomSource, sink game.AssetSink) *ConfinementSystem {
	return &ConfinementSystem{
		entityManager: em,
		random:        random,
		sink:          sink,
	}
}

// Update 按竞技场尺寸限位
func (s *ConfinementSystem) Update(width, height float64) {
	for _, id := range s.entityManager.GetEntitiesOfKind(components.KindPlayer) {
		if player, ok := s.entityManager.GetEntity(id); ok {
			ConfinePosition(&player.Position, player.Radius, width, height)
		}
	}

	for _, id := range s.entityManager.GetEntitiesOfKind(components.KindHazard) {
		hazard, ok := s.entityManager.GetEntity(id)
		if !ok {
			continue
		}

		clampedX, clampedY := ConfinePosition(&hazard.Position, hazard.Radius, width, height)
		if clampedX {
			hazard.Direction.X = -hazard.Direction.X
		}
		if clampedY {
			hazard.Direction.Y = -hazard.Direction.Y
		}
		if clampedX || clampedY {
			s.playBounce()
		}
	}
}

// playBounce 随机播放两种反弹音效之一
func (s *ConfinementSystem) playBounce() {
	if s.random.InRange(1) < 0.5 {
		s.sink.RequestPlay(config.SoundBounce1)
	} else {
		s.sink.RequestPlay(config.SoundBounce2)
	}
}

// ConfinePosition 将位置限制在 [radius, dimension-radius] 内
// 返回每个轴是否发生了限位（限位前位置在有效范围之外）
func ConfinePosition(pos *utils.Vec2, radius, width, height float64) (clampedX, clampedY bool) {
	x := utils.Clamp(pos.X, radius, width-radius)
	y := utils.Clamp(pos.Y, radius, height-radius)
	clampedX = x != pos.X
	clampedY = y != pos.Y
	pos.X = x
	pos.Y = y
	return clampedX, clampedY
}
