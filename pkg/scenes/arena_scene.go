package scenes

import (
	"fmt"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/media"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 实体类别对应的精灵
var spriteForKind = map[components.EntityKind]string{
	components.KindPlayer: config.SpritePlayer,
	components.KindHazard: config.SpriteHazard,
	components.KindPickup: config.SpritePickup,
}

// ArenaScene Game 阶段：绘制所有实体、得分和暂停遮罩
type ArenaScene struct {
	view            View
	resourceManager *media.ResourceManager
}

// NewArenaScene 创建竞技场场景
func NewArenaScene(view View, rm *media.ResourceManager) *ArenaScene {
	return &ArenaScene{view: view, resourceManager: rm}
}

// Update 竞技场场景没有自己的动画
func (s *ArenaScene) Update(deltaTime float64) {}

// Draw 按 拾取物 → 危险物 → 玩家 的顺序绘制，玩家在最上层
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, kind := range []components.EntityKind{components.KindPickup, components.KindHazard, components.KindPlayer} {
		sprite := s.resourceManager.GetSprite(spriteForKind[kind])
		for _, e := range s.view.Entities(kind) {
			if sprite == nil {
				s.drawFallback(screen, kind, e.Position.X, e.Position.Y, e.Radius)
				continue
			}
			op := &ebiten.DrawImageOptions{}
			scale := 2 * e.Radius / media.SpriteResolution
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(e.Position.X-e.Radius, e.Position.Y-e.Radius)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(sprite, op)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.view.CurrentScore()), 10, 10)

	if s.view.RunState() == game.RunStatePaused {
		w, h := screenSize(screen)
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), panelColor, false)
		drawCentered(screen, []string{"PAUSED", "", "Space to resume"}, h/2-24)
	}
}

// drawFallback 精灵尚未生成时画一个纯色圆
func (s *ArenaScene) drawFallback(screen *ebiten.Image, kind components.EntityKind, x, y, r float64) {
	c, ok := s.resourceManager.SpriteColor(spriteForKind[kind])
	if !ok {
		c = accentColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
}
