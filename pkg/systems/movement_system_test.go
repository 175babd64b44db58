package systems

import (
	"math"
	"testing"

	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/ecs"
	"github.com/decker502/stardodge/pkg/utils"
)

func TestMovementZeroIntentNoDrift(t *testing.T) {
	for _, dt := range []float64{0, 0.001, 0.016, 1, 100} {
		em := ecs.NewEntityManager()
		id, _ := em.CreateEntity(components.KindPlayer, utils.Vec2{X: 400, Y: 300}, 32)
		NewMovementSystem(em, 500).Update(dt, utils.Vec2{})

		p, _ := em.GetEntity(id)
		if p.Position != (utils.Vec2{X: 400, Y: 300}) {
			t.Errorf("dt=%v: player drifted to %+v", dt, p.Position)
		}
	}
}

func TestMovementPlayerIntent(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := em.CreateEntity(components.KindPlayer, utils.Vec2{X: 100, Y: 100}, 32)
	sys := NewMovementSystem(em, 500)

	sys.Update(0.1, utils.Vec2{X: 1})
	p, _ := em.GetEntity(id)
	if math.Abs(p.Position.X-150) > 1e-9 || p.Position.Y != 100 {
		t.Errorf("position = %+v, want (150, 100)", p.Position)
	}

	// 对角线速度与轴向速度一致
	diag := utils.InputSnapshot{MoveDown: true, MoveRight: true}.Direction()
	before := p.Position
	sys.Update(0.1, diag)
	if moved := utils.Distance(before, p.Position); math.Abs(moved-50) > 1e-9 {
		t.Errorf("diagonal displacement = %v, want 50", moved)
	}
}

func TestMovementHazardsUseOwnSpeed(t *testing.T) {
	em := ecs.NewEntityManager()
	slow, _ := em.CreateMovingEntity(components.KindHazard, utils.Vec2{X: 100, Y: 100}, utils.Vec2{X: 1}, 100, 32)
	fast, _ := em.CreateMovingEntity(components.KindHazard, utils.Vec2{X: 100, Y: 100}, utils.Vec2{Y: -1}, 300, 32)
	pickup, _ := em.CreateEntity(components.KindPickup, utils.Vec2{X: 50, Y: 50}, 15)

	NewMovementSystem(em, 500).Update(0.5, utils.Vec2{})

	s, _ := em.GetEntity(slow)
	if s.Position != (utils.Vec2{X: 150, Y: 100}) {
		t.Errorf("slow hazard at %+v, want (150, 100)", s.Position)
	}
	f, _ := em.GetEntity(fast)
	if f.Position != (utils.Vec2{X: 100, Y: -50}) {
		t.Errorf("fast hazard at %+v, want (100, -50)", f.Position)
	}
	p, _ := em.GetEntity(pickup)
	if p.Position != (utils.Vec2{X: 50, Y: 50}) {
		t.Errorf("pickup moved to %+v", p.Position)
	}
}
