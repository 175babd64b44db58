package main

import (
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
)

// dangerDistance 危险物进入此距离（中心距减去半径和）时优先躲避
const dangerDistance = 60.0

// Pilot 简单的自动驾驶：躲开最近的危险物，否则朝最近的拾取物移动
type Pilot struct {
	sim    *simulation.Simulation
	random *utils.Random
}

// NewPilot 创建自动驾驶
func NewPilot(sim *simulation.Simulation, random *utils.Random) *Pilot {
	return &Pilot{sim: sim, random: random}
}

// Next 计算本帧的输入
func (p *Pilot) Next() utils.InputSnapshot {
	players := p.sim.Entities(components.KindPlayer)
	if len(players) == 0 {
		return utils.InputSnapshot{}
	}
	player := players[0]

	if threat, ok := nearest(player, p.sim.Entities(components.KindHazard)); ok {
		gap := utils.Distance(player.Position, threat.Position) - player.Radius - threat.Radius
		if gap < dangerDistance {
			return utils.InputFromDirection(player.Position.Sub(threat.Position))
		}
	}

	if target, ok := nearest(player, p.sim.Entities(components.KindPickup)); ok {
		return utils.InputFromDirection(target.Position.Sub(player.Position))
	}

	// 没有目标时随机游走
	return utils.InputFromDirection(p.random.UnitVector())
}

func nearest(from simulation.EntityView, candidates []simulation.EntityView) (simulation.EntityView, bool) {
	var best simulation.EntityView
	bestDist := -1.0
	for _, c := range candidates {
		d := utils.Distance(from.Position, c.Position)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}
