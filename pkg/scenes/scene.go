// Package scenes 绘制模拟状态的 ebiten 场景
//
// 每个应用阶段对应一个场景。场景只读取模拟快照，不修改模拟状态；
// 所有命令都通过输入快照交给模拟核心。
package scenes

import (
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game (menu, arena, game over).
type Scene interface {
	// Update advances scene-local animation. deltaTime is in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// View 场景需要的只读模拟快照
// *simulation.Simulation 实现此接口
type View interface {
	Entities(kind components.EntityKind) []simulation.EntityView
	CurrentScore() uint32
	HighScores() []game.HighScoreEntry
	BestScore() (game.HighScoreEntry, bool)
	Phase() game.AppPhase
	RunState() game.RunState
}

var _ View = (*simulation.Simulation)(nil)
