package app

import (
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 按键映射
// 移动键按住生效；命令键只在按下的那一帧生效
var (
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}

	keysConfirm = []ebiten.Key{ebiten.KeyG, ebiten.KeyEnter}
	keysCancel  = []ebiten.Key{ebiten.KeyM}
	keysPause   = []ebiten.Key{ebiten.KeySpace}
	keysExit    = []ebiten.Key{ebiten.KeyEscape}
)

// ReadKeyboard 读取本帧键盘状态
func ReadKeyboard() utils.InputSnapshot {
	return utils.InputSnapshot{
		MoveUp:    anyPressed(keysUp),
		MoveDown:  anyPressed(keysDown),
		MoveLeft:  anyPressed(keysLeft),
		MoveRight: anyPressed(keysRight),
		Confirm:   anyJustPressed(keysConfirm),
		Cancel:    anyJustPressed(keysCancel),
		Pause:     anyJustPressed(keysPause),
		Exit:      anyJustPressed(keysExit),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ReadTouch 读取本帧触摸状态（移动端）
func ReadTouch(phase game.AppPhase, player *simulation.EntityView) utils.InputSnapshot {
	var touches []utils.Vec2
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, utils.Vec2{X: float64(x), Y: float64(y)})
	}
	newTouches := len(inpututil.AppendJustPressedTouchIDs(nil))
	return touchInput(phase, player, touches, newTouches)
}

// touchInput 触摸操作规则
//   - Game 阶段：按住屏幕时朝第一个触点移动，触点在玩家圆内时不动；同一帧两指按下切换暂停
//   - 其他阶段：点击屏幕开始游戏
func touchInput(phase game.AppPhase, player *simulation.EntityView, touches []utils.Vec2, newTouches int) utils.InputSnapshot {
	if phase != game.PhaseGame {
		return utils.InputSnapshot{Confirm: newTouches > 0}
	}
	if newTouches >= 2 {
		return utils.InputSnapshot{Pause: true}
	}
	if player == nil || len(touches) == 0 {
		return utils.InputSnapshot{}
	}
	offset := touches[0].Sub(player.Position)
	if offset.Length() < player.Radius {
		return utils.InputSnapshot{}
	}
	return utils.InputFromDirection(offset)
}

// mergeInput 合并两个输入源，任一方按下即视为按下
func mergeInput(a, b utils.InputSnapshot) utils.InputSnapshot {
	return utils.InputSnapshot{
		MoveUp:    a.MoveUp || b.MoveUp,
		MoveDown:  a.MoveDown || b.MoveDown,
		MoveLeft:  a.MoveLeft || b.MoveLeft,
		MoveRight: a.MoveRight || b.MoveRight,
		Confirm:   a.Confirm || b.Confirm,
		Cancel:    a.Cancel || b.Cancel,
		Pause:     a.Pause || b.Pause,
		Exit:      a.Exit || b.Exit,
	}
}
