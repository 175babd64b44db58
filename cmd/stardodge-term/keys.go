package main

import (
	"time"

	"github.com/decker502/stardodge/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// holdWindow 终端只有按下事件没有松开事件
// 方向键在最后一次按下（含自动重复）后的这段时间内视为按住
const holdWindow = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// keyState 把终端按键事件转换成每帧的输入快照
type keyState struct {
	lastPressed [dirCount]time.Time
	pending     utils.InputSnapshot
}

// handle 记录一次按键，返回是否识别
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		k.lastPressed[dirUp] = now
	case tcell.KeyDown:
		k.lastPressed[dirDown] = now
	case tcell.KeyLeft:
		k.lastPressed[dirLeft] = now
	case tcell.KeyRight:
		k.lastPressed[dirRight] = now
	case tcell.KeyEnter:
		k.pending.Confirm = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.pending.Exit = true
	case tcell.KeyRune:
		return k.handleRune(ev.Rune(), now)
	default:
		return false
	}
	return true
}

func (k *keyState) handleRune(r rune, now time.Time) bool {
	switch r {
	case 'w', 'W':
		k.lastPressed[dirUp] = now
	case 's', 'S':
		k.lastPressed[dirDown] = now
	case 'a', 'A':
		k.lastPressed[dirLeft] = now
	case 'd', 'D':
		k.lastPressed[dirRight] = now
	case 'g', 'G':
		k.pending.Confirm = true
	case 'm', 'M':
		k.pending.Cancel = true
	case ' ':
		k.pending.Pause = true
	default:
		return false
	}
	return true
}

// snapshot 生成本帧快照并清空一次性命令
func (k *keyState) snapshot(now time.Time) utils.InputSnapshot {
	in := k.pending
	k.pending = utils.InputSnapshot{}

	held := func(d direction) bool {
		t := k.lastPressed[d]
		return !t.IsZero() && now.Sub(t) < holdWindow
	}
	in.MoveUp = held(dirUp)
	in.MoveDown = held(dirDown)
	in.MoveLeft = held(dirLeft)
	in.MoveRight = held(dirRight)
	return in
}
