package main

import (
	"fmt"
	"math"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/config"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/gdamore/tcell/v2"
)

// 每个字符格对应的像素尺寸（终端字符大约是 1:2 的长方形）
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	statusRows = 1
)

var spriteForKind = map[components.EntityKind]string{
	components.KindPlayer: config.SpritePlayer,
	components.KindHazard: config.SpriteHazard,
	components.KindPickup: config.SpritePickup,
}

// glyph 一个类别的绘制方式
type glyph struct {
	r     rune
	style tcell.Style
}

// screenBounds 把终端尺寸换算成竞技场像素尺寸
type screenBounds struct {
	screen tcell.Screen
}

// ArenaSize 实现 game.BoundsProvider
func (b screenBounds) ArenaSize() (float64, float64, bool) {
	cols, rows := b.screen.Size()
	return arenaFromCells(cols, rows)
}

func arenaFromCells(cols, rows int) (float64, float64, bool) {
	rows -= statusRows
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return float64(cols) * cellWidth, float64(rows) * cellHeight, true
}

// toCell 像素坐标到字符格坐标
func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), statusRows + int(math.Floor(y/cellHeight))
}

// buildGlyphs 从资源配置生成每个类别的字符和颜色
func buildGlyphs(res *assets.ResourceConfig) (map[components.EntityKind]glyph, error) {
	glyphs := make(map[components.EntityKind]glyph, len(spriteForKind))
	for kind, id := range spriteForKind {
		sprite, ok := res.Sprite(id)
		if !ok {
			return nil, fmt.Errorf("sprite %s not found in resource config", id)
		}
		c, err := assets.ParseColor(sprite.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", id, err)
		}
		r := '#'
		if sprite.Glyph != "" {
			r = []rune(sprite.Glyph)[0]
		}
		glyphs[kind] = glyph{
			r:     r,
			style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Bold(true),
		}
	}
	return glyphs, nil
}

// renderer 把模拟快照画到终端
type renderer struct {
	screen tcell.Screen
	glyphs map[components.EntityKind]glyph
	label  string
}

func (r *renderer) draw(sim *simulation.Simulation) {
	r.screen.Clear()

	switch sim.Phase() {
	case game.PhaseMainMenu:
		r.drawCentered([]string{
			"S T A R D O D G E",
			"",
			"Dodge the hazards, collect the stars",
			"",
			"G / Enter  start",
			"Arrows / WASD  move",
			"Space  pause    M  menu    Esc  quit",
		})
	case game.PhaseGame:
		r.drawArena(sim)
		if sim.RunState() == game.RunStatePaused {
			r.drawCentered([]string{"PAUSED", "", "Space to resume"})
		}
	case game.PhaseGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", sim.CurrentScore()), ""}
		entries := sim.HighScores()
		for i := len(entries) - 1; i >= 0 && len(lines) < 12; i-- {
			lines = append(lines, fmt.Sprintf("%-12s %5d", entries[i].Label, entries[i].Score))
		}
		lines = append(lines, "", "G retry   M menu")
		r.drawCentered(lines)
	}

	r.drawStatus(sim)
	r.screen.Show()
}

// drawArena 拾取物 → 危险物 → 玩家，后画的覆盖先画的
func (r *renderer) drawArena(sim *simulation.Simulation) {
	for _, kind := range []components.EntityKind{components.KindPickup, components.KindHazard, components.KindPlayer} {
		g := r.glyphs[kind]
		for _, e := range sim.Entities(kind) {
			r.drawDisc(e, g)
		}
	}
}

// drawDisc 填充中心落在圆内的所有字符格，至少画中心一格
func (r *renderer) drawDisc(e simulation.EntityView, g glyph) {
	minCol, minRow := toCell(e.Position.X-e.Radius, e.Position.Y-e.Radius)
	maxCol, maxRow := toCell(e.Position.X+e.Radius, e.Position.Y+e.Radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx := (float64(col) + 0.5) * cellWidth
			cy := (float64(row-statusRows) + 0.5) * cellHeight
			dx, dy := cx-e.Position.X, cy-e.Position.Y
			if dx*dx+dy*dy < e.Radius*e.Radius {
				r.setCell(col, row, g)
			}
		}
	}
	col, row := toCell(e.Position.X, e.Position.Y)
	r.setCell(col, row, g)
}

func (r *renderer) setCell(col, row int, g glyph) {
	cols, rows := r.screen.Size()
	if col < 0 || col >= cols || row < statusRows || row >= rows {
		return
	}
	r.screen.SetContent(col, row, g.r, nil, g.style)
}

func (r *renderer) drawStatus(sim *simulation.Simulation) {
	style := tcell.StyleDefault.Reverse(true)
	cols, _ := r.screen.Size()
	status := fmt.Sprintf(" %s  score %d  [%s/%s]", r.label, sim.CurrentScore(), sim.Phase(), sim.RunState())
	r.drawText(0, 0, padRight(status, cols), style)
}

func (r *renderer) drawCentered(lines []string) {
	cols, rows := r.screen.Size()
	top := (rows - len(lines)) / 2
	for i, line := range lines {
		x := (cols - len([]rune(line))) / 2
		r.drawText(x, top+i, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

func (r *renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + fmt.Sprintf("%*s", width-n, "")
}
