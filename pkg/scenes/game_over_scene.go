package scenes

import (
	"fmt"
	"math"

	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// maxListedScores 结束画面最多列出的记录数
	maxListedScores = 8
	// panelSlideDuration 结算面板从顶部滑入的时长（秒）
	panelSlideDuration = 0.4
	panelWidth         = 320
	panelHeight        = 280
)

// GameOverScene 显示本局得分和本次运行的历史记录
type GameOverScene struct {
	view    View
	elapsed float64
}

// NewGameOverScene 创建游戏结束场景
func NewGameOverScene(view View) *GameOverScene {
	return &GameOverScene{view: view}
}

// Update 推进面板滑入动画
func (s *GameOverScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
}

// Draw 绘制结算面板
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := screenSize(screen)
	top := panelTop(h, s.elapsed)
	vector.DrawFilledRect(screen, float32(w/2-panelWidth/2), float32(top), panelWidth, panelHeight, panelColor, false)

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.view.CurrentScore()),
		"",
	}
	lines = append(lines, highScoreLines(s.view.HighScores())...)
	lines = append(lines, "", "Enter retry   M menu")
	drawCentered(screen, lines, top+20)
}

// panelTop 面板上边缘位置：从屏幕外缓出到垂直居中
func panelTop(screenHeight, elapsed float64) float64 {
	t := math.Min(elapsed/panelSlideDuration, 1)
	return utils.Lerp(-panelHeight, screenHeight/2-panelHeight/2, utils.EaseOutCubic(t))
}

// highScoreLines 最近的记录在前
func highScoreLines(entries []game.HighScoreEntry) []string {
	lines := []string{"High scores:"}
	for i := len(entries) - 1; i >= 0 && len(lines) <= maxListedScores; i-- {
		lines = append(lines, fmt.Sprintf("%-12s %5d", entries[i].Label, entries[i].Score))
	}
	return lines
}
