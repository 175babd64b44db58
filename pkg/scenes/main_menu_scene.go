package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x24, A: 0xff}
	panelColor      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
	accentColor     = color.RGBA{R: 0xff, G: 0xd2, B: 0x3c, A: 0xff}
)

// MainMenuScene 主菜单：标题、按键说明和本次运行的最好成绩
type MainMenuScene struct {
	view    View
	elapsed float64
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(view View) *MainMenuScene {
	return &MainMenuScene{view: view}
}

// Update 推进标题闪烁动画
func (s *MainMenuScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
}

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w, h := screenSize(screen)

	// 标题下方的呼吸圆
	radius := float32(24 + 6*math.Sin(s.elapsed*3))
	vector.DrawFilledCircle(screen, float32(w/2), float32(h/2-60), radius, accentColor, true)

	lines := []string{
		"STAR DODGE",
		"",
		"Enter / G   start",
		"Arrows/WASD move",
		"Space       pause",
		"M           menu",
		"Esc         quit",
	}
	drawCentered(screen, lines, h/2)

	if best, ok := s.view.BestScore(); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %s %d", best.Label, best.Score), 10, int(h)-20)
	}
}

func screenSize(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// drawCentered 以 debug 字体居中绘制多行文字
// debug 字体每个字符 6x16 像素
func drawCentered(screen *ebiten.Image, lines []string, top float64) {
	w, _ := screenSize(screen)
	for i, line := range lines {
		x := int(w/2) - len(line)*6/2
		ebitenutil.DebugPrintAt(screen, line, x, int(top)+i*16)
	}
}
