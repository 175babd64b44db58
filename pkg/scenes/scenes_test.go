package scenes

import (
	"testing"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/game"
	"github.com/decker502/stardodge/pkg/media"
	"github.com/decker502/stardodge/pkg/simulation"
	"github.com/decker502/stardodge/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeView struct {
	phase    game.AppPhase
	runState game.RunState
	score    uint32
	scores   []game.HighScoreEntry
	entities map[components.EntityKind][]simulation.EntityView
}

func (v *fakeView) Entities(k components.EntityKind) []simulation.EntityView { return v.entities[k] }
func (v *fakeView) CurrentScore() uint32                                     { return v.score }
func (v *fakeView) HighScores() []game.HighScoreEntry                        { return v.scores }
func (v *fakeView) Phase() game.AppPhase                                     { return v.phase }
func (v *fakeView) RunState() game.RunState                                  { return v.runState }

func (v *fakeView) BestScore() (game.HighScoreEntry, bool) {
	sb := game.NewScoreBoard()
	for _, e := range v.scores {
		sb.Record(e.Label, e.Score)
	}
	return sb.Best()
}

type countingScene struct{ updates int }

func (s *countingScene) Update(float64)     { s.updates++ }
func (s *countingScene) Draw(*ebiten.Image) {}

func TestSceneManagerFollowsPhase(t *testing.T) {
	view := &fakeView{phase: game.PhaseMainMenu}
	created := map[game.AppPhase]int{}
	sm := NewSceneManager(view, func(p game.AppPhase) Scene {
		created[p]++
		return &countingScene{}
	})

	sm.Update(0.016)
	sm.Update(0.016)
	if created[game.PhaseMainMenu] != 1 {
		t.Errorf("menu scene created %d times, want 1", created[game.PhaseMainMenu])
	}
	if got := sm.CurrentScene().(*countingScene).updates; got != 2 {
		t.Errorf("updates = %d, want 2", got)
	}

	view.phase = game.PhaseGame
	sm.Update(0.016)
	if created[game.PhaseGame] != 1 {
		t.Errorf("game scene created %d times, want 1", created[game.PhaseGame])
	}

	// 再次进入同一阶段时重新创建场景
	view.phase = game.PhaseGameOver
	sm.Update(0.016)
	view.phase = game.PhaseGame
	sm.Update(0.016)
	if created[game.PhaseGame] != 2 {
		t.Errorf("game scene created %d times, want 2", created[game.PhaseGame])
	}
}

func TestHighScoreLines(t *testing.T) {
	var entries []game.HighScoreEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, game.HighScoreEntry{Label: "Player", Score: uint32(i)})
	}

	lines := highScoreLines(entries)
	if len(lines) != maxListedScores+1 {
		t.Fatalf("lines = %d, want %d", len(lines), maxListedScores+1)
	}
	if lines[1] != "Player          11" {
		t.Errorf("first entry = %q, want most recent", lines[1])
	}
}

func TestMainMenuShowsBestScore(t *testing.T) {
	view := &fakeView{}
	if _, ok := view.BestScore(); ok {
		t.Error("empty history should have no best score")
	}

	view.scores = []game.HighScoreEntry{{Label: "A", Score: 3}, {Label: "B", Score: 9}, {Label: "C", Score: 9}, {Label: "D", Score: 1}}
	best, ok := view.BestScore()
	if !ok || best.Label != "B" {
		t.Errorf("best = %+v, want first 9 (B)", best)
	}

	// 菜单读取 View 上的最高分绘制
	scene := NewMainMenuScene(view)
	scene.Draw(ebiten.NewImage(320, 240))
}

func TestScenesDraw(t *testing.T) {
	cfg, err := assets.LoadResourceConfig("../../data/resources.yaml")
	if err != nil {
		t.Fatal(err)
	}
	rm := media.NewResourceManager(cfg)
	rm.RequestSprite("SPRITE_PLAYER")

	view := &fakeView{
		phase:    game.PhaseGame,
		runState: game.RunStatePaused,
		scores:   []game.HighScoreEntry{{Label: "Player", Score: 4}},
		entities: map[components.EntityKind][]simulation.EntityView{
			components.KindPlayer: {{ID: 1, Kind: components.KindPlayer, Position: utils.Vec2{X: 400, Y: 300}, Radius: 32}},
			components.KindHazard: {{ID: 2, Kind: components.KindHazard, Position: utils.Vec2{X: 100, Y: 100}, Radius: 32}},
		},
	}

	screen := ebiten.NewImage(800, 600)
	for _, s := range []Scene{NewMainMenuScene(view), NewArenaScene(view, rm), NewGameOverScene(view)} {
		s.Update(1.0 / 60)
		s.Draw(screen)
	}
}

func TestPanelTopSlidesIn(t *testing.T) {
	if got := panelTop(600, 0); got != -panelHeight {
		t.Errorf("panelTop at start = %v, want %v", got, -panelHeight)
	}
	if got := panelTop(600, panelSlideDuration); got != 160 {
		t.Errorf("panelTop at end = %v, want 160", got)
	}
	if got := panelTop(600, 10); got != 160 {
		t.Errorf("panelTop should stay centered after the animation, got %v", got)
	}
	mid := panelTop(600, panelSlideDuration/2)
	if mid <= -panelHeight || mid >= 160 {
		t.Errorf("panelTop halfway = %v, want between start and end", mid)
	}
}
