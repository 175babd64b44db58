package scenes

import (
	"log"

	"github.com/decker502/stardodge/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 为指定阶段创建场景
type SceneFactory func(phase game.AppPhase) Scene

// SceneManager 根据模拟阶段切换当前场景
// 同一时刻只有一个场景被更新和绘制
type SceneManager struct {
	view         View
	factory      SceneFactory
	currentScene Scene
	currentPhase game.AppPhase
}

// NewSceneManager 创建场景管理器，立即为当前阶段创建场景
func NewSceneManager(view View, factory SceneFactory) *SceneManager {
	sm := &SceneManager{
		view:         view,
		factory:      factory,
		currentPhase: view.Phase(),
	}
	sm.currentScene = factory(sm.currentPhase)
	return sm
}

// CurrentScene 当前场景
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update 阶段变化时切换场景，然后更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if phase := sm.view.Phase(); phase != sm.currentPhase {
		log.Printf("[SceneManager] Switching scene: %s -> %s", sm.currentPhase, phase)
		sm.currentPhase = phase
		sm.currentScene = sm.factory(phase)
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
