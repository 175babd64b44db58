package game

import (
	"errors"
	"fmt"
	"log"
)

// AppPhase 应用阶段
type AppPhase int

const (
	PhaseMainMenu AppPhase = iota
	PhaseGame
	PhaseGameOver
)

// String 返回阶段名称
func (p AppPhase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhaseGame:
		return "Game"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("AppPhase(%d)", int(p))
	}
}

// RunState 模拟运行状态，只在 Game 阶段有意义
type RunState int

const (
	RunStateRunning RunState = iota
	RunStatePaused
)

// String 返回运行状态名称
func (r RunState) String() string {
	if r == RunStatePaused {
		return "Paused"
	}
	return "Running"
}

var (
	// ErrIllegalTransition 请求的阶段切换不合法
	ErrIllegalTransition = errors.New("illegal phase transition")
	// ErrToggleOutsideGame 非 Game 阶段请求切换暂停
	ErrToggleOutsideGame = errors.New("run state toggle is only legal in Game phase")
)

// CanTransition 阶段切换合法性判定
//
// 合法的边：
//
//	MainMenu → Game
//	Game     → MainMenu | GameOver
//	GameOver → MainMenu | Game
//
// 同阶段切换和 MainMenu → GameOver 不合法（GameOver 只能由游戏结束事件从 Game 进入）
func CanTransition(from, to AppPhase) bool {
	switch from {
	case PhaseMainMenu:
		return to == PhaseGame
	case PhaseGame:
		return to == PhaseMainMenu || to == PhaseGameOver
	case PhaseGameOver:
		return to == PhaseMainMenu || to == PhaseGame
	}
	return false
}

// PhaseHook 阶段进入/退出时执行的副作用
type PhaseHook func() error

// StateMachine 两个正交的状态轴：应用阶段 × 运行状态
//
// 外部信号（按键、按钮）只记录请求，Apply 在每帧末尾统一生效：
//   - 同一帧内多次阶段请求，最后一次生效
//   - 阶段切换时先执行旧阶段的退出钩子，再执行新阶段的进入钩子
//   - 进入或离开 Game 阶段时运行状态重置为 Running
//   - 本帧发生阶段切换时，暂停切换请求被丢弃
type StateMachine struct {
	phase    AppPhase
	runState RunState

	pendingPhase  AppPhase
	hasPending    bool
	pendingToggle bool
	exitRequested bool

	onEnter map[AppPhase][]PhaseHook
	onExit  map[AppPhase][]PhaseHook
}

// NewStateMachine 创建状态机
func NewStateMachine(initial AppPhase) *StateMachine {
	return &StateMachine{
		phase:    initial,
		runState: RunStateRunning,
		onEnter:  make(map[AppPhase][]PhaseHook),
		onExit:   make(map[AppPhase][]PhaseHook),
	}
}

// Phase 当前阶段
func (sm *StateMachine) Phase() AppPhase {
	return sm.phase
}

// RunState 当前运行状态
func (sm *StateMachine) RunState() RunState {
	return sm.runState
}

// IsSimulating 本帧是否运行模拟系统（Game 阶段且未暂停）
func (sm *StateMachine) IsSimulating() bool {
	return sm.phase == PhaseGame && sm.runState == RunStateRunning
}

// OnEnter 注册阶段进入钩子
func (sm *StateMachine) OnEnter(phase AppPhase, hook PhaseHook) {
	sm.onEnter[phase] = append(sm.onEnter[phase], hook)
}

// OnExit 注册阶段退出钩子
func (sm *StateMachine) OnExit(phase AppPhase, hook PhaseHook) {
	sm.onExit[phase] = append(sm.onExit[phase], hook)
}

// RequestTransition 请求切换到目标阶段，在下一次 Apply 时生效
func (sm *StateMachine) RequestTransition(target AppPhase) error {
	if !CanTransition(sm.phase, target) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, sm.phase, target)
	}
	sm.pendingPhase = target
	sm.hasPending = true
	return nil
}

// RequestToggle 请求切换 Running/Paused
// 同一帧内请求两次会相互抵消
func (sm *StateMachine) RequestToggle() error {
	if sm.phase != PhaseGame {
		return ErrToggleOutsideGame
	}
	sm.pendingToggle = !sm.pendingToggle
	return nil
}

// RequestExit 请求退出程序
func (sm *StateMachine) RequestExit() {
	sm.exitRequested = true
}

// ExitRequested 是否已请求退出
func (sm *StateMachine) ExitRequested() bool {
	return sm.exitRequested
}

// Apply 执行本帧积累的所有请求
// 钩子返回的错误会被合并返回，但阶段切换本身仍然完成
func (sm *StateMachine) Apply() error {
	var errs []error

	if sm.hasPending {
		target := sm.pendingPhase
		sm.hasPending = false
		sm.pendingToggle = false

		if CanTransition(sm.phase, target) {
			errs = append(errs, sm.transition(target)...)
		} else {
			errs = append(errs, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, sm.phase, target))
		}
	}

	if sm.pendingToggle {
		sm.pendingToggle = false
		if sm.phase == PhaseGame {
			if sm.runState == RunStateRunning {
				sm.runState = RunStatePaused
			} else {
				sm.runState = RunStateRunning
			}
			log.Printf("[StateMachine] Run state -> %s", sm.runState)
		}
	}

	return errors.Join(errs...)
}

func (sm *StateMachine) transition(target AppPhase) []error {
	var errs []error
	from := sm.phase

	for _, hook := range sm.onExit[from] {
		if err := hook(); err != nil {
			errs = append(errs, fmt.Errorf("exit %s: %w", from, err))
		}
	}

	sm.phase = target
	if from == PhaseGame || target == PhaseGame {
		sm.runState = RunStateRunning
	}
	log.Printf("[StateMachine] Phase %s -> %s", from, target)

	for _, hook := range sm.onEnter[target] {
		if err := hook(); err != nil {
			errs = append(errs, fmt.Errorf("enter %s: %w", target, err))
		}
	}
	return errs
}
