// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated; a
// pushed state (pause) can draw the ones below it.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState replaces every state with newState.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	sm.Push(newState)
}

// Push enters newState on top of the current one without exiting it.
func (sm *StateMachine) Push(newState State) {
	if newState == nil {
		return
	}
	sm.stack = append(sm.stack, newState)
	newState.Enter()
}

// Pop exits the top state and resumes the one below.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current returns the top state, or nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if current := sm.Current(); current != nil {
		current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if current := sm.Current(); current != nil {
		current.Draw(screen)
	}
}
