// cmd/backdrop/window.go
package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lab-backdrop/internal/config"
	"lab-backdrop/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update — один кадр: шаг фиксированный, реальное время кадра не учитывается.
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.TimeStep)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window size, so the backdrop always fills it.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
