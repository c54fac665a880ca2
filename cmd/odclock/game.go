package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/richardwooding/odclock/internal/app"
	"github.com/richardwooding/odclock/internal/input"
	"github.com/richardwooding/odclock/internal/log"
	"github.com/richardwooding/odclock/internal/render"
)

// Game implements the Ebiten game interface for the clock.
type Game struct {
	state    *app.State
	renderer *render.Renderer
	pad      *input.Pad
	bindings map[ebiten.Key][]input.Action
	screen   *ebiten.Image
}

// NewGame creates the window adapter for state.
func NewGame(state *app.State, bindings map[ebiten.Key][]input.Action) *Game {
	return &Game{
		state:    state,
		renderer: render.New(render.NewFramebuffer(render.Width, render.Height)),
		pad: input.New(func(a input.Action) {
			log.Debug("button", "action", a)
		}),
		bindings: bindings,
		screen:   ebiten.NewImage(render.Width, render.Height),
	}
}

// Update polls the keyboard and advances the application by one frame.
// This is called 60 times per second by Ebiten.
func (g *Game) Update() error {
	g.handleInput()

	g.state.Update(g.pad.Latch())
	if g.state.Done {
		return ebiten.Termination
	}
	return nil
}

// handleInput folds every bound key into the pad.
func (g *Game) handleInput() {
	var held input.Frame
	for key, actions := range g.bindings {
		if ebiten.IsKeyPressed(key) {
			held |= input.Of(actions...)
		}
	}
	for _, a := range input.Actions() {
		g.pad.Set(a, held.Has(a))
	}
}

// Draw renders the current state and copies it to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderer.Draw(g.state); err != nil {
		log.Error("failed to present frame", err)
	}
	g.screen.WritePixels(g.renderer.Framebuffer().Pix())
	screen.DrawImage(g.screen, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return render.Width, render.Height
}
