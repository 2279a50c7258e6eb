package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ny1609/ecs/component"
)

// KeyboardInput polls ebiten's key state. Movement is read as held state,
// jump and gather as presses.
type KeyboardInput struct{}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

func (k *KeyboardInput) Directions() component.Input {
	return component.Input{
		North: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		South: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		West:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		East:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

func (k *KeyboardInput) Actions() []component.Action {
	var out []component.Action
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		out = append(out, component.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		out = append(out, component.ActionGather)
	}
	return out
}
