package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/session"
	"github.com/milk9111/ny1609/terrain"
)

type Game struct {
	session    *session.Session
	watcher    *prefabs.Watcher
	tuningName string
	debug      bool

	renderer *Renderer
	hud      *HUD
}

func NewGame(sess *session.Session, watcher *prefabs.Watcher, tuningName string, debug bool) *Game {
	return &Game{
		session:    sess,
		watcher:    watcher,
		tuningName: tuningName,
		debug:      debug,
		renderer:   NewRenderer(common.BaseWidth, common.BaseHeight),
		hud:        NewHUD(),
	}
}

func (g *Game) Update() error {
	// reloads land between frames
	for _, path := range g.watcher.Pending() {
		g.session.HandleFileChange(path, g.tuningName)
	}
	if g.watcher != nil {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("ny1609: watcher: %v", err)
			}
		default:
		}
	}

	g.session.Step()
	g.hud.Update(g.session.Stats())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	g.hud.Draw(screen)

	if g.debug {
		p, _ := g.session.Player()
		cam := g.session.Camera()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Frame: %d    FPS: %.2f\nBand: %s\nPlayer: %.1f, %.1f, %.1f\nCamera: %s",
			g.session.Frame(), ebiten.ActualFPS(), terrain.BandAt(p.Z).Name, p.X, p.Y, p.Z, cam.Mode,
		), 10, 60)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
