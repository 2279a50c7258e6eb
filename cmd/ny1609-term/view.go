package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/terrain"
)

const (
	// world units per terminal cell
	cellX = 2.0
	cellZ = 4.0
	// the widest band is 165, plus a little water on each side
	mapHalfWidth = 90.0
)

var (
	lowland = common.Hex("#3c6e2f")
	upland  = common.Hex("#8a9a52")

	waterStyle  = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorNavy)
	treeStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	animalStyle = tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// viewport maps world (x, z) onto terminal cells. The map is centered on
// the player; north is up. The bottom row is the status line.
type viewport struct {
	width, height int
	centerZ       float64
}

func (v *viewport) resize(w, h int) {
	v.width, v.height = w, h
}

func (v viewport) rows() int {
	return max(v.height-1, 0)
}

// cell returns the terminal cell for a world point, ok false when off
// screen.
func (v viewport) cell(x, z float64) (int, int, bool) {
	col := int(math.Floor((x+mapHalfWidth)/cellX)) + (v.width-int(2*mapHalfWidth/cellX))/2
	row := int(math.Floor((z-v.centerZ)/cellZ)) + v.rows()/2
	if col < 0 || col >= v.width || row < 0 || row >= v.rows() {
		return 0, 0, false
	}
	return col, row, true
}

// world returns the world point at the middle of a cell.
func (v viewport) world(col, row int) (float64, float64) {
	x := (float64(col-(v.width-int(2*mapHalfWidth/cellX))/2)+0.5)*cellX - mapHalfWidth
	z := (float64(row-v.rows()/2)+0.5)*cellZ + v.centerZ
	return x, z
}

func landStyle(height float64) tcell.Style {
	t := common.Clamp((height+10)/35, 0, 1)
	r, g, b := lowland.BlendLab(upland, t).Clamped().RGB255()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))).Foreground(tcell.ColorBlack)
}

func (g *Game) draw() {
	s := g.screen
	s.Clear()

	player, _ := g.session.Player()
	g.view.centerZ = player.Z
	model := g.session.Terrain

	for row := 0; row < g.view.rows(); row++ {
		for col := 0; col < g.view.width; col++ {
			x, z := g.view.world(col, row)
			if z < terrain.MinZ || z > terrain.MaxZ || math.Abs(x) > terrain.HalfWidth(z) {
				s.SetContent(col, row, '~', nil, waterStyle)
				continue
			}
			s.SetContent(col, row, ' ', nil, landStyle(model.SurfaceHeight(x, z)))
		}
	}

	for _, t := range g.session.Trees() {
		if col, row, ok := g.view.cell(t.Transform.X, t.Transform.Z); ok {
			s.SetContent(col, row, '♣', nil, treeStyle.Background(bg(s, col, row)))
		}
	}
	for _, a := range g.session.Animals() {
		if col, row, ok := g.view.cell(a.Transform.X, a.Transform.Z); ok {
			s.SetContent(col, row, 'd', nil, animalStyle.Background(bg(s, col, row)))
		}
	}
	if col, row, ok := g.view.cell(player.X, player.Z); ok {
		s.SetContent(col, row, '@', nil, playerStyle.Background(bg(s, col, row)))
	}

	stats := g.session.Stats()
	status := fmt.Sprintf(" Health: %d  Score: %d  %s  [%s]  wasd/arrows move, space jump, e gather, q quit",
		stats.Health, stats.Score, terrain.BandAt(player.Z).Name, g.session.Camera().Mode)
	drawText(s, 0, g.view.height-1, g.view.width, status, statusStyle)

	s.Show()
}

func bg(s tcell.Screen, col, row int) tcell.Color {
	_, _, style, _ := s.GetContent(col, row)
	_, background, _ := style.Decompose()
	return background
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
