package main

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/session"
	"github.com/milk9111/ny1609/terrain"
)

const (
	fieldOfView = math.Pi / 3
	nearPlane   = 1.0
	farPlane    = 2000.0

	tileStepX = 8.0
	tileStepZ = 10.0

	// rows of terrain farther than this from the player are skipped
	terrainDistance = 450.0
)

var (
	waterColor    = palette("#1e4d78")
	lowland       = common.Hex("#3c6e2f")
	upland        = common.Hex("#8a9a52")
	landmarkColor = palette("#2f5a27")
	trunkColor    = palette("#5b3a1e")
	canopyColor   = palette("#1f4f1a")
	animalColor   = palette("#9c6b3d")
	playerColor   = palette("#c83c32")
)

func palette(hex string) color.RGBA {
	return rgba(common.Hex(hex))
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// drawable is one item of the painter's queue. Items are drawn far to near.
type drawable struct {
	depth float64
	draw  func(dst *ebiten.Image)
}

// Renderer projects the session through the camera and paints it with
// flat shapes, farthest first.
type Renderer struct {
	width, height float64
	projection    mgl64.Mat4
	mvp           mgl64.Mat4
	white         *ebiten.Image
	queue         []drawable
}

func NewRenderer(width, height int) *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{
		width:      float64(width),
		height:     float64(height),
		projection: mgl64.Perspective(fieldOfView, float64(width)/float64(height), nearPlane, farPlane),
		white:      img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// project maps a world point to screen pixels. Depth is the distance along
// the view axis; ok is false for points behind the near plane.
func (r *Renderer) project(p mgl64.Vec3) (mgl64.Vec2, float64, bool) {
	clip := r.mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= nearPlane {
		return mgl64.Vec2{}, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	// world y grows downward, so ndc y maps straight onto screen rows
	return mgl64.Vec2{(ndc.X() + 1) / 2 * r.width, (ndc.Y() + 1) / 2 * r.height}, w, true
}

// pixels is the on-screen size of one world unit at depth.
func (r *Renderer) pixels(depth float64) float64 {
	return r.height / (2 * math.Tan(fieldOfView/2)) / depth
}

func (r *Renderer) push(depth float64, draw func(dst *ebiten.Image)) {
	r.queue = append(r.queue, drawable{depth: depth, draw: draw})
}

func (r *Renderer) Draw(screen *ebiten.Image, sess *session.Session) {
	screen.Fill(waterColor)

	cam := sess.Camera()
	r.mvp = r.projection.Mul4(cam.View())
	r.queue = r.queue[:0]

	player, _ := sess.Player()
	tun := sess.Tuning()

	r.queueTerrain(sess.Terrain, player.Z)
	r.queueLandmarks()

	at := player.Planar()
	for _, t := range sess.Trees() {
		if t.Transform.Planar().Distance(at) > tun.Render.TreeDistance {
			continue
		}
		r.queueTree(mgl64.Vec3{t.Transform.X, t.Transform.Y, t.Transform.Z}, t.Tree.Height, t.Tree.Radius)
	}
	for _, a := range sess.Animals() {
		if a.Transform.Planar().Distance(at) > tun.Render.AnimalDistance {
			continue
		}
		r.queueBody(mgl64.Vec3{a.Transform.X, a.Transform.Y - a.Size/2, a.Transform.Z}, a.Size/2, animalColor)
	}
	size := tun.Player.Size
	r.queueBody(mgl64.Vec3{player.X, player.Y - size/2, player.Z}, size/2, playerColor)

	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})
	for _, d := range r.queue {
		d.draw(screen)
	}
}

func (r *Renderer) queueTerrain(model *terrain.Model, aroundZ float64) {
	minZ := math.Max(terrain.MinZ, aroundZ-terrainDistance)
	maxZ := math.Min(terrain.MaxZ, aroundZ+terrainDistance)
	start := terrain.MinZ + math.Floor((minZ-terrain.MinZ)/tileStepZ)*tileStepZ

	for z := start; z < maxZ; z += tileStepZ {
		half := terrain.HalfWidth(z)
		for x := -half; x < half; x += tileStepX {
			x1 := math.Min(x+tileStepX, half)
			corners := [4]mgl64.Vec3{
				{x, model.SurfaceHeight(x, z), z},
				{x1, model.SurfaceHeight(x1, z), z},
				{x1, model.SurfaceHeight(x1, z+tileStepZ), z + tileStepZ},
				{x, model.SurfaceHeight(x, z+tileStepZ), z + tileStepZ},
			}
			avg := (corners[0].Y() + corners[1].Y() + corners[2].Y() + corners[3].Y()) / 4
			r.queueQuad(corners, shade(avg))
		}
	}
}

// shade blends lowland into upland green with surface height.
func shade(height float64) color.RGBA {
	t := common.Clamp((height+10)/35, 0, 1)
	return rgba(lowland.BlendLab(upland, t))
}

func (r *Renderer) queueLandmarks() {
	for _, l := range terrain.Landmarks {
		var corners [4]mgl64.Vec3
		for i, c := range l.Top() {
			corners[i] = mgl64.Vec3(c)
		}
		r.queueQuad(corners, landmarkColor)
	}
}

func (r *Renderer) queueQuad(corners [4]mgl64.Vec3, clr color.RGBA) {
	var pts [4]mgl64.Vec2
	depth := 0.0
	for i, c := range corners {
		p, d, ok := r.project(c)
		if !ok {
			return
		}
		pts[i] = p
		depth += d / 4
	}
	r.push(depth, func(dst *ebiten.Image) {
		r.fillQuad(dst, pts, clr)
	})
}

func (r *Renderer) fillQuad(dst *ebiten.Image, pts [4]mgl64.Vec2, clr color.RGBA) {
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	vs := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X()),
			DstY:   float32(p.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: 1,
		}
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, r.white, nil)
}

func (r *Renderer) queueTree(base mgl64.Vec3, height, radius float64) {
	top := base.Sub(mgl64.Vec3{0, height * 0.8, 0})
	b, depth, ok := r.project(base)
	if !ok {
		return
	}
	t, _, ok := r.project(top)
	if !ok {
		return
	}
	scale := r.pixels(depth)
	r.push(depth, func(dst *ebiten.Image) {
		vector.StrokeLine(dst, float32(b.X()), float32(b.Y()), float32(t.X()), float32(t.Y()), float32(math.Max(1, scale*3)), trunkColor, true)
		vector.FillCircle(dst, float32(t.X()), float32(t.Y()), float32(radius*scale), canopyColor, true)
	})
}

func (r *Renderer) queueBody(center mgl64.Vec3, radius float64, clr color.RGBA) {
	p, depth, ok := r.project(center)
	if !ok {
		return
	}
	px := float32(math.Max(1, radius*r.pixels(depth)))
	r.push(depth, func(dst *ebiten.Image) {
		vector.FillCircle(dst, float32(p.X()), float32(p.Y()), px, clr, true)
	})
}
