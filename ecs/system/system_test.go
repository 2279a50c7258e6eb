package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/ny1609/common"
	"github.com/milk9111/ny1609/ecs"
	"github.com/milk9111/ny1609/ecs/component"
	"github.com/milk9111/ny1609/ecs/entity"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/terrain"
)

type fixture struct {
	w      *ecs.World
	model  *terrain.Model
	tun    *prefabs.Tuning
	input  *ScriptedInput
	player ecs.Entity
	camera ecs.Entity
}

// newFixture builds a world with a player, counters and a camera already in
// follow mode, on flat ground at height 0.
func newFixture(t *testing.T, x, z float64) *fixture {
	t.Helper()
	tun := prefabs.DefaultTuning()
	tun.Scoring.AmbientSeconds = 0
	f := &fixture{
		w:     ecs.NewWorld(),
		model: terrain.NewWithField(terrain.FlatField(0.5)),
		tun:   &tun,
		input: &ScriptedInput{},
	}
	var err error
	if f.player, err = entity.NewPlayerAt(f.w, tun.Player, f.model, x, z); err != nil {
		t.Fatal(err)
	}
	if _, err = entity.NewSessionCounters(f.w, tun.Scoring); err != nil {
		t.Fatal(err)
	}
	if f.camera, err = entity.NewCamera(f.w, tun.Camera); err != nil {
		t.Fatal(err)
	}
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent)
	cam.Mode = component.CameraFollow
	return f
}

func (f *fixture) withSystems(systems ...ecs.System) *fixture {
	for _, s := range systems {
		f.w.AddSystem(s)
	}
	return f
}

func (f *fixture) playerState(t *testing.T) (*component.Transform, *component.Velocity) {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.player, component.TransformComponent)
	if !ok {
		t.Fatal("player transform missing")
	}
	v, ok := ecs.Get(f.w, f.player, component.VelocityComponent)
	if !ok {
		t.Fatal("player velocity missing")
	}
	return tr, v
}

func (f *fixture) score(t *testing.T) int {
	t.Helper()
	_, s, ok := ecs.Single(f.w, component.StatsComponent)
	if !ok {
		t.Fatal("stats missing")
	}
	return s.Score
}

func TestClockStartsAtOne(t *testing.T) {
	f := newFixture(t, 0, 0).withSystems(NewClockSystem())
	f.w.Update()
	if got := frame(f.w); got != 1 {
		t.Fatalf("frame after first update = %d, want 1", got)
	}
}

func TestPlayerImpulsesAreAdditive(t *testing.T) {
	cases := []struct {
		name   string
		held   component.Input
		vx, vz float64
	}{
		{"north", component.Input{North: true}, 0, -0.18},
		{"south", component.Input{South: true}, 0, 0.18},
		{"west", component.Input{West: true}, -0.18, 0},
		{"east", component.Input{East: true}, 0.18, 0},
		{"north_south_cancel", component.Input{North: true, South: true}, 0, 0},
		{"diagonal", component.Input{North: true, East: true}, 0.18, -0.18},
		{"all", component.Input{North: true, South: true, West: true, East: true}, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, 0, 0)
			f.withSystems(NewInputSystem(f.input), NewPlayerControllerSystem(f.model, f.tun))
			f.input.Held = c.held
			f.w.Update()
			_, v := f.playerState(t)
			if math.Abs(v.VX-c.vx) > 1e-12 || math.Abs(v.VZ-c.vz) > 1e-12 {
				t.Fatalf("velocity = (%v, %v), want (%v, %v)", v.VX, v.VZ, c.vx, c.vz)
			}
		})
	}
}

func TestPlayerStaysInsideShore(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.withSystems(NewInputSystem(f.input), NewPlayerControllerSystem(f.model, f.tun))
	rng := common.NewRNG(3)
	margin := f.tun.Player.Margin
	limit := f.tun.Bounds.LimitZ

	for i := 0; i < 5000; i++ {
		if i%40 == 0 {
			f.input.Held = component.Input{
				North: rng.Float64() < 0.5,
				South: rng.Float64() < 0.3,
				West:  rng.Float64() < 0.5,
				East:  rng.Float64() < 0.5,
			}
		}
		f.w.Update()
		tr, _ := f.playerState(t)
		if tr.Z < -limit || tr.Z > limit {
			t.Fatalf("frame %d: z = %v outside [-%v, %v]", i, tr.Z, limit, limit)
		}
		half := terrain.HalfWidth(tr.Z)
		if tr.X < -half+margin || tr.X > half-margin {
			t.Fatalf("frame %d: x = %v outside shore %v at z = %v", i, tr.X, half-margin, tr.Z)
		}
		if tr.Y != f.model.Height(tr.X, tr.Z)+f.tun.Player.EyeHeight {
			t.Fatalf("frame %d: player not at eye height", i)
		}
	}
}

func TestPlayerClampsAgainstClampedZ(t *testing.T) {
	// z overshoots the north limit; the lateral bound must come from the
	// clamped z (width 75) rather than the raw one.
	f := newFixture(t, 0, -589.9)
	f.withSystems(NewInputSystem(f.input), NewPlayerControllerSystem(f.model, f.tun))
	tr, v := f.playerState(t)
	tr.X = 40
	v.VZ = -5
	f.w.Update()
	if tr.Z != -590 {
		t.Fatalf("z = %v, want -590", tr.Z)
	}
	if want := terrain.HalfWidth(-590) - f.tun.Player.Margin; tr.X != want {
		t.Fatalf("x = %v, want %v", tr.X, want)
	}
}

func TestPlayerVelocityDecaysGeometrically(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.withSystems(NewInputSystem(f.input), NewPlayerControllerSystem(f.model, f.tun))
	tr, v := f.playerState(t)
	v.VX, v.VZ = 2, -3

	prevVX, prevVZ := v.VX, v.VZ
	for i := 0; i < 300; i++ {
		f.w.Update()
		if math.Abs(v.VX-prevVX*0.9) > 1e-12 || math.Abs(v.VZ-prevVZ*0.9) > 1e-12 {
			t.Fatalf("frame %d: velocity (%v, %v) is not 0.9 x (%v, %v)", i, v.VX, v.VZ, prevVX, prevVZ)
		}
		prevVX, prevVZ = v.VX, v.VZ
	}
	x, z := tr.X, tr.Z
	f.w.Update()
	if math.Abs(tr.X-x) > 1e-9 || math.Abs(tr.Z-z) > 1e-9 {
		t.Fatalf("position still moving: (%v, %v) -> (%v, %v)", x, z, tr.X, tr.Z)
	}
}

func TestPlayerFrozenDuringIntro(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.withSystems(NewInputSystem(f.input), NewPlayerControllerSystem(f.model, f.tun))
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent)
	cam.Mode = component.CameraIntro
	f.input.Held = component.Input{North: true}
	f.w.Update()
	tr, v := f.playerState(t)
	if v.VZ != 0 || tr.Z != 0 {
		t.Fatalf("player moved during intro: z=%v vz=%v", tr.Z, v.VZ)
	}
}

func addAnimal(t *testing.T, f *fixture, x, z, vx, vz float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewAnimalAt(f.w, x, z, component.Velocity{VX: vx, VZ: vz}, 5)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestWanderReflectsInsteadOfClamping(t *testing.T) {
	f := newFixture(t, 0, 500)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))

	z := -300.0
	bound := terrain.HalfWidth(z) - f.tun.Animals.Margin
	e := addAnimal(t, f, bound-0.1, z, 0.3, 0)

	f.w.Update()
	tr, _ := ecs.Get(f.w, e, component.TransformComponent)
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	if v.VX != -0.3 {
		t.Fatalf("vx = %v, want -0.3", v.VX)
	}
	if tr.X <= bound {
		t.Fatalf("x = %v was clamped to %v; expected a one-frame overshoot", tr.X, bound)
	}
	if tr.X-bound > 0.3 {
		t.Fatalf("overshoot %v exceeds one frame of travel", tr.X-bound)
	}

	f.w.Update()
	if tr.X > bound {
		t.Fatalf("animal did not return: x = %v, bound %v", tr.X, bound)
	}
}

func TestWanderReflectsAtPlayfieldEnds(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))
	e := addAnimal(t, f, 0, -589.9, 0, -0.3)
	f.w.Update()
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	if v.VZ != 0.3 {
		t.Fatalf("vz = %v, want 0.3", v.VZ)
	}
}

func TestWanderRerollsAfterThreshold(t *testing.T) {
	f := newFixture(t, 0, 500)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(5)))
	e := addAnimal(t, f, 0, -200, 0.01, 0.01)
	wd, _ := ecs.Get(f.w, e, component.WandererComponent)
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)

	for i := 0; i < f.tun.Animals.WanderFrames; i++ {
		f.w.Update()
		if v.VX != 0.01 || v.VZ != 0.01 {
			t.Fatalf("heading changed early at frame %d", i+1)
		}
	}
	if wd.Timer != f.tun.Animals.WanderFrames {
		t.Fatalf("timer = %d", wd.Timer)
	}
	f.w.Update()
	if wd.Timer != 0 {
		t.Fatalf("timer not reset: %d", wd.Timer)
	}
	speed := f.tun.Animals.WanderSpeed
	if v.VX == 0.01 || math.Abs(v.VX) > speed || math.Abs(v.VZ) > speed {
		t.Fatalf("unexpected re-roll (%v, %v)", v.VX, v.VZ)
	}
	tr, _ := ecs.Get(f.w, e, component.TransformComponent)
	if tr.Y != f.model.Height(tr.X, tr.Z) {
		t.Fatalf("animal not snapped to ground")
	}
}

func TestWanderFleesFromPlayer(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))
	e := addAnimal(t, f, 0, 20, 0, 0)
	f.w.Update()
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	if math.Abs(v.VX) > 1e-12 || math.Abs(v.VZ-1.5) > 1e-12 {
		t.Fatalf("flee velocity = (%v, %v), want (0, 1.5)", v.VX, v.VZ)
	}

	// standing exactly on the animal still sends it somewhere
	g := newFixture(t, 0, 0)
	g.withSystems(NewClockSystem(), NewWanderSystem(g.model, g.tun, common.NewRNG(1)))
	e = addAnimal(t, g, 0, 0, 0, 0)
	g.w.Update()
	v, _ = ecs.Get(g.w, e, component.VelocityComponent)
	if v.VX != 1.5 || v.VZ != 0 {
		t.Fatalf("flee from coincident player = (%v, %v)", v.VX, v.VZ)
	}
}

func TestWanderScoringSharesCadence(t *testing.T) {
	cases := []struct {
		name    string
		animals int
		want    int
	}{
		{"one_animal", 1, 1},
		{"two_animals_same_frame", 2, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, 0, 0)
			f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))
			var ents []ecs.Entity
			for i := 0; i < c.animals; i++ {
				ents = append(ents, addAnimal(t, f, 10, float64(i), 0, 0))
			}
			for i := 0; i < 60; i++ {
				for j, e := range ents {
					tr, _ := ecs.Get(f.w, e, component.TransformComponent)
					tr.X, tr.Z = 10, float64(j)
				}
				f.w.Update()
			}
			if got := f.score(t); got != c.want {
				t.Fatalf("score after 60 frames = %d, want %d", got, c.want)
			}
		})
	}
}

func TestWanderScript(t *testing.T) {
	rt, err := compileWanderSource([]byte("vx = rx * speed\nvz = -rz * speed\n"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vx, vz, err := rt.run(wanderInput{Speed: 0.3, RX: 0.5, RZ: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if math.Abs(vx-0.15) > 1e-12 || math.Abs(vz+0.3) > 1e-12 {
		t.Fatalf("script velocity = (%v, %v)", vx, vz)
	}

	// globals are rebound every run
	vx, _, err = rt.run(wanderInput{Speed: 1, RX: 0.25})
	if err != nil || vx != 0.25 {
		t.Fatalf("second run = %v, %v", vx, err)
	}

	if _, err := compileWanderSource([]byte("vx = (")); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestWanderUsesEmbeddedScript(t *testing.T) {
	f := newFixture(t, 0, 500)
	f.tun.Animals.Script = "wander.tengo"
	sys := NewWanderSystem(f.model, f.tun, common.NewRNG(2))
	f.withSystems(NewClockSystem(), sys)
	e := addAnimal(t, f, 20, -200, 0, 0)
	wd, _ := ecs.Get(f.w, e, component.WandererComponent)
	wd.Timer = f.tun.Animals.WanderFrames
	f.w.Update()
	if sys.script == nil {
		t.Fatalf("script was not compiled: %s", sys.scriptErr)
	}
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	// embedded script pulls toward the centerline by 0.05 * speed
	speed := f.tun.Animals.WanderSpeed
	if v.VX < -speed-0.05*speed || v.VX > speed-0.05*speed {
		t.Fatalf("vx = %v outside scripted range", v.VX)
	}

	f.tun.Animals.Script = "missing.tengo"
	sys.InvalidateScript()
	wd.Timer = f.tun.Animals.WanderFrames
	f.w.Update()
	if sys.script != nil || sys.scriptErr == "" {
		t.Fatalf("missing script should fall back to the built-in rule")
	}
	if math.Abs(v.VX) > speed || math.Abs(v.VZ) > speed {
		t.Fatalf("fallback velocity out of range: (%v, %v)", v.VX, v.VZ)
	}
}

func TestActions(t *testing.T) {
	cases := []struct {
		name    string
		actions []component.Action
		trees   [][2]float64
		animals [][2]float64
		want    int
	}{
		{"jump", []component.Action{component.ActionJump}, nil, nil, 5},
		{"double_jump", []component.Action{component.ActionJump, component.ActionJump}, nil, nil, 10},
		{"gather_nothing_near", []component.Action{component.ActionGather}, [][2]float64{{30, 0}}, [][2]float64{{0, 25}}, 0},
		{"gather_tree", []component.Action{component.ActionGather}, [][2]float64{{10, 10}, {5, 0}}, nil, 10},
		{"observe_animal", []component.Action{component.ActionGather}, nil, [][2]float64{{0, 19}, {1, 1}}, 15},
		{"tree_and_animal", []component.Action{component.ActionGather}, [][2]float64{{24, 0}}, [][2]float64{{-19, 0}}, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, 0, 0)
			f.withSystems(NewInputSystem(f.input), NewActionSystem(f.tun))
			for _, p := range c.trees {
				if _, err := entity.NewTreeAt(f.w, p[0], p[1], 0, component.Tree{Height: 40, Radius: 10}); err != nil {
					t.Fatal(err)
				}
			}
			for _, p := range c.animals {
				addAnimal(t, f, p[0], p[1], 0, 0)
			}
			for _, a := range c.actions {
				f.input.Press(a)
			}
			f.w.Update()
			if got := f.score(t); got != c.want {
				t.Fatalf("score = %d, want %d", got, c.want)
			}
			// presses are consumed once
			f.w.Update()
			if got := f.score(t); got != c.want {
				t.Fatalf("score changed on quiet frame: %d", got)
			}
		})
	}
}

func TestAmbientScoreFollowsWallClock(t *testing.T) {
	f := newFixture(t, 0, 0)
	f.tun.Scoring.AmbientSeconds = 3
	now := time.Unix(1000, 0)
	f.withSystems(NewAmbientScoreSystem(f.tun, func() time.Time { return now }))

	f.w.Update()
	if f.score(t) != 0 {
		t.Fatalf("scored on the arming frame")
	}
	now = now.Add(2999 * time.Millisecond)
	f.w.Update()
	if f.score(t) != 0 {
		t.Fatalf("scored before the interval elapsed")
	}
	now = now.Add(time.Millisecond)
	f.w.Update()
	if f.score(t) != 1 {
		t.Fatalf("score = %d after 3s, want 1", f.score(t))
	}
	now = now.Add(7 * time.Second)
	f.w.Update()
	if f.score(t) != 3 {
		t.Fatalf("score = %d after a stall, want 3", f.score(t))
	}
}

func TestCameraIntroSwitchesOnce(t *testing.T) {
	f := newFixture(t, 0, 500)
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent)
	cam.Mode = component.CameraIntro
	f.withSystems(NewCameraSystem(f.tun))

	duration := f.tun.Camera.IntroFrames
	switches := 0
	prev := cam.Mode
	for i := 1; i <= duration+50; i++ {
		f.w.Update()
		if cam.Mode != prev {
			switches++
			if i != duration {
				t.Fatalf("switched at frame %d, want %d", i, duration)
			}
		}
		if i < duration && cam.Mode != component.CameraIntro {
			t.Fatalf("left intro early at frame %d", i)
		}
		prev = cam.Mode
	}
	if switches != 1 {
		t.Fatalf("switched %d times", switches)
	}
	if cam.Timer != duration {
		t.Fatalf("timer kept running after intro: %d", cam.Timer)
	}
	if cam.RotX != followTilt || cam.RotY != followYaw {
		t.Fatalf("follow rotation = (%v, %v)", cam.RotX, cam.RotY)
	}
}

func TestCameraIntroFirstFrame(t *testing.T) {
	f := newFixture(t, 0, 500)
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent)
	cam.Mode = component.CameraIntro
	f.withSystems(NewCameraSystem(f.tun))
	tr, _ := f.playerState(t)

	f.w.Update()

	p := 1.0 / 120
	radius := common.Lerp(15, 100, common.EaseOutCubic(p))
	angle := p * math.Pi * 2
	height := common.Lerp(5, 60, p*2)
	wantX := common.Lerp(0, tr.X+math.Cos(angle)*radius, 0.12) + math.Sin(0.5)*1.5
	wantY := common.Lerp(0, tr.Y-height, 0.12) + math.Cos(0.3)*0.8
	wantZ := common.Lerp(0, tr.Z+math.Sin(angle)*radius, 0.12)

	got := cam.Position
	if math.Abs(got.X()-wantX) > 1e-9 || math.Abs(got.Y()-wantY) > 1e-9 || math.Abs(got.Z()-wantZ) > 1e-9 {
		t.Fatalf("camera = %v, want (%v, %v, %v)", got, wantX, wantY, wantZ)
	}
	if math.Abs(cam.RotX-common.Lerp(-0.1, -0.4, p)) > 1e-12 {
		t.Fatalf("intro tilt = %v", cam.RotX)
	}
}

func TestCameraFollowConverges(t *testing.T) {
	f := newFixture(t, 20, 100)
	f.withSystems(NewCameraSystem(f.tun))
	cam, _ := ecs.Get(f.w, f.camera, component.CameraComponent)
	tr, _ := f.playerState(t)

	f.w.Update()
	if math.Abs(cam.Position.X()-20*0.05) > 1e-12 {
		t.Fatalf("first follow step x = %v", cam.Position.X())
	}
	for i := 0; i < 2000; i++ {
		f.w.Update()
	}
	want := [3]float64{tr.X, tr.Y - 75, tr.Z + 100}
	for i := range want {
		if math.Abs(cam.Position[i]-want[i]) > 1e-6 {
			t.Fatalf("camera axis %d = %v, want %v", i, cam.Position[i], want[i])
		}
	}
	view := cam.View()
	origin := view.Mul4x1(cam.Position.Vec4(1))
	if math.Abs(origin.X())+math.Abs(origin.Y())+math.Abs(origin.Z()) > 1e-9 {
		t.Fatalf("view does not map the camera to the origin: %v", origin)
	}
}

func TestFleeAgainstShoreTurnsInward(t *testing.T) {
	z := -300.0
	bound := terrain.HalfWidth(z) - 5
	// player inside, animal just past the east shore: the raw flee heading
	// points further east
	f := newFixture(t, bound-20, z)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))
	e := addAnimal(t, f, bound+0.5, z-10, 0, 0)

	f.w.Update()
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	if v.VX >= 0 {
		t.Fatalf("vx = %v, want a heading back onto the island", v.VX)
	}
	if v.VZ >= 0 {
		t.Fatalf("vz = %v, want the away-from-player component kept", v.VZ)
	}
	if speed := math.Hypot(v.VX, v.VZ); math.Abs(speed-1.5) > 1e-9 {
		t.Fatalf("flee speed = %v, want 1.5", speed)
	}
}

func TestWanderNeverFlipsInwardHeading(t *testing.T) {
	f := newFixture(t, 0, 500)
	f.withSystems(NewClockSystem(), NewWanderSystem(f.model, f.tun, common.NewRNG(1)))
	z := -300.0
	bound := terrain.HalfWidth(z) - f.tun.Animals.Margin
	e := addAnimal(t, f, bound+3, z, -0.3, 0)
	tr, _ := ecs.Get(f.w, e, component.TransformComponent)
	v, _ := ecs.Get(f.w, e, component.VelocityComponent)
	for i := 0; i < 5; i++ {
		f.w.Update()
		if v.VX != -0.3 {
			t.Fatalf("frame %d: inward heading flipped to %v", i+1, v.VX)
		}
	}
	if tr.X >= bound+3 {
		t.Fatalf("animal did not walk back: x = %v", tr.X)
	}
}
