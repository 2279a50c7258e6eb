package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ny1609/prefabs"
)

type wanderInput struct {
	Timer  int
	X, Z   float64
	VX, VZ float64
	Speed  float64
	RX, RZ float64
}

// wanderScript is a compiled tengo program that picks a new heading. The
// globals it reads are set before every run; it must assign vx and vz.
type wanderScript struct {
	compiled *tengo.Compiled
}

func compileWanderScript(path string) (*wanderScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}
	return compileWanderSource(src)
}

func compileWanderSource(src []byte) (*wanderScript, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"x", "z", "vx", "vz", "speed", "rx", "rz"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, err
		}
	}
	if err := script.Add("timer", 0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return &wanderScript{compiled: compiled}, nil
}

func (ws *wanderScript) run(in wanderInput) (float64, float64, error) {
	c := ws.compiled
	for name, value := range map[string]any{
		"timer": in.Timer,
		"x":     in.X,
		"z":     in.Z,
		"vx":    in.VX,
		"vz":    in.VZ,
		"speed": in.Speed,
		"rx":    in.RX,
		"rz":    in.RZ,
	} {
		if err := c.Set(name, value); err != nil {
			return 0, 0, err
		}
	}
	if err := c.Run(); err != nil {
		return 0, 0, err
	}
	return c.Get("vx").Float(), c.Get("vz").Float(), nil
}
