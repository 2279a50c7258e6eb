package component

// Wanderer is an animal that roams, re-rolling its heading every few seconds,
// and flees from the player.
type Wanderer struct {
	Size  float64
	Timer int
}

var WandererComponent = NewComponent[Wanderer]()

// Tree is a static gatherable prop.
type Tree struct {
	Height float64
	Radius float64
}

var TreeComponent = NewComponent[Tree]()
