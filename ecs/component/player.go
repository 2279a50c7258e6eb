package component

type Player struct {
	Speed float64
	Size  float64
}

var PlayerComponent = NewComponent[Player]()
