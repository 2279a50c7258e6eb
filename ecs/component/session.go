package component

// Stats are the counters shown on the HUD.
type Stats struct {
	Score  int
	Health int
}

var StatsComponent = NewComponent[Stats]()

// Clock counts simulated frames. Frame is 1 during the first step.
type Clock struct {
	Frame int
}

var ClockComponent = NewComponent[Clock]()
