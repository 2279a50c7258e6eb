package component

// Input is the held state of the four movement directions, sampled once per
// frame.
type Input struct {
	North bool
	South bool
	West  bool
	East  bool
}

var InputComponent = NewComponent[Input]()
